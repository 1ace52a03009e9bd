package core

import "testing"

func TestEnsureLenReuse(t *testing.T) {
	buf := make([]complex64, 4, 8)

	out := EnsureLen(buf, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}

	if cap(out) != cap(buf) {
		t.Fatalf("cap = %d, want %d", cap(out), cap(buf))
	}
}

func TestEnsureLenGrow(t *testing.T) {
	out := EnsureLen([]float64{1}, 3)
	if len(out) != 3 || out[0] != 0 {
		t.Fatalf("unexpected grown slice: %v", out)
	}

	if got := EnsureLen([]float64{1, 2}, 0); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

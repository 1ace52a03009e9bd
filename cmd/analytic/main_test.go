package main

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"testing"
)

func runCapture(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

type sample struct {
	index  int
	re, im float64
}

func parseSamples(t *testing.T, out string) []sample {
	t.Helper()

	var samples []sample
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) != 3 {
			t.Fatalf("line %q: want 3 fields", line)
		}
		idx, err := strconv.Atoi(fields[0])
		if err != nil {
			t.Fatalf("line %q: %v", line, err)
		}
		re, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			t.Fatalf("line %q: %v", line, err)
		}
		im, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			t.Fatalf("line %q: %v", line, err)
		}
		samples = append(samples, sample{idx, re, im})
	}
	return samples
}

func TestRunDefault(t *testing.T) {
	code, out, errOut := runCapture(t)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, errOut)
	}
	if errOut != "" {
		t.Fatalf("unexpected stderr: %q", errOut)
	}

	samples := parseSamples(t, out)
	if len(samples) != 1024 {
		t.Fatalf("got %d lines, want 1024", len(samples))
	}

	const delay = 511
	for i, s := range samples {
		if s.index != i {
			t.Fatalf("line %d has index %d", i, s.index)
		}
		env := math.Hypot(s.re, s.im)
		if env < 0.99 || env > 1.01 {
			t.Fatalf("sample %d: envelope %v, want ~1", i, env)
		}
		wantRe := math.Sin(2 * math.Pi * 3 * float64(i-delay) / 1024)
		if math.Abs(s.re-wantRe) > 1e-2 {
			t.Fatalf("sample %d: re = %v, want %v", i, s.re, wantRe)
		}
	}
	if math.Abs(samples[delay].re) > 1e-3 {
		t.Fatalf("re[%d] = %v, want ~0", delay, samples[delay].re)
	}
}

func TestRunBackendsAndSizes(t *testing.T) {
	for _, backend := range []string{"algofft", "gonum", "godsp", "NAIVE"} {
		code, out, errOut := runCapture(t, "-size", "64", "-freq", "2", "-backend", backend)
		if code != 0 {
			t.Fatalf("%s: exit code = %d, stderr = %q", backend, code, errOut)
		}
		if n := len(parseSamples(t, out)); n != 64 {
			t.Fatalf("%s: got %d lines, want 64", backend, n)
		}
	}
}

func TestRunRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"even taps", []string{"-size", "16", "-taps", "4"}, "odd"},
		{"too few taps", []string{"-size", "16", "-taps", "1"}, "at least 3"},
		{"taps exceed size", []string{"-size", "16", "-taps", "17"}, "exceeds"},
		{"size too small", []string{"-size", "2", "-backend", "naive"}, "at least 3"},
		{"invalid size", []string{"-size", "0"}, "invalid transform length"},
		{"unknown backend", []string{"-backend", "fftw"}, "unknown backend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCapture(t, tt.args...)
			if code != 1 {
				t.Fatalf("exit code = %d, want 1", code)
			}
			if out != "" {
				t.Fatalf("expected no output, got %q", out)
			}
			if !strings.HasPrefix(errOut, "error: ") || !strings.Contains(errOut, tt.want) {
				t.Fatalf("stderr = %q, want error containing %q", errOut, tt.want)
			}
		})
	}
}

func TestRunBadFlag(t *testing.T) {
	if code, _, _ := runCapture(t, "-nope"); code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
	if code, _, _ := runCapture(t, "-h"); code != 0 {
		t.Fatalf("exit code for -h = %d, want 0", code)
	}
}

func TestRunSummary(t *testing.T) {
	code, out, errOut := runCapture(t, "-summary")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, errOut)
	}

	fields := map[string]string{}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		key, value, ok := strings.Cut(line, " ")
		if !ok || strings.TrimSpace(value) == "" {
			t.Fatalf("summary line %q: want name and value", line)
		}
		fields[key] = strings.TrimSpace(value)
	}

	for key, want := range map[string]string{
		"backend":     "algofft",
		"size":        "1024",
		"taps":        "1023",
		"delay":       "511",
		"group_delay": "511.00",
		"frequency":   "0.002930",
		"taper":       "Hamming (optimal)",
		"taper_enbw":  "1.37",
	} {
		if fields[key] != want {
			t.Fatalf("%s = %q, want %q", key, fields[key], want)
		}
	}

	db, err := strconv.ParseFloat(fields["rejection_db"], 64)
	if err != nil || db < 50 {
		t.Fatalf("rejection_db = %q, want >= 50", fields["rejection_db"])
	}
	bin, err := strconv.Atoi(fields["rejection_bin"])
	if err != nil || bin < 512+guardBins || bin > 1024-guardBins {
		t.Fatalf("rejection_bin = %q, want a negative-band bin", fields["rejection_bin"])
	}
	mean, err := strconv.ParseFloat(fields["envelope_mean"], 64)
	if err != nil || math.Abs(mean-1) > 1e-2 {
		t.Fatalf("envelope_mean = %q, want ~1", fields["envelope_mean"])
	}
}

func TestRunSummarySmallTransform(t *testing.T) {
	code, out, errOut := runCapture(t, "-summary", "-size", "16")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, errOut)
	}
	if !strings.Contains(out, "n/a") {
		t.Fatalf("expected n/a rows for a 16-point transform, got %q", out)
	}
	if !strings.Contains(errOut, "level=WARN") {
		t.Fatalf("expected warnings on stderr, got %q", errOut)
	}
}

func TestRunVerboseLogs(t *testing.T) {
	code, _, errOut := runCapture(t, "-v", "-size", "256")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, errOut)
	}
	for _, want := range []string{"kernel built", "taps=255", "delay=127", "backend=algofft", "signal filtered"} {
		if !strings.Contains(errOut, want) {
			t.Fatalf("stderr missing %q:\n%s", want, errOut)
		}
	}
}

package core

import (
	"math"
	"testing"
)

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
	if !NearlyEqual(1000, 1000.0001, 1e-6) {
		t.Fatal("expected relative comparison for large values")
	}
	if !NearlyEqual(0, 0, 0) {
		t.Fatal("expected zero to equal zero with default epsilon")
	}
}

func TestLinearToDB(t *testing.T) {
	if db := LinearToDB(0.5); !NearlyEqual(db, -6.0206, 1e-4) {
		t.Fatalf("LinearToDB(0.5) = %v, want -6.02", db)
	}
	if db := LinearToDB(10); !NearlyEqual(db, 20, 1e-12) {
		t.Fatalf("LinearToDB(10) = %v, want 20", db)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}

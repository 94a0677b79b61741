package testutil

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-specmix/imaging/grid"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireMatrixNearlyEqual fails t if the shapes differ or any element pair
// exceeds eps. Failures report the (row, col) position.
func RequireMatrixNearlyEqual(t *testing.T, got, want grid.Real, eps float64) {
	t.Helper()
	if got.Shape != want.Shape {
		t.Fatalf("shape mismatch: got %s, want %s", got.Shape, want.Shape)
	}
	for i := range got.Data {
		diff := math.Abs(got.Data[i] - want.Data[i])
		if diff > eps || math.IsNaN(diff) {
			t.Fatalf("(%d,%d): got %v, want %v (diff %v > eps %v)",
				i/got.Cols, i%got.Cols, got.Data[i], want.Data[i], diff, eps)
		}
	}
}

// RequireComplexNearlyEqual is the complex counterpart of
// [RequireMatrixNearlyEqual].
func RequireComplexNearlyEqual(t *testing.T, got, want grid.Complex, eps float64) {
	t.Helper()
	if got.Shape != want.Shape {
		t.Fatalf("shape mismatch: got %s, want %s", got.Shape, want.Shape)
	}
	for i := range got.Data {
		diff := cmplx.Abs(got.Data[i] - want.Data[i])
		if diff > eps || math.IsNaN(diff) {
			t.Fatalf("(%d,%d): got %v, want %v (diff %v > eps %v)",
				i/got.Cols, i%got.Cols, got.Data[i], want.Data[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireWithin fails t if any element lies outside [lo, hi].
func RequireWithin(t *testing.T, data []float64, lo, hi float64) {
	t.Helper()
	for i, v := range data {
		if v < lo || v > hi || math.IsNaN(v) {
			t.Fatalf("index %d: %v outside [%v, %v]", i, v, lo, hi)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

package interp

import (
	"math"
	"testing"
)

func TestLinear(t *testing.T) {
	for _, tc := range []struct{ t, want float64 }{
		{0, 2}, {0.25, 2.5}, {1, 4},
	} {
		if got := Linear(tc.t, 2, 4); got != tc.want {
			t.Fatalf("Linear(%v) = %v, want %v", tc.t, got, tc.want)
		}
	}
}

func TestHermite4ReproducesRamp(t *testing.T) {
	for _, u := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if got := Hermite4(u, -1, 0, 1, 2); math.Abs(got-u) > 1e-12 {
			t.Fatalf("t=%v: got %v, want %v", u, got, u)
		}
	}
}

func TestHermite4Endpoints(t *testing.T) {
	xm1, x0, x1, x2 := 5.0, -3.0, 7.0, 1.0
	if got := Hermite4(0, xm1, x0, x1, x2); got != x0 {
		t.Fatalf("t=0: got %v, want %v", got, x0)
	}
	if got := Hermite4(1, xm1, x0, x1, x2); math.Abs(got-x1) > 1e-12 {
		t.Fatalf("t=1: got %v, want %v", got, x1)
	}
}

func TestHermite4Midpoint(t *testing.T) {
	// Catmull-Rom midpoint: (-xm1 + 9x0 + 9x1 - x2) / 16.
	xm1, x0, x1, x2 := 1.0, 4.0, 9.0, 16.0
	want := (-xm1 + 9*x0 + 9*x1 - x2) / 16
	if got := Hermite4(0.5, xm1, x0, x1, x2); math.Abs(got-want) > 1e-12 {
		t.Fatalf("got %v, want %v", got, want)
	}
}

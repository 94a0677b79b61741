package interp

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-specmix/imaging/grid"
	"github.com/cwbudde/algo-specmix/internal/testutil"
)

func TestResizeSameShapeIsExactCopy(t *testing.T) {
	src := testutil.DeterministicNoise(7, 5, 6, 255)
	for _, m := range []Method{MethodLinear, MethodCubic} {
		got, err := Resize(src, 5, 6, m)
		if err != nil {
			t.Fatalf("%s: Resize: %v", m, err)
		}
		testutil.RequireMatrixNearlyEqual(t, got, src, 0)

		got.Set(0, 0, -1)
		if src.At(0, 0) == -1 {
			t.Fatalf("%s: Resize returned an alias of the source", m)
		}
	}
}

func TestResizeLinearDownsampleAveragesPairs(t *testing.T) {
	src, _ := grid.RealFromRows([][]float64{
		{0, 1, 2, 3},
		{0, 1, 2, 3},
	})

	got, err := Resize(src, 2, 2, MethodLinear)
	if err != nil {
		t.Fatalf("Resize: %v", err)
	}

	want, _ := grid.RealFromRows([][]float64{
		{0.5, 2.5},
		{0.5, 2.5},
	})
	testutil.RequireMatrixNearlyEqual(t, got, want, 1e-12)
}

func TestResizeLinearUpsampleClampsBorders(t *testing.T) {
	src, _ := grid.RealFromRows([][]float64{{0, 10}})

	got, err := Resize(src, 1, 4, MethodLinear)
	if err != nil {
		t.Fatalf("Resize: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got.Data, []float64{0, 2.5, 7.5, 10}, 1e-12)
}

func TestResizePreservesConstant(t *testing.T) {
	src := testutil.Constant(7, 9, 42)
	for _, m := range []Method{MethodLinear, MethodCubic} {
		got, err := Resize(src, 4, 5, m)
		if err != nil {
			t.Fatalf("%s: Resize: %v", m, err)
		}
		testutil.RequireMatrixNearlyEqual(t, got, testutil.Constant(4, 5, 42), 1e-12)
	}
}

func TestResizeDeterministic(t *testing.T) {
	src := testutil.DeterministicNoise(3, 12, 10, 255)
	a, _ := Resize(src, 5, 7, MethodCubic)
	b, _ := Resize(src, 5, 7, MethodCubic)
	testutil.RequireMatrixNearlyEqual(t, a, b, 0)
}

func TestResizeInvalidSize(t *testing.T) {
	src := testutil.Constant(2, 2, 1)
	if _, err := Resize(src, 0, 2, MethodLinear); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("err = %v, want ErrInvalidSize", err)
	}
}

func TestParseMethod(t *testing.T) {
	for in, want := range map[string]Method{"": MethodLinear, "linear": MethodLinear, "cubic": MethodCubic} {
		got, err := ParseMethod(in)
		if err != nil || got != want {
			t.Fatalf("ParseMethod(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseMethod("lanczos"); err == nil {
		t.Fatal("expected error for unknown method")
	}
}

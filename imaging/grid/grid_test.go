package grid

import (
	"errors"
	"testing"
)

func TestNewRealRejectsInvalidShape(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{{0, 4}, {4, 0}, {-1, 3}} {
		if _, err := NewReal(tc.rows, tc.cols); !errors.Is(err, ErrInvalidShape) {
			t.Fatalf("NewReal(%d, %d) err = %v, want ErrInvalidShape", tc.rows, tc.cols, err)
		}
	}
}

func TestRealFromDataLength(t *testing.T) {
	if _, err := RealFromData(2, 3, make([]float64, 5)); !errors.Is(err, ErrDataLength) {
		t.Fatalf("err = %v, want ErrDataLength", err)
	}

	m, err := RealFromData(2, 3, []float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("RealFromData: %v", err)
	}
	if got := m.At(1, 2); got != 6 {
		t.Fatalf("At(1,2) = %v, want 6", got)
	}
}

func TestRealFromRows(t *testing.T) {
	m, err := RealFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	if err != nil {
		t.Fatalf("RealFromRows: %v", err)
	}
	if m.Shape != (Shape{Rows: 3, Cols: 2}) {
		t.Fatalf("shape = %v, want 3x2", m.Shape)
	}
	if m.At(2, 0) != 5 {
		t.Fatalf("At(2,0) = %v, want 5", m.At(2, 0))
	}

	if _, err := RealFromRows([][]float64{{1, 2}, {3}}); !errors.Is(err, ErrDataLength) {
		t.Fatalf("ragged rows err = %v, want ErrDataLength", err)
	}
}

func TestCloneIsDeep(t *testing.T) {
	m, _ := NewReal(2, 2)
	c := m.Clone()
	c.Set(0, 0, 7)
	if m.At(0, 0) != 0 {
		t.Fatal("Clone shares memory with the source")
	}

	z := ComplexFromReal(c)
	if z.At(0, 0) != complex(7, 0) {
		t.Fatalf("ComplexFromReal At(0,0) = %v", z.At(0, 0))
	}
	zc := z.Clone()
	zc.Set(0, 0, 1i)
	if z.At(0, 0) != complex(7, 0) {
		t.Fatal("Complex.Clone shares memory with the source")
	}
}

func TestRowSharesMemory(t *testing.T) {
	m, _ := NewReal(3, 4)
	m.Row(1)[2] = 9
	if m.At(1, 2) != 9 {
		t.Fatal("Row should share memory with the matrix")
	}
	if got := m.Shape.String(); got != "3x4" {
		t.Fatalf("String() = %q, want 3x4", got)
	}
}

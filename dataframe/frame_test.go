package dataframe

import (
	"math"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/Thierrix/ml-project-2-armageddon/pkg/errors"
)

func buildFrame(t *testing.T) *Frame {
	t.Helper()
	f := New()
	if err := f.AddFloats("day", []float64{5, 6, 7, 8, 9}); err != nil {
		t.Fatal(err)
	}
	if err := f.AddFloats("price", []float64{1.5, 2.5, 3.5, 4.5, 5.5}); err != nil {
		t.Fatal(err)
	}
	if err := f.AddStrings("stock", []string{"AAPL", "MSFT", "AAPL", "GOOG", "MSFT"}); err != nil {
		t.Fatal(err)
	}
	return f
}

func TestFrameColumnOrder(t *testing.T) {
	f := buildFrame(t)

	want := []string{"day", "price", "stock"}
	if got := f.Columns(); !reflect.DeepEqual(got, want) {
		t.Errorf("Columns() = %v, want %v", got, want)
	}
	if f.NumRows() != 5 || f.NumCols() != 3 {
		t.Errorf("dims = (%d, %d), want (5, 3)", f.NumRows(), f.NumCols())
	}
}

func TestFrameAddErrors(t *testing.T) {
	f := buildFrame(t)

	if err := f.AddFloats("day", []float64{1}); err == nil {
		t.Error("duplicate column should error")
	} else {
		var cfgErr *errors.ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("duplicate column error = %T, want *ConfigurationError", err)
		}
	}

	if err := f.AddFloats("extra", []float64{1, 2}); err == nil {
		t.Error("row count mismatch should error")
	} else {
		var dimErr *errors.DimensionError
		if !errors.As(err, &dimErr) {
			t.Errorf("mismatch error = %T, want *DimensionError", err)
		}
	}
}

func TestFrameColumnAccess(t *testing.T) {
	f := buildFrame(t)

	if _, err := f.Floats("missing"); err == nil {
		t.Error("missing column should error")
	} else {
		var colErr *errors.ColumnNotFoundError
		if !errors.As(err, &colErr) {
			t.Errorf("error = %T, want *ColumnNotFoundError", err)
		}
	}

	if _, err := f.Floats("stock"); !errors.Is(err, errors.ErrTypeMismatch) {
		t.Errorf("Floats on string column error = %v, want ErrTypeMismatch", err)
	}
	if _, err := f.Strings("day"); !errors.Is(err, errors.ErrTypeMismatch) {
		t.Errorf("Strings on float column error = %v, want ErrTypeMismatch", err)
	}
}

func TestFrameStringified(t *testing.T) {
	f := buildFrame(t)

	// Integral floats must stringify without a decimal point so mixed
	// numeric/string categorical columns encode consistently.
	got, err := f.Stringified("day")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"5", "6", "7", "8", "9"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Stringified(day) = %v, want %v", got, want)
	}

	got, err = f.Stringified("stock")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{"AAPL", "MSFT", "AAPL", "GOOG", "MSFT"}) {
		t.Errorf("Stringified(stock) = %v", got)
	}
}

func TestFrameCopyIsDeep(t *testing.T) {
	f := buildFrame(t)
	clone := f.Copy()

	if err := clone.SetFloats("price", []float64{0, 0, 0, 0, 0}); err != nil {
		t.Fatal(err)
	}

	original, err := f.Floats("price")
	if err != nil {
		t.Fatal(err)
	}
	if original[0] != 1.5 {
		t.Error("mutating the copy should not touch the original")
	}
}

func TestFrameFilterFloat(t *testing.T) {
	f := buildFrame(t)

	kept, err := f.FilterFloat("day", func(v float64) bool { return v >= 7 && v < 9 })
	if err != nil {
		t.Fatal(err)
	}

	days, err := kept.Floats("day")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(days, []float64{7, 8}) {
		t.Errorf("filtered days = %v, want [7 8]", days)
	}

	stocks, err := kept.Strings("stock")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(stocks, []string{"AAPL", "GOOG"}) {
		t.Errorf("filtered stocks = %v, want [AAPL GOOG]", stocks)
	}
	if got := kept.Columns(); !reflect.DeepEqual(got, f.Columns()) {
		t.Errorf("filter should preserve column order, got %v", got)
	}
}

func TestFrameMatrixRoundTrip(t *testing.T) {
	f := buildFrame(t)

	m, err := f.Matrix([]string{"day", "price"})
	if err != nil {
		t.Fatal(err)
	}
	r, c := m.Dims()
	if r != 5 || c != 2 {
		t.Fatalf("matrix dims = (%d, %d), want (5, 2)", r, c)
	}
	if m.At(2, 1) != 3.5 {
		t.Errorf("m.At(2,1) = %v, want 3.5", m.At(2, 1))
	}

	doubled := mat.NewDense(5, 2, nil)
	doubled.Scale(2, m)
	if err := f.SetMatrix([]string{"day", "price"}, doubled); err != nil {
		t.Fatal(err)
	}
	days, err := f.Floats("day")
	if err != nil {
		t.Fatal(err)
	}
	if days[0] != 10 {
		t.Errorf("day[0] = %v after SetMatrix, want 10", days[0])
	}

	if _, err := f.Matrix([]string{"stock"}); err == nil {
		t.Error("Matrix over a string column should error")
	}
	if err := f.SetMatrix([]string{"day"}, doubled); err == nil {
		t.Error("SetMatrix with mismatched column count should error")
	}
}

func TestFrameReplaceWithCodes(t *testing.T) {
	f := buildFrame(t)

	if err := f.ReplaceWithCodes("stock", []int{0, 2, 0, 1, 2}); err != nil {
		t.Fatal(err)
	}
	codes, err := f.Floats("stock")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(codes, []float64{0, 2, 0, 1, 2}) {
		t.Errorf("codes = %v", codes)
	}
	// Position must be preserved.
	if got := f.Columns(); !reflect.DeepEqual(got, []string{"day", "price", "stock"}) {
		t.Errorf("column order after replace = %v", got)
	}
}

func TestFrameUniqueStringified(t *testing.T) {
	f := buildFrame(t)

	got, err := f.UniqueStringified("stock")
	if err != nil {
		t.Fatal(err)
	}
	// First-appearance order, not sorted.
	want := []string{"AAPL", "MSFT", "GOOG"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UniqueStringified = %v, want %v", got, want)
	}
}

func TestFrameStringifiedFractional(t *testing.T) {
	f := New()
	if err := f.AddFloats("x", []float64{0.5, math.Pi}); err != nil {
		t.Fatal(err)
	}
	got, err := f.Stringified("x")
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != "0.5" {
		t.Errorf("Stringified fractional = %v", got)
	}
}

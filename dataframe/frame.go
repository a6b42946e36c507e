// Package dataframe provides a minimal in-memory table with named, typed
// columns. It carries the raw and transformed experiment data between the
// loading layer, the formatters and the downstream model, and bridges the
// numeric columns to gonum matrices for the scalers.
//
// A Frame is not safe for concurrent mutation; callers needing concurrent
// access must serialize externally.
package dataframe

import (
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/Thierrix/ml-project-2-armageddon/pkg/errors"
)

// Kind is the storage type of a column.
type Kind int

const (
	// Float columns hold float64 values.
	Float Kind = iota
	// String columns hold string values.
	String
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Float:
		return "float"
	case String:
		return "string"
	default:
		return "unknown"
	}
}

// Series is a single named column.
type Series struct {
	name   string
	kind   Kind
	floats []float64
	strs   []string
}

// NewFloatSeries creates a float column. The slice is used directly, not
// copied.
func NewFloatSeries(name string, values []float64) *Series {
	return &Series{name: name, kind: Float, floats: values}
}

// NewStringSeries creates a string column. The slice is used directly, not
// copied.
func NewStringSeries(name string, values []string) *Series {
	return &Series{name: name, kind: String, strs: values}
}

// Name returns the column name.
func (s *Series) Name() string { return s.name }

// Kind returns the storage type.
func (s *Series) Kind() Kind { return s.kind }

// Len returns the number of rows.
func (s *Series) Len() int {
	if s.kind == Float {
		return len(s.floats)
	}
	return len(s.strs)
}

// Floats returns the backing float slice.
func (s *Series) Floats() ([]float64, error) {
	if s.kind != Float {
		return nil, errors.Wrapf(errors.ErrTypeMismatch, "Series.Floats: column %q is %s", s.name, s.kind)
	}
	return s.floats, nil
}

// Strings returns the backing string slice.
func (s *Series) Strings() ([]string, error) {
	if s.kind != String {
		return nil, errors.Wrapf(errors.ErrTypeMismatch, "Series.Strings: column %q is %s", s.name, s.kind)
	}
	return s.strs, nil
}

// Stringified returns the values as strings regardless of kind. Floats are
// formatted with the shortest representation that round-trips, so integral
// values read as "7" rather than "7.000000". This is what keeps mixed
// numeric/string categorical columns encoding consistently.
func (s *Series) Stringified() []string {
	if s.kind == String {
		out := make([]string, len(s.strs))
		copy(out, s.strs)
		return out
	}
	out := make([]string, len(s.floats))
	for i, v := range s.floats {
		out[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return out
}

// copySeries deep-copies the column.
func (s *Series) copySeries() *Series {
	out := &Series{name: s.name, kind: s.kind}
	if s.kind == Float {
		out.floats = make([]float64, len(s.floats))
		copy(out.floats, s.floats)
	} else {
		out.strs = make([]string, len(s.strs))
		copy(out.strs, s.strs)
	}
	return out
}

// filter returns a copy of the column keeping only rows where mask is true.
func (s *Series) filter(mask []bool, n int) *Series {
	out := &Series{name: s.name, kind: s.kind}
	if s.kind == Float {
		out.floats = make([]float64, 0, n)
		for i, keep := range mask {
			if keep {
				out.floats = append(out.floats, s.floats[i])
			}
		}
	} else {
		out.strs = make([]string, 0, n)
		for i, keep := range mask {
			if keep {
				out.strs = append(out.strs, s.strs[i])
			}
		}
	}
	return out
}

// Frame is an ordered collection of equally sized columns. Column order is
// insertion order and is preserved by Copy and Filter.
type Frame struct {
	order []string
	cols  map[string]*Series
}

// New creates an empty frame.
func New() *Frame {
	return &Frame{cols: make(map[string]*Series)}
}

// AddSeries appends a column. The first column fixes the row count; later
// columns must match it.
func (f *Frame) AddSeries(s *Series) error {
	if _, exists := f.cols[s.name]; exists {
		return errors.NewConfigurationError("Frame.AddSeries", "duplicate column "+strconv.Quote(s.name))
	}
	if len(f.order) > 0 {
		if n := f.NumRows(); s.Len() != n {
			return errors.NewDimensionError("Frame.AddSeries", n, s.Len(), 0)
		}
	}
	f.order = append(f.order, s.name)
	f.cols[s.name] = s
	return nil
}

// AddFloats appends a float column.
func (f *Frame) AddFloats(name string, values []float64) error {
	return f.AddSeries(NewFloatSeries(name, values))
}

// AddStrings appends a string column.
func (f *Frame) AddStrings(name string, values []string) error {
	return f.AddSeries(NewStringSeries(name, values))
}

// NumRows returns the row count.
func (f *Frame) NumRows() int {
	if len(f.order) == 0 {
		return 0
	}
	return f.cols[f.order[0]].Len()
}

// NumCols returns the column count.
func (f *Frame) NumCols() int { return len(f.order) }

// Columns returns the column names in insertion order.
func (f *Frame) Columns() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// Has reports whether the frame contains the named column.
func (f *Frame) Has(name string) bool {
	_, ok := f.cols[name]
	return ok
}

// Series returns the named column.
func (f *Frame) Series(name string) (*Series, error) {
	s, ok := f.cols[name]
	if !ok {
		return nil, errors.NewColumnNotFoundError("Frame.Series", name)
	}
	return s, nil
}

// Floats returns the backing float slice of the named column.
func (f *Frame) Floats(name string) ([]float64, error) {
	s, err := f.Series(name)
	if err != nil {
		return nil, err
	}
	return s.Floats()
}

// Strings returns the backing string slice of the named column.
func (f *Frame) Strings(name string) ([]string, error) {
	s, err := f.Series(name)
	if err != nil {
		return nil, err
	}
	return s.Strings()
}

// Stringified returns the named column's values as strings.
func (f *Frame) Stringified(name string) ([]string, error) {
	s, err := f.Series(name)
	if err != nil {
		return nil, err
	}
	return s.Stringified(), nil
}

// SetFloats replaces the values of an existing float column.
func (f *Frame) SetFloats(name string, values []float64) error {
	s, err := f.Series(name)
	if err != nil {
		return err
	}
	if s.kind != Float {
		return errors.Wrapf(errors.ErrTypeMismatch, "Frame.SetFloats: column %q is %s", name, s.kind)
	}
	if len(values) != s.Len() {
		return errors.NewDimensionError("Frame.SetFloats", s.Len(), len(values), 0)
	}
	s.floats = values
	return nil
}

// ReplaceWithCodes swaps a column of any kind for a float column holding
// integer codes, keeping the column's position. Used when label-encoding
// categorical columns in place.
func (f *Frame) ReplaceWithCodes(name string, codes []int) error {
	s, err := f.Series(name)
	if err != nil {
		return err
	}
	if len(codes) != s.Len() {
		return errors.NewDimensionError("Frame.ReplaceWithCodes", s.Len(), len(codes), 0)
	}
	floats := make([]float64, len(codes))
	for i, c := range codes {
		floats[i] = float64(c)
	}
	f.cols[name] = NewFloatSeries(name, floats)
	return nil
}

// Copy deep-copies the frame.
func (f *Frame) Copy() *Frame {
	out := New()
	for _, name := range f.order {
		out.order = append(out.order, name)
		out.cols[name] = f.cols[name].copySeries()
	}
	return out
}

// FilterFloat returns a new frame keeping the rows where keep returns true
// for the named float column's value. Every column is filtered with the same
// mask, so each input row lands in at most one output.
func (f *Frame) FilterFloat(name string, keep func(float64) bool) (*Frame, error) {
	values, err := f.Floats(name)
	if err != nil {
		return nil, err
	}

	mask := make([]bool, len(values))
	n := 0
	for i, v := range values {
		if keep(v) {
			mask[i] = true
			n++
		}
	}

	out := New()
	for _, col := range f.order {
		out.order = append(out.order, col)
		out.cols[col] = f.cols[col].filter(mask, n)
	}
	return out, nil
}

// Matrix assembles the named float columns into a dense row-major matrix,
// one column per name in the given order.
func (f *Frame) Matrix(names []string) (*mat.Dense, error) {
	if len(names) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "Frame.Matrix")
	}
	rows := f.NumRows()
	if rows == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "Frame.Matrix: no rows")
	}
	out := mat.NewDense(rows, len(names), nil)
	for j, name := range names {
		values, err := f.Floats(name)
		if err != nil {
			return nil, err
		}
		for i, v := range values {
			out.Set(i, j, v)
		}
	}
	return out, nil
}

// SetMatrix writes a matrix back into the named float columns, one matrix
// column per name.
func (f *Frame) SetMatrix(names []string, m mat.Matrix) error {
	rows, cols := m.Dims()
	if cols != len(names) {
		return errors.NewDimensionError("Frame.SetMatrix", len(names), cols, 1)
	}
	if rows != f.NumRows() {
		return errors.NewDimensionError("Frame.SetMatrix", f.NumRows(), rows, 0)
	}
	for j, name := range names {
		values := make([]float64, rows)
		for i := range values {
			values[i] = m.At(i, j)
		}
		if err := f.SetFloats(name, values); err != nil {
			return err
		}
	}
	return nil
}

// UniqueStringified returns the distinct stringified values of a column in
// order of first appearance.
func (f *Frame) UniqueStringified(name string) ([]string, error) {
	values, err := f.Stringified(name)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out, nil
}

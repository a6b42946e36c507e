package dataframe

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/Thierrix/ml-project-2-armageddon/pkg/errors"
)

// ReadCSV parses a headered CSV stream into a frame. A column where every
// value parses as a float becomes a Float column; anything else stays a
// String column.
func ReadCSV(r io.Reader) (*Frame, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "ReadCSV")
	}
	if len(records) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "ReadCSV: missing header row")
	}

	header := records[0]
	rows := records[1:]

	frame := New()
	for j, name := range header {
		col := make([]string, len(rows))
		for i, rec := range rows {
			if j >= len(rec) {
				return nil, errors.NewDimensionError("ReadCSV", len(header), len(rec), 1)
			}
			col[i] = rec[j]
		}

		floats, ok := tryParseFloats(col)
		if ok {
			err = frame.AddFloats(name, floats)
		} else {
			err = frame.AddStrings(name, col)
		}
		if err != nil {
			return nil, err
		}
	}
	return frame, nil
}

// ReadCSVFile parses a headered CSV file into a frame.
func ReadCSVFile(path string) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "ReadCSVFile")
	}
	defer file.Close()
	return ReadCSV(file)
}

// WriteCSV writes the frame as headered CSV.
func (f *Frame) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(f.Columns()); err != nil {
		return errors.Wrap(err, "Frame.WriteCSV")
	}

	stringified := make([][]string, f.NumCols())
	for j, name := range f.order {
		stringified[j] = f.cols[name].Stringified()
	}

	record := make([]string, f.NumCols())
	for i := 0; i < f.NumRows(); i++ {
		for j := range stringified {
			record[j] = stringified[j][i]
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "Frame.WriteCSV")
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "Frame.WriteCSV")
}

// WriteCSVFile writes the frame as headered CSV to a file.
func (f *Frame) WriteCSVFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "Frame.WriteCSVFile")
	}
	defer file.Close()
	return f.WriteCSV(file)
}

func tryParseFloats(values []string) ([]float64, bool) {
	out := make([]float64, len(values))
	for i, v := range values {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, false
		}
		out[i] = parsed
	}
	return out, true
}

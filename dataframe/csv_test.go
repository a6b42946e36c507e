package dataframe

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/Thierrix/ml-project-2-armageddon/pkg/errors"
)

const sampleCSV = `DAY,midprice,STOCK
5,100.5,AAPL
6,101.25,MSFT
7,99,AAPL
`

func TestReadCSVKindInference(t *testing.T) {
	f, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatal(err)
	}

	if got := f.Columns(); !reflect.DeepEqual(got, []string{"DAY", "midprice", "STOCK"}) {
		t.Fatalf("Columns() = %v", got)
	}

	days, err := f.Floats("DAY")
	if err != nil {
		t.Fatalf("DAY should infer as float: %v", err)
	}
	if !reflect.DeepEqual(days, []float64{5, 6, 7}) {
		t.Errorf("DAY = %v", days)
	}

	stocks, err := f.Strings("STOCK")
	if err != nil {
		t.Fatalf("STOCK should infer as string: %v", err)
	}
	if !reflect.DeepEqual(stocks, []string{"AAPL", "MSFT", "AAPL"}) {
		t.Errorf("STOCK = %v", stocks)
	}
}

func TestReadCSVEmpty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	if !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("empty input error = %v, want ErrEmptyData", err)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	f, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := f.WriteCSV(&buf); err != nil {
		t.Fatal(err)
	}

	again, err := ReadCSV(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(again.Columns(), f.Columns()) {
		t.Errorf("round-trip columns = %v, want %v", again.Columns(), f.Columns())
	}
	orig, _ := f.Floats("midprice")
	back, _ := again.Floats("midprice")
	if !reflect.DeepEqual(orig, back) {
		t.Errorf("round-trip midprice = %v, want %v", back, orig)
	}
}

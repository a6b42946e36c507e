package preprocessing

import (
	"reflect"
	"testing"

	"github.com/Thierrix/ml-project-2-armageddon/pkg/errors"
)

func TestLabelEncoderDeterministicCodes(t *testing.T) {
	labels := []string{"MSFT", "AAPL", "GOOG", "AAPL", "MSFT"}

	first := NewLabelEncoder("STOCK")
	if err := first.Fit(labels); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	// Codes follow sorted label order regardless of appearance order.
	if !reflect.DeepEqual(first.Classes, []string{"AAPL", "GOOG", "MSFT"}) {
		t.Errorf("Classes = %v, want sorted", first.Classes)
	}
	if first.NumClasses() != 3 {
		t.Errorf("NumClasses() = %d, want 3", first.NumClasses())
	}

	codes, err := first.Transform(labels)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if !reflect.DeepEqual(codes, []int{2, 0, 1, 0, 2}) {
		t.Errorf("codes = %v, want [2 0 1 0 2]", codes)
	}

	// Fitting again on a shuffled copy of the same labels must reproduce
	// the exact mapping.
	second := NewLabelEncoder("STOCK")
	if err := second.Fit([]string{"GOOG", "MSFT", "AAPL"}); err != nil {
		t.Fatal(err)
	}
	secondCodes, err := second.Transform(labels)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(codes, secondCodes) {
		t.Errorf("repeated calibration codes = %v, want %v", secondCodes, codes)
	}
}

func TestLabelEncoderUnseenLabel(t *testing.T) {
	encoder := NewLabelEncoder("STOCK")
	if err := encoder.Fit([]string{"AAPL", "MSFT"}); err != nil {
		t.Fatal(err)
	}

	_, err := encoder.Transform([]string{"AAPL", "TSLA"})
	if err == nil {
		t.Fatal("unseen label should error")
	}

	var unseenErr *errors.UnseenLabelError
	if !errors.As(err, &unseenErr) {
		t.Fatalf("error = %T, want *UnseenLabelError", err)
	}
	if unseenErr.Column != "STOCK" || unseenErr.Label != "TSLA" {
		t.Errorf("error fields = (%q, %q), want (STOCK, TSLA)", unseenErr.Column, unseenErr.Label)
	}
}

func TestLabelEncoderInverseTransform(t *testing.T) {
	encoder := NewLabelEncoder("STOCK")
	codes, err := encoder.FitTransform([]string{"B", "A", "C"})
	if err != nil {
		t.Fatal(err)
	}

	labels, err := encoder.InverseTransform(codes)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(labels, []string{"B", "A", "C"}) {
		t.Errorf("inverse = %v, want original labels", labels)
	}

	if _, err := encoder.InverseTransform([]int{5}); err == nil {
		t.Error("out-of-range code should error")
	}
}

func TestLabelEncoderGuards(t *testing.T) {
	encoder := NewLabelEncoder("STOCK")

	if _, err := encoder.Transform([]string{"AAPL"}); err == nil {
		t.Error("Transform before Fit should error")
	} else {
		var notCal *errors.NotCalibratedError
		if !errors.As(err, &notCal) {
			t.Errorf("error = %T, want *NotCalibratedError", err)
		}
	}

	if err := encoder.Fit(nil); !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("Fit(nil) error = %v, want ErrEmptyData", err)
	}
}

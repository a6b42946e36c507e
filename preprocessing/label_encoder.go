package preprocessing

import (
	"fmt"
	"sort"

	"github.com/Thierrix/ml-project-2-armageddon/core/model"
	"github.com/Thierrix/ml-project-2-armageddon/pkg/errors"
)

// LabelEncoder maps categorical string labels to dense integer codes in
// [0, NumClasses). Codes are assigned over the sorted distinct label set, so
// calibrating twice on the same data always yields the same mapping.
//
// Transforming a label that was absent at Fit time is a fatal
// UnseenLabelError; there is no fallback bucket.
//
// A LabelEncoder is not safe for concurrent use.
type LabelEncoder struct {
	model.BaseCalibrator

	// Column names the encoded column in errors. Optional.
	Column string

	// Classes holds the distinct labels in code order.
	Classes []string

	codes map[string]int
}

// NewLabelEncoder creates an uncalibrated encoder for the named column.
func NewLabelEncoder(column string) *LabelEncoder {
	return &LabelEncoder{Column: column}
}

// Fit learns the label vocabulary. Codes follow the sorted order of the
// distinct labels.
func (e *LabelEncoder) Fit(labels []string) error {
	if len(labels) == 0 {
		return errors.Wrap(errors.ErrEmptyData, "LabelEncoder.Fit")
	}

	seen := make(map[string]bool, len(labels))
	for _, label := range labels {
		seen[label] = true
	}

	e.Classes = make([]string, 0, len(seen))
	for label := range seen {
		e.Classes = append(e.Classes, label)
	}
	sort.Strings(e.Classes)

	e.codes = make(map[string]int, len(e.Classes))
	for code, label := range e.Classes {
		e.codes[label] = code
	}

	e.SetCalibrated()
	return nil
}

// Transform maps labels to their integer codes.
func (e *LabelEncoder) Transform(labels []string) ([]int, error) {
	if !e.IsCalibrated() {
		return nil, errors.NewNotCalibratedError("LabelEncoder", "Transform")
	}

	out := make([]int, len(labels))
	for i, label := range labels {
		code, ok := e.codes[label]
		if !ok {
			return nil, errors.NewUnseenLabelError(e.Column, label)
		}
		out[i] = code
	}
	return out, nil
}

// FitTransform fits on labels and returns their codes.
func (e *LabelEncoder) FitTransform(labels []string) ([]int, error) {
	if err := e.Fit(labels); err != nil {
		return nil, err
	}
	return e.Transform(labels)
}

// InverseTransform maps integer codes back to labels.
func (e *LabelEncoder) InverseTransform(codes []int) ([]string, error) {
	if !e.IsCalibrated() {
		return nil, errors.NewNotCalibratedError("LabelEncoder", "InverseTransform")
	}

	out := make([]string, len(codes))
	for i, code := range codes {
		if code < 0 || code >= len(e.Classes) {
			return nil, errors.NewValueError("LabelEncoder.InverseTransform",
				fmt.Sprintf("code %d out of range [0, %d)", code, len(e.Classes)))
		}
		out[i] = e.Classes[code]
	}
	return out, nil
}

// NumClasses returns the number of distinct labels seen at Fit time.
func (e *LabelEncoder) NumClasses() int {
	return len(e.Classes)
}

// String returns a short description of the encoder.
func (e *LabelEncoder) String() string {
	if !e.IsCalibrated() {
		return fmt.Sprintf("LabelEncoder(column=%q, uncalibrated)", e.Column)
	}
	return fmt.Sprintf("LabelEncoder(column=%q, n_classes=%d)", e.Column, len(e.Classes))
}

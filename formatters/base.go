// Package formatters defines the dataset-specific preprocessing adapters for
// the temporal fusion forecasting experiments. A formatter declares the
// column schema of its dataset, calibrates normalization and encoding
// statistics from the training split, applies them consistently across
// train/validation/test, and reverses target scaling on model output.
package formatters

import (
	"fmt"
	"strconv"

	"github.com/Thierrix/ml-project-2-armageddon/dataframe"
	"github.com/Thierrix/ml-project-2-armageddon/pkg/errors"
)

// DataType is the semantic value type of a column, independent of storage.
type DataType int

const (
	// RealValued marks continuous numeric columns.
	RealValued DataType = iota
	// Categorical marks columns holding discrete labels.
	Categorical
)

// String returns the name of the data type.
func (d DataType) String() string {
	switch d {
	case RealValued:
		return "REAL_VALUED"
	case Categorical:
		return "CATEGORICAL"
	default:
		return "UNKNOWN"
	}
}

// InputType is the column's function in the modeling task.
type InputType int

const (
	// Target is the variable being forecast.
	Target InputType = iota
	// KnownInput is an input known into the future.
	KnownInput
	// StaticInput is an entity-level input constant over time.
	StaticInput
	// ID is the entity identifier.
	ID
	// Time is the per-row timestamp.
	Time
)

// String returns the name of the input type.
func (t InputType) String() string {
	switch t {
	case Target:
		return "TARGET"
	case KnownInput:
		return "KNOWN_INPUT"
	case StaticInput:
		return "STATIC_INPUT"
	case ID:
		return "ID"
	case Time:
		return "TIME"
	default:
		return "UNKNOWN"
	}
}

// ColumnSpec describes one column of the experiment table. Specs are fixed
// at construction time and never mutated.
type ColumnSpec struct {
	Name  string
	Type  DataType
	Input InputType
}

// Schema is the ordered column definition of a dataset. Order is declaration
// order and is preserved in every derived column list.
type Schema []ColumnSpec

// Validate checks the schema invariants: unique column names and exactly one
// ID, one Time and one Target column.
func (s Schema) Validate() error {
	seen := make(map[string]bool, len(s))
	for _, col := range s {
		if seen[col.Name] {
			return errors.NewConfigurationError("Schema.Validate", "duplicate column "+strconv.Quote(col.Name))
		}
		seen[col.Name] = true
	}

	for _, input := range []InputType{ID, Time, Target} {
		if _, err := SingleColumnByInputType(input, s); err != nil {
			return err
		}
	}
	return nil
}

// SingleColumnByInputType returns the name of the unique column with the
// given input type. Zero or multiple matches are a configuration error.
func SingleColumnByInputType(input InputType, schema Schema) (string, error) {
	var matches []string
	for _, col := range schema {
		if col.Input == input {
			matches = append(matches, col.Name)
		}
	}
	if len(matches) != 1 {
		return "", errors.NewConfigurationError("SingleColumnByInputType",
			fmt.Sprintf("expected exactly one column with input type %s, got %d", input, len(matches)))
	}
	return matches[0], nil
}

// ColumnsByDataType returns, in schema order, the names of the columns with
// the given data type whose input type is not in excluded.
func ColumnsByDataType(dtype DataType, schema Schema, excluded map[InputType]bool) []string {
	var out []string
	for _, col := range schema {
		if col.Type != dtype {
			continue
		}
		if excluded[col.Input] {
			continue
		}
		out = append(out, col.Name)
	}
	return out
}

// FixedParams are the fixed experiment parameters consumed by the training
// harness.
type FixedParams struct {
	TotalTimeSteps         int
	NumEncoderSteps        int
	NumEpochs              int
	EarlyStoppingPatience  int
	MultiprocessingWorkers int
}

// ModelParams are the default optimised model hyperparameters.
type ModelParams struct {
	DropoutRate     float64
	HiddenLayerSize int
	LearningRate    float64
	MinibatchSize   int
	MaxGradientNorm float64
	NumHeads        int
	StackSize       int
}

// Formatter is the capability interface every dataset adapter implements.
//
// A formatter instance owns its scaler state exclusively and provides no
// internal locking: concurrent calls on the same instance must be serialized
// by the caller.
type Formatter interface {
	// ColumnDefinition returns the dataset's column schema.
	ColumnDefinition() Schema

	// SplitData partitions a table into train/validation/test by the
	// dataset's time-bucket column, calibrates the scalers on the training
	// partition only, and returns the three transformed partitions in order.
	SplitData(df *dataframe.Frame, validBoundary, testBoundary float64) (train, valid, test *dataframe.Frame, err error)

	// SetScalers calibrates normalization and encoding statistics from the
	// supplied training data, overwriting any previous calibration.
	SetScalers(df *dataframe.Frame) error

	// TransformInputs returns a transformed copy of df using the calibrated
	// statistics. The input is never mutated.
	TransformInputs(df *dataframe.Frame) (*dataframe.Frame, error)

	// FormatPredictions returns a copy of a prediction table with every
	// non-reserved column restored to the original target scale.
	FormatPredictions(predictions *dataframe.Frame) (*dataframe.Frame, error)

	// FixedParams returns the fixed experiment parameters for a forecast
	// horizon.
	FixedParams(forecastHorizon int) FixedParams

	// DefaultModelParams returns the default model hyperparameters.
	DefaultModelParams() ModelParams
}

// This file defines standard attribute keys for dataset formatting
// operations. Using these keys keeps records filterable across the split,
// calibration and transform stages of an experiment run.

package log

// Formatter and operation context.
const (
	// FormatterKey identifies the formatter type producing the record.
	// Examples: "VolatilityFormatter"
	FormatterKey = "formatter.name"

	// OperationKey specifies the formatting operation being performed.
	// Standard values: "split_data", "set_scalers", "transform_inputs",
	// "format_predictions"
	OperationKey = "fmt.operation"

	// SplitKey indicates which partition a record refers to.
	// Standard values: "train", "valid", "test"
	SplitKey = "fmt.split"
)

// Data shape and characteristics.
const (
	// RowsKey indicates the number of rows in the table being processed.
	RowsKey = "data.rows"

	// ColumnsKey indicates the number of columns in the table.
	ColumnsKey = "data.columns"

	// IdentifiersKey indicates the number of distinct entity identifiers
	// observed at calibration time.
	IdentifiersKey = "data.identifiers"

	// ClassesKey indicates the number of distinct labels of a categorical
	// column.
	ClassesKey = "data.classes"
)

// Performance.
const (
	// DurationMsKey records the execution time of an operation in
	// milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Standard attribute value constants for formatting operations.
const (
	OperationSplit             = "split_data"
	OperationSetScalers        = "set_scalers"
	OperationTransform         = "transform_inputs"
	OperationFormatPredictions = "format_predictions"

	SplitTrain = "train"
	SplitValid = "valid"
	SplitTest  = "test"
)

package formatters

import (
	"github.com/Thierrix/ml-project-2-armageddon/core/model"
	"github.com/Thierrix/ml-project-2-armageddon/dataframe"
	"github.com/Thierrix/ml-project-2-armageddon/pkg/errors"
	"github.com/Thierrix/ml-project-2-armageddon/pkg/log"
	"github.com/Thierrix/ml-project-2-armageddon/preprocessing"
)

const (
	// DayColumn is the time-bucket column SplitData partitions on. It is a
	// separate partitioning key supplied with the raw table, not the
	// schema's Time column.
	DayColumn = "DAY"

	// ForecastTimeColumn and IdentifierColumn are the reserved prediction
	// table columns that FormatPredictions passes through unchanged.
	ForecastTimeColumn = "forecast_time"
	IdentifierColumn   = "identifier"

	// DefaultValidBoundary and DefaultTestBoundary are the standard split
	// boundaries for the volatility experiments.
	DefaultValidBoundary = 7
	DefaultTestBoundary  = 8

	// DefaultForecastHorizon is the horizon used when none is specified.
	DefaultForecastHorizon = 20
)

// volatilitySchema is the fixed column definition of the limit-order-book
// volatility dataset.
var volatilitySchema = Schema{
	{Name: "PRICE_ASK_0", Type: RealValued, Input: KnownInput},
	{Name: "PRICE_BID_0", Type: RealValued, Input: KnownInput},
	{Name: "VOLUME_ASK_0", Type: RealValued, Input: KnownInput},
	{Name: "VOLUME_BID_0", Type: RealValued, Input: KnownInput},
	{Name: "SPREAD", Type: RealValued, Input: KnownInput},
	{Name: "midprice", Type: RealValued, Input: KnownInput},
	{Name: "id", Type: RealValued, Input: ID},
	{Name: "time", Type: RealValued, Input: Time},
	{Name: "rolling_volatility", Type: RealValued, Input: Target},
	{Name: "STOCK", Type: Categorical, Input: StaticInput},
}

// passthroughInputs are the input types left untouched by TransformInputs.
// The target deliberately passes through unscaled: only predictions are
// inverse-transformed later, through the separate target scaler.
var passthroughInputs = map[InputType]bool{ID: true, Time: true, Target: true}

// VolatilityFormatter defines and formats data for the volatility dataset.
//
// The zero value is unusable; create instances with NewVolatilityFormatter.
// Instances are not safe for concurrent use.
type VolatilityFormatter struct {
	model.BaseCalibrator

	schema Schema
	logger log.Logger

	identifiers      []string
	realScaler       *preprocessing.StandardScaler
	targetScaler     *preprocessing.StandardScaler
	catEncoders      map[string]*preprocessing.LabelEncoder
	numClassesPerCat []int
}

var _ Formatter = (*VolatilityFormatter)(nil)

// NewVolatilityFormatter creates an uncalibrated formatter for the
// volatility dataset.
func NewVolatilityFormatter() *VolatilityFormatter {
	return &VolatilityFormatter{
		schema: volatilitySchema,
		logger: log.GetLoggerWithName("formatters.volatility").With(
			log.FormatterKey, "VolatilityFormatter",
		),
	}
}

// ColumnDefinition implements Formatter.
func (f *VolatilityFormatter) ColumnDefinition() Schema {
	out := make(Schema, len(f.schema))
	copy(out, f.schema)
	return out
}

// Identifiers returns the distinct entity identifiers observed at
// calibration time, in order of first appearance. Nil before calibration.
func (f *VolatilityFormatter) Identifiers() []string {
	return f.identifiers
}

// NumClassesPerCatInput returns the distinct-label count of each categorical
// input, in schema order. Nil before calibration.
func (f *VolatilityFormatter) NumClassesPerCatInput() []int {
	return f.numClassesPerCat
}

// SplitData implements Formatter. Rows are partitioned on the DAY column
// into train (day < validBoundary), validation (validBoundary <= day <
// testBoundary) and test (day >= testBoundary). Scalers are calibrated on
// the training partition only, before any transform happens.
func (f *VolatilityFormatter) SplitData(df *dataframe.Frame, validBoundary, testBoundary float64) (train, valid, test *dataframe.Frame, err error) {
	if !df.Has(DayColumn) {
		return nil, nil, nil, errors.NewConfigurationError("SplitData",
			"partition column \""+DayColumn+"\" is required")
	}

	f.logger.Info("formatting train-valid-test splits",
		log.OperationKey, log.OperationSplit,
		log.RowsKey, df.NumRows(),
	)

	train, err = df.FilterFloat(DayColumn, func(day float64) bool { return day < validBoundary })
	if err != nil {
		return nil, nil, nil, err
	}
	valid, err = df.FilterFloat(DayColumn, func(day float64) bool { return day >= validBoundary && day < testBoundary })
	if err != nil {
		return nil, nil, nil, err
	}
	test, err = df.FilterFloat(DayColumn, func(day float64) bool { return day >= testBoundary })
	if err != nil {
		return nil, nil, nil, err
	}

	if err = f.SetScalers(train); err != nil {
		return nil, nil, nil, err
	}

	if train, err = f.TransformInputs(train); err != nil {
		return nil, nil, nil, err
	}
	if valid, err = f.TransformInputs(valid); err != nil {
		return nil, nil, nil, err
	}
	if test, err = f.TransformInputs(test); err != nil {
		return nil, nil, nil, err
	}
	return train, valid, test, nil
}

// SetScalers implements Formatter. It fits the joint real-input scaler, the
// separate target scaler and one label encoder per categorical input, and
// records the distinct identifiers, all from the supplied training data.
// Any previous calibration is overwritten.
func (f *VolatilityFormatter) SetScalers(df *dataframe.Frame) error {
	idColumn, err := SingleColumnByInputType(ID, f.schema)
	if err != nil {
		return err
	}
	targetColumn, err := SingleColumnByInputType(Target, f.schema)
	if err != nil {
		return err
	}

	f.logger.Info("setting scalers with training data",
		log.OperationKey, log.OperationSetScalers,
		log.RowsKey, df.NumRows(),
	)

	// Extract identifiers in case downstream batching needs them.
	identifiers, err := df.UniqueStringified(idColumn)
	if err != nil {
		return err
	}

	realInputs := ColumnsByDataType(RealValued, f.schema, passthroughInputs)
	realMatrix, err := df.Matrix(realInputs)
	if err != nil {
		return err
	}
	realScaler := preprocessing.NewStandardScaler()
	if err := realScaler.Fit(realMatrix); err != nil {
		return err
	}

	targetMatrix, err := df.Matrix([]string{targetColumn})
	if err != nil {
		return err
	}
	targetScaler := preprocessing.NewStandardScaler() // used for predictions
	if err := targetScaler.Fit(targetMatrix); err != nil {
		return err
	}

	categoricalInputs := ColumnsByDataType(Categorical, f.schema, map[InputType]bool{ID: true, Time: true})
	catEncoders := make(map[string]*preprocessing.LabelEncoder, len(categoricalInputs))
	numClasses := make([]int, 0, len(categoricalInputs))
	for _, col := range categoricalInputs {
		// Stringify so mixed integer/string columns encode consistently.
		labels, err := df.Stringified(col)
		if err != nil {
			return err
		}
		encoder := preprocessing.NewLabelEncoder(col)
		if err := encoder.Fit(labels); err != nil {
			return err
		}
		catEncoders[col] = encoder
		numClasses = append(numClasses, encoder.NumClasses())
	}

	f.identifiers = identifiers
	f.realScaler = realScaler
	f.targetScaler = targetScaler
	f.catEncoders = catEncoders
	f.numClassesPerCat = numClasses
	f.SetCalibrated()
	return nil
}

// TransformInputs implements Formatter. Real-valued inputs are standardized
// with the joint scaler and categorical inputs are replaced by their integer
// codes; the ID, Time and Target columns pass through unchanged.
func (f *VolatilityFormatter) TransformInputs(df *dataframe.Frame) (*dataframe.Frame, error) {
	if !f.IsCalibrated() {
		return nil, errors.NewNotCalibratedError("VolatilityFormatter", "TransformInputs")
	}

	output := df.Copy()
	if df.NumRows() == 0 {
		// An empty partition transforms to an empty partition.
		return output, nil
	}

	realInputs := ColumnsByDataType(RealValued, f.schema, passthroughInputs)
	realMatrix, err := df.Matrix(realInputs)
	if err != nil {
		return nil, err
	}
	scaled, err := f.realScaler.Transform(realMatrix)
	if err != nil {
		return nil, err
	}
	if err := output.SetMatrix(realInputs, scaled); err != nil {
		return nil, err
	}

	for _, col := range ColumnsByDataType(Categorical, f.schema, map[InputType]bool{ID: true, Time: true}) {
		labels, err := df.Stringified(col)
		if err != nil {
			return nil, err
		}
		codes, err := f.catEncoders[col].Transform(labels)
		if err != nil {
			return nil, err
		}
		if err := output.ReplaceWithCodes(col, codes); err != nil {
			return nil, err
		}
	}

	return output, nil
}

// FormatPredictions implements Formatter. Every column except the reserved
// forecast-time and identifier pair is inverse-transformed with the target
// scaler, restoring predictions to the original scale for reporting.
func (f *VolatilityFormatter) FormatPredictions(predictions *dataframe.Frame) (*dataframe.Frame, error) {
	if !f.IsCalibrated() {
		return nil, errors.NewNotCalibratedError("VolatilityFormatter", "FormatPredictions")
	}

	f.logger.Info("reverting prediction normalisation",
		log.OperationKey, log.OperationFormatPredictions,
		log.RowsKey, predictions.NumRows(),
	)

	output := predictions.Copy()
	if predictions.NumRows() == 0 {
		return output, nil
	}
	for _, col := range predictions.Columns() {
		if col == ForecastTimeColumn || col == IdentifierColumn {
			continue
		}
		scaled, err := predictions.Matrix([]string{col})
		if err != nil {
			return nil, err
		}
		restored, err := f.targetScaler.InverseTransform(scaled)
		if err != nil {
			return nil, err
		}
		if err := output.SetMatrix([]string{col}, restored); err != nil {
			return nil, err
		}
	}
	return output, nil
}

// FixedParams implements Formatter.
func (f *VolatilityFormatter) FixedParams(forecastHorizon int) FixedParams {
	return FixedParams{
		TotalTimeSteps:         100 + forecastHorizon,
		NumEncoderSteps:        100,
		NumEpochs:              100,
		EarlyStoppingPatience:  5,
		MultiprocessingWorkers: 5,
	}
}

// DefaultModelParams implements Formatter.
func (f *VolatilityFormatter) DefaultModelParams() ModelParams {
	return ModelParams{
		DropoutRate:     0.3,
		HiddenLayerSize: 160,
		LearningRate:    0.01,
		MinibatchSize:   64,
		MaxGradientNorm: 0.01,
		NumHeads:        1,
		StackSize:       1,
	}
}

// TimeSteps returns the total sequence length for the default horizon.
func (f *VolatilityFormatter) TimeSteps() int {
	return f.FixedParams(DefaultForecastHorizon).TotalTimeSteps
}

// NumEncoderSteps returns the encoder step count.
func (f *VolatilityFormatter) NumEncoderSteps() int {
	return f.FixedParams(DefaultForecastHorizon).NumEncoderSteps
}

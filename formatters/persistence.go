package formatters

import (
	"io"

	"github.com/Thierrix/ml-project-2-armageddon/core/model"
	"github.com/Thierrix/ml-project-2-armageddon/pkg/errors"
	"github.com/Thierrix/ml-project-2-armageddon/preprocessing"
)

// CalibrationSnapshot is the serializable calibration state of a formatter.
// It holds everything needed to rebuild the scalers and encoders without
// re-reading the training data.
type CalibrationSnapshot struct {
	Identifiers []string

	RealMean  []float64
	RealScale []float64

	TargetMean  float64
	TargetScale float64

	// CategoricalClasses maps each categorical column to its label
	// vocabulary in code order.
	CategoricalClasses map[string][]string
}

// Snapshot captures the formatter's calibrated state.
func (f *VolatilityFormatter) Snapshot() (*CalibrationSnapshot, error) {
	if !f.IsCalibrated() {
		return nil, errors.NewNotCalibratedError("VolatilityFormatter", "Snapshot")
	}

	classes := make(map[string][]string, len(f.catEncoders))
	for col, encoder := range f.catEncoders {
		vocab := make([]string, len(encoder.Classes))
		copy(vocab, encoder.Classes)
		classes[col] = vocab
	}

	return &CalibrationSnapshot{
		Identifiers:        append([]string(nil), f.identifiers...),
		RealMean:           append([]float64(nil), f.realScaler.Mean...),
		RealScale:          append([]float64(nil), f.realScaler.Scale...),
		TargetMean:         f.targetScaler.Mean[0],
		TargetScale:        f.targetScaler.Scale[0],
		CategoricalClasses: classes,
	}, nil
}

// Restore rebuilds the formatter's calibrated state from a snapshot,
// overwriting any existing calibration.
func (f *VolatilityFormatter) Restore(snapshot *CalibrationSnapshot) error {
	realInputs := ColumnsByDataType(RealValued, f.schema, passthroughInputs)
	if len(snapshot.RealMean) != len(realInputs) || len(snapshot.RealScale) != len(realInputs) {
		return errors.NewDimensionError("VolatilityFormatter.Restore", len(realInputs), len(snapshot.RealMean), 1)
	}

	realScaler := preprocessing.NewStandardScaler()
	realScaler.Mean = append([]float64(nil), snapshot.RealMean...)
	realScaler.Scale = append([]float64(nil), snapshot.RealScale...)
	realScaler.NFeatures = len(realInputs)
	realScaler.SetCalibrated()

	targetScaler := preprocessing.NewStandardScaler()
	targetScaler.Mean = []float64{snapshot.TargetMean}
	targetScaler.Scale = []float64{snapshot.TargetScale}
	targetScaler.NFeatures = 1
	targetScaler.SetCalibrated()

	categoricalInputs := ColumnsByDataType(Categorical, f.schema, map[InputType]bool{ID: true, Time: true})
	catEncoders := make(map[string]*preprocessing.LabelEncoder, len(categoricalInputs))
	numClasses := make([]int, 0, len(categoricalInputs))
	for _, col := range categoricalInputs {
		vocab, ok := snapshot.CategoricalClasses[col]
		if !ok {
			return errors.NewConfigurationError("VolatilityFormatter.Restore",
				"snapshot is missing classes for column \""+col+"\"")
		}
		encoder := preprocessing.NewLabelEncoder(col)
		// Refitting on the vocabulary reproduces the original codes because
		// code assignment is the sorted label order.
		if err := encoder.Fit(vocab); err != nil {
			return err
		}
		catEncoders[col] = encoder
		numClasses = append(numClasses, encoder.NumClasses())
	}

	f.identifiers = append([]string(nil), snapshot.Identifiers...)
	f.realScaler = realScaler
	f.targetScaler = targetScaler
	f.catEncoders = catEncoders
	f.numClassesPerCat = numClasses
	f.SetCalibrated()
	return nil
}

// SaveCalibration writes the formatter's calibration snapshot to w.
func (f *VolatilityFormatter) SaveCalibration(w io.Writer) error {
	snapshot, err := f.Snapshot()
	if err != nil {
		return err
	}
	return model.EncodeState(w, snapshot)
}

// LoadCalibration reads a calibration snapshot from r and restores it.
func (f *VolatilityFormatter) LoadCalibration(r io.Reader) error {
	var snapshot CalibrationSnapshot
	if err := model.DecodeState(r, &snapshot); err != nil {
		return err
	}
	return f.Restore(&snapshot)
}

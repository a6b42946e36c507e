// Package preprocessing implements the calibrate-once transformers used by
// the dataset formatters: zero-mean/unit-variance scaling for real-valued
// columns and dense integer coding for categorical columns.
package preprocessing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/Thierrix/ml-project-2-armageddon/core/model"
	"github.com/Thierrix/ml-project-2-armageddon/pkg/errors"
)

// StandardScaler scales each feature column to zero mean and unit variance.
// Statistics are computed per column by Fit; Transform and InverseTransform
// apply them to any matrix with the same feature count.
//
// A StandardScaler is not safe for concurrent use.
type StandardScaler struct {
	model.BaseCalibrator

	// Mean holds the per-feature means.
	Mean []float64

	// Scale holds the per-feature standard deviations.
	Scale []float64

	// NFeatures is the number of features seen at Fit time.
	NFeatures int
}

// NewStandardScaler creates an uncalibrated StandardScaler.
//
// Example:
//
//	scaler := preprocessing.NewStandardScaler()
//	err := scaler.Fit(X)
//	XScaled, err := scaler.Transform(X)
func NewStandardScaler() *StandardScaler {
	return &StandardScaler{}
}

// Fit computes per-column mean and standard deviation from training data.
// Columns with near-zero variance get a scale of 1 to avoid division by
// zero.
func (s *StandardScaler) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.Wrap(errors.ErrEmptyData, "StandardScaler.Fit")
	}

	s.NFeatures = c
	s.Mean = make([]float64, c)
	s.Scale = make([]float64, c)

	for j := 0; j < c; j++ {
		sum := 0.0
		for i := 0; i < r; i++ {
			sum += X.At(i, j)
		}
		s.Mean[j] = sum / float64(r)
	}

	for j := 0; j < c; j++ {
		sumSquares := 0.0
		for i := 0; i < r; i++ {
			diff := X.At(i, j) - s.Mean[j]
			sumSquares += diff * diff
		}
		variance := sumSquares / float64(r)
		s.Scale[j] = math.Sqrt(variance)

		if math.Abs(s.Scale[j]) < 1e-8 {
			s.Scale[j] = 1.0
		}
	}

	s.SetCalibrated()
	return nil
}

// Transform standardizes X with the calibrated statistics.
func (s *StandardScaler) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !s.IsCalibrated() {
		return nil, errors.NewNotCalibratedError("StandardScaler", "Transform")
	}

	r, c := X.Dims()
	if c != s.NFeatures {
		return nil, errors.NewDimensionError("StandardScaler.Transform", s.NFeatures, c, 1)
	}

	result := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			result.Set(i, j, (X.At(i, j)-s.Mean[j])/s.Scale[j])
		}
	}

	return result, nil
}

// FitTransform fits on X and returns the transformed X.
func (s *StandardScaler) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// InverseTransform restores standardized values to the original scale.
func (s *StandardScaler) InverseTransform(X mat.Matrix) (mat.Matrix, error) {
	if !s.IsCalibrated() {
		return nil, errors.NewNotCalibratedError("StandardScaler", "InverseTransform")
	}

	r, c := X.Dims()
	if c != s.NFeatures {
		return nil, errors.NewDimensionError("StandardScaler.InverseTransform", s.NFeatures, c, 1)
	}

	result := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			result.Set(i, j, X.At(i, j)*s.Scale[j]+s.Mean[j])
		}
	}

	return result, nil
}

// String returns a short description of the scaler.
func (s *StandardScaler) String() string {
	if !s.IsCalibrated() {
		return "StandardScaler(uncalibrated)"
	}
	return fmt.Sprintf("StandardScaler(n_features=%d)", s.NFeatures)
}

// Package metrics provides regression metrics for scoring formatted
// predictions against observed targets, both in the original scale.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/Thierrix/ml-project-2-armageddon/pkg/errors"
)

// MSE computes the mean squared error.
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("MSE", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("MSE", n, yPred.Len(), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}

	return sum / float64(n), nil
}

// RMSE computes the root mean squared error.
func RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE computes the mean absolute error.
func MAE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("MAE", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("MAE", n, yPred.Len(), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(yTrue.AtVec(i) - yPred.AtVec(i))
	}

	return sum / float64(n), nil
}

// R2Score computes the coefficient of determination. A constant yTrue gives
// an ill-defined score; that case returns a ValueError.
func R2Score(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("R2Score", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("R2Score", n, yPred.Len(), 0)
	}

	var meanTrue float64
	for i := 0; i < n; i++ {
		meanTrue += yTrue.AtVec(i)
	}
	meanTrue /= float64(n)

	var ssRes, ssTot float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		ssRes += diff * diff
		dev := yTrue.AtVec(i) - meanTrue
		ssTot += dev * dev
	}

	if ssTot == 0 {
		return 0, errors.NewValueError("R2Score", "constant target makes R2 ill-defined")
	}

	return 1 - ssRes/ssTot, nil
}

// FloatsToVec converts a float column into a vector for scoring.
func FloatsToVec(values []float64) *mat.VecDense {
	if len(values) == 0 {
		return &mat.VecDense{}
	}
	return mat.NewVecDense(len(values), append([]float64(nil), values...))
}

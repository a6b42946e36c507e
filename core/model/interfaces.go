// Package model provides the shared calibration-state primitive and the
// interfaces implemented by the preprocessing transformers.
package model

import (
	"gonum.org/v1/gonum/mat"
)

// Transformer is the interface for numeric column transformations.
type Transformer interface {
	// Fit learns the transform parameters from training data.
	Fit(X mat.Matrix) error

	// Transform applies the learned parameters.
	Transform(X mat.Matrix) (mat.Matrix, error)

	// FitTransform fits on X and transforms the same X.
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}

// InvertibleTransformer is a Transformer whose effect can be reversed,
// restoring values to their original scale.
type InvertibleTransformer interface {
	Transformer

	// InverseTransform maps transformed values back to the original scale.
	InverseTransform(X mat.Matrix) (mat.Matrix, error)
}

// LabelTransformer is the interface for categorical label encoding.
type LabelTransformer interface {
	// Fit learns the label vocabulary from training data.
	Fit(labels []string) error

	// Transform maps labels to their integer codes.
	Transform(labels []string) ([]int, error)

	// InverseTransform maps integer codes back to labels.
	InverseTransform(codes []int) ([]string, error)
}

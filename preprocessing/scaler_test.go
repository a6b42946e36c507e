package preprocessing

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/Thierrix/ml-project-2-armageddon/pkg/errors"
)

func TestStandardScalerFitTransform(t *testing.T) {
	tests := []struct {
		name      string
		X         *mat.Dense
		wantMean  []float64
		wantScale []float64
	}{
		{
			name: "two features",
			X: mat.NewDense(4, 2, []float64{
				1, 10,
				2, 20,
				3, 30,
				4, 40,
			}),
			wantMean:  []float64{2.5, 25},
			wantScale: []float64{math.Sqrt(1.25), math.Sqrt(125)},
		},
		{
			name: "constant feature gets unit scale",
			X: mat.NewDense(3, 2, []float64{
				7, 1,
				7, 2,
				7, 3,
			}),
			wantMean:  []float64{7, 2},
			wantScale: []float64{1, math.Sqrt(2.0 / 3.0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scaler := NewStandardScaler()
			if err := scaler.Fit(tt.X); err != nil {
				t.Fatalf("Fit() error = %v", err)
			}

			for j := range tt.wantMean {
				if math.Abs(scaler.Mean[j]-tt.wantMean[j]) > 1e-10 {
					t.Errorf("Mean[%d] = %v, want %v", j, scaler.Mean[j], tt.wantMean[j])
				}
				if math.Abs(scaler.Scale[j]-tt.wantScale[j]) > 1e-10 {
					t.Errorf("Scale[%d] = %v, want %v", j, scaler.Scale[j], tt.wantScale[j])
				}
			}

			scaled, err := scaler.Transform(tt.X)
			if err != nil {
				t.Fatalf("Transform() error = %v", err)
			}
			r, c := scaled.Dims()
			for j := 0; j < c; j++ {
				var sum float64
				for i := 0; i < r; i++ {
					sum += scaled.At(i, j)
				}
				if math.Abs(sum/float64(r)) > 1e-10 {
					t.Errorf("column %d mean after transform = %v, want 0", j, sum/float64(r))
				}
			}
		})
	}
}

func TestStandardScalerRoundTrip(t *testing.T) {
	X := mat.NewDense(5, 1, []float64{0.1, 0.25, 0.15, 0.4, 0.3})

	scaler := NewStandardScaler()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	restored, err := scaler.InverseTransform(scaled)
	if err != nil {
		t.Fatalf("InverseTransform() error = %v", err)
	}

	for i := 0; i < 5; i++ {
		if math.Abs(restored.At(i, 0)-X.At(i, 0)) > 1e-12 {
			t.Errorf("round trip row %d = %v, want %v", i, restored.At(i, 0), X.At(i, 0))
		}
	}
}

func TestStandardScalerDeterminism(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})

	scaler := NewStandardScaler()
	if err := scaler.Fit(X); err != nil {
		t.Fatal(err)
	}
	first, err := scaler.Transform(X)
	if err != nil {
		t.Fatal(err)
	}
	second, err := scaler.Transform(X)
	if err != nil {
		t.Fatal(err)
	}

	if !mat.Equal(first, second) {
		t.Error("transforming the same data twice should be identical")
	}
}

func TestStandardScalerErrors(t *testing.T) {
	scaler := NewStandardScaler()

	if _, err := scaler.Transform(mat.NewDense(1, 1, []float64{1})); err == nil {
		t.Error("Transform before Fit should error")
	} else {
		var notCal *errors.NotCalibratedError
		if !errors.As(err, &notCal) {
			t.Errorf("error = %T, want *NotCalibratedError", err)
		}
	}

	if err := scaler.Fit(&mat.Dense{}); !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("Fit on empty matrix error = %v, want ErrEmptyData", err)
	}

	if err := scaler.Fit(mat.NewDense(2, 3, nil)); err != nil {
		t.Fatal(err)
	}
	if _, err := scaler.Transform(mat.NewDense(2, 2, nil)); err == nil {
		t.Error("feature count mismatch should error")
	} else {
		var dimErr *errors.DimensionError
		if !errors.As(err, &dimErr) {
			t.Errorf("error = %T, want *DimensionError", err)
		}
	}
}

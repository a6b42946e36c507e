// Package diagnostics renders quick sanity-check plots of columns before and
// after scaling, so calibration mistakes show up in an experiment's output
// directory rather than in its loss curves.
package diagnostics

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Thierrix/ml-project-2-armageddon/dataframe"
	"github.com/Thierrix/ml-project-2-armageddon/pkg/errors"
)

// ColumnHistogram writes a histogram of a float column to path. The image
// format follows the path extension (png, pdf, svg).
func ColumnHistogram(df *dataframe.Frame, column string, bins int, path string) error {
	values, err := df.Floats(column)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return errors.Wrap(errors.ErrEmptyData, "ColumnHistogram")
	}

	p := plot.New()
	p.Title.Text = column
	p.X.Label.Text = column
	p.Y.Label.Text = "count"

	hist, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return errors.Wrap(err, "ColumnHistogram")
	}
	p.Add(hist)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, "ColumnHistogram")
	}
	return nil
}

// ScalingComparison writes side-by-side-styled histograms of the same column
// taken from the raw and transformed frames, overlaid on one plot.
func ScalingComparison(raw, transformed *dataframe.Frame, column string, bins int, path string) error {
	rawValues, err := raw.Floats(column)
	if err != nil {
		return err
	}
	scaledValues, err := transformed.Floats(column)
	if err != nil {
		return err
	}
	if len(rawValues) == 0 || len(scaledValues) == 0 {
		return errors.Wrap(errors.ErrEmptyData, "ScalingComparison")
	}

	p := plot.New()
	p.Title.Text = column + " before/after scaling"
	p.Y.Label.Text = "count"

	rawHist, err := plotter.NewHist(plotter.Values(rawValues), bins)
	if err != nil {
		return errors.Wrap(err, "ScalingComparison")
	}
	rawHist.FillColor = nil

	scaledHist, err := plotter.NewHist(plotter.Values(scaledValues), bins)
	if err != nil {
		return errors.Wrap(err, "ScalingComparison")
	}

	p.Add(rawHist, scaledHist)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, "ScalingComparison")
	}
	return nil
}

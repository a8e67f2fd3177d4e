package monitor

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/inkline-data/sketch.trace/internal/vision"
)

// PlotCurves renders the ordered curve list to a PNG. The Y axis is
// inverted so the plot matches image orientation (origin top-left).
func PlotCurves(curves []vision.Curve, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x (normalized)"
	p.Y.Label.Text = "y (normalized)"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	for i, c := range curves {
		pts := make(plotter.XYs, len(c))
		for j, pt := range c {
			pts[j].X = pt.X
			pts[j].Y = 1 - pt.Y
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("failed to build line for curve %d: %w", i, err)
		}
		line.Width = vg.Points(1)
		p.Add(line)
	}

	if err := p.Save(8*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save curve plot: %w", err)
	}
	return nil
}

package monitor

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/inkline-data/sketch.trace/internal/vision"
)

// WriteReport writes a standalone HTML report for a vectorize run: a
// scatter of all curve points colored by drawing order, and a bar
// chart of per-curve arc lengths. Both live on one page so the
// operator can sanity-check an image before letting the drawer loose
// on a live window.
func WriteReport(curves []vision.Curve, runID, path string) error {
	points := make([]opts.ScatterData, 0, 1024)
	for i, c := range curves {
		for _, p := range c {
			points = append(points, opts.ScatterData{Value: []interface{}{p.X, 1 - p.Y, i}})
		}
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "sketch.trace report", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: "Traced curves", Subtitle: fmt.Sprintf("%s curves=%d points=%d", runID, len(curves), len(points))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: 0, Max: 1, Name: "x"}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: 1, Name: "y"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(len(curves)),
			InRange:    &opts.VisualMapInRange{Color: []string{"#31688e", "#35b779", "#fde725"}},
		}),
	)
	scatter.AddSeries("points", points, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}))

	lengths := make([]opts.BarData, len(curves))
	labels := make([]string, len(curves))
	for i, c := range curves {
		lengths[i] = opts.BarData{Value: c.ArcLength()}
		labels[i] = fmt.Sprintf("%d", i)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: "Curve arc lengths", Subtitle: "descending drawing order"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels)
	bar.AddSeries("arc length", lengths)

	page := components.NewPage()
	page.AddCharts(scatter, bar)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report %q: %w", path, err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

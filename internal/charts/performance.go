// internal/charts/performance.go
package charts

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ssantiago/sales-analytics/internal/models"
)

// segmentSeriesOrder fixes legend order and series colors.
var segmentSeriesOrder = []models.ValueSegment{
	models.ValueSegmentPremium,
	models.ValueSegmentValuable,
	models.ValueSegmentRegular,
	models.ValueSegmentLowValue,
}

// RenderValueSegmentScatter draws order count against average order value,
// one series per customer value segment.
func RenderValueSegmentScatter(metrics []models.CustomerMetrics, path string) error {
	if len(metrics) == 0 {
		return fmt.Errorf("no customer metrics to render")
	}

	bySegment := make(map[models.ValueSegment]plotter.XYs)
	for _, m := range metrics {
		bySegment[m.Segment] = append(bySegment[m.Segment], plotter.XY{
			X: float64(m.OrderCount),
			Y: m.AvgOrderValue,
		})
	}

	p := plot.New()
	p.Title.Text = "Average Order Value vs Order Frequency"
	p.X.Label.Text = "Number of Orders"
	p.Y.Label.Text = "Average Order Value ($)"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for i, segment := range segmentSeriesOrder {
		points := bySegment[segment]
		if len(points) == 0 {
			continue
		}
		scatter, err := plotter.NewScatter(points)
		if err != nil {
			return fmt.Errorf("failed to build scatter series %s: %w", segment, err)
		}
		scatter.GlyphStyle.Color = seriesColor(i)
		scatter.GlyphStyle.Radius = vg.Points(4)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
		p.Legend.Add(string(segment), scatter)
	}

	if err := p.Save(12*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

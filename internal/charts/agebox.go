// internal/charts/agebox.go
package charts

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ssantiago/sales-analytics/internal/analytics"
	"github.com/ssantiago/sales-analytics/internal/models"
)

var boxSegmentOrder = []models.AgeSegment{
	models.AgeSegmentGenZ,
	models.AgeSegmentMillennials,
	models.AgeSegmentGenX,
	models.AgeSegmentBoomers,
}

// RenderAgeBoxPlot draws the age spread of each generational segment as a
// box plot. Users with a missing age contribute no value and so never
// appear.
func RenderAgeBoxPlot(users []models.User, path string) error {
	bySegment := make(map[models.AgeSegment]plotter.Values)
	for _, u := range users {
		if u.Age == nil {
			continue
		}
		segment := analytics.ClassifyAge(u.Age)
		bySegment[segment] = append(bySegment[segment], float64(*u.Age))
	}

	p := plot.New()
	p.Title.Text = "Age Distribution by Segment"
	p.Y.Label.Text = "Age"

	names := make([]string, 0, len(boxSegmentOrder))
	drawn := 0
	for _, segment := range boxSegmentOrder {
		values := bySegment[segment]
		if len(values) == 0 {
			continue
		}
		box, err := plotter.NewBoxPlot(vg.Points(50), float64(len(names)), values)
		if err != nil {
			return fmt.Errorf("failed to build box for %s: %w", segment, err)
		}
		box.FillColor = seriesColor(len(names))
		p.Add(box)
		names = append(names, string(segment))
		drawn++
	}

	if drawn == 0 {
		return fmt.Errorf("no ages to render")
	}

	p.NominalX(names...)

	if err := p.Save(12*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

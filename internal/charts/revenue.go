// internal/charts/revenue.go
package charts

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ssantiago/sales-analytics/internal/models"
)

// RenderRevenueByCategory draws the revenue potential of each category as a
// bar chart. Input order is preserved, so the bars arrive already ranked.
func RenderRevenueByCategory(summaries []models.CategorySummary, path string) error {
	if len(summaries) == 0 {
		return fmt.Errorf("no category summaries to render")
	}

	values := make(plotter.Values, len(summaries))
	names := make([]string, len(summaries))
	for i, s := range summaries {
		values[i] = s.RevenuePotential
		names[i] = s.Category
	}

	p := plot.New()
	p.Title.Text = "Revenue Potential by Category"
	p.Y.Label.Text = "Revenue Potential ($)"

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return fmt.Errorf("failed to build bar chart: %w", err)
	}
	bars.Color = colorPrimary
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars)
	p.NominalX(names...)

	if err := p.Save(12*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

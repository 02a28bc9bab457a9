// internal/charts/segmentation.go
package charts

import (
	"fmt"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/ssantiago/sales-analytics/internal/models"
)

// RenderAgeSegmentPie draws the age-segment population shares as a pie
// chart. Slice labels carry the already-rounded percentages so the image
// agrees with the tabular output.
func RenderAgeSegmentPie(segments []models.AgeSegmentSummary, path string) error {
	if len(segments) == 0 {
		return fmt.Errorf("no age segments to render")
	}

	values := make([]chart.Value, 0, len(segments))
	for i, s := range segments {
		values = append(values, chart.Value{
			Value: float64(s.CustomerCount),
			Label: fmt.Sprintf("%s (%.1f%%)", s.Segment, s.Percentage),
			Style: chart.Style{FillColor: pieColor(i)},
		})
	}

	pie := chart.PieChart{
		Title:  "Customer Age Segmentation",
		Width:  1200,
		Height: 1200,
		Values: values,
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := pie.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("failed to render pie chart: %w", err)
	}
	return nil
}

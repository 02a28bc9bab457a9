// internal/charts/table.go
package charts

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ssantiago/sales-analytics/internal/models"
)

// RenderExecutiveSummary draws the KPI row and the top-products-by-rating
// table as a text panel on a hidden-axes canvas.
func RenderExecutiveSummary(summary models.ExecutiveSummary, topProducts []models.Product, path string) error {
	if summary.TotalProducts == 0 && summary.TotalCustomers == 0 && summary.TotalOrders == 0 {
		return fmt.Errorf("no summary data to render")
	}

	p := plot.New()
	p.Title.Text = "Executive Dashboard Summary"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	p.HideAxes()

	var xys plotter.XYs
	var texts []string

	cell := func(x, y float64, text string) {
		xys = append(xys, plotter.XY{X: x, Y: y})
		texts = append(texts, text)
	}

	// KPI row
	kpis := []struct {
		title string
		value string
	}{
		{"Total Revenue", fmt.Sprintf("$%.0f", summary.TotalRevenue)},
		{"Total Customers", fmt.Sprintf("%d", summary.TotalCustomers)},
		{"Total Orders", fmt.Sprintf("%d", summary.TotalOrders)},
		{"Avg Order Value", fmt.Sprintf("$%.0f", summary.AvgOrderValue)},
	}
	for i, kpi := range kpis {
		x := 0.05 + float64(i)*0.24
		cell(x, 0.92, kpi.value)
		cell(x, 0.87, kpi.title)
	}

	cell(0.05, 0.76, fmt.Sprintf("Top Category: %s", summary.TopCategory))
	cell(0.05, 0.71, fmt.Sprintf("Avg Customer Age: %.0f years", summary.AvgCustomerAge))
	cell(0.05, 0.66, fmt.Sprintf("Repeat Customers: %d", summary.RepeatCustomerCount))

	// Top products table
	cell(0.05, 0.55, fmt.Sprintf("Top %d Products by Rating", len(topProducts)))
	columns := []struct {
		x     float64
		title string
	}{
		{0.05, "Product Name"},
		{0.50, "Rating"},
		{0.65, "Price"},
		{0.80, "Category"},
	}
	for _, col := range columns {
		cell(col.x, 0.49, col.title)
	}
	for i, product := range topProducts {
		y := 0.43 - float64(i)*0.06
		cell(0.05, y, truncate(product.Title, 28))
		if product.Rating != nil {
			cell(0.50, y, fmt.Sprintf("%.2f", *product.Rating))
		}
		if product.Price != nil {
			cell(0.65, y, fmt.Sprintf("$%.0f", *product.Price))
		}
		cell(0.80, y, product.Category)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return fmt.Errorf("failed to build label grid: %w", err)
	}
	p.Add(labels)

	if err := p.Save(14*vg.Inch, 9*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

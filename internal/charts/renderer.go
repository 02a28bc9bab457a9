// internal/charts/renderer.go
package charts

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/ssantiago/sales-analytics/internal/analytics"
	"github.com/ssantiago/sales-analytics/internal/config"
	"github.com/ssantiago/sales-analytics/internal/models"
)

// Deterministic output file names, one per chart.
const (
	FileRevenueByCategory = "01_revenue_by_category.png"
	FileAgeSegmentPie     = "02_customer_segmentation.png"
	FileValueScatter      = "03_sales_performance.png"
	FileAgeBoxPlot        = "04_age_distribution.png"
	FileExecutiveSummary  = "05_executive_summary.png"
)

// Renderer produces the full static chart set from already-loaded rows.
type Renderer struct {
	outputDir   string
	topProducts int
}

func New(cfg config.ChartConfig) *Renderer {
	return &Renderer{
		outputDir:   cfg.OutputDir,
		topProducts: cfg.TopProducts,
	}
}

// RenderAll renders every chart, logging and skipping the ones that fail.
// Each chart is independent; one failure never blocks the rest. It returns
// the rendered and failed counts.
func (r *Renderer) RenderAll(products []models.Product, users []models.User, carts []models.Cart) (int, int) {
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		logrus.WithError(err).Error("Failed to create chart output directory")
		return 0, 5
	}

	categories := analytics.CategorySummaries(products)
	segments := analytics.AgeSegments(users)
	metrics := analytics.CustomerMetricsFromCarts(carts)
	summary := analytics.Executive(products, users, carts)
	top := analytics.TopProductsByRating(products, r.topProducts)

	jobs := []struct {
		file   string
		render func(path string) error
	}{
		{FileRevenueByCategory, func(path string) error {
			return RenderRevenueByCategory(categories, path)
		}},
		{FileAgeSegmentPie, func(path string) error {
			return RenderAgeSegmentPie(segments, path)
		}},
		{FileValueScatter, func(path string) error {
			return RenderValueSegmentScatter(metrics, path)
		}},
		{FileAgeBoxPlot, func(path string) error {
			return RenderAgeBoxPlot(users, path)
		}},
		{FileExecutiveSummary, func(path string) error {
			return RenderExecutiveSummary(summary, top, path)
		}},
	}

	rendered, failed := 0, 0
	for _, job := range jobs {
		path := filepath.Join(r.outputDir, job.file)
		if err := job.render(path); err != nil {
			logrus.WithFields(logrus.Fields{
				"chart": job.file,
				"error": err,
			}).Error("Chart rendering failed")
			failed++
			continue
		}
		logrus.WithField("chart", path).Info("Chart saved")
		rendered++
	}

	return rendered, failed
}

// OutputPath returns the path a chart file is written to.
func (r *Renderer) OutputPath(file string) string {
	return filepath.Join(r.outputDir, file)
}

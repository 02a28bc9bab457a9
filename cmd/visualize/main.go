// cmd/visualize/main.go
package main

import (
	"log"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ssantiago/sales-analytics/internal/analytics"
	"github.com/ssantiago/sales-analytics/internal/charts"
	"github.com/ssantiago/sales-analytics/internal/config"
	"github.com/ssantiago/sales-analytics/internal/report"
	"github.com/ssantiago/sales-analytics/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Open database; closed unconditionally on exit
	store, err := storage.Open(cfg.Storage)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer store.Close()

	products, err := store.LoadProducts()
	if err != nil {
		report.PrintFailureBanner("Visualization", err)
		os.Exit(1)
	}
	users, err := store.LoadUsers()
	if err != nil {
		report.PrintFailureBanner("Visualization", err)
		os.Exit(1)
	}
	carts, err := store.LoadCarts()
	if err != nil {
		report.PrintFailureBanner("Visualization", err)
		os.Exit(1)
	}
	items, err := store.LoadCartItems()
	if err != nil {
		report.PrintFailureBanner("Visualization", err)
		os.Exit(1)
	}

	fields := logrus.Fields{
		"products":   len(products),
		"users":      len(users),
		"carts":      len(carts),
		"cart_items": len(items),
	}
	if run, err := store.LatestRun(); err == nil {
		fields["run_id"] = run.RunID
	}
	logrus.WithFields(fields).Info("Data loaded")

	renderer := charts.New(cfg.Charts)
	rendered, failed := renderer.RenderAll(products, users, carts)

	summary := analytics.Executive(products, users, carts)
	metrics := analytics.CustomerMetricsFromCarts(carts)
	top := analytics.TopCustomers(metrics, cfg.Charts.TopCustomers)

	report.PrintVisualizationSummary(cfg.Charts.OutputDir, summary, top, rendered, failed)

	if rendered == 0 {
		os.Exit(1)
	}
}

// cmd/extract/main.go
package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ssantiago/sales-analytics/internal/config"
	"github.com/ssantiago/sales-analytics/internal/fetcher"
	"github.com/ssantiago/sales-analytics/internal/models"
	"github.com/ssantiago/sales-analytics/internal/normalize"
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

	client := fetcher.New(cfg.Source)
	ctx := context.Background()

	run := models.ExtractionRun{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
	}
	extractionDate := run.StartedAt.Format("2006-01-02")

	logrus.WithFields(logrus.Fields{
		"run_id": run.RunID,
		"source": cfg.Source.BaseURL,
	}).Info("Starting sales data extraction")

	products := extractProducts(ctx, client, extractionDate)
	users := extractUsers(ctx, client, extractionDate)
	carts, items := extractCarts(ctx, client, extractionDate)

	run.ProductCount = len(products)
	run.UserCount = len(users)
	run.CartCount = len(carts)
	run.CartItemCount = len(items)

	// Storage failures abort the stage: the visualization stage depends on
	// the persisted rows.
	if err := writeCSVFiles(cfg.Storage.DataDir, products, users, carts, items); err != nil {
		report.PrintFailureBanner("Data extraction", err)
		os.Exit(1)
	}
	if err := store.Replace(products, users, carts, items, run); err != nil {
		report.PrintFailureBanner("Data extraction", err)
		os.Exit(1)
	}

	report.PrintExtractionSummary(cfg.Storage.DataDir, cfg.Storage.DBPath, products, users, carts, items)
}

func extractProducts(ctx context.Context, client *fetcher.Client, extractionDate string) []models.Product {
	raws, err := client.Products(ctx)
	if err != nil {
		logrus.WithError(err).Error("Products fetch failed; continuing without the collection")
		return nil
	}

	products := make([]models.Product, 0, len(raws))
	flagged := 0
	for _, raw := range raws {
		p := normalize.Product(raw, extractionDate)
		if err := normalize.ValidateRow(&p); err != nil {
			flagged++
		}
		products = append(products, p)
	}
	logRows("products", len(products), flagged)
	return products
}

func extractUsers(ctx context.Context, client *fetcher.Client, extractionDate string) []models.User {
	raws, err := client.Users(ctx)
	if err != nil {
		logrus.WithError(err).Error("Users fetch failed; continuing without the collection")
		return nil
	}

	users := make([]models.User, 0, len(raws))
	flagged := 0
	for _, raw := range raws {
		u := normalize.User(raw, extractionDate)
		if err := normalize.ValidateRow(&u); err != nil {
			flagged++
		}
		users = append(users, u)
	}
	logRows("users", len(users), flagged)
	return users
}

func extractCarts(ctx context.Context, client *fetcher.Client, extractionDate string) ([]models.Cart, []models.CartItem) {
	raws, err := client.Carts(ctx)
	if err != nil {
		logrus.WithError(err).Error("Carts fetch failed; continuing without the collection")
		return nil, nil
	}

	carts := make([]models.Cart, 0, len(raws))
	var items []models.CartItem
	flagged, dropped := 0, 0
	for _, raw := range raws {
		c := normalize.Cart(raw, extractionDate)
		if err := normalize.ValidateRow(&c); err != nil {
			flagged++
		}
		carts = append(carts, c)

		lineItems, droppedItems := normalize.CartItems(raw)
		dropped += droppedItems
		items = append(items, lineItems...)
	}
	logRows("carts", len(carts), flagged)
	logrus.WithFields(logrus.Fields{
		"collection": "cart_items",
		"rows":       len(items),
		"dropped":    dropped,
	}).Info("Collection normalized")
	return carts, items
}

func writeCSVFiles(dataDir string, products []models.Product, users []models.User, carts []models.Cart, items []models.CartItem) error {
	if err := storage.WriteProductsCSV(filepath.Join(dataDir, "products.csv"), products); err != nil {
		return err
	}
	if err := storage.WriteUsersCSV(filepath.Join(dataDir, "users.csv"), users); err != nil {
		return err
	}
	if err := storage.WriteCartsCSV(filepath.Join(dataDir, "carts.csv"), carts); err != nil {
		return err
	}
	return storage.WriteCartItemsCSV(filepath.Join(dataDir, "cart_items.csv"), items)
}

func logRows(collection string, rows, flagged int) {
	logrus.WithFields(logrus.Fields{
		"collection": collection,
		"rows":       rows,
		"flagged":    flagged,
	}).Info("Collection normalized")
}

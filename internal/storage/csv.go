// internal/storage/csv.go
package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ssantiago/sales-analytics/internal/models"
)

// Fixed export columns, one header list per entity file. Missing numeric
// values are written as empty cells.

var productColumns = []string{
	"id", "title", "description", "price", "discount_percentage", "rating",
	"stock", "brand", "category", "thumbnail", "revenue_potential",
	"discounted_price", "extraction_date",
}

var userColumns = []string{
	"id", "first_name", "last_name", "age", "gender", "email", "phone",
	"birth_date", "address", "city", "state", "postal_code", "latitude",
	"longitude", "age_segment", "extraction_date",
}

var cartColumns = []string{
	"id", "user_id", "total", "discounted_total", "total_products",
	"total_quantity", "total_savings", "savings_percentage", "extraction_date",
}

var cartItemColumns = []string{
	"cart_id", "user_id", "product_id", "product_title", "price", "quantity",
	"total", "discount_percentage", "discounted_price",
}

func WriteProductsCSV(path string, products []models.Product) error {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			strconv.Itoa(p.ID), p.Title, p.Description, fmtFloat(p.Price),
			fmtFloat(p.DiscountPercentage), fmtFloat(p.Rating), fmtInt(p.Stock),
			p.Brand, p.Category, p.Thumbnail, fmtFloat(p.RevenuePotential),
			fmtFloat(p.DiscountedPrice), p.ExtractionDate,
		})
	}
	return writeCSV(path, productColumns, rows)
}

func WriteUsersCSV(path string, users []models.User) error {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			strconv.Itoa(u.ID), u.FirstName, u.LastName, fmtInt(u.Age),
			u.Gender, u.Email, u.Phone, u.BirthDate, u.Address, u.City,
			u.State, u.PostalCode, fmtFloat(u.Latitude), fmtFloat(u.Longitude),
			string(u.AgeSegment), u.ExtractionDate,
		})
	}
	return writeCSV(path, userColumns, rows)
}

func WriteCartsCSV(path string, carts []models.Cart) error {
	rows := make([][]string, 0, len(carts))
	for _, c := range carts {
		rows = append(rows, []string{
			strconv.Itoa(c.ID), strconv.Itoa(c.UserID), fmtFloat(c.Total),
			fmtFloat(c.DiscountedTotal), fmtInt(c.TotalProducts),
			fmtInt(c.TotalQuantity), fmtFloat(c.TotalSavings),
			fmtFloat(c.SavingsPercentage), c.ExtractionDate,
		})
	}
	return writeCSV(path, cartColumns, rows)
}

func WriteCartItemsCSV(path string, items []models.CartItem) error {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			strconv.Itoa(item.CartID), strconv.Itoa(item.UserID),
			strconv.Itoa(item.ProductID), item.ProductTitle,
			fmtFloat(item.Price), fmtInt(item.Quantity), fmtFloat(item.Total),
			fmtFloat(item.DiscountPercentage), fmtFloat(item.DiscountedPrice),
		})
	}
	return writeCSV(path, cartItemColumns, rows)
}

func writeCSV(path string, header []string, rows [][]string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	return nil
}

func fmtFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func fmtInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

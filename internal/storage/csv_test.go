// internal/storage/csv_test.go
package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssantiago/sales-analytics/internal/config"
	"github.com/ssantiago/sales-analytics/internal/models"
)

func testStorageConfig(dbPath string) config.StorageConfig {
	return config.StorageConfig{
		DataDir:  filepath.Dir(dbPath),
		DBPath:   dbPath,
		LogLevel: "silent",
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteProductsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.csv")
	products := []models.Product{
		{
			ID: 1, Title: "Mascara", Category: "beauty",
			Price: fp(9.99), Rating: fp(4.5), Stock: ip(50),
			RevenuePotential: fp(499.5), ExtractionDate: "2026-08-29",
		},
		{ID: 2, Title: "No Numbers", Category: "misc", ExtractionDate: "2026-08-29"},
	}

	require.NoError(t, WriteProductsCSV(path, products))
	rows := readCSV(t, path)
	require.Len(t, rows, 3)

	assert.Equal(t, productColumns, rows[0])
	assert.Equal(t, []string{
		"1", "Mascara", "", "9.99", "", "4.5", "50", "", "beauty", "",
		"499.5", "", "2026-08-29",
	}, rows[1])

	// Missing numerics are empty cells, never zeroes.
	assert.Equal(t, "", rows[2][3])
	assert.Equal(t, "", rows[2][6])
}

func TestWriteUsersCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.csv")
	users := []models.User{
		{
			ID: 1, FirstName: "Emily", LastName: "Johnson", Age: ip(28),
			Gender: "female", City: "Phoenix",
			AgeSegment:     models.AgeSegmentMillennials,
			ExtractionDate: "2026-08-29",
		},
	}

	require.NoError(t, WriteUsersCSV(path, users))
	rows := readCSV(t, path)
	require.Len(t, rows, 2)

	assert.Equal(t, userColumns, rows[0])
	assert.Equal(t, "Emily", rows[1][1])
	assert.Equal(t, "28", rows[1][3])
	assert.Equal(t, "Millennials (25-35)", rows[1][14])
}

func TestWriteCartsAndItemsCSV(t *testing.T) {
	dir := t.TempDir()

	carts := []models.Cart{
		{
			ID: 1, UserID: 33, Total: fp(2000), DiscountedTotal: fp(1800),
			TotalProducts: ip(5), TotalQuantity: ip(10),
			TotalSavings: fp(200), SavingsPercentage: fp(10),
			ExtractionDate: "2026-08-29",
		},
	}
	items := []models.CartItem{
		{
			CartID: 1, UserID: 33, ProductID: 61, ProductTitle: "Knife",
			Price: fp(30), Quantity: ip(2), Total: fp(60),
			DiscountPercentage: fp(5), DiscountedPrice: fp(57),
		},
	}

	cartsPath := filepath.Join(dir, "carts.csv")
	itemsPath := filepath.Join(dir, "cart_items.csv")
	require.NoError(t, WriteCartsCSV(cartsPath, carts))
	require.NoError(t, WriteCartItemsCSV(itemsPath, items))

	cartRows := readCSV(t, cartsPath)
	require.Len(t, cartRows, 2)
	assert.Equal(t, cartColumns, cartRows[0])
	assert.Equal(t, []string{"1", "33", "2000", "1800", "5", "10", "200", "10", "2026-08-29"}, cartRows[1])

	itemRows := readCSV(t, itemsPath)
	require.Len(t, itemRows, 2)
	assert.Equal(t, cartItemColumns, itemRows[0])
	assert.Equal(t, []string{"1", "33", "61", "Knife", "30", "2", "60", "5", "57"}, itemRows[1])
}

func TestWriteCSVEmptyStillWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.csv")
	require.NoError(t, WriteProductsCSV(path, nil))

	rows := readCSV(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, productColumns, rows[0])
}

func TestWriteCSVCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "products.csv")
	require.NoError(t, WriteProductsCSV(path, nil))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

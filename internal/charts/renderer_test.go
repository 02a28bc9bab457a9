// internal/charts/renderer_test.go
package charts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssantiago/sales-analytics/internal/config"
	"github.com/ssantiago/sales-analytics/internal/models"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

func sampleData() ([]models.Product, []models.User, []models.Cart) {
	products := []models.Product{
		{ID: 1, Title: "Mascara", Category: "beauty", Price: fp(9.99), Stock: ip(50), Rating: fp(4.5)},
		{ID: 2, Title: "Sofa", Category: "furniture", Price: fp(499), Stock: ip(5), Rating: fp(4.1)},
		{ID: 3, Title: "Serum", Category: "beauty", Price: fp(19.99), Stock: ip(30), Rating: fp(4.8)},
	}
	users := []models.User{
		{ID: 1, Age: ip(22)},
		{ID: 2, Age: ip(30)},
		{ID: 3, Age: ip(44)},
		{ID: 4, Age: ip(61)},
	}
	carts := []models.Cart{
		{ID: 1, UserID: 1, Total: fp(900), TotalQuantity: ip(3)},
		{ID: 2, UserID: 1, Total: fp(900), TotalQuantity: ip(2)},
		{ID: 3, UserID: 2, Total: fp(120), TotalQuantity: ip(1)},
	}
	return products, users, carts
}

func TestRenderAll(t *testing.T) {
	dir := t.TempDir()
	renderer := New(config.ChartConfig{OutputDir: dir, TopCustomers: 10, TopProducts: 5})

	products, users, carts := sampleData()
	rendered, failed := renderer.RenderAll(products, users, carts)

	assert.Equal(t, 5, rendered)
	assert.Zero(t, failed)

	for _, file := range []string{
		FileRevenueByCategory,
		FileAgeSegmentPie,
		FileValueScatter,
		FileAgeBoxPlot,
		FileExecutiveSummary,
	} {
		info, err := os.Stat(filepath.Join(dir, file))
		require.NoError(t, err, file)
		assert.Greater(t, info.Size(), int64(0), file)
	}
}

func TestRenderAllEmptyDataContinues(t *testing.T) {
	dir := t.TempDir()
	renderer := New(config.ChartConfig{OutputDir: dir, TopCustomers: 10, TopProducts: 5})

	// Every chart fails on fully empty data, but the loop still visits all
	// of them instead of aborting on the first.
	rendered, failed := renderer.RenderAll(nil, nil, nil)
	assert.Zero(t, rendered)
	assert.Equal(t, 5, failed)
}

func TestRenderRevenueByCategoryNoData(t *testing.T) {
	err := RenderRevenueByCategory(nil, filepath.Join(t.TempDir(), "out.png"))
	assert.Error(t, err)
}

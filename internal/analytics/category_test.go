// internal/analytics/category_test.go
package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssantiago/sales-analytics/internal/models"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

func product(category string, price float64, stock int, rating float64) models.Product {
	return models.Product{
		Category: category,
		Price:    fp(price),
		Stock:    ip(stock),
		Rating:   fp(rating),
	}
}

func TestCategorySummaries(t *testing.T) {
	products := []models.Product{
		product("A", 10, 5, 4.0),
		product("A", 20, 1, 3.0),
		product("B", 5, 10, 5.0),
	}

	summaries := CategorySummaries(products)
	require.Len(t, summaries, 2)

	// A leads: 10*5 + 20*1 = 70 beats B's 5*10 = 50.
	a := summaries[0]
	assert.Equal(t, "A", a.Category)
	assert.Equal(t, 2, a.ProductCount)
	assert.Equal(t, 15.0, a.AvgPrice)
	assert.Equal(t, 3.5, a.AvgRating)
	assert.Equal(t, 6, a.TotalStock)
	assert.Equal(t, 70.0, a.RevenuePotential)

	b := summaries[1]
	assert.Equal(t, "B", b.Category)
	assert.Equal(t, 1, b.ProductCount)
	assert.Equal(t, 5.0, b.AvgPrice)
	assert.Equal(t, 5.0, b.AvgRating)
	assert.Equal(t, 10, b.TotalStock)
	assert.Equal(t, 50.0, b.RevenuePotential)
}

func TestCategorySummariesRevenueFromRawRows(t *testing.T) {
	// Revenue must be the sum of per-row price*stock, not mean price times
	// total stock: with uneven stock those disagree.
	products := []models.Product{
		product("skewed", 100, 1, 4.0),
		product("skewed", 1, 100, 4.0),
	}

	summaries := CategorySummaries(products)
	require.Len(t, summaries, 1)
	assert.Equal(t, 200.0, summaries[0].RevenuePotential)
	// mean price 50.5 * total stock 101 would be 5100.5
	assert.NotEqual(t, 5100.5, summaries[0].RevenuePotential)
}

func TestCategorySummariesMissingValues(t *testing.T) {
	products := []models.Product{
		{Category: "C", Price: fp(10), Stock: ip(2), Rating: nil},
		{Category: "C", Price: nil, Stock: ip(5), Rating: fp(4.0)},
	}

	summaries := CategorySummaries(products)
	require.Len(t, summaries, 1)

	c := summaries[0]
	assert.Equal(t, 2, c.ProductCount)
	// Means divide only by the rows that actually carried a value.
	assert.Equal(t, 10.0, c.AvgPrice)
	assert.Equal(t, 4.0, c.AvgRating)
	assert.Equal(t, 7, c.TotalStock)
	// Only the row with both price and stock contributes revenue.
	assert.Equal(t, 20.0, c.RevenuePotential)
}

func TestCategorySummariesTieBreakByName(t *testing.T) {
	products := []models.Product{
		product("zeta", 10, 2, 4.0),
		product("alpha", 20, 1, 4.0),
	}

	summaries := CategorySummaries(products)
	require.Len(t, summaries, 2)
	assert.Equal(t, "alpha", summaries[0].Category)
	assert.Equal(t, "zeta", summaries[1].Category)
}

func TestCategorySummariesConservation(t *testing.T) {
	products := []models.Product{
		product("A", 3, 7, 1),
		product("B", 11, 13, 2),
		product("A", 5, 2, 3),
		product("B", 0.5, 40, 4),
	}

	var want float64
	for _, p := range products {
		want += *p.Price * float64(*p.Stock)
	}

	var got float64
	for _, s := range CategorySummaries(products) {
		got += s.RevenuePotential
	}
	assert.InDelta(t, want, got, 1e-9)
}

func TestCategorySummariesEmpty(t *testing.T) {
	assert.Empty(t, CategorySummaries(nil))
}

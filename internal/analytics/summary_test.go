// internal/analytics/summary_test.go
package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssantiago/sales-analytics/internal/models"
)

func TestExecutive(t *testing.T) {
	products := []models.Product{
		product("beauty", 10, 5, 4.0),
		product("furniture", 100, 10, 4.5),
	}
	users := []models.User{
		userAged(30),
		userAged(50),
		{Age: nil},
	}
	carts := []models.Cart{
		cart(1, 100, 1),
		cart(1, 300, 2),
		cart(2, 200, 1),
	}

	summary := Executive(products, users, carts)

	assert.Equal(t, 600.0, summary.TotalRevenue)
	assert.Equal(t, 3, summary.TotalCustomers)
	assert.Equal(t, 3, summary.TotalOrders)
	assert.Equal(t, 200.0, summary.AvgOrderValue)
	assert.Equal(t, 2, summary.TotalProducts)
	assert.Equal(t, 2, summary.TotalCategories)
	// furniture: 100*10 = 1000 beats beauty's 50.
	assert.Equal(t, "furniture", summary.TopCategory)
	// Missing age is excluded from the mean.
	assert.Equal(t, 40.0, summary.AvgCustomerAge)
	// Only user 1 has more than one cart.
	assert.Equal(t, 1, summary.RepeatCustomerCount)
}

func TestExecutiveEmptyInputs(t *testing.T) {
	summary := Executive(nil, nil, nil)

	assert.Zero(t, summary.TotalRevenue)
	assert.Zero(t, summary.AvgOrderValue)
	assert.Zero(t, summary.AvgCustomerAge)
	assert.Empty(t, summary.TopCategory)
}

func TestTopProductsByRating(t *testing.T) {
	products := []models.Product{
		{ID: 1, Rating: fp(4.2)},
		{ID: 2, Rating: fp(4.9)},
		{ID: 3, Rating: nil},
		{ID: 4, Rating: fp(4.9)},
		{ID: 5, Rating: fp(3.0)},
	}

	top := TopProductsByRating(products, 3)
	require.Len(t, top, 3)
	// Ties by rating resolve on id ascending; missing ratings sort last.
	assert.Equal(t, 2, top[0].ID)
	assert.Equal(t, 4, top[1].ID)
	assert.Equal(t, 1, top[2].ID)

	all := TopProductsByRating(products, 10)
	require.Len(t, all, 5)
	assert.Equal(t, 3, all[4].ID)
}

func TestTopProductsByRatingDoesNotMutateInput(t *testing.T) {
	products := []models.Product{
		{ID: 1, Rating: fp(1.0)},
		{ID: 2, Rating: fp(5.0)},
	}

	TopProductsByRating(products, 2)
	assert.Equal(t, 1, products[0].ID)
}

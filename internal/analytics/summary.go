// internal/analytics/summary.go
package analytics

import (
	"sort"

	"github.com/ssantiago/sales-analytics/internal/models"
)

// Executive reduces the raw rows and the category view to the scalar KPIs of
// the executive dashboard. No new business rules here: every figure is a
// plain reduction over rows or over an already-computed summary.
func Executive(products []models.Product, users []models.User, carts []models.Cart) models.ExecutiveSummary {
	summary := models.ExecutiveSummary{
		TotalCustomers: len(users),
		TotalOrders:    len(carts),
		TotalProducts:  len(products),
	}

	var revenueSum float64
	var revenueCount int
	for _, c := range carts {
		if c.Total != nil {
			revenueSum += *c.Total
			revenueCount++
		}
	}
	summary.TotalRevenue = round2(revenueSum)
	if revenueCount > 0 {
		summary.AvgOrderValue = round2(revenueSum / float64(revenueCount))
	}

	categories := CategorySummaries(products)
	summary.TotalCategories = len(categories)
	if len(categories) > 0 {
		summary.TopCategory = categories[0].Category
	}

	var ageSum float64
	var ageCount int
	for _, u := range users {
		if u.Age != nil {
			ageSum += float64(*u.Age)
			ageCount++
		}
	}
	if ageCount > 0 {
		summary.AvgCustomerAge = round1(ageSum / float64(ageCount))
	}

	summary.RepeatCustomerCount = repeatCustomers(carts)

	return summary
}

// TopProductsByRating ranks products by rating descending, id ascending on
// ties. Products with a missing rating sort last.
func TopProductsByRating(products []models.Product, n int) []models.Product {
	ranked := make([]models.Product, len(products))
	copy(ranked, products)

	sort.Slice(ranked, func(i, j int) bool {
		ri, rj := ranked[i].Rating, ranked[j].Rating
		switch {
		case ri == nil && rj == nil:
			return ranked[i].ID < ranked[j].ID
		case ri == nil:
			return false
		case rj == nil:
			return true
		case *ri != *rj:
			return *ri > *rj
		default:
			return ranked[i].ID < ranked[j].ID
		}
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// repeatCustomers counts distinct users with more than one cart.
func repeatCustomers(carts []models.Cart) int {
	orders := make(map[int]int)
	for _, c := range carts {
		orders[c.UserID]++
	}
	repeat := 0
	for _, n := range orders {
		if n > 1 {
			repeat++
		}
	}
	return repeat
}

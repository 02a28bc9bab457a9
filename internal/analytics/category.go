// internal/analytics/category.go
package analytics

import (
	"sort"

	"github.com/ssantiago/sales-analytics/internal/models"
)

// CategorySummaries partitions products by category and reduces each
// partition to count, mean price, mean rating, stock total and revenue
// potential. Means skip missing values entirely so the divisor only counts
// rows that contributed. Revenue potential is the sum of per-row
// price*stock, never a product of means: categories with uneven stock
// distributions would otherwise be misstated.
//
// Output is sorted by revenue potential descending, category name ascending
// on ties, for deterministic charts.
func CategorySummaries(products []models.Product) []models.CategorySummary {
	type accumulator struct {
		count       int
		priceSum    float64
		priceCount  int
		ratingSum   float64
		ratingCount int
		stock       int
		revenue     float64
	}

	groups := make(map[string]*accumulator)
	for _, p := range products {
		acc := groups[p.Category]
		if acc == nil {
			acc = &accumulator{}
			groups[p.Category] = acc
		}
		acc.count++
		if p.Price != nil {
			acc.priceSum += *p.Price
			acc.priceCount++
		}
		if p.Rating != nil {
			acc.ratingSum += *p.Rating
			acc.ratingCount++
		}
		if p.Stock != nil {
			acc.stock += *p.Stock
		}
		if p.Price != nil && p.Stock != nil {
			acc.revenue += *p.Price * float64(*p.Stock)
		}
	}

	summaries := make([]models.CategorySummary, 0, len(groups))
	for category, acc := range groups {
		summary := models.CategorySummary{
			Category:         category,
			ProductCount:     acc.count,
			TotalStock:       acc.stock,
			RevenuePotential: acc.revenue,
		}
		if acc.priceCount > 0 {
			summary.AvgPrice = round2(acc.priceSum / float64(acc.priceCount))
		}
		if acc.ratingCount > 0 {
			summary.AvgRating = round2(acc.ratingSum / float64(acc.ratingCount))
		}
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].RevenuePotential != summaries[j].RevenuePotential {
			return summaries[i].RevenuePotential > summaries[j].RevenuePotential
		}
		return summaries[i].Category < summaries[j].Category
	})

	return summaries
}

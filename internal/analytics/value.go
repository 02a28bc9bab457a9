// internal/analytics/value.go
package analytics

import (
	"sort"

	"github.com/ssantiago/sales-analytics/internal/models"
)

// valueRules is the customer value cascade as an ordered rule table, first
// match wins. Rule 3 deliberately mixes OR with the AND of the rules above
// it; a user satisfying rule 1 and rule 3 is Premium only. The thresholds
// are fixed business constants.
var valueRules = []struct {
	matches func(totalSpent float64, orderCount int) bool
	segment models.ValueSegment
}{
	{func(spent float64, orders int) bool { return spent >= 1500 && orders >= 3 }, models.ValueSegmentPremium},
	{func(spent float64, orders int) bool { return spent >= 800 && orders >= 2 }, models.ValueSegmentValuable},
	{func(spent float64, orders int) bool { return spent >= 400 || orders >= 2 }, models.ValueSegmentRegular},
	{func(spent float64, orders int) bool { return true }, models.ValueSegmentLowValue},
}

// ClassifyValue assigns the customer value segment for the given spend and
// order count.
func ClassifyValue(totalSpent float64, orderCount int) models.ValueSegment {
	for _, rule := range valueRules {
		if rule.matches(totalSpent, orderCount) {
			return rule.segment
		}
	}
	return models.ValueSegmentLowValue
}

// CustomerMetricsFromCarts groups carts by user and reduces each group to
// spend, order and item totals, then classifies the user. Missing cart
// totals are skipped by both the sum and the mean; order count still counts
// every cart. Output is ranked by total spent descending, user id ascending
// on ties.
func CustomerMetricsFromCarts(carts []models.Cart) []models.CustomerMetrics {
	type accumulator struct {
		spent      float64
		totalCount int
		orders     int
		items      int
	}

	groups := make(map[int]*accumulator)
	for _, c := range carts {
		acc := groups[c.UserID]
		if acc == nil {
			acc = &accumulator{}
			groups[c.UserID] = acc
		}
		acc.orders++
		if c.Total != nil {
			acc.spent += *c.Total
			acc.totalCount++
		}
		if c.TotalQuantity != nil {
			acc.items += *c.TotalQuantity
		}
	}

	metrics := make([]models.CustomerMetrics, 0, len(groups))
	for userID, acc := range groups {
		m := models.CustomerMetrics{
			UserID:     userID,
			TotalSpent: round2(acc.spent),
			OrderCount: acc.orders,
			TotalItems: acc.items,
		}
		if acc.totalCount > 0 {
			m.AvgOrderValue = round2(acc.spent / float64(acc.totalCount))
		}
		m.Segment = ClassifyValue(m.TotalSpent, m.OrderCount)
		metrics = append(metrics, m)
	}

	sort.Slice(metrics, func(i, j int) bool {
		if metrics[i].TotalSpent != metrics[j].TotalSpent {
			return metrics[i].TotalSpent > metrics[j].TotalSpent
		}
		return metrics[i].UserID < metrics[j].UserID
	})

	return metrics
}

// TopCustomers returns the first n customers of the ranking.
func TopCustomers(metrics []models.CustomerMetrics, n int) []models.CustomerMetrics {
	if n > len(metrics) {
		n = len(metrics)
	}
	return metrics[:n]
}

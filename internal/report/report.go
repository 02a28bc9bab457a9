// internal/report/report.go
package report

import (
	"fmt"
	"strings"

	"github.com/ssantiago/sales-analytics/internal/models"
)

// Console banners for the two batch runs, in the shape of the portfolio
// project's original output.

func rule(n int) string {
	return strings.Repeat("=", n)
}

func PrintExtractionSummary(dataDir, dbPath string, products []models.Product, users []models.User, carts []models.Cart, items []models.CartItem) {
	fmt.Println()
	fmt.Println(rule(60))
	fmt.Println("Data extraction completed successfully!")
	fmt.Println("\nFiles created:")
	fmt.Printf("   - %s/products.csv\n", dataDir)
	fmt.Printf("   - %s/users.csv\n", dataDir)
	fmt.Printf("   - %s/carts.csv\n", dataDir)
	fmt.Printf("   - %s/cart_items.csv\n", dataDir)
	fmt.Printf("   - %s\n", dbPath)

	fmt.Println("\nData Summary:")
	fmt.Printf("   - Products: %d items\n", len(products))
	fmt.Printf("   - Categories: %d\n", countCategories(products))
	if min, max, ok := priceRange(products); ok {
		fmt.Printf("   - Price range: $%.2f - $%.2f\n", min, max)
	}
	fmt.Printf("   - Users: %d customers\n", len(users))
	if min, max, ok := ageRange(users); ok {
		fmt.Printf("   - Age range: %d-%d years\n", min, max)
	}
	fmt.Printf("   - Carts: %d transactions\n", len(carts))
	fmt.Printf("   - Cart items: %d line items\n", len(items))
	fmt.Printf("   - Total sales: $%.2f\n", totalSales(carts))

	fmt.Println("\nReady for analysis!")
}

func PrintVisualizationSummary(outputDir string, summary models.ExecutiveSummary, topCustomers []models.CustomerMetrics, rendered, failed int) {
	fmt.Println()
	fmt.Println(rule(60))
	if failed == 0 {
		fmt.Println("All visualizations created successfully!")
	} else {
		fmt.Printf("Visualizations finished with %d failure(s); %d chart(s) created.\n", failed, rendered)
	}
	fmt.Printf("\nOutput directory: %s\n", outputDir)

	fmt.Println("\nKey Business Insights:")
	fmt.Printf("   - Total Revenue Analyzed: $%.0f\n", summary.TotalRevenue)
	fmt.Printf("   - Customer Base: %d customers\n", summary.TotalCustomers)
	fmt.Printf("   - Average Order Value: $%.0f\n", summary.AvgOrderValue)
	fmt.Printf("   - Top Category: %s\n", summary.TopCategory)
	fmt.Printf("   - Average Customer Age: %.0f years\n", summary.AvgCustomerAge)
	fmt.Printf("   - Repeat Customers: %d\n", summary.RepeatCustomerCount)

	if len(topCustomers) > 0 {
		fmt.Printf("\nTop %d Customers by Total Spending:\n", len(topCustomers))
		for i, c := range topCustomers {
			fmt.Printf("   %2d. user %-4d  $%10.2f  (%d orders, %s)\n",
				i+1, c.UserID, c.TotalSpent, c.OrderCount, c.Segment)
		}
	}
}

func PrintFailureBanner(stage string, err error) {
	fmt.Println()
	fmt.Println(rule(60))
	fmt.Printf("%s FAILED: %v\n", stage, err)
	fmt.Println(rule(60))
}

func countCategories(products []models.Product) int {
	seen := make(map[string]struct{})
	for _, p := range products {
		seen[p.Category] = struct{}{}
	}
	return len(seen)
}

func priceRange(products []models.Product) (float64, float64, bool) {
	var min, max float64
	found := false
	for _, p := range products {
		if p.Price == nil {
			continue
		}
		if !found || *p.Price < min {
			min = *p.Price
		}
		if !found || *p.Price > max {
			max = *p.Price
		}
		found = true
	}
	return min, max, found
}

func ageRange(users []models.User) (int, int, bool) {
	var min, max int
	found := false
	for _, u := range users {
		if u.Age == nil {
			continue
		}
		if !found || *u.Age < min {
			min = *u.Age
		}
		if !found || *u.Age > max {
			max = *u.Age
		}
		found = true
	}
	return min, max, found
}

func totalSales(carts []models.Cart) float64 {
	var sum float64
	for _, c := range carts {
		if c.Total != nil {
			sum += *c.Total
		}
	}
	return sum
}

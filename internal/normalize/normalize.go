// internal/normalize/normalize.go
package normalize

import (
	"github.com/ssantiago/sales-analytics/internal/analytics"
	"github.com/ssantiago/sales-analytics/internal/fetcher"
	"github.com/ssantiago/sales-analytics/internal/models"
)

// Product flattens one raw product record into a typed row. Derived fields
// use missing propagation: a nil input yields a nil derived value, never zero.
func Product(raw fetcher.RawRecord, extractionDate string) models.Product {
	id, _ := intID(raw, "id")

	p := models.Product{
		ID:                 id,
		Title:              toString(raw["title"]),
		Description:        toString(raw["description"]),
		Price:              toFloat(raw["price"]),
		DiscountPercentage: toFloat(raw["discountPercentage"]),
		Rating:             toFloat(raw["rating"]),
		Stock:              toInt(raw["stock"]),
		Brand:              toString(raw["brand"]),
		Category:           toString(raw["category"]),
		Thumbnail:          toString(raw["thumbnail"]),
		ExtractionDate:     extractionDate,
	}

	if p.Price != nil && p.Stock != nil {
		rp := *p.Price * float64(*p.Stock)
		p.RevenuePotential = &rp
	}
	if p.Price != nil && p.DiscountPercentage != nil {
		dp := *p.Price * (1 - *p.DiscountPercentage/100)
		p.DiscountedPrice = &dp
	}

	return p
}

// User flattens one raw user record, expanding the nested address (and its
// nested coordinates) into top-level fields.
func User(raw fetcher.RawRecord, extractionDate string) models.User {
	id, _ := intID(raw, "id")

	u := models.User{
		ID:             id,
		FirstName:      toString(raw["firstName"]),
		LastName:       toString(raw["lastName"]),
		Age:            toInt(raw["age"]),
		Gender:         toString(raw["gender"]),
		Email:          toString(raw["email"]),
		Phone:          toString(raw["phone"]),
		BirthDate:      toString(raw["birthDate"]),
		ExtractionDate: extractionDate,
	}

	if address, ok := raw["address"].(map[string]any); ok {
		u.Address = toString(address["address"])
		u.City = toString(address["city"])
		u.State = toString(address["state"])
		u.PostalCode = toString(address["postalCode"])
		if coords, ok := address["coordinates"].(map[string]any); ok {
			u.Latitude = toFloat(coords["lat"])
			u.Longitude = toFloat(coords["lng"])
		}
	}

	u.AgeSegment = analytics.ClassifyAge(u.Age)

	return u
}

// Cart flattens one raw cart record. SavingsPercentage stays nil when the
// total is zero so a division against an empty cart is never invented.
func Cart(raw fetcher.RawRecord, extractionDate string) models.Cart {
	id, _ := intID(raw, "id")
	userID, _ := intID(raw, "userId")

	c := models.Cart{
		ID:              id,
		UserID:          userID,
		Total:           toFloat(raw["total"]),
		DiscountedTotal: toFloat(raw["discountedTotal"]),
		TotalProducts:   toInt(raw["totalProducts"]),
		TotalQuantity:   toInt(raw["totalQuantity"]),
		ExtractionDate:  extractionDate,
	}

	if c.Total != nil && c.DiscountedTotal != nil {
		savings := *c.Total - *c.DiscountedTotal
		c.TotalSavings = &savings
		if *c.Total != 0 {
			pct := round2(savings / *c.Total * 100)
			c.SavingsPercentage = &pct
		}
	}

	return c
}

// CartItems expands one raw cart record into one row per line item, each
// inheriting the parent's cart and user identifiers. Records without a
// resolvable cart id are dropped, never fabricated; the second return value
// reports how many line items were dropped that way.
func CartItems(raw fetcher.RawRecord) ([]models.CartItem, int) {
	lines, _ := raw["products"].([]any)

	cartID, ok := intID(raw, "id")
	if !ok {
		return nil, len(lines)
	}
	userID, _ := intID(raw, "userId")

	items := make([]models.CartItem, 0, len(lines))
	for _, line := range lines {
		product, ok := line.(map[string]any)
		if !ok {
			continue
		}
		productID, _ := intID(product, "id")

		item := models.CartItem{
			CartID:       cartID,
			UserID:       userID,
			ProductID:    productID,
			ProductTitle: toString(product["title"]),
			Price:        toFloat(product["price"]),
			Quantity:     toInt(product["quantity"]),
			Total:        toFloat(product["total"]),
		}

		// The source omits discounts on some line items; absent means none.
		if item.DiscountPercentage = toFloat(product["discountPercentage"]); item.DiscountPercentage == nil {
			zero := 0.0
			item.DiscountPercentage = &zero
		}
		if item.DiscountedPrice = toFloat(product["discountedPrice"]); item.DiscountedPrice == nil {
			item.DiscountedPrice = item.Price
		}

		items = append(items, item)
	}

	return items, 0
}

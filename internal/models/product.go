// internal/models/product.go
package models

// Product is one normalized product row. Numeric fields that failed coercion
// are nil; derived fields are nil whenever a required input is nil.
type Product struct {
	ID                 int      `json:"id" gorm:"column:id;primaryKey"`
	Title              string   `json:"title" gorm:"column:title;size:255"`
	Description        string   `json:"description" gorm:"column:description;type:text"`
	Price              *float64 `json:"price" gorm:"column:price" validate:"omitempty,gte=0"`
	DiscountPercentage *float64 `json:"discount_percentage" gorm:"column:discount_percentage" validate:"omitempty,gte=0,lte=100"`
	Rating             *float64 `json:"rating" gorm:"column:rating" validate:"omitempty,gte=0,lte=5"`
	Stock              *int     `json:"stock" gorm:"column:stock" validate:"omitempty,gte=0"`
	Brand              string   `json:"brand" gorm:"column:brand;size:100"`
	Category           string   `json:"category" gorm:"column:category;size:100"`
	Thumbnail          string   `json:"thumbnail" gorm:"column:thumbnail;type:text"`
	RevenuePotential   *float64 `json:"revenue_potential" gorm:"column:revenue_potential"`
	DiscountedPrice    *float64 `json:"discounted_price" gorm:"column:discounted_price"`
	ExtractionDate     string   `json:"extraction_date" gorm:"column:extraction_date;size:10"`
}

func (Product) TableName() string { return "products" }

// CategorySummary is one aggregated row of the category revenue view.
type CategorySummary struct {
	Category         string  `json:"category"`
	ProductCount     int     `json:"product_count"`
	AvgPrice         float64 `json:"avg_price"`
	TotalStock       int     `json:"total_stock"`
	AvgRating        float64 `json:"avg_rating"`
	RevenuePotential float64 `json:"revenue_potential"`
}

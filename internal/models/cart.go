// internal/models/cart.go
package models

// Cart is one normalized cart row. SavingsPercentage is nil when the cart
// total is zero or missing.
type Cart struct {
	ID                int      `json:"id" gorm:"column:id;primaryKey"`
	UserID            int      `json:"user_id" gorm:"column:user_id"`
	Total             *float64 `json:"total" gorm:"column:total" validate:"omitempty,gte=0"`
	DiscountedTotal   *float64 `json:"discounted_total" gorm:"column:discounted_total" validate:"omitempty,gte=0"`
	TotalProducts     *int     `json:"total_products" gorm:"column:total_products" validate:"omitempty,gte=0"`
	TotalQuantity     *int     `json:"total_quantity" gorm:"column:total_quantity" validate:"omitempty,gte=0"`
	TotalSavings      *float64 `json:"total_savings" gorm:"column:total_savings"`
	SavingsPercentage *float64 `json:"savings_percentage" gorm:"column:savings_percentage"`
	ExtractionDate    string   `json:"extraction_date" gorm:"column:extraction_date;size:10"`
}

func (Cart) TableName() string { return "carts" }

// CartItem is one cart line item, inheriting the parent cart's identifiers.
type CartItem struct {
	CartID             int      `json:"cart_id" gorm:"column:cart_id"`
	UserID             int      `json:"user_id" gorm:"column:user_id"`
	ProductID          int      `json:"product_id" gorm:"column:product_id"`
	ProductTitle       string   `json:"product_title" gorm:"column:product_title;size:255"`
	Price              *float64 `json:"price" gorm:"column:price" validate:"omitempty,gte=0"`
	Quantity           *int     `json:"quantity" gorm:"column:quantity" validate:"omitempty,gte=0"`
	Total              *float64 `json:"total" gorm:"column:total" validate:"omitempty,gte=0"`
	DiscountPercentage *float64 `json:"discount_percentage" gorm:"column:discount_percentage" validate:"omitempty,gte=0,lte=100"`
	DiscountedPrice    *float64 `json:"discounted_price" gorm:"column:discounted_price"`
}

func (CartItem) TableName() string { return "cart_items" }

// CustomerMetrics is one aggregated row of the customer value view.
type CustomerMetrics struct {
	UserID        int          `json:"user_id"`
	TotalSpent    float64      `json:"total_spent"`
	AvgOrderValue float64      `json:"avg_order_value"`
	OrderCount    int          `json:"order_count"`
	TotalItems    int          `json:"total_items"`
	Segment       ValueSegment `json:"customer_segment"`
}

// ExecutiveSummary holds the scalar KPIs combined from the other views.
type ExecutiveSummary struct {
	TotalRevenue        float64 `json:"total_revenue"`
	TotalCustomers      int     `json:"total_customers"`
	TotalOrders         int     `json:"total_orders"`
	AvgOrderValue       float64 `json:"avg_order_value"`
	TotalProducts       int     `json:"total_products"`
	TotalCategories     int     `json:"total_categories"`
	TopCategory         string  `json:"top_category"`
	AvgCustomerAge      float64 `json:"avg_customer_age"`
	RepeatCustomerCount int     `json:"repeat_customer_count"`
}

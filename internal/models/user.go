// internal/models/user.go
package models

// User is one normalized user row with the nested address flattened into
// top-level columns.
type User struct {
	ID             int        `json:"id" gorm:"column:id;primaryKey"`
	FirstName      string     `json:"first_name" gorm:"column:first_name;size:100"`
	LastName       string     `json:"last_name" gorm:"column:last_name;size:100"`
	Age            *int       `json:"age" gorm:"column:age" validate:"omitempty,gte=0,lte=120"`
	Gender         string     `json:"gender" gorm:"column:gender;size:20"`
	Email          string     `json:"email" gorm:"column:email;size:255"`
	Phone          string     `json:"phone" gorm:"column:phone;size:50"`
	BirthDate      string     `json:"birth_date" gorm:"column:birth_date;size:20"`
	Address        string     `json:"address" gorm:"column:address;size:255"`
	City           string     `json:"city" gorm:"column:city;size:100"`
	State          string     `json:"state" gorm:"column:state;size:100"`
	PostalCode     string     `json:"postal_code" gorm:"column:postal_code;size:20"`
	Latitude       *float64   `json:"latitude" gorm:"column:latitude"`
	Longitude      *float64   `json:"longitude" gorm:"column:longitude"`
	AgeSegment     AgeSegment `json:"age_segment" gorm:"column:age_segment;size:30"`
	ExtractionDate string     `json:"extraction_date" gorm:"column:extraction_date;size:10"`
}

func (User) TableName() string { return "users" }

// AgeSegmentSummary is one aggregated row of the age segmentation view.
// AvgAge is computed over non-missing ages only; Percentage is the segment's
// share of the full population (Unknown included) rounded to one decimal.
type AgeSegmentSummary struct {
	Segment       AgeSegment `json:"segment"`
	CustomerCount int        `json:"customer_count"`
	AvgAge        float64    `json:"avg_age"`
	Percentage    float64    `json:"percentage"`
}

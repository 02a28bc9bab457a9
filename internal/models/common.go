// internal/models/common.go
package models

import (
	"time"
)

// Enums
type AgeSegment string

const (
	AgeSegmentGenZ        AgeSegment = "Gen Z (Under 25)"
	AgeSegmentMillennials AgeSegment = "Millennials (25-35)"
	AgeSegmentGenX        AgeSegment = "Gen X (36-50)"
	AgeSegmentBoomers     AgeSegment = "Boomers (50+)"
	AgeSegmentUnknown     AgeSegment = "Unknown"
)

type ValueSegment string

const (
	ValueSegmentPremium  ValueSegment = "Premium Customer"
	ValueSegmentValuable ValueSegment = "Valuable Customer"
	ValueSegmentRegular  ValueSegment = "Regular Customer"
	ValueSegmentLowValue ValueSegment = "Low-Value Customer"
)

// ExtractionRun records one complete extraction batch. Row counts are the
// post-normalization sizes, so a failed collection fetch shows up as zero.
type ExtractionRun struct {
	RunID         string    `json:"run_id" gorm:"column:run_id;primaryKey;size:36"`
	StartedAt     time.Time `json:"started_at" gorm:"column:started_at"`
	ProductCount  int       `json:"product_count" gorm:"column:product_count"`
	UserCount     int       `json:"user_count" gorm:"column:user_count"`
	CartCount     int       `json:"cart_count" gorm:"column:cart_count"`
	CartItemCount int       `json:"cart_item_count" gorm:"column:cart_item_count"`
}

func (ExtractionRun) TableName() string { return "extraction_runs" }

// internal/analytics/age.go
package analytics

import (
	"math"

	"github.com/ssantiago/sales-analytics/internal/models"
)

// ageRules is the generational bucketing as an ordered rule table, first
// match wins. The final rule is a catch-all so every non-missing age lands
// in exactly one segment.
var ageRules = []struct {
	matches func(age int) bool
	segment models.AgeSegment
}{
	{func(age int) bool { return age < 25 }, models.AgeSegmentGenZ},
	{func(age int) bool { return age >= 25 && age <= 35 }, models.AgeSegmentMillennials},
	{func(age int) bool { return age >= 36 && age <= 50 }, models.AgeSegmentGenX},
	{func(age int) bool { return true }, models.AgeSegmentBoomers},
}

// segmentOrder fixes the reporting order of the age segmentation output.
var segmentOrder = []models.AgeSegment{
	models.AgeSegmentGenZ,
	models.AgeSegmentMillennials,
	models.AgeSegmentGenX,
	models.AgeSegmentBoomers,
	models.AgeSegmentUnknown,
}

// ClassifyAge maps an age to its generational segment. A missing age is
// Unknown.
func ClassifyAge(age *int) models.AgeSegment {
	if age == nil {
		return models.AgeSegmentUnknown
	}
	for _, rule := range ageRules {
		if rule.matches(*age) {
			return rule.segment
		}
	}
	return models.AgeSegmentUnknown
}

// AgeSegments partitions users into generational segments and reports count,
// average age and population share per segment. Missing ages count toward
// the population total but never toward an average. Empty segments are
// omitted.
func AgeSegments(users []models.User) []models.AgeSegmentSummary {
	counts := make(map[models.AgeSegment]int)
	ageSums := make(map[models.AgeSegment]float64)
	ageCounts := make(map[models.AgeSegment]int)

	for _, u := range users {
		segment := ClassifyAge(u.Age)
		counts[segment]++
		if u.Age != nil {
			ageSums[segment] += float64(*u.Age)
			ageCounts[segment]++
		}
	}

	total := len(users)
	summaries := make([]models.AgeSegmentSummary, 0, len(counts))
	for _, segment := range segmentOrder {
		count := counts[segment]
		if count == 0 {
			continue
		}
		summary := models.AgeSegmentSummary{
			Segment:       segment,
			CustomerCount: count,
			Percentage:    round1(float64(count) / float64(total) * 100),
		}
		if n := ageCounts[segment]; n > 0 {
			summary.AvgAge = round1(ageSums[segment] / float64(n))
		}
		summaries = append(summaries, summary)
	}

	return summaries
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

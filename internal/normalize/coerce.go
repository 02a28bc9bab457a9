// internal/normalize/coerce.go
package normalize

import (
	"encoding/json"
	"math"
	"strconv"
)

// Numeric coercion mirrors the extraction contract: a value that cannot be
// parsed as a number becomes nil (the missing-value marker), never an error.

func toFloat(v any) *float64 {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return nil
		}
		return &n
	case float32:
		f := float64(n)
		return &f
	case int:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return &f
		}
		return nil
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return &f
		}
		return nil
	default:
		return nil
	}
}

func toInt(v any) *int {
	f := toFloat(v)
	if f == nil {
		return nil
	}
	i := int(math.Round(*f))
	return &i
}

func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}

// intID reads an identifier field, returning ok=false when it is absent or
// not numeric. Callers drop rows whose identifiers cannot be resolved.
func intID(raw map[string]any, key string) (int, bool) {
	v, ok := raw[key]
	if !ok {
		return 0, false
	}
	id := toInt(v)
	if id == nil {
		return 0, false
	}
	return *id, true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

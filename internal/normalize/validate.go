// internal/normalize/validate.go
package normalize

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateRow checks a coerced row against its struct tags (non-negative
// prices and stock, ratings within 0-5, discounts within 0-100, plausible
// ages). A failing row is flagged by the caller, not rejected.
func ValidateRow(row interface{}) error {
	return validate.Struct(row)
}

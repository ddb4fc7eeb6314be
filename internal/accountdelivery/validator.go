package accountdelivery

import (
	"github.com/go-playground/validator/v10"

	"github.com/Jorge989/openbank-dashboard/internal/domain"
)

// ValidAccountType validates whether the account type is known.
var ValidAccountType validator.Func = func(fl validator.FieldLevel) bool {
	if t, ok := fl.Field().Interface().(string); ok {
		return domain.IsValidAccountType(t)
	}
	return false
}

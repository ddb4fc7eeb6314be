package transactiondelivery

import (
	"github.com/go-playground/validator/v10"

	"github.com/Jorge989/openbank-dashboard/internal/domain"
)

// ValidTransactionType validates whether the type is credit or debit.
var ValidTransactionType validator.Func = func(fl validator.FieldLevel) bool {
	if t, ok := fl.Field().Interface().(string); ok {
		return t == domain.Credit || t == domain.Debit
	}
	return false
}

// ValidCategory validates whether the category is known.
var ValidCategory validator.Func = func(fl validator.FieldLevel) bool {
	if c, ok := fl.Field().Interface().(string); ok {
		return domain.IsValidCategory(c)
	}
	return false
}

package validation

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// New builds a validator with the decimal comparison tags used on the
// transfer records (decimal_gt, decimal_gte).
func New() *validator.Validate {
	v := validator.New()

	// decimal.Decimal is a struct, so the built-in numeric comparisons do
	// not apply to it.
	_ = v.RegisterValidation("decimal_gt", decimalGT)
	_ = v.RegisterValidation("decimal_gte", decimalGTE)

	return v
}

func decimalGT(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	param, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}
	return value.GreaterThan(param)
}

func decimalGTE(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	param, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}
	return value.GreaterThanOrEqual(param)
}

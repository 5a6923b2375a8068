// Package schema validates structural snapshots with go-playground/validator.
//
// Aggregates keep their state in unexported fields; to be validated they are
// flattened into exported-field records carrying `validate` tags. Check reports the
// first violated constraint as an errs.ValueIsInvalidError so it flows through the
// same taxonomy as every other validation failure.
package schema

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"

	"fulfillment/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// TrackingNumberTag is the validation tag for carrier tracking numbers.
const TrackingNumberTag = "tracking_number"

// USZipTag is the validation tag for US ZIP codes ("12345" or "12345-6789").
const USZipTag = "us_zip"

var (
	// S10 style: two letters, nine digits, two letter country suffix.
	trackingNumberPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{9}[A-Z]{2}$`)
	usZipPattern          = regexp.MustCompile(`^[0-9]{5}(-[0-9]{4})?$`)
)

// Validator is safe for concurrent use once all rules are registered.
type Validator struct {
	validate *validator.Validate
}

// New returns a Validator with the decimal type, the tracking number tag and the
// US ZIP tag registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(decimalAsFloat, decimal.Decimal{})
	for tag, match := range map[string]func(string) bool{
		TrackingNumberTag: IsTrackingNumber,
		USZipTag:          IsUSZip,
	} {
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return match(fl.Field().String())
		}); err != nil {
			panic(err)
		}
	}

	return &Validator{validate: v}
}

// RegisterStructRule adds a cross-field rule evaluated after the field tags of types.
func (v *Validator) RegisterStructRule(rule validator.StructLevelFunc, types ...any) {
	v.validate.RegisterStructValidation(rule, types...)
}

// Check validates s and returns nil or the first violation.
func (v *Validator) Check(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return errs.NewValueIsInvalidErrorWithCause(fe.Namespace(), describe(fe))
	}

	return errs.NewValueIsInvalidErrorWithCause("schema", err)
}

// IsTrackingNumber reports whether s has the carrier tracking number format.
func IsTrackingNumber(s string) bool {
	return trackingNumberPattern.MatchString(s)
}

// IsUSZip reports whether s is a five digit ZIP code, optionally followed by a
// hyphen and four digits.
func IsUSZip(s string) bool {
	return usZipPattern.MatchString(s)
}

func describe(fe validator.FieldError) error {
	if fe.Param() != "" {
		return fmt.Errorf("violates %s=%s", fe.Tag(), fe.Param())
	}
	return fmt.Errorf("violates %s", fe.Tag())
}

func decimalAsFloat(field reflect.Value) any {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}
	f, _ := d.Float64()
	return f
}

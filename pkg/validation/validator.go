// Package validation checks submitted forms with validator/v10 and turns
// failures into per-field messages.
package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"droscher.com/MyWhiskies/pkg/model"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.\-]+$`)

// FieldErrors maps form field names to messages.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	parts := make([]string, 0, len(f))
	for field, message := range f {
		parts = append(parts, field+" "+message)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

func (f FieldErrors) Add(field string, message string) {
	if _, exists := f[field]; !exists {
		f[field] = message
	}
}

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Messages are keyed by the form field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("form")
		if name == "" || name == "-" {
			return fld.Name
		}

		return name
	})

	mustRegister(v, "username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "password", func(fl validator.FieldLevel) bool {
		return strongPassword(fl.Field().String())
	})
	mustRegister(v, "bottle_type", func(fl validator.FieldLevel) bool {
		_, ok := model.ParseBottleType(fl.Field().String())

		return ok
	})
	mustRegister(v, "half_step", func(fl validator.FieldLevel) bool {
		value := fl.Field().Float()

		return value*2 == math.Trunc(value*2)
	})

	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func strongPassword(password string) bool {
	var upper, lower, digit bool

	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}

	return upper && lower && digit
}

// Validate returns FieldErrors, or nil when the struct is valid.
func (v *Validator) Validate(s any) FieldErrors {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return FieldErrors{"form": err.Error()}
	}

	fieldErrors := make(FieldErrors, len(validationErrs))
	for _, e := range validationErrs {
		fieldErrors.Add(e.Field(), friendlyMessage(e))
	}

	return fieldErrors
}

//nolint:gocyclo // one case per validation tag
func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at least %s selected", e.Param())
		}

		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "url":
		return "must be a valid URL"
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	case "eqfield":
		return "must match"
	case "username":
		return "may only contain letters, numbers, dots, dashes and underscores"
	case "password":
		return "must contain an upper case letter, a lower case letter and a number"
	case "bottle_type":
		return "is not a known whiskey type"
	case "half_step":
		return "must be in steps of 0.5"
	default:
		return "is invalid"
	}
}

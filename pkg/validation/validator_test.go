package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.openly.dev/pointy"

	"droscher.com/MyWhiskies/pkg/validation"
)

type registration struct {
	Username string   `form:"username" validate:"required,min=3,max=32,username"`
	Email    string   `form:"email"    validate:"required,email"`
	Password string   `form:"password" validate:"required,min=12,max=64,password"`
	Confirm  string   `form:"password2" validate:"eqfield=Password"`
	Type     string   `form:"type"     validate:"omitempty,bottle_type"`
	Stars    *float64 `form:"stars"    validate:"omitempty,gte=0,lte=5,half_step"`
}

func valid() registration {
	return registration{
		Username: "newuser",
		Email:    "newuser@example.com",
		Password: "Whiskey12345x",
		Confirm:  "Whiskey12345x",
		Type:     "RYE",
		Stars:    pointy.Float64(4.5),
	}
}

func TestValidator_Valid(t *testing.T) {
	assert.Nil(t, validation.New().Validate(valid()))
}

func TestValidator_FieldMessages(t *testing.T) {
	tests := []struct {
		name    string
		change  func(*registration)
		field   string
		message string
	}{
		{name: "short username", change: func(r *registration) { r.Username = "ab" }, field: "username", message: "must be at least 3 characters"},
		{name: "bad username characters", change: func(r *registration) { r.Username = "new user" }, field: "username", message: "may only contain"},
		{name: "bad email", change: func(r *registration) { r.Email = "nope" }, field: "email", message: "valid email"},
		{name: "weak password", change: func(r *registration) { r.Password = "whiskey12345x"; r.Confirm = r.Password }, field: "password", message: "upper case"},
		{name: "mismatched confirmation", change: func(r *registration) { r.Confirm = "Whiskey12345y" }, field: "password2", message: "must match"},
		{name: "unknown type", change: func(r *registration) { r.Type = "VODKA" }, field: "type", message: "not a known whiskey type"},
		{name: "quarter stars", change: func(r *registration) { r.Stars = pointy.Float64(3.25) }, field: "stars", message: "steps of 0.5"},
		{name: "too many stars", change: func(r *registration) { r.Stars = pointy.Float64(5.5) }, field: "stars", message: "less than or equal to 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid()
			tt.change(&form)

			errs := validation.New().Validate(form)

			assert.Contains(t, errs[tt.field], tt.message)
			assert.ErrorContains(t, errs, tt.field)
		})
	}
}

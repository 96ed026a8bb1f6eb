// Package validator adapts go-playground/validator to echo's Validator
// interface so request DTOs are checked against their struct tags.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator satisfies echo.Validator
type CustomValidator struct {
	v *validator.Validate
}

// New returns a validator ready to be assigned to echo's Validator field
func New() *CustomValidator {
	return &CustomValidator{v: validator.New()}
}

// Validate runs tag-based struct validation on the bound request
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

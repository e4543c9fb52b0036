package dto

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var addressValidator = validator.New()

// RegisterValidations installs the custom binding tags on gin's validator.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("emaillist", validateEmailList)
}

// validateEmailList accepts a semicolon-separated list with at least one valid address.
func validateEmailList(fl validator.FieldLevel) bool {
	return ValidEmailList(fl.Field().String())
}

// ValidEmailList reports whether raw holds at least one address and every
// non-blank entry is a valid email.
func ValidEmailList(raw string) bool {
	count := 0
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if addressValidator.Var(part, "email") != nil {
			return false
		}
		count++
	}
	return count > 0
}

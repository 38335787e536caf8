package users

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// CNIC: 13 digits, optionally dashed as 12345-1234567-1
var cnicPattern = regexp.MustCompile(`^(\d{13}|\d{5}-\d{7}-\d)$`)

// RegisterValidators installs the custom `cnic` binding rule on Gin's
// validator engine. Call once at startup before routes are served.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("cnic", func(fl validator.FieldLevel) bool {
			return cnicPattern.MatchString(fl.Field().String())
		})
	}
}

package web

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/srikarthikeya/caterers/internal/errs"
)

var phonePattern = regexp.MustCompile(`^[+]?[0-9]{10,15}$`)

// registerValidators installs the custom binding rules on gin's validator.
// Safe to call more than once.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	// required only rejects the empty string; whitespace-only values need
	// their own rule.
	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// bindError converts a gin binding failure into a classified bad-request
// error with a readable field list.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errs.BadRequest("invalid request body")
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("field '%s' failed validation on '%s'", fe.Field(), fe.Tag()))
	}
	return errs.BadRequest("%s", strings.Join(parts, "; "))
}

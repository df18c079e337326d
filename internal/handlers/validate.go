package handlers

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Usernames are 3-20 characters, alphanumeric, starting with a letter. Same
// rule the database check constraint enforces.
var usernamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]{2,19}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	return v
}

func validUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

package service

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sirpyerre/customer-portal/internal/core/domain"
)

// validateCredentials checks the login input shape. The two checks run
// independently and are reported together, so a form can show both field
// errors at once.
func validateCredentials(v *validator.Validate, email, password string) *domain.ValidationError {
	fields := make(map[string]string)

	if err := v.Var(email, "required,email"); err != nil {
		fields["email"] = "email must be a valid email address"
	}
	if strings.TrimSpace(password) == "" {
		fields["password"] = "password is required"
	}

	if len(fields) == 0 {
		return nil
	}
	return &domain.ValidationError{Fields: fields}
}

package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/common"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// bcrypt ignores everything past 72 bytes, so longer passwords are refused.
const maxPasswordBytes = 72

// ValidationError carries per-field messages for rejected input.
// It matches common.ErrorValidation with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%s: %s", common.ErrorValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return common.ErrorValidation
}

var passwordFitsHash = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if len(s) > maxPasswordBytes {
		return errors.New("Password is too long")
	}
	return nil
})

func validateRegistration(name, email, password string) error {
	return fieldErrors(validation.Errors{
		"name": validation.Validate(name,
			validation.Required.Error("Name field is required"),
			validation.RuneLength(2, 30).Error("Name must be between 2 and 30 characters"),
		),
		"email": validation.Validate(email,
			validation.Required.Error("Email field is required"),
			is.Email.Error("Email is invalid"),
		),
		"password": validation.Validate(password,
			validation.Required.Error("Password field is required"),
			validation.RuneLength(6, 30).Error("Password must be between 6 and 30 characters"),
			passwordFitsHash,
		),
	})
}

func validateLogin(email, password string) error {
	return fieldErrors(validation.Errors{
		"email": validation.Validate(email,
			validation.Required.Error("Email field is required"),
			is.Email.Error("Email is invalid"),
		),
		"password": validation.Validate(password,
			validation.Required.Error("Password field is required"),
		),
	})
}

func fieldErrors(errs validation.Errors) error {
	fields := make(map[string]string)
	for k, err := range errs {
		if err != nil {
			fields[k] = err.Error()
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// Messages shown to clients for the expected failure kinds.
const (
	msgEmailExists        = "Email already exists"
	msgInvalidCredentials = "Invalid email or password"
)

// FieldErrors maps an expected failure of Register or Login to the
// field-keyed messages clients display. It returns nil for errors that are
// not the caller's fault (store outages, internal failures).
func FieldErrors(err error) map[string]string {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return verr.Fields
	case errors.Is(err, common.ErrDuplicateEmail):
		return map[string]string{"email": msgEmailExists}
	case errors.Is(err, common.ErrInvalidCredentials):
		return map[string]string{"email": msgInvalidCredentials, "password": msgInvalidCredentials}
	case errors.Is(err, common.ErrorValidation):
		return map[string]string{"password": "Password is invalid"}
	}
	return nil
}

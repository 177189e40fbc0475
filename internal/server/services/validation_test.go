package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"password": "p", "email": "e"}}
	assert.Equal(t, "validation error: email: e; password: p", err.Error())
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestFieldErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want map[string]string
	}{
		{"validation", &ValidationError{Fields: map[string]string{"name": "n"}}, map[string]string{"name": "n"}},
		{"wrapped validation", fmt.Errorf("x: %w", &ValidationError{Fields: map[string]string{"name": "n"}}), map[string]string{"name": "n"}},
		{"duplicate", common.ErrDuplicateEmail, map[string]string{"email": "Email already exists"}},
		{"credentials", common.ErrInvalidCredentials, map[string]string{
			"email":    "Invalid email or password",
			"password": "Invalid email or password",
		}},
		{"bare validation sentinel", fmt.Errorf("%w: too long", common.ErrorValidation), map[string]string{"password": "Password is invalid"}},
		{"store", common.ErrStoreUnavailable, nil},
		{"internal", errors.New("boom"), nil},
		{"nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FieldErrors(tt.err))
		})
	}
}

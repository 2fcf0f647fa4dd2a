package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{"api code passes through", ErrCodeNotFound, ErrCodeNotFound},
		{"not found", "NOT_FOUND", ErrCodeNotFound},
		{"already exists", "ALREADY_EXISTS", ErrCodeAlreadyExists},
		{"conflict", "CONFLICT", ErrCodeConflict},
		{"validation", "VALIDATION", ErrCodeValidation},
		{"invalid state", "INVALID_STATE", ErrCodeInvalidState},
		{"empty withdrawal", "EMPTY_WITHDRAWAL", ErrCodeEmptyWithdrawal},
		{"bad credentials", "INVALID_CREDENTIALS", ErrCodeInvalidCredentials},
		{"input code collapses to validation", "INVALID_CUSTOMER", ErrCodeValidation},
		{"another input code", "INVALID_SIZES", ErrCodeValidation},
		{"unknown becomes internal", "SOMETHING_ELSE", ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeErrorCode(tt.code))
		})
	}
}

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, GetHTTPStatus(ErrCodeNotFound))
	assert.Equal(t, http.StatusConflict, GetHTTPStatus(ErrCodeConflict))
	assert.Equal(t, http.StatusUnprocessableEntity, GetHTTPStatus(ErrCodeEmptyWithdrawal))
	assert.Equal(t, http.StatusUnauthorized, GetHTTPStatus(ErrCodeInvalidCredentials))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("ERR_NO_SUCH_CODE"))
}

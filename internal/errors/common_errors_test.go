package errors

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorType_Constants(t *testing.T) {
	tests := []struct {
		name     string
		errType  ErrorType
		expected string
	}{
		{name: "source not found", errType: ErrTypeSourceNotFound, expected: "SOURCE_NOT_FOUND"},
		{name: "missing identity column", errType: ErrTypeMissingIdentityColumn, expected: "MISSING_IDENTITY_COLUMN"},
		{name: "row too short", errType: ErrTypeRowTooShort, expected: "ROW_TOO_SHORT"},
		{name: "malformed cell", errType: ErrTypeMalformedCell, expected: "MALFORMED_CELL"},
		{name: "parsing", errType: ErrTypeParsing, expected: "PARSING"},
		{name: "storage", errType: ErrTypeStorage, expected: "STORAGE"},
		{name: "config", errType: ErrTypeConfig, expected: "CONFIG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.errType))
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name        string
		appError    *AppError
		wantMessage string
	}{
		{
			name:        "error without cause",
			appError:    &AppError{Type: ErrTypeParsing, Message: "bad quote"},
			wantMessage: "[PARSING] bad quote",
		},
		{
			name: "error with cause",
			appError: &AppError{
				Type:    ErrTypeStorage,
				Message: "failed to write roster",
				Cause:   fmt.Errorf("disk full"),
			},
			wantMessage: "[STORAGE] failed to write roster: disk full",
		},
		{
			name: "context rendered in key order",
			appError: &AppError{
				Type:    ErrTypeMalformedCell,
				Message: "no marker",
				Context: map[string]interface{}{"line": 3, "column": 4},
			},
			wantMessage: "[MALFORMED_CELL] no marker (column=4, line=3)",
		},
		{
			name:        "empty message",
			appError:    &AppError{Type: ErrTypeValidation},
			wantMessage: "[VALIDATION] ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMessage, tt.appError.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := os.ErrNotExist
	err := NewSourceNotFoundError("/tmp/roster.csv", cause)
	assert.Same(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, os.ErrNotExist))

	assert.Nil(t, NewAppValidationError("x").Unwrap())
}

func TestAppError_WithContext_NilContext(t *testing.T) {
	err := &AppError{Type: ErrTypeConfig, Message: "bad"}
	err.WithContext("field", "Roster.SkipColumns")
	require.NotNil(t, err.Context)
	assert.Equal(t, "Roster.SkipColumns", err.Context["field"])
}

func TestSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{name: "source not found", err: NewSourceNotFoundError("a.csv", nil), sentinel: ErrSourceNotFound},
		{name: "missing identity", err: NewMissingIdentityColumnError("이름"), sentinel: ErrMissingIdentityColumn},
		{name: "row too short", err: NewRowTooShortError(3, 1, 2), sentinel: ErrRowTooShort},
		{name: "malformed cell", err: NewMalformedCellError(2, 3, "미적분학"), sentinel: ErrMalformedCell},
	}

	all := []error{ErrSourceNotFound, ErrMissingIdentityColumn, ErrRowTooShort, ErrMalformedCell}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("run: %w", tt.err)
			for _, s := range all {
				if s == tt.sentinel {
					assert.True(t, errors.Is(wrapped, s))
				} else {
					assert.False(t, errors.Is(wrapped, s))
				}
			}
		})
	}
}

func TestMalformedCellContext(t *testing.T) {
	err := NewMalformedCellError(5, 3, "미적분학1")
	assert.Equal(t, 5, err.Context["line"])
	assert.Equal(t, 3, err.Context["column"])
	assert.Equal(t, "미적분학1", err.Context["cell"])
	assert.Contains(t, err.Error(), "cell=미적분학1")
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, ErrTypeRowTooShort, TypeOf(fmt.Errorf("x: %w", NewRowTooShortError(2, 0, 0))))
	assert.Equal(t, ErrTypeStorage, TypeOf(NewStorageError("w", nil)))
	assert.Equal(t, ErrTypeUnknown, TypeOf(errors.New("plain")))
	assert.Equal(t, ErrTypeUnknown, TypeOf(nil))
}

func TestNewConfigError(t *testing.T) {
	cause := errors.New("invalid yaml")
	err := NewConfigError("load config", cause)
	assert.Equal(t, ErrTypeConfig, err.Type)
	assert.Equal(t, "[CONFIG] load config: invalid yaml", err.Error())
	assert.NotNil(t, err.Context)
}

package errors

import (
	stderrors "errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrorType classifies a run failure. The value is what logs and the
// run_errors metric report.
type ErrorType string

const (
	ErrTypeSourceNotFound        ErrorType = "SOURCE_NOT_FOUND"
	ErrTypeMissingIdentityColumn ErrorType = "MISSING_IDENTITY_COLUMN"
	ErrTypeRowTooShort           ErrorType = "ROW_TOO_SHORT"
	ErrTypeMalformedCell         ErrorType = "MALFORMED_CELL"
	ErrTypeParsing               ErrorType = "PARSING"
	ErrTypeStorage               ErrorType = "STORAGE"
	ErrTypeValidation            ErrorType = "VALIDATION"
	ErrTypeConfig                ErrorType = "CONFIG"
	ErrTypeUnknown               ErrorType = "UNKNOWN"
)

// Sentinels for errors.Is. Each matches any AppError of the same type.
var (
	ErrSourceNotFound        = &AppError{Type: ErrTypeSourceNotFound, Message: "roster source not found"}
	ErrMissingIdentityColumn = &AppError{Type: ErrTypeMissingIdentityColumn, Message: "identity column not found in header"}
	ErrRowTooShort           = &AppError{Type: ErrTypeRowTooShort, Message: "row has no identity cell"}
	ErrMalformedCell         = &AppError{Type: ErrTypeMalformedCell, Message: "course cell has no section marker"}
)

// AppError is the error type returned across package boundaries.
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]any
}

// Error renders "[TYPE] message (k=v, ...): cause" with context keys sorted.
func (e *AppError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Type, e.Message)
	if len(e.Context) > 0 {
		msg += " (" + e.contextString() + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *AppError) contextString() string {
	var parts []string
	for _, k := range slices.Sorted(maps.Keys(e.Context)) {
		parts = append(parts, fmt.Sprintf("%s=%v", k, e.Context[k]))
	}
	return strings.Join(parts, ", ")
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an AppError of the same type.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Type == e.Type
}

// WithContext sets key on e and returns e for chaining.
func (e *AppError) WithContext(key string, value any) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// TypeOf returns the type of the first AppError in err's chain, or
// ErrTypeUnknown when there is none.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrTypeUnknown
}

// NewSourceNotFoundError reports a roster file that does not exist at path.
func NewSourceNotFoundError(path string, cause error) *AppError {
	return NewAppError(ErrTypeSourceNotFound, "roster source not found", cause).
		WithContext("path", path)
}

// NewMissingIdentityColumnError reports a header without the identity label.
func NewMissingIdentityColumnError(label string) *AppError {
	return NewAppError(ErrTypeMissingIdentityColumn,
		fmt.Sprintf("identity column %q not found in header", label), nil).
		WithContext("label", label)
}

// NewRowTooShortError reports a data row that ends before the identity column.
func NewRowTooShortError(line, width, identityIndex int) *AppError {
	return NewAppError(ErrTypeRowTooShort,
		fmt.Sprintf("row has %d cells, identity column is %d", width, identityIndex+1), nil).
		WithContext("line", line)
}

// NewMalformedCellError reports a non-blank course cell with no "(".
func NewMalformedCellError(line, column int, cell string) *AppError {
	return NewAppError(ErrTypeMalformedCell, "course cell has no section marker '('", nil).
		WithContext("line", line).
		WithContext("column", column).
		WithContext("cell", cell)
}

// NewParsingError is for input that is readable but not a roster.
func NewParsingError(message string, cause error) *AppError {
	return NewAppError(ErrTypeParsing, message, cause)
}

// NewStorageError is for filesystem failures on reads or writes.
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

func NewAppValidationError(message string) *AppError {
	return NewAppError(ErrTypeValidation, message, nil)
}

// NewConfigError wraps a config load or validation failure.
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

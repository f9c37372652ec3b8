package validation

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	apperrors "classmate/internal/errors"
)

// StructValidator validates configuration and record structs using tags
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator creates a validator with the custom tags used by
// classmate registered:
//
//	filename  a bare file name, no separators or ".."
//	label     a non-blank header label without control characters
func NewStructValidator() *StructValidator {
	v := validator.New()

	v.RegisterValidation("filename", isValidFilename)
	v.RegisterValidation("label", isValidLabel)

	// Use yaml tag names in error messages, they are what users edit
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return &StructValidator{validate: v}
}

// Struct validates s and returns a CONFIG AppError listing every failed field.
func (sv *StructValidator) Struct(s interface{}) error {
	err := sv.validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewConfigError("validation failed", err)
	}

	messages := make([]string, 0, len(fieldErrs))
	appErr := apperrors.NewConfigError("", nil)
	for _, fe := range fieldErrs {
		msg := formatFieldError(fe)
		messages = append(messages, msg)
		appErr.WithContext(fe.Namespace(), msg)
	}
	appErr.Message = "invalid configuration: " + strings.Join(messages, "; ")
	return appErr
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Namespace())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", fe.Namespace(), fe.Param(), fe.Value())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Namespace(), fe.Param())
	case "filename":
		return fmt.Sprintf("%s must be a plain file name, got %q", fe.Namespace(), fe.Value())
	case "label":
		return fmt.Sprintf("%s must be a printable header label", fe.Namespace())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Namespace(), fe.Tag())
	}
}

func isValidFilename(fl validator.FieldLevel) bool {
	filename := fl.Field().String()
	if filename == "" {
		return false
	}
	// Prevent directory traversal
	if strings.Contains(filename, "..") || strings.Contains(filename, "/") || strings.Contains(filename, "\\") {
		return false
	}
	return len(filename) <= 255
}

func isValidLabel(fl validator.FieldLevel) bool {
	label := fl.Field().String()
	if strings.TrimSpace(label) == "" {
		return false
	}
	for _, r := range label {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

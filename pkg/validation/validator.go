package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// MaxKeyLength bounds logical keys so identifiers stay readable
	MaxKeyLength = 256
)

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("logicalkey", isLogicalKey); err != nil {
		panic(fmt.Sprintf("validation: register logicalkey: %v", err))
	}
}

// FieldError describes the first field of a struct that failed validation
type FieldError struct {
	Field string // struct field name, e.g. "VLANID"
	Tag   string // failing rule, e.g. "required"
	Param string // rule parameter, e.g. "4094"
	Value any
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message()
}

// Message renders the failed rule without the field name
func (e *FieldError) Message() string {
	switch e.Tag {
	case "required":
		return "field is required"
	case "min":
		return "must be at least " + e.Param
	case "max":
		return "must not exceed " + e.Param
	case "oneof":
		return fmt.Sprintf("value %v must be one of [%s]", e.Value, e.Param)
	case "logicalkey":
		return fmt.Sprintf("%q is not a usable logical key", e.Value)
	default:
		return fmt.Sprintf("validation failed (%s)", e.Tag)
	}
}

// Constraint names the rule with its parameter, e.g. "max=4094"
func (e *FieldError) Constraint() string {
	if e.Param == "" {
		return e.Tag
	}
	return e.Tag + "=" + e.Param
}

// Struct validates v against its `validate` tags. It returns nil or a
// *FieldError for the first failing field.
func Struct(v any) error {
	if v == nil {
		return errors.New("value cannot be nil")
	}
	return formatValidationError(validate.Struct(v))
}

// ValidateKey checks a single logical key
func ValidateKey(key string) error {
	err := formatValidationError(validate.Var(key, "required,logicalkey"))
	var fe *FieldError
	if errors.As(err, &fe) {
		fe.Field = "key"
	}
	return err
}

// isLogicalKey rejects blank keys, control characters and overlong keys
func isLogicalKey(fl validator.FieldLevel) bool {
	key := fl.Field().String()
	if strings.TrimSpace(key) == "" || len(key) > MaxKeyLength {
		return false
	}
	for _, r := range key {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// formatValidationError converts validator errors into a FieldError
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// Return the first validation error
	for _, e := range validationErrs {
		return &FieldError{
			Field: e.Field(),
			Tag:   e.Tag(),
			Param: e.Param(),
			Value: e.Value(),
		}
	}

	return err
}

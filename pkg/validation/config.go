package validation

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ConfigValidator checks configuration values fluently and collects every
// failure instead of stopping at the first one.
type ConfigValidator struct {
	errors []error
	name   string // section name for error messages
}

// NewConfigValidator creates a validator for the named config section.
func NewConfigValidator(configName string) *ConfigValidator {
	return &ConfigValidator{name: configName}
}

func (cv *ConfigValidator) fail(field, format string, args ...any) *ConfigValidator {
	cv.errors = append(cv.errors, fmt.Errorf("%s.%s: %s", cv.name, field, fmt.Sprintf(format, args...)))
	return cv
}

// Required validates that a string field is not blank.
func (cv *ConfigValidator) Required(field, value string) *ConfigValidator {
	if strings.TrimSpace(value) == "" {
		return cv.fail(field, "required field is empty")
	}
	return cv
}


// OneOf validates that a string field is one of the allowed values,
// ignoring case.
func (cv *ConfigValidator) OneOf(field, value string, allowed []string) *ConfigValidator {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return cv
		}
	}
	return cv.fail(field, "value %q must be one of %v", value, allowed)
}

// ReadableFile validates that a non-empty path names a regular file.
// Empty paths pass; combine with Required when the file is mandatory.
func (cv *ConfigValidator) ReadableFile(field, path string) *ConfigValidator {
	if path == "" {
		return cv
	}
	info, err := os.Stat(path)
	switch {
	case err != nil:
		return cv.fail(field, "%v", err)
	case info.IsDir():
		return cv.fail(field, "%s is a directory", path)
	}
	return cv
}

// Custom applies a custom validation function.
func (cv *ConfigValidator) Custom(field string, fn func() error) *ConfigValidator {
	if err := fn(); err != nil {
		cv.errors = append(cv.errors, fmt.Errorf("%s.%s: %w", cv.name, field, err))
	}
	return cv
}

// When conditionally applies validations if the condition is true.
func (cv *ConfigValidator) When(condition bool, validations func(*ConfigValidator)) *ConfigValidator {
	if condition {
		validations(cv)
	}
	return cv
}

// HasErrors returns true if any validation errors occurred.
func (cv *ConfigValidator) HasErrors() bool {
	return len(cv.errors) > 0
}

// Errors returns all validation errors.
func (cv *ConfigValidator) Errors() []error {
	return cv.errors
}

// Validate returns nil, the single error, or all errors joined.
func (cv *ConfigValidator) Validate() error {
	switch len(cv.errors) {
	case 0:
		return nil
	case 1:
		return cv.errors[0]
	}
	return fmt.Errorf("%s validation failed with %d errors: %w", cv.name, len(cv.errors), errors.Join(cv.errors...))
}

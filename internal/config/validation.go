package config

import (
	"fmt"
	"net"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "hostport":
		return "must be in format 'host:port'"
	case "env_name":
		return "must be a bare environment name (e.g. Development, Test)"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	FieldPath string // Dot-notation field path (e.g., "server.bind_address")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("hostport", validateHostPort); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("env_name", validateEnvName); err != nil {
		panic(err)
	}

	// Register function to get field name from "toml" tag
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate checks the whole service configuration and returns all errors.
func (c *Config) Validate() error {
	var validationErrors ValidationErrors

	validationErrors = append(validationErrors, validateSection("server", c.Server)...)
	validationErrors = append(validationErrors, validateSection("settings", c.Settings)...)
	validationErrors = append(validationErrors, validateSection("audit", c.Audit)...)

	if len(validationErrors) > 0 {
		return validationErrors
	}
	return nil
}

func validateSection(section string, v any) ValidationErrors {
	if v == nil || reflect.ValueOf(v).IsNil() {
		return nil
	}

	var validationErrors ValidationErrors
	if err := validate.Struct(v); err != nil {
		if fieldErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrors {
				validationErrors = append(validationErrors, ValidationError{
					FieldPath: section + "." + fe.Field(),
					Message:   getValidationMessage(fe),
				})
			}
		} else {
			validationErrors = append(validationErrors, ValidationError{
				FieldPath: section,
				Message:   err.Error(),
			})
		}
	}
	return validationErrors
}

// Custom validator: host:port format
func validateHostPort(fl validator.FieldLevel) bool {
	_, _, err := net.SplitHostPort(fl.Field().String())
	return err == nil
}

// Custom validator: environment name without path separators or whitespace
func validateEnvName(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return !strings.ContainsAny(value, "/\\ \t")
}

package config

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/valyala/fasttemplate"
)

var (
	ifaceNameRegexp = regexp.MustCompile(`^[a-zA-Z0-9_.-]{1,15}$`)
	octalModeRegexp = regexp.MustCompile(`^0[0-7]{3}$`)
)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "gte":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "ip":
		return "must be a valid IP address"
	case "cidr":
		return "must be an address in CIDR notation (e.g. 192.168.1.2/24)"
	case "mac":
		return "must be a valid MAC address"
	case "iface_name":
		return "must be a valid interface name (1-15 characters of [a-zA-Z0-9_.-])"
	case "octal_mode":
		return "must be a four digit octal mode (e.g. 0644)"
	case "name_template":
		return "must be a file name pattern containing the {{name}} variable"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	ItemName  string // The name of the offending interface or VLAN (e.g. "eth0", "eth0.1")
	FieldPath string // Dot-notation field path (e.g. "general.file_mode", "interface.0.mac")
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
		if err.ItemName != "" {
			sb.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, err.ItemName, err.FieldPath, err.Message))
		} else {
			sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
		}
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validators
	if err := validate.RegisterValidation("iface_name", validateInterfaceName); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("octal_mode", validateOctalMode); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("name_template", validateNameTemplate); err != nil {
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

// Custom validator: interface name format
func validateInterfaceName(fl validator.FieldLevel) bool {
	return ifaceNameRegexp.MatchString(fl.Field().String())
}

// Custom validator: four digit octal file mode
func validateOctalMode(fl validator.FieldLevel) bool {
	return octalModeRegexp.MatchString(fl.Field().String())
}

// Custom validator: unit file name pattern with a {{name}} variable
func validateNameTemplate(fl validator.FieldLevel) bool {
	pattern := fl.Field().String()

	t, err := fasttemplate.NewTemplate(pattern, "{{", "}}")
	if err != nil {
		return false
	}

	usesName := false
	_, err = t.ExecuteFuncStringWithErr(func(w io.Writer, tag string) (int, error) {
		if tag == "name" {
			usesName = true
			return 0, nil
		}
		return 0, fmt.Errorf("unknown variable: %s", tag)
	})

	return err == nil && usesName
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string, itemName string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return nil
	}

	for _, e := range validatorErrs {
		fieldPath := fieldPrefix
		if e.Field() != "" {
			// e.Field() returns the TOML tag name because of the registered TagNameFunc
			if fieldPrefix != "" {
				fieldPath = fieldPrefix + "." + e.Field()
			} else {
				fieldPath = e.Field()
			}
		}

		validationErrors = append(validationErrors, ValidationError{
			ItemName:  itemName,
			FieldPath: fieldPath,
			Message:   getValidationMessage(e),
		})
	}

	return validationErrors
}

package dtos

import (
	"fmt"
	"reflect"
	"strings"

	"clinic-triage-service/internal/domain"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every request type; it caches struct metadata and is safe for
// concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their wire names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the validate tags of s and converts the first violation into a
// domain.ValidationError.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return fmt.Errorf("failed to validate request: %w", err)
	}
	fe := fieldErrs[0]
	return domain.NewValidationError(fe.Field(), reasonFor(fe))
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "is not a valid address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + strings.ReplaceAll(strings.Trim(fe.Param(), "'"), "' '", ", ")
	default:
		return fmt.Sprintf("failed the %s check", fe.Tag())
	}
}

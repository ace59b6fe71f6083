package application

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/bnema/pomodesk/internal/domain"
	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their wire names so messages match what callers sent.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return field.Name
		default:
			return name
		}
	})
	return v
}

// validateStruct runs struct-tag rules and reports the first violation as a
// *domain.ValidationError.
func validateStruct(v *validator.Validate, value any) error {
	err := v.Struct(value)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate %T: %w", value, err)
	}

	first := fieldErrs[0]
	return domain.NewValidationError(first.Field(), describeRule(first))
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return fmt.Sprintf("failed %s check", fe.Tag())
	}
}

func parseTimestamp(field, raw string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, "must be an RFC 3339 timestamp")
	}

	return parsed, nil
}

func parseOptionalTimestamp(field string, raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}

	parsed, err := parseTimestamp(field, *raw)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}

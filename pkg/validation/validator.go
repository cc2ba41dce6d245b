package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dd0wney/cluso-raceway/pkg/records"
)

// ErrNilRecord is returned when a nil record is validated.
var ErrNilRecord = errors.New("record cannot be nil")

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their snapshot (yaml) names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// idpattern=<kind> checks a row ID against the record kind's pattern.
	if err := validate.RegisterValidation("idpattern", func(fl validator.FieldLevel) bool {
		return records.MatchesID(fl.Param(), fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register idpattern: %v", err))
	}
}

// ValidateRecord checks a cable, raceway, ductbank or tray against its struct tags.
func ValidateRecord(record any) error {
	if record == nil {
		return ErrNilRecord
	}
	if v := reflect.ValueOf(record); v.Kind() == reflect.Pointer && v.IsNil() {
		return ErrNilRecord
	}
	if err := validate.Struct(record); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "idpattern":
			return fmt.Errorf("%s: %q is not a valid %s ID", field, e.Value(), e.Param())
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}

	return err
}

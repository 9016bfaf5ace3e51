package validation

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/neuroccm/sleepbetter/internal/domain"
	"github.com/neuroccm/sleepbetter/pkg/problem"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Clock hours are fractional hours on a 24h dial, e.g. 23.5 for 23:30.
	validate.RegisterValidation("clockhour", func(fl validator.FieldLevel) bool {
		v := fl.Field().Float()
		return v >= 0 && v < 24
	})

	validate.RegisterValidation("wakewindow", func(fl validator.FieldLevel) bool {
		v := fl.Field().Float()
		return v >= domain.WakeTimeMin && v <= domain.WakeTimeMax
	})

	validate.RegisterValidation("sleepdate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(domain.DateLayout, fl.Field().String())
		return err == nil
	})
}

// Validate validates a struct and returns field errors
func Validate(s interface{}) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors []problem.FieldError
	for _, err := range err.(validator.ValidationErrors) {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   toSnakeCase(err.Field()),
			Message: getValidationMessage(err),
		})
	}
	return fieldErrors
}

func getValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return "must be at least " + err.Param()
	case "max", "lte":
		return "must be at most " + err.Param()
	case "oneof":
		return "must be one of: " + err.Param()
	case "clockhour":
		return "must be a clock hour between 0 and 24 (exclusive)"
	case "wakewindow":
		return "must be between 04:00 and 10:00"
	case "sleepdate":
		return "must be a date in YYYY-MM-DD format"
	default:
		return "is invalid"
	}
}

func toSnakeCase(s string) string {
	var result []byte
	for i, c := range s {
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				result = append(result, '_')
			}
			result = append(result, byte(c+'a'-'A'))
		} else {
			result = append(result, byte(c))
		}
	}
	return string(result)
}

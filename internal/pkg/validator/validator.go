package validator

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// EventDateLayout is the calendar date format events are stored with
const EventDateLayout = "2006-01-02"

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations()
}

func registerCustomValidations() {
	// Event date: YYYY-MM-DD
	validate.RegisterValidation("event_date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(EventDateLayout, fl.Field().String())
		return err == nil
	})

	// Album names are free text, but must carry something printable
	validate.RegisterValidation("album", func(fl validator.FieldLevel) bool {
		album := strings.TrimSpace(fl.Field().String())
		if album == "" {
			return true
		}
		if len(album) > 64 {
			return false
		}
		return !strings.ContainsAny(album, "/\\")
	})

	// Access codes: 3-32 chars, no whitespace
	validate.RegisterValidation("access_code", func(fl validator.FieldLevel) bool {
		code := fl.Field().String()
		if code == "" {
			return true
		}
		if len(code) < 3 || len(code) > 32 {
			return false
		}
		return !strings.ContainsAny(code, " \t\r\n")
	})
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	errors := make(map[string]string)
	for _, err := range validationErrors {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "email":
			errors[field] = "Invalid email format"
		case "min":
			errors[field] = "Value is too short (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too long (max: " + err.Param() + ")"
		case "gte":
			errors[field] = "Value must be at least " + err.Param()
		case "lte":
			errors[field] = "Value must be at most " + err.Param()
		case "url":
			errors[field] = "Invalid URL format"
		case "event_date":
			errors[field] = "Invalid date. Must be YYYY-MM-DD"
		case "album":
			errors[field] = "Invalid album name"
		case "access_code":
			errors[field] = "Access code must be 3-32 characters without spaces"
		default:
			errors[field] = "Invalid value"
		}
	}

	return errors
}

// ValidateVar validates a single variable
func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}

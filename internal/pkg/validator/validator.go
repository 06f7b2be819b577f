package validator

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"filmorate/internal/domain"
)

// MinReleaseDate is the day cinema was born; no film may predate it.
var MinReleaseDate = time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("nospace", noSpace)
	validate.RegisterCustomTypeFunc(dateValue, domain.Date{})
	_ = validate.RegisterValidation("pastdate", pastDate)
	_ = validate.RegisterValidation("releasedate", releaseDate)
}

// Validate struct fields; returns field->tag on failure, nil when ok.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}

func noSpace(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), " \t\n")
}

func dateValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(domain.Date); ok {
		return d.Time
	}
	return nil
}

func pastDate(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return t.Before(time.Now())
}

func releaseDate(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return !t.Before(MinReleaseDate)
}

package service

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)
		validate.RegisterValidation("alphanum_underscore", alphanumUnderscore)
	})
}

// Names must not start with a digit or underscore; the rest is letters,
// digits and underscores.
func alphanumUnderscore(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for i, char := range value {
		if i == 0 && (unicode.IsDigit(char) || char == '_') {
			return false
		}
		if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
			return false
		}
	}
	return true
}

// jsonFieldName reports fields by their json name when they have one.
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// validateStruct joins every field error under kind, so callers can match kind with errors.Is.
func validateStruct(s any, kind error) error {
	InitValidator()
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		joined := []error{kind}
		for _, fieldErr := range validationErrors {
			joined = append(joined, describe(fieldErr))
		}
		return errors.Join(joined...)
	}
	return errors.New("validation unexpected error: " + err.Error())
}

func describe(fe validator.FieldError) error {
	rule := fe.Tag()
	if fe.Param() != "" {
		rule += "=" + fe.Param()
	}
	return errors.New(fe.Field() + ": violates " + rule)
}

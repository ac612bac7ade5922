package models

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Field rules shared by create and update payloads.
const (
	keywordRules     = "required,max=100,nonul"
	descriptionRules = "required,nonul"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// GetValidator returns the shared validator. Field names in errors are the
// JSON names of the struct fields.
func GetValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		// Postgres text columns cannot hold NUL bytes.
		validate.RegisterValidation("nonul", func(fl validator.FieldLevel) bool {
			return !strings.ContainsRune(fl.Field().String(), 0)
		})
	})
	return validate
}

// ValidationError reports the first field that failed validation.
type ValidationError struct {
	Field   string
	Tag     string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// newValidationError converts a validator error for field into a ValidationError.
// When field is empty the name reported by the validator is used.
func newValidationError(field string, err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	e := validationErrors[0]
	if field == "" {
		field = e.Field()
	}

	var msg string
	switch e.Tag() {
	case "required":
		msg = field + " must not be empty"
	case "max":
		msg = field + " must be at most " + e.Param() + " characters"
	case "nonul":
		msg = field + " must not contain NUL characters"
	default:
		msg = "field validation for '" + field + "' failed on the '" + e.Tag() + "' tag"
	}

	return &ValidationError{Field: field, Tag: e.Tag(), Message: msg}
}

// Validate checks the create payload.
func (r *TermCreateRequest) Validate() error {
	if err := GetValidator().Struct(r); err != nil {
		return newValidationError("", err)
	}
	return nil
}

// Validate checks only the fields present in the update payload.
func (r *TermUpdateRequest) Validate() error {
	if r.Keyword != nil {
		if err := GetValidator().Var(*r.Keyword, keywordRules); err != nil {
			return newValidationError("keyword", err)
		}
	}
	if r.Description != nil {
		if err := GetValidator().Var(*r.Description, descriptionRules); err != nil {
			return newValidationError("description", err)
		}
	}
	return nil
}

package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/leandroquiroga/interview-platform-ai/internal/entity"
)

// FieldError is a client-facing validation failure.
// Err is one of entity.ErrMissingField, entity.ErrInvalidFormat or
// entity.ErrInvalidParameter.
type FieldError struct {
	Field  string
	Reason string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func missing(field string) error {
	return &FieldError{Field: field, Reason: "is required", Err: entity.ErrMissingField}
}

func invalidFormat(field, reason string) error {
	return &FieldError{Field: field, Reason: reason, Err: entity.ErrInvalidFormat}
}

func invalidParameter(field, reason string) error {
	return &FieldError{Field: field, Reason: reason, Err: entity.ErrInvalidParameter}
}

// Validator validates inbound requests
type Validator struct {
	structs *playground.Validate
}

func New() *Validator {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonTagName)

	return &Validator{structs: v}
}

// validateStruct runs the struct tags of s and reports the first failure
func (v *Validator) validateStruct(s any) error {
	err := v.structs.Struct(s)
	if err == nil {
		return nil
	}

	var verrs playground.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", entity.ErrInvalidFormat, err)
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return missing(fe.Field())
	case "email":
		return invalidFormat(fe.Field(), "must be a valid email address")
	case "min":
		return invalidParameter(fe.Field(), fmt.Sprintf("must be at least %s characters", fe.Param()))
	case "max":
		return invalidParameter(fe.Field(), fmt.Sprintf("must be at most %s characters", fe.Param()))
	default:
		return invalidParameter(fe.Field(), fmt.Sprintf("failed %q check", fe.Tag()))
	}
}

func jsonTagName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

package validator

import (
	"context"

	"github.com/go-playground/validator/v10"
)

// Validator validates structs against their `validate` tags.
type Validator interface {
	// Struct validates s
	Struct(s any) error

	// StructCtx validates s with a context
	StructCtx(ctx context.Context, s any) error

	// GetValidator exposes the underlying validator
	GetValidator() *validator.Validate
}

// ValidationErrors is returned by Struct when one or more fields fail.
type ValidationErrors interface {
	error
	// Errors lists the failing fields
	Errors() []FieldError
	// HasErrors reports whether any field failed
	HasErrors() bool
}

// FieldError describes one failing field.
type FieldError interface {
	// Field is the field name, taken from the json tag when present
	Field() string
	// Tag is the failing validation tag
	Tag() string
	// Value is the offending value
	Value() any
	// Message is the translated message
	Message() string
}

// ValidationOption configures a validator.
type ValidationOption func(*validatorImpl)

// WithTagName sets the struct tag read for rules.
func WithTagName(tagName string) ValidationOption {
	return func(v *validatorImpl) {
		v.validator.SetTagName(tagName)
	}
}

// WithValidation registers a custom rule under tag, with message used as its
// translation. The message may reference the field name with {0}.
func WithValidation(tag string, fn validator.Func, message string) ValidationOption {
	return func(v *validatorImpl) {
		v.custom = append(v.custom, customRule{tag: tag, fn: fn, message: message})
	}
}

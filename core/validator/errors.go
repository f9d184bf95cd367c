package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kochabx/ecies/errors"
)

type validationErrorsImpl struct {
	fieldErrors []FieldError
	message     string
}

func (ve *validationErrorsImpl) Error() string {
	return ve.message
}

func (ve *validationErrorsImpl) Errors() []FieldError {
	return ve.fieldErrors
}

func (ve *validationErrorsImpl) HasErrors() bool {
	return len(ve.fieldErrors) > 0
}

type fieldErrorImpl struct {
	fieldError validator.FieldError
	message    string
}

func (fe *fieldErrorImpl) Field() string {
	return fe.fieldError.Field()
}

func (fe *fieldErrorImpl) Tag() string {
	return fe.fieldError.Tag()
}

func (fe *fieldErrorImpl) Value() any {
	return fe.fieldError.Value()
}

func (fe *fieldErrorImpl) Message() string {
	return fe.message
}

// IsValidationError reports whether err carries field errors.
func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}

// Fields returns the names of the failing fields in err.
func Fields(err error) []string {
	var ve ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	names := make([]string, 0, len(ve.Errors()))
	for _, fe := range ve.Errors() {
		names = append(names, fe.Field())
	}
	return names
}

// HasFieldError reports whether field failed validation.
func HasFieldError(err error, field string) bool {
	for _, name := range Fields(err) {
		if name == field {
			return true
		}
	}
	return false
}

// ErrorsToString joins the messages of errs with separator ("; " if empty).
func ErrorsToString(errs []FieldError, separator string) string {
	if separator == "" {
		separator = "; "
	}
	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		messages = append(messages, fe.Message())
	}
	return strings.Join(messages, separator)
}

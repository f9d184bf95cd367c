package validator

import (
	"context"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/kochabx/ecies/errors"
)

var errNilTarget = errors.BadRequest("validation target cannot be nil")

type customRule struct {
	tag     string
	fn      validator.Func
	message string
}

type validatorImpl struct {
	validator *validator.Validate
	trans     ut.Translator
	custom    []customRule
}

// Validate is the shared validator.
var Validate = sync.OnceValue(func() Validator { return New() })

// New creates a validator with English messages. Field names in errors come
// from the json tag, falling back to mapstructure and then the Go name.
func New(opts ...ValidationOption) Validator {
	v := &validatorImpl{
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
	v.validator.RegisterTagNameFunc(fieldName)

	locale := en.New()
	v.trans, _ = ut.New(locale, locale).GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v.validator, v.trans)

	for _, opt := range opts {
		opt(v)
	}
	for _, rule := range v.custom {
		v.register(rule)
	}
	return v
}

func (v *validatorImpl) register(rule customRule) {
	if err := v.validator.RegisterValidation(rule.tag, rule.fn); err != nil {
		panic(err)
	}
	_ = v.validator.RegisterTranslation(rule.tag, v.trans,
		func(tr ut.Translator) error {
			return tr.Add(rule.tag, rule.message, true)
		},
		func(tr ut.Translator, fe validator.FieldError) string {
			msg, err := tr.T(fe.Tag(), fe.Field())
			if err != nil {
				return fe.Error()
			}
			return msg
		},
	)
}

func fieldName(f reflect.StructField) string {
	for _, key := range []string{"json", "mapstructure"} {
		name, _, _ := strings.Cut(f.Tag.Get(key), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// Struct validates s.
func (v *validatorImpl) Struct(s any) error {
	return v.StructCtx(context.Background(), s)
}

// StructCtx validates s with a context.
func (v *validatorImpl) StructCtx(ctx context.Context, s any) error {
	if s == nil {
		return errNilTarget
	}
	if err := v.validator.StructCtx(ctx, s); err != nil {
		return v.translate(err)
	}
	return nil
}

// GetValidator exposes the underlying validator.
func (v *validatorImpl) GetValidator() *validator.Validate {
	return v.validator
}

func (v *validatorImpl) translate(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &validationErrorsImpl{fieldErrors: make([]FieldError, 0, len(verrs))}
	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		f := &fieldErrorImpl{fieldError: fe, message: fe.Translate(v.trans)}
		out.fieldErrors = append(out.fieldErrors, f)
		messages = append(messages, f.message)
	}
	out.message = strings.Join(messages, "; ")
	return out
}

// Package tag fills zero-valued struct fields from `default:"..."` tags.
package tag

import (
	"encoding"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Option configures ApplyDefaults.
type Option func(*options)

type options struct {
	tagName  string
	maxDepth int
}

// WithTagName sets the tag to read (default "default").
func WithTagName(name string) Option {
	return func(o *options) {
		o.tagName = name
	}
}

// WithMaxDepth bounds struct nesting (default 32).
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// ApplyDefaults sets every zero-valued exported field of the struct pointed
// to by target from its tag. Nested structs and pointers to structs are
// walked; fields that already hold a value are left alone.
//
//	type Config struct {
//	    Level string        `default:"info"`
//	    Wait  time.Duration `default:"5s"`
//	}
func ApplyDefaults(target any, opts ...Option) error {
	o := &options{tagName: "default", maxDepth: 32}
	for _, opt := range opts {
		opt(o)
	}

	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer {
		return ErrTargetMustBePointer
	}
	if v.IsNil() {
		return ErrTargetIsNil
	}
	if v.Elem().Kind() != reflect.Struct {
		return ErrTargetMustBePointer
	}
	return o.applyStruct(v.Elem(), "", 0)
}

func (o *options) applyStruct(v reflect.Value, path string, depth int) error {
	if depth >= o.maxDepth {
		return ErrMaxDepthExceeded
	}

	t := v.Type()
	for i := range t.NumField() {
		field, fv := t.Field(i), v.Field(i)
		if !fv.CanSet() {
			continue
		}

		name := field.Name
		if path != "" {
			name = path + "." + name
		}
		if err := o.applyField(fv, field.Tag.Get(o.tagName), name, depth); err != nil {
			return err
		}
	}
	return nil
}

func (o *options) applyField(v reflect.Value, def, path string, depth int) error {
	switch {
	case v.Kind() == reflect.Struct && !isTextUnmarshaler(v):
		return o.applyStruct(v, path, depth+1)

	case v.Kind() == reflect.Pointer && v.Type().Elem().Kind() == reflect.Struct:
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return o.applyStruct(v.Elem(), path, depth+1)

	case def == "" || !v.IsZero():
		return nil
	}

	if err := parse(v, def); err != nil {
		return &FieldError{Path: path, Kind: v.Kind(), Value: def, Err: err}
	}
	return nil
}

func isTextUnmarshaler(v reflect.Value) bool {
	if !v.CanAddr() {
		return false
	}
	_, ok := v.Addr().Interface().(encoding.TextUnmarshaler)
	return ok
}

var durationType = reflect.TypeFor[time.Duration]()

func parse(v reflect.Value, s string) error {
	if isTextUnmarshaler(v) {
		return v.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s))
	}

	switch v.Kind() {
	case reflect.String:
		v.SetString(s)

	case reflect.Bool:
		b, err := strconv.ParseBool(strings.TrimSpace(s))
		if err != nil {
			return err
		}
		v.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Type() == durationType {
			d, err := time.ParseDuration(strings.TrimSpace(s))
			if err != nil {
				return err
			}
			v.SetInt(int64(d))
			return nil
		}
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(strings.TrimSpace(s), 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(s), v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)

	case reflect.Slice:
		parts := strings.Split(s, ",")
		out := reflect.MakeSlice(v.Type(), len(parts), len(parts))
		for i, p := range parts {
			if err := parse(out.Index(i), strings.TrimSpace(p)); err != nil {
				return err
			}
		}
		v.Set(out)

	case reflect.Pointer:
		elem := reflect.New(v.Type().Elem())
		if err := parse(elem.Elem(), s); err != nil {
			return err
		}
		v.Set(elem)

	default:
		return ErrUnsupportedType
	}
	return nil
}

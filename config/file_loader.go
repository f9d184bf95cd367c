package config

import (
	"encoding"
	"os"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/kochabx/ecies/core/tag"
	"github.com/kochabx/ecies/core/validator"
	"github.com/kochabx/ecies/errors"
)

type fileOptions struct {
	path      string
	name      string
	paths     []string
	envPrefix string
	optional  bool
}

// FileLoader reads a YAML, JSON or TOML file and environment variables.
type FileLoader struct {
	viper    *viper.Viper
	validate validator.Validator
	opts     fileOptions
}

// NewFileLoader configures v for the given file options.
func NewFileLoader(v *viper.Viper, validate validator.Validator, opts fileOptions) *FileLoader {
	if opts.path != "" {
		v.SetConfigFile(opts.path)
	} else {
		v.SetConfigName(opts.name)
		for _, p := range opts.paths {
			v.AddConfigPath(p)
		}
	}

	if opts.envPrefix != "" {
		v.SetEnvPrefix(opts.envPrefix)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &FileLoader{viper: v, validate: validate, opts: opts}
}

// Load applies defaults, then the file, then the environment, then validates.
func (l *FileLoader) Load(target any) error {
	if err := tag.ApplyDefaults(target); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "config: apply defaults")
	}

	bindEnvs(l.viper, reflect.TypeOf(target), "")

	if err := l.read(); err != nil {
		return err
	}

	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := l.viper.Unmarshal(target, hook); err != nil {
		return errors.Wrap(err, errors.CodeBadRequest, "config: parse")
	}

	if l.validate != nil {
		if err := l.validate.Struct(target); err != nil {
			return errors.Wrap(err, errors.CodeBadRequest, "config: validation failed")
		}
	}
	return nil
}

func (l *FileLoader) read() error {
	err := l.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
	switch {
	case missing && l.opts.optional:
		return nil
	case missing:
		return errors.Wrap(err, errors.CodeNotFound, "config: file not found")
	default:
		return errors.Wrap(err, errors.CodeBadRequest, "config: read")
	}
}

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// bindEnvs registers every leaf key of t so that environment variables are
// honored even when the file does not mention the key.
func bindEnvs(v *viper.Viper, t reflect.Type, prefix string) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return
	}

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = strings.ToLower(f.Name)
		}
		if prefix != "" {
			name = prefix + "." + name
		}

		ft := f.Type
		for ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Struct && !reflect.PointerTo(ft).Implements(textUnmarshalerType) {
			bindEnvs(v, ft, name)
			continue
		}
		_ = v.BindEnv(name)
	}
}

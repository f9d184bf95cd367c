package log

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/kochabx/ecies/core/tag"
	"github.com/kochabx/ecies/errors"
	"github.com/kochabx/ecies/log/desensitize"
	"github.com/kochabx/ecies/log/writer"
)

// Logger wraps zerolog with optional redaction and an owned sink.
type Logger struct {
	zerolog.Logger
	desensitizeHook *desensitize.Hook
	closer          io.Closer
}

// GetDesensitizeHook returns the redaction hook, if any.
func (l *Logger) GetDesensitizeHook() *desensitize.Hook {
	return l.desensitizeHook
}

// Close releases the file sink, if any.
func (l *Logger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

func init() {
	zerolog.TimeFieldFormat = time.DateTime
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
}

func newLogger(w io.Writer, opts ...Option) *Logger {
	logger := &Logger{}
	for _, opt := range opts {
		opt(logger)
	}

	// redaction runs on the JSON line before any console formatting
	if logger.desensitizeHook != nil {
		w = desensitize.NewWriter(w, logger.desensitizeHook)
	}

	logger.Logger = zerolog.New(w).With().Timestamp().Logger()
	for _, opt := range opts {
		opt(logger)
	}
	return logger
}

// New creates a console logger on stderr.
func New(opts ...Option) *Logger {
	return newLogger(writer.Console(os.Stderr), opts...)
}

// NewJSON creates a logger writing JSON lines to w.
func NewJSON(w io.Writer, opts ...Option) *Logger {
	return newLogger(w, opts...)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// NewFile creates a logger writing JSON lines to a rotated file.
func NewFile(c FileConfig, opts ...Option) (*Logger, error) {
	w, err := fileWriter(&c)
	if err != nil {
		return nil, err
	}

	logger := newLogger(w, opts...)
	if closer, ok := w.(io.Closer); ok {
		logger.closer = closer
	}
	return logger, nil
}

// NewMulti creates a logger writing to both a rotated file and the console.
func NewMulti(c FileConfig, opts ...Option) (*Logger, error) {
	fw, err := fileWriter(&c)
	if err != nil {
		return nil, err
	}

	logger := newLogger(zerolog.MultiLevelWriter(fw, writer.Console(os.Stderr)), opts...)
	if closer, ok := fw.(io.Closer); ok {
		logger.closer = closer
	}
	return logger, nil
}

func fileWriter(c *FileConfig) (io.Writer, error) {
	if err := tag.ApplyDefaults(c); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "log: apply defaults")
	}
	w, err := writer.File(c.toWriterConfig())
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "log: open file writer")
	}
	return w, nil
}

// FromConfig builds a logger from c. Key material redaction is always on.
func FromConfig(c Config) (*Logger, error) {
	if err := tag.ApplyDefaults(&c); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "log: apply defaults")
	}

	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeBadRequest, "log: invalid level %q", c.Level)
	}

	hook := desensitize.NewHook()
	hook.AddBuiltin(desensitize.BuiltinRules()...)
	opts := []Option{WithLevel(level), WithDesensitize(hook)}
	if c.Caller {
		opts = append(opts, WithCaller())
	}

	switch c.Output {
	case OutputFile:
		return NewFile(c.File, opts...)
	case OutputMulti:
		return NewMulti(c.File, opts...)
	case OutputJSON:
		return NewJSON(os.Stderr, opts...), nil
	default:
		return New(opts...), nil
	}
}

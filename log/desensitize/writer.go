package desensitize

import (
	"io"

	"github.com/kochabx/ecies/log/internal"
)

// Writer redacts each write before passing it on.
type Writer struct {
	writer io.Writer
	hook   *Hook
}

// NewWriter wraps w. Both arguments are required.
func NewWriter(w io.Writer, hook *Hook) *Writer {
	if w == nil {
		panic("desensitize: writer cannot be nil")
	}
	if hook == nil {
		panic("desensitize: hook cannot be nil")
	}
	return &Writer{writer: w, hook: hook}
}

// Write reports len(p) on success so callers see the original length even
// when the redacted line is shorter or longer.
func (w *Writer) Write(p []byte) (int, error) {
	if len(p) == 0 || w.hook.RuleCount() == 0 {
		return w.writer.Write(p)
	}

	text := string(p)
	out := w.hook.Desensitize(text)
	if out == text {
		return w.writer.Write(p)
	}

	buf := internal.GetBuffer()
	defer internal.PutBuffer(buf)
	buf.WriteString(out)

	if _, err := w.writer.Write(buf.Bytes()); err != nil {
		return 0, err
	}
	return len(p), nil
}

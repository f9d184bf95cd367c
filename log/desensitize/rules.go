package desensitize

import (
	"fmt"
	"regexp"
	"sync/atomic"

	"github.com/kochabx/ecies/errors"
)

var errEmptyName = errors.BadRequest("desensitize: rule name cannot be empty")

// Rule rewrites sensitive content in a log line.
type Rule interface {
	Name() string
	Enabled() bool
	SetEnabled(enabled bool)
	Process(s string) string
}

type toggle struct {
	disabled atomic.Bool
}

func (t *toggle) Enabled() bool {
	return !t.disabled.Load()
}

func (t *toggle) SetEnabled(enabled bool) {
	t.disabled.Store(!enabled)
}

// ContentRule replaces every match of a pattern anywhere in the line.
type ContentRule struct {
	toggle
	name        string
	pattern     *regexp.Regexp
	replacement string
}

// NewContentRule compiles a content rule. replacement may use $1 style
// references.
func NewContentRule(name, pattern, replacement string) (*ContentRule, error) {
	if name == "" {
		return nil, errEmptyName
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeBadRequest, "desensitize: invalid pattern %q", pattern)
	}
	return &ContentRule{name: name, pattern: re, replacement: replacement}, nil
}

// MustNewContentRule is NewContentRule that panics on error.
func MustNewContentRule(name, pattern, replacement string) *ContentRule {
	rule, err := NewContentRule(name, pattern, replacement)
	if err != nil {
		panic(err)
	}
	return rule
}

func (r *ContentRule) Name() string {
	return r.name
}

func (r *ContentRule) Process(s string) string {
	if !r.Enabled() {
		return s
	}
	return r.pattern.ReplaceAllString(s, r.replacement)
}

// FieldRule replaces the string value of a named JSON field.
type FieldRule struct {
	toggle
	name        string
	fieldName   string
	replacement string
	jsonPattern *regexp.Regexp
}

// NewFieldRule creates a rule that replaces the whole value of fieldName.
func NewFieldRule(name, fieldName, replacement string) (*FieldRule, error) {
	if name == "" {
		return nil, errEmptyName
	}
	if fieldName == "" {
		return nil, errors.BadRequest("desensitize: field name cannot be empty")
	}
	re, err := regexp.Compile(fmt.Sprintf(`"%s"\s*:\s*"(?:[^"\\]|\\.)*"`, regexp.QuoteMeta(fieldName)))
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeBadRequest, "desensitize: field %q", fieldName)
	}
	return &FieldRule{name: name, fieldName: fieldName, replacement: replacement, jsonPattern: re}, nil
}

// MustNewFieldRule is NewFieldRule that panics on error.
func MustNewFieldRule(name, fieldName, replacement string) *FieldRule {
	rule, err := NewFieldRule(name, fieldName, replacement)
	if err != nil {
		panic(err)
	}
	return rule
}

func (r *FieldRule) Name() string {
	return r.name
}

func (r *FieldRule) Process(s string) string {
	if !r.Enabled() {
		return s
	}
	return r.jsonPattern.ReplaceAllLiteralString(s, fmt.Sprintf(`"%s":"%s"`, r.fieldName, r.replacement))
}

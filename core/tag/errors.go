package tag

import (
	"fmt"
	"reflect"

	"github.com/kochabx/ecies/errors"
)

var (
	ErrTargetMustBePointer = errors.BadRequest("tag: target must be a pointer to a struct")
	ErrTargetIsNil         = errors.BadRequest("tag: target is nil")
	ErrUnsupportedType     = errors.BadRequest("tag: unsupported type")
	ErrMaxDepthExceeded    = errors.BadRequest("tag: max recursion depth exceeded")
)

// FieldError reports a default value that could not be applied.
type FieldError struct {
	Path  string
	Kind  reflect.Kind
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("tag: field %q (%s) default %q: %v", e.Path, e.Kind, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

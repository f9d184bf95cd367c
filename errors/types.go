package errors

// Codes used across the module. They follow HTTP status semantics so that
// callers embedding the library in a service can map them directly.
const (
	CodeBadRequest   = 400
	CodeUnauthorized = 401
	CodeNotFound     = 404
	CodeInternal     = 500
)

// BadRequest reports malformed caller input.
func BadRequest(format string, args ...any) *Error {
	return New(CodeBadRequest, format, args...)
}

// Unauthorized reports a failed authenticity check.
func Unauthorized(format string, args ...any) *Error {
	return New(CodeUnauthorized, format, args...)
}

// NotFound reports a missing resource such as a configuration file.
func NotFound(format string, args ...any) *Error {
	return New(CodeNotFound, format, args...)
}

// Internal reports a failure that is not attributable to the input.
func Internal(format string, args ...any) *Error {
	return New(CodeInternal, format, args...)
}

// ExitCode maps err to a process exit status: 0 for nil, 2 for bad input,
// 3 for authentication failures, 4 for missing resources and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch FromError(err).Code {
	case CodeBadRequest:
		return 2
	case CodeUnauthorized:
		return 3
	case CodeNotFound:
		return 4
	default:
		return 1
	}
}

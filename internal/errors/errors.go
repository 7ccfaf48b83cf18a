package errors

import (
	"errors"
	"fmt"
)

// Error is the structured error passed between starjumper packages. Code
// decides how the CLI exits; Meta carries key/value context for logs.
type Error struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// Error renders "CODE: message", followed by the cause when there is one.
func (e *Error) Error() string {
	text := string(e.Code) + ": " + e.Message
	if e.Cause == nil {
		return text
	}
	return text + ": " + e.Cause.Error()
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// WithMeta records key on the error and returns it for chaining.
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New returns an error with the given code.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf is New with a format string.
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap adds context to err. The code of an *Error in err's chain is kept;
// any other error becomes INTERNAL. Wrapping nil yields nil, so only call
// Wrap after checking err, or a typed nil escapes as a non-nil error.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	return wrap(err, GetCode(err), message)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err under an explicit code, typically to classify a
// driver error such as a Redis timeout.
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	return wrap(err, code, message)
}

// WrapWithCodef is WrapWithCode with a format string.
func WrapWithCodef(err error, code Code, format string, args ...any) *Error {
	return WrapWithCode(err, code, fmt.Sprintf(format, args...))
}

// wrap copies the metadata of the wrapped *Error so adding keys to the outer
// error never changes the inner one.
func wrap(err error, code Code, message string) *Error {
	out := &Error{Code: code, Message: message, Cause: err}

	var inner *Error
	if errors.As(err, &inner) && len(inner.Meta) > 0 {
		out.Meta = make(map[string]any, len(inner.Meta))
		for k, v := range inner.Meta {
			out.Meta[k] = v
		}
	}
	return out
}

// NotFound reports a missing world or subsector.
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf is NotFound with a format string.
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument reports bad caller input.
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf is InvalidArgument with a format string.
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExists reports an ID collision in storage.
func AlreadyExists(message string) *Error {
	return New(CodeAlreadyExists, message)
}

// AlreadyExistsf is AlreadyExists with a format string.
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// FailedPrecondition reports an operation the current setup cannot run.
func FailedPrecondition(message string) *Error {
	return New(CodeFailedPrecondition, message)
}

// OutOfRangef reports a value outside a table or digit domain. The
// generation core panics with it.
func OutOfRangef(format string, args ...any) *Error {
	return Newf(CodeOutOfRange, format, args...)
}

// Recover turns a panic into an error stored in *errp: an *Error panic is
// kept as is, any other value becomes INTERNAL. It must be deferred directly.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	switch v := r.(type) {
	case *Error:
		*errp = v
	case error:
		*errp = Wrap(v, "recovered panic")
	default:
		*errp = Newf(CodeInternal, "recovered panic: %v", v)
	}
}

package errors

import (
	"errors"
)

// GetCode reports the code of the first *Error in err's chain. A nil error is
// OK and an error from outside this package is INTERNAL.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	if e := find(err); e != nil {
		return e.Code
	}
	return CodeInternal
}

// GetMeta returns the metadata of the first *Error in err's chain.
func GetMeta(err error) map[string]any {
	if e := find(err); e != nil {
		return e.Meta
	}
	return nil
}

func find(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// IsNotFound reports whether err carries NOT_FOUND.
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument reports whether err carries INVALID_ARGUMENT.
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsAlreadyExists reports whether err carries ALREADY_EXISTS.
func IsAlreadyExists(err error) bool {
	return GetCode(err) == CodeAlreadyExists
}

// IsFailedPrecondition reports whether err carries FAILED_PRECONDITION.
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsOutOfRange reports whether err carries OUT_OF_RANGE.
func IsOutOfRange(err error) bool {
	return GetCode(err) == CodeOutOfRange
}

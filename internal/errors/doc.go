// Package errors provides structured errors for the starjumper packages.
//
// Errors carry a Code, a message, an optional cause and metadata:
//
//	err := errors.NotFound("world not found").WithMeta("world_id", id)
//
// Wrapping keeps the code of the wrapped error:
//
//	if _, err := repo.Create(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to store world")
//	}
//
// # Contract breaches
//
// The generation core has no recoverable errors. When a table is indexed
// outside its domain, or a hex digit is asked for a value above 34, the code
// panics with an OUT_OF_RANGE *Error instead of clamping, so arithmetic
// mistakes surface in tests rather than as corrupted worlds:
//
//	panic(errors.OutOfRangef("tech level %d has no hex digit", value))
//
// Use Recover at program boundaries to turn such a panic back into an error.
//
// # Validation
//
// Config structs validate their dependencies with the builder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Classifier == nil {
//	    vb.RequiredField("Classifier")
//	}
//	return vb.Build()
//
// # Error Codes
//
//   - NotFound: Resource not found
//   - InvalidArgument: Invalid input provided
//   - AlreadyExists: Resource already exists
//   - Internal: Internal failure
//   - Unavailable: Backing store temporarily unavailable
//   - FailedPrecondition: Operation requirements not met
//   - OutOfRange: Value outside a table or digit domain
package errors

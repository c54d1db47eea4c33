// Package errs provides the error taxonomy shared by the manufacturing domain,
// its use cases and adapters.
//
// Every kind follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsRequired) for errors.Is checks
//   - a struct type carrying the parameter name and an optional cause
//   - constructors with and without cause
//   - Error() for formatting and Unwrap() exposing the sentinel and the cause
//
// Kinds:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: validation
//   - ObjectNotFoundError: lookup by id yielded nothing
//   - StateConflictError: operation not allowed in the current aggregate state,
//     including business rules expressed as illegal states
//   - VersionIsInvalidError: optimistic lock lost on update
package errs

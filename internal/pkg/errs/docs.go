// Package errs provides the error types shared by the fulfillment core.
//
// Every type follows the same shape: a sentinel (ErrValueIsRequired, ...), a struct
// carrying details, constructors with and without a cause, and Unwrap returning the
// sentinel so errors.Is can classify it.
//
// The sentinels map onto the four failure kinds a caller can observe:
//   - validation_error: ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//   - business_rule_violation: BusinessRuleViolationError
//   - not_found: ObjectNotFoundError
//   - repository_error: RepositoryError
//
// Use KindOf to turn any error returned by a command handler into its Kind.
package errs

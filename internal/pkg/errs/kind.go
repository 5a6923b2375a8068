package errs

import "errors"

// Kind classifies an error into the taxonomy exposed to callers of the command handlers.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindBusinessRule
	KindNotFound
	KindRepository
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation_error"
	case KindBusinessRule:
		return "business_rule_violation"
	case KindNotFound:
		return "not_found"
	case KindRepository:
		return "repository_error"
	case KindUnknown:
		return "unknown"
	}
	return "unknown"
}

// KindOf reports the taxonomy bucket of err. Collaborator faults win over everything
// else, so a repository error is never mistaken for a domain failure.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrRepositoryOperation):
		return KindRepository
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrBusinessRuleViolation):
		return KindBusinessRule
	case errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindValidation
	}
	return KindUnknown
}

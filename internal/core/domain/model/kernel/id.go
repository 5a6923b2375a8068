package kernel

import (
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrIDIsNotConstructed is returned when validating a zero value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("id must be created via NewID, ParseID or IDFromUUID")

// ID is an opaque identifier for aggregates, customers and products.
// It wraps a random (version 4) UUID; the zero value is invalid.
type ID struct {
	value uuid.UUID
}

// NewID generates a fresh identifier. It never fails.
func NewID() ID {
	return ID{value: uuid.New()}
}

// ParseID parses the canonical, braced, URN or hyphen-less textual forms of a UUID.
// The nil UUID is rejected.
func ParseID(s string) (ID, error) {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return IDFromUUID(parsed)
}

// IDFromUUID wraps an already decoded UUID, typically read back from storage.
func IDFromUUID(u uuid.UUID) (ID, error) {
	id := ID{value: u}
	if err := id.Validate(); err != nil {
		return ID{}, err
	}
	return id, nil
}

// String returns the canonical lowercase form.
func (i ID) String() string {
	return i.value.String()
}

// UUID returns a copy of the underlying value for adapters that store it natively.
func (i ID) UUID() uuid.UUID {
	return i.value
}

// Equal reports whether both identifiers carry the same value.
func (i ID) Equal(other ID) bool {
	return i.value == other.value
}

// IsZero reports whether i is the zero value.
func (i ID) IsZero() bool {
	return i.value == uuid.Nil
}

// Validate returns ErrIDIsNotConstructed for the zero value.
func (i ID) Validate() error {
	if i.IsZero() {
		return ErrIDIsNotConstructed
	}
	return nil
}

package kernel

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
	"fulfillment/internal/pkg/schema"
)

// ErrAddressIsNotConstructed is returned when validating a zero value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")

var addressSchema = schema.New()

// AddressFields is the raw, unvalidated form of an Address. Its tags are the
// address schema and are reused by every aggregate record embedding an address.
type AddressFields struct {
	Street     string `validate:"required,max=200"`
	City       string `validate:"required,max=100"`
	State      string `validate:"required,min=2,max=50"`
	PostalCode string `validate:"required,us_zip"`
	Country    string `validate:"required,min=2,max=60"`
}

// Address is a validated delivery destination. Postal codes follow the US ZIP
// format ("12345" or "12345-6789").
type Address struct { //nolint:recvcheck //using for validation
	fields AddressFields
	guard  guard.ConstructorGuard
}

// NewAddress trims every field and validates the result.
func NewAddress(fields AddressFields) (Address, error) {
	trimmed := AddressFields{
		Street:     strings.TrimSpace(fields.Street),
		City:       strings.TrimSpace(fields.City),
		State:      strings.TrimSpace(fields.State),
		PostalCode: strings.TrimSpace(fields.PostalCode),
		Country:    strings.TrimSpace(fields.Country),
	}
	if err := addressSchema.Check(trimmed); err != nil {
		return Address{}, err
	}

	return Address{fields: trimmed, guard: guard.NewConstructorGuard()}, nil
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Fields returns a copy of the validated fields.
func (a Address) Fields() AddressFields {
	return a.fields
}

func (a Address) String() string {
	f := a.fields
	return fmt.Sprintf("%s, %s, %s %s, %s", f.Street, f.City, f.State, f.PostalCode, f.Country)
}

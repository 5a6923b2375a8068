package kernel

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/schema"
)

// trackingCountry is the destination suffix of generated tracking numbers.
const trackingCountry = "US"

// ErrTrackingNumberIsNotConstructed is returned when validating a zero value TrackingNumber.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking number must be created via NewTrackingNumber or GenerateTrackingNumber")

// TrackingNumber is a carrier tracking code such as "RR123456785US":
// two service letters, nine digits and a two letter country suffix.
type TrackingNumber struct {
	value string
}

// NewTrackingNumber validates a tracking number received from a carrier or storage.
func NewTrackingNumber(value string) (TrackingNumber, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return TrackingNumber{}, errs.NewValueIsRequiredError("tracking number")
	}
	if !schema.IsTrackingNumber(value) {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"tracking number", fmt.Errorf("%q does not match the carrier format", value))
	}
	return TrackingNumber{value: value}, nil
}

// GenerateTrackingNumber issues a new random tracking number. It never fails.
func GenerateTrackingNumber() TrackingNumber {
	var b strings.Builder
	b.Grow(13)
	for range 2 {
		b.WriteByte(byte('A' + rand.IntN(26))) //nolint:gosec // not a secret
	}
	fmt.Fprintf(&b, "%09d", rand.IntN(1_000_000_000)) //nolint:gosec // not a secret
	b.WriteString(trackingCountry)
	return TrackingNumber{value: b.String()}
}

func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return ErrTrackingNumberIsNotConstructed
	}
	return nil
}

func (t TrackingNumber) String() string {
	return t.value
}

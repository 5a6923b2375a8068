package kernel

import (
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"
)

// ShippingMethod is the carrier service level chosen for a shipment.
type ShippingMethod int

const (
	ShippingMethodUnknown ShippingMethod = iota
	ShippingMethodStandard
	ShippingMethodExpress
	ShippingMethodOvernight
)

const day = 24 * time.Hour

type shippingMethodInfo struct {
	name   string
	window time.Duration
}

func getShippingMethods() map[ShippingMethod]shippingMethodInfo {
	//nolint:exhaustive // ShippingMethodUnknown is not a service level
	return map[ShippingMethod]shippingMethodInfo{
		ShippingMethodStandard:  {name: "standard", window: 7 * day},
		ShippingMethodExpress:   {name: "express", window: 3 * day},
		ShippingMethodOvernight: {name: "overnight", window: 1 * day},
	}
}

// ParseShippingMethod accepts "standard", "express" or "overnight".
func ParseShippingMethod(s string) (ShippingMethod, error) {
	for m, info := range getShippingMethods() {
		if info.name == s {
			return m, nil
		}
	}
	return ShippingMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"shipping method", fmt.Errorf("%q is not one of standard, express, overnight", s))
}

func (m ShippingMethod) String() string {
	if info, ok := getShippingMethods()[m]; ok {
		return info.name
	}
	return "unknown"
}

func (m ShippingMethod) Validate() error {
	if _, ok := getShippingMethods()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("shipping method", fmt.Errorf("%d is not a valid method", m))
	}
	return nil
}

// DeliveryWindow is the promised transit time. Zero for an invalid method.
func (m ShippingMethod) DeliveryWindow() time.Duration {
	return getShippingMethods()[m].window
}

// EstimateDelivery returns from plus the delivery window.
func (m ShippingMethod) EstimateDelivery(from time.Time) time.Time {
	return from.Add(m.DeliveryWindow())
}

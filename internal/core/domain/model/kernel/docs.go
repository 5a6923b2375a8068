// Package kernel provides the value objects shared by the order and shipping aggregates.
//
// The package includes:
//   - ID: opaque UUID based identifier
//   - Price and Quantity: the numeric parts of an order line
//   - TrackingNumber: carrier tracking code issued when a shipment leaves
//   - Address: validated delivery destination
//   - ShippingMethod: service level and its delivery window
//   - Clock: source of "now" for state transitions
//
// Every value object is produced by a constructor that is the only validation point;
// a zero value fails Validate. Values are immutable and safe to share.
package kernel

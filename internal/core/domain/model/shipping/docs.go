// Package shipping implements the Shipping aggregate, the single shipment that
// delivers a paid order.
//
// Lifecycle: Pending -> Preparing -> Shipped -> Delivered, with Failed reachable
// from any state before Delivered. A tracking number is issued by Ship and lives
// on the Shipped status only.
package shipping

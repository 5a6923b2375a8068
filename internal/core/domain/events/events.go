// Package events holds the domain events emitted by the command orchestrators.
//
// Events are immutable records. Each carries the id of the aggregate it is about,
// the time it happened and kind specific fields; Marshal gives them a stable JSON
// envelope for outbox storage and log shipping.
package events

import (
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipping"

	"github.com/shopspring/decimal"
)

// Kind names an event type on the wire.
type Kind string

const (
	KindOrderPlaced       Kind = "order_placed"
	KindOrderPaid         Kind = "order_paid"
	KindShipmentStarted   Kind = "shipment_started"
	KindShipmentDelivered Kind = "shipment_delivered"
)

// Event is implemented only by the types in this package.
type Event interface {
	Kind() Kind
	AggregateID() kernel.ID
	OccurredAt() time.Time
	payload() any
}

type OrderPlaced struct {
	OrderID     kernel.ID
	CustomerID  kernel.ID
	TotalAmount decimal.Decimal
	LineCount   int
	At          time.Time
}

type OrderPaid struct {
	OrderID     kernel.ID
	TotalAmount decimal.Decimal
	At          time.Time
}

type ShipmentStarted struct {
	ShippingID     kernel.ID
	OrderID        kernel.ID
	TrackingNumber kernel.TrackingNumber
	At             time.Time
}

type ShipmentDelivered struct {
	ShippingID kernel.ID
	OrderID    kernel.ID
	At         time.Time
}

// NewOrderPlaced describes o at the moment it was placed.
func NewOrderPlaced(o order.Order) OrderPlaced {
	return OrderPlaced{
		OrderID:     o.ID(),
		CustomerID:  o.CustomerID(),
		TotalAmount: o.TotalAmount(),
		LineCount:   len(o.Lines()),
		At:          o.UpdatedAt(),
	}
}

func NewOrderPaid(o order.Order) OrderPaid {
	return OrderPaid{OrderID: o.ID(), TotalAmount: o.TotalAmount(), At: o.UpdatedAt()}
}

// NewShipmentStarted expects a Shipped shipment; otherwise TrackingNumber is the zero value.
func NewShipmentStarted(s shipping.Shipping) ShipmentStarted {
	tn, _ := s.TrackingNumber()
	return ShipmentStarted{ShippingID: s.ID(), OrderID: s.OrderID(), TrackingNumber: tn, At: s.UpdatedAt()}
}

func NewShipmentDelivered(s shipping.Shipping) ShipmentDelivered {
	return ShipmentDelivered{ShippingID: s.ID(), OrderID: s.OrderID(), At: s.UpdatedAt()}
}

func (e OrderPlaced) Kind() Kind             { return KindOrderPlaced }
func (e OrderPlaced) AggregateID() kernel.ID { return e.OrderID }
func (e OrderPlaced) OccurredAt() time.Time  { return e.At }

func (e OrderPaid) Kind() Kind             { return KindOrderPaid }
func (e OrderPaid) AggregateID() kernel.ID { return e.OrderID }
func (e OrderPaid) OccurredAt() time.Time  { return e.At }

func (e ShipmentStarted) Kind() Kind             { return KindShipmentStarted }
func (e ShipmentStarted) AggregateID() kernel.ID { return e.ShippingID }
func (e ShipmentStarted) OccurredAt() time.Time  { return e.At }

func (e ShipmentDelivered) Kind() Kind             { return KindShipmentDelivered }
func (e ShipmentDelivered) AggregateID() kernel.ID { return e.ShippingID }
func (e ShipmentDelivered) OccurredAt() time.Time  { return e.At }

func (e OrderPlaced) payload() any {
	return struct {
		CustomerID  string          `json:"customer_id"`
		TotalAmount decimal.Decimal `json:"total_amount"`
		LineCount   int             `json:"line_count"`
	}{e.CustomerID.String(), e.TotalAmount, e.LineCount}
}

func (e OrderPaid) payload() any {
	return struct {
		TotalAmount decimal.Decimal `json:"total_amount"`
	}{e.TotalAmount}
}

func (e ShipmentStarted) payload() any {
	return struct {
		OrderID        string `json:"order_id"`
		TrackingNumber string `json:"tracking_number"`
	}{e.OrderID.String(), e.TrackingNumber.String()}
}

func (e ShipmentDelivered) payload() any {
	return struct {
		OrderID string `json:"order_id"`
	}{e.OrderID.String()}
}

// Envelope is the serialized form of an Event.
type Envelope struct {
	Kind        Kind            `json:"kind"`
	AggregateID string          `json:"aggregate_id"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Payload     json.RawMessage `json:"payload"`
}

// Wrap builds the envelope of e.
func Wrap(e Event) (Envelope, error) {
	body, err := json.Marshal(e.payload())
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{
		Kind:        e.Kind(),
		AggregateID: e.AggregateID().String(),
		OccurredAt:  e.OccurredAt().UTC(),
		Payload:     body,
	}, nil
}

// Marshal encodes e as a JSON envelope.
func Marshal(e Event) ([]byte, error) {
	env, err := Wrap(e)
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}

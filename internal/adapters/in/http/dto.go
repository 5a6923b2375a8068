package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type Created struct {
	ID openapi_types.UUID `json:"id"`
}

type Dispatched struct {
	TrackingNumber string `json:"tracking_number"`
}

type PlaceOrderRequest struct {
	CustomerID openapi_types.UUID `json:"customer_id"`
	Lines      []OrderLineInput   `json:"lines"`
}

type OrderLineInput struct {
	ProductID   openapi_types.UUID `json:"product_id"`
	ProductName string             `json:"product_name"`
	UnitPrice   string             `json:"unit_price"`
	Quantity    int                `json:"quantity"`
}

type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

type CreateShipmentRequest struct {
	Address Address `json:"address"`
	Method  string  `json:"method"`
}

type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type Order struct {
	ID           string      `json:"id"`
	CustomerID   string      `json:"customer_id"`
	Status       string      `json:"status"`
	TotalAmount  string      `json:"total_amount"`
	Lines        []OrderLine `json:"lines"`
	PlacedAt     *time.Time  `json:"placed_at,omitempty"`
	PaidAt       *time.Time  `json:"paid_at,omitempty"`
	CancelledAt  *time.Time  `json:"cancelled_at,omitempty"`
	CancelReason string      `json:"cancel_reason,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type OrderLine struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	UnitPrice   string `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	Amount      string `json:"amount"`
}

type Shipment struct {
	ID                    string             `json:"id"`
	OrderID               string             `json:"order_id"`
	Status                string             `json:"status"`
	Method                string             `json:"method"`
	Address               Address            `json:"address"`
	TrackingNumber        string             `json:"tracking_number,omitempty"`
	EstimatedDeliveryDate openapi_types.Date `json:"estimated_delivery_date"`
	ShippedAt             *time.Time         `json:"shipped_at,omitempty"`
	DeliveredAt           *time.Time         `json:"delivered_at,omitempty"`
	FailedAt              *time.Time         `json:"failed_at,omitempty"`
	FailureReason         string             `json:"failure_reason,omitempty"`
}

type AwaitingShipmentOrder struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	TotalAmount string    `json:"total_amount"`
	ProductIDs  []string  `json:"product_ids"`
	PaidAt      time.Time `json:"paid_at"`
}

func money(d decimal.Decimal) string {
	return d.StringFixed(kernel.PriceScale)
}

func toOrder(v queries.OrderView) Order {
	lines := make([]OrderLine, 0, len(v.Lines))
	for _, l := range v.Lines {
		lines = append(lines, OrderLine{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			UnitPrice:   money(l.UnitPrice),
			Quantity:    l.Quantity,
			Amount:      money(l.Amount),
		})
	}
	return Order{
		ID:           v.ID,
		CustomerID:   v.CustomerID,
		Status:       v.Status,
		TotalAmount:  money(v.TotalAmount),
		Lines:        lines,
		PlacedAt:     v.PlacedAt,
		PaidAt:       v.PaidAt,
		CancelledAt:  v.CancelledAt,
		CancelReason: v.CancelReason,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func toShipment(v queries.ShipmentView) Shipment {
	return Shipment{
		ID:      v.ID,
		OrderID: v.OrderID,
		Status:  v.Status,
		Method:  v.Method,
		Address: Address{
			Street:     v.Address.Street,
			City:       v.Address.City,
			State:      v.Address.State,
			PostalCode: v.Address.PostalCode,
			Country:    v.Address.Country,
		},
		TrackingNumber:        v.TrackingNumber,
		EstimatedDeliveryDate: openapi_types.Date{Time: v.EstimatedDeliveryDate},
		ShippedAt:             v.ShippedAt,
		DeliveredAt:           v.DeliveredAt,
		FailedAt:              v.FailedAt,
		FailureReason:         v.FailureReason,
	}
}

func toAwaitingShipmentOrder(o queries.AwaitingShipmentOrder) AwaitingShipmentOrder {
	productIDs := make([]string, 0, len(o.ProductIDs))
	for _, id := range o.ProductIDs {
		productIDs = append(productIDs, id.String())
	}
	return AwaitingShipmentOrder{
		ID:          o.ID.String(),
		CustomerID:  o.CustomerID.String(),
		TotalAmount: money(o.TotalAmount),
		ProductIDs:  productIDs,
		PaidAt:      o.PaidAt,
	}
}

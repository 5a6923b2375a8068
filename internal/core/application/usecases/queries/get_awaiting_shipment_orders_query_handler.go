package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAwaitingShipmentOrdersQueryHandler reads straight from the PostgreSQL
// tables, so it is only available with the postgres storage driver.
type GetAwaitingShipmentOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetAwaitingShipmentOrdersQueryHandler(db *gorm.DB) GetAwaitingShipmentOrdersQueryHandler {
	return GetAwaitingShipmentOrdersQueryHandler{db: db}
}

// Handle returns paid orders without a shipment, longest waiting first.
func (h GetAwaitingShipmentOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAwaitingShipmentOrdersQuery,
) ([]AwaitingShipmentOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("query", err)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.total_amount,
			o.product_ids,
			o.paid_at
		FROM orders o
		LEFT JOIN shippings s ON s.order_id = o.id
		WHERE o.status = ? AND s.id IS NULL
		ORDER BY o.paid_at, o.id
		LIMIT ?
	`, order.StatusPaid.String(), query.Limit()).Rows()
	if err != nil {
		return nil, errs.NewRepositoryError("list orders awaiting shipment", err)
	}
	defer rows.Close()

	result := make([]AwaitingShipmentOrder, 0)
	for rows.Next() {
		var (
			id, customerID uuid.UUID
			total          decimal.Decimal
			productIDs     pq.StringArray
			paidAt         time.Time
		)
		if err = rows.Scan(&id, &customerID, &total, &productIDs, &paidAt); err != nil {
			return nil, errs.NewRepositoryError("scan order awaiting shipment", err)
		}

		row, mapErr := awaitingShipmentOrder(id, customerID, total, productIDs, paidAt)
		if mapErr != nil {
			return nil, errs.NewRepositoryError("decode order awaiting shipment", mapErr)
		}
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, errs.NewRepositoryError("list orders awaiting shipment", err)
	}

	return result, nil
}

func awaitingShipmentOrder(
	id, customerID uuid.UUID,
	total decimal.Decimal,
	productIDs pq.StringArray,
	paidAt time.Time,
) (AwaitingShipmentOrder, error) {
	orderID, err := kernel.IDFromUUID(id)
	if err != nil {
		return AwaitingShipmentOrder{}, err
	}
	customer, err := kernel.IDFromUUID(customerID)
	if err != nil {
		return AwaitingShipmentOrder{}, err
	}

	products := make([]kernel.ID, 0, len(productIDs))
	for _, raw := range productIDs {
		productID, parseErr := kernel.ParseID(raw)
		if parseErr != nil {
			return AwaitingShipmentOrder{}, parseErr
		}
		products = append(products, productID)
	}

	return AwaitingShipmentOrder{
		ID:          orderID,
		CustomerID:  customer,
		TotalAmount: total,
		ProductIDs:  products,
		PaidAt:      paidAt.UTC(),
	}, nil
}

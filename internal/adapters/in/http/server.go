// Package http is the echo driving adapter. It validates requests against the
// embedded OpenAPI document, calls the command and query handlers and maps the
// error taxonomy onto status codes.
package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers groups the use cases the server exposes. AwaitingShipment is nil
// when the storage driver cannot answer it; its route is then not registered.
type Handlers struct {
	PlaceOrder       *commands.PlaceOrderCommandHandler
	MarkOrderPaid    *commands.MarkOrderPaidCommandHandler
	CancelOrder      *commands.CancelOrderCommandHandler
	CreateShipment   *commands.CreateShipmentCommandHandler
	Shipments        *commands.ShipmentCommandHandler
	Orders           queries.OrderQueryHandler
	AwaitingShipment *queries.GetAwaitingShipmentOrdersQueryHandler
}

// Server translates HTTP requests into use case calls.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{handlers: handlers, logger: logger.With("component", "http")}
}

// NewEcho builds an echo instance with validation, swagger UI and all routes.
func NewEcho(s *Server) (*echo.Echo, error) {
	doc, err := LoadSpec()
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", validator)
	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/payment", s.MarkOrderPaid)
	api.POST("/orders/:orderId/cancellation", s.CancelOrder)
	api.POST("/orders/:orderId/shipment", s.CreateShipment)
	api.GET("/orders/:orderId/shipment", s.GetShipmentByOrder)
	api.GET("/customers/:customerId/orders", s.ListCustomerOrders)
	api.POST("/shipments/:shipmentId/preparation", s.StartShipmentPreparation)
	api.POST("/shipments/:shipmentId/dispatch", s.ShipShipment)
	api.POST("/shipments/:shipmentId/delivery", s.DeliverShipment)
	if s.handlers.AwaitingShipment != nil {
		api.GET("/awaiting-shipment", s.ListAwaitingShipment)
	}

	return e, nil
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(c echo.Context) error {
	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	customerID, err := kernel.IDFromUUID(req.CustomerID)
	if err != nil {
		return s.fail(c, err)
	}
	lines := make([]commands.LineInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		productID, idErr := kernel.IDFromUUID(l.ProductID)
		if idErr != nil {
			return s.fail(c, idErr)
		}
		price, priceErr := decimal.NewFromString(l.UnitPrice)
		if priceErr != nil {
			return s.fail(c, errs.NewValueIsInvalidErrorWithCause("unit price", priceErr))
		}
		lines = append(lines, commands.LineInput{
			ProductID:   productID,
			ProductName: l.ProductName,
			UnitPrice:   price,
			Quantity:    l.Quantity,
		})
	}

	cmd, err := commands.NewPlaceOrderCommand(customerID, lines)
	if err != nil {
		return s.fail(c, err)
	}
	id, err := s.handlers.PlaceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, Created{ID: id.UUID()})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := kernel.ParseID(c.Param("orderId"))
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(c, err)
	}
	view, err := s.handlers.Orders.GetOrder(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(view))
}

// MarkOrderPaid handles POST /api/v1/orders/{orderId}/payment.
func (s *Server) MarkOrderPaid(c echo.Context) error {
	orderID, err := kernel.ParseID(c.Param("orderId"))
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewMarkOrderPaidCommand(orderID)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.MarkOrderPaid.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancellation.
func (s *Server) CancelOrder(c echo.Context) error {
	orderID, err := kernel.ParseID(c.Param("orderId"))
	if err != nil {
		return s.fail(c, err)
	}
	var req CancelOrderRequest
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}
	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.CancelOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateShipment handles POST /api/v1/orders/{orderId}/shipment.
func (s *Server) CreateShipment(c echo.Context) error {
	orderID, err := kernel.ParseID(c.Param("orderId"))
	if err != nil {
		return s.fail(c, err)
	}
	var req CreateShipmentRequest
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}
	cmd, err := commands.NewCreateShipmentCommand(orderID, kernel.AddressFields{
		Street:     req.Address.Street,
		City:       req.Address.City,
		State:      req.Address.State,
		PostalCode: req.Address.PostalCode,
		Country:    req.Address.Country,
	}, req.Method)
	if err != nil {
		return s.fail(c, err)
	}
	id, err := s.handlers.CreateShipment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, Created{ID: id.UUID()})
}

// GetShipmentByOrder handles GET /api/v1/orders/{orderId}/shipment.
func (s *Server) GetShipmentByOrder(c echo.Context) error {
	orderID, err := kernel.ParseID(c.Param("orderId"))
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetShipmentByOrderQuery(orderID)
	if err != nil {
		return s.fail(c, err)
	}
	view, err := s.handlers.Orders.GetShipmentByOrder(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toShipment(view))
}

// ListCustomerOrders handles GET /api/v1/customers/{customerId}/orders.
func (s *Server) ListCustomerOrders(c echo.Context) error {
	customerID, err := kernel.ParseID(c.Param("customerId"))
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewListCustomerOrdersQuery(customerID)
	if err != nil {
		return s.fail(c, err)
	}
	views, err := s.handlers.Orders.ListCustomerOrders(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]Order, 0, len(views))
	for _, v := range views {
		response = append(response, toOrder(v))
	}
	return c.JSON(http.StatusOK, response)
}

// StartShipmentPreparation handles POST /api/v1/shipments/{shipmentId}/preparation.
func (s *Server) StartShipmentPreparation(c echo.Context) error {
	shipmentID, err := kernel.ParseID(c.Param("shipmentId"))
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewStartShipmentPreparationCommand(shipmentID)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.Shipments.HandleStartPreparation(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ShipShipment handles POST /api/v1/shipments/{shipmentId}/dispatch.
func (s *Server) ShipShipment(c echo.Context) error {
	shipmentID, err := kernel.ParseID(c.Param("shipmentId"))
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewShipShipmentCommand(shipmentID)
	if err != nil {
		return s.fail(c, err)
	}
	tracking, err := s.handlers.Shipments.HandleShip(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, Dispatched{TrackingNumber: tracking.String()})
}

// DeliverShipment handles POST /api/v1/shipments/{shipmentId}/delivery.
func (s *Server) DeliverShipment(c echo.Context) error {
	shipmentID, err := kernel.ParseID(c.Param("shipmentId"))
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewDeliverShipmentCommand(shipmentID)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.Shipments.HandleDeliver(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListAwaitingShipment handles GET /api/v1/awaiting-shipment.
func (s *Server) ListAwaitingShipment(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return s.badRequest(c, "limit must be an integer")
		}
		limit = parsed
	}

	query, err := queries.NewGetAwaitingShipmentOrdersQuery(limit)
	if err != nil {
		return s.fail(c, err)
	}
	rows, err := s.handlers.AwaitingShipment.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]AwaitingShipmentOrder, 0, len(rows))
	for _, row := range rows {
		response = append(response, toAwaitingShipmentOrder(row))
	}
	return c.JSON(http.StatusOK, response)
}

func (s *Server) badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Kind:    errs.KindValidation.String(),
		Message: message,
	})
}

// fail writes err with the status of its taxonomy kind. Repository and
// unclassified errors are logged and hidden from the client.
func (s *Server) fail(c echo.Context, err error) error {
	kind := errs.KindOf(err)
	status := statusOf(kind)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "Request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
		message = "Internal error"
	}
	return c.JSON(status, Error{Code: status, Kind: kind.String(), Message: message})
}

func statusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindBusinessRule:
		return http.StatusConflict
	case errs.KindRepository, errs.KindUnknown:
	}
	return http.StatusInternalServerError
}

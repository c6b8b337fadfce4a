package http

import (
	"net/http"

	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/ports"
	"ordertracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handlers groups the use case handlers served over HTTP.
type Handlers struct {
	CreateOrder        commands.CreateOrderCommandHandler
	UpdateOrder        commands.UpdateOrderCommandHandler
	CompleteOrder      commands.CompleteOrderCommandHandler
	SendMessage        commands.SendMessageCommandHandler
	SendDailySummary   commands.SendDailySummaryCommandHandler
	GetOrder           queries.GetOrderQueryHandler
	GetAllOrders       queries.GetAllOrdersQueryHandler
	GetNextOrderNumber queries.GetNextOrderNumberQueryHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	health   ports.ConnectivityChecker
	notifier ports.Notifier
	logger   *zap.Logger
}

// NewServer wires the server. notifier is used to reply on the text
// command channel.
func NewServer(
	handlers Handlers,
	health ports.ConnectivityChecker,
	notifier ports.Notifier,
	logger *zap.Logger,
) *Server {
	return &Server{
		handlers: handlers,
		health:   health,
		notifier: notifier,
		logger:   logger.With(zap.String("component", "http")),
	}
}

// RegisterRoutes mounts every endpoint on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders", s.ListOrders)
	e.GET("/orders/:orderId", s.GetOrder)
	e.PUT("/orders/:orderId", s.UpdateOrder)
	e.POST("/complete-order", s.CompleteOrder)
	e.GET("/next-order-number", s.NextOrderNumber)
	e.POST("/test-message", s.TestMessage)
	e.POST("/test-daily-notification", s.TestDailyNotification)
	e.GET("/health", s.Health)
	e.POST("/webhook", s.Webhook)
}

// CreateOrder godoc
//
//	@Summary	Create an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		body	body		CreateOrderRequest	true	"order"
//	@Success	201		{object}	OrderEnvelope
//	@Failure	400		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/orders [post]
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := decodeStrict(c, &req); err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewCreateOrderCommand(req.OrderID, req.details())
	if err != nil {
		return s.writeError(c, err)
	}

	created, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, OrderEnvelope{Success: true, Order: newOrderResponse(created)})
}

// UpdateOrder godoc
//
//	@Summary		Merge-update an order
//	@Description	Absent fields are kept. formData is merged key by key and triggers an operator summary.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			orderId	path		string				true	"order id"
//	@Param			body	body		UpdateOrderRequest	true	"patch"
//	@Success		200		{object}	OrderWriteEnvelope
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/orders/{orderId} [put]
func (s *Server) UpdateOrder(c echo.Context) error {
	orderID := c.Param("orderId")

	var req UpdateOrderRequest
	if err := decodeStrict(c, &req); err != nil {
		return s.writeError(c, err)
	}
	if req.OrderID != "" && req.OrderID != orderID {
		return s.writeError(c, errs.NewValueIsInvalidError("orderId"))
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, req.patch())
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.handlers.UpdateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, OrderWriteEnvelope{
		Success:          true,
		Order:            newOrderResponse(result.Order),
		NotificationSent: result.NotificationSent,
	})
}

// ListOrders godoc
//
//	@Summary	List all orders
//	@Tags		orders
//	@Produce	json
//	@Success	200	{object}	OrderListEnvelope
//	@Failure	500	{object}	ErrorResponse
//	@Router		/orders [get]
func (s *Server) ListOrders(c echo.Context) error {
	orders, err := s.handlers.GetAllOrders.Handle(c.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.writeError(c, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = newOrderResponse(o)
	}
	return c.JSON(http.StatusOK, OrderListEnvelope{Success: true, Orders: response})
}

// GetOrder godoc
//
//	@Summary	Fetch one order
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path		string	true	"order id"
//	@Success	200		{object}	OrderEnvelope
//	@Failure	404		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/orders/{orderId} [get]
func (s *Server) GetOrder(c echo.Context) error {
	query, err := queries.NewGetOrderQuery(c.Param("orderId"))
	if err != nil {
		return s.writeError(c, err)
	}

	found, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, OrderEnvelope{Success: true, Order: newOrderResponse(found)})
}

// CompleteOrder godoc
//
//	@Summary	Mark an order completed
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		body	body		CompleteOrderRequest	true	"order id"
//	@Success	200		{object}	OrderWriteEnvelope
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/complete-order [post]
func (s *Server) CompleteOrder(c echo.Context) error {
	var req CompleteOrderRequest
	if err := decodeStrict(c, &req); err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(req.OrderID)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.handlers.CompleteOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, OrderWriteEnvelope{
		Success:          true,
		Order:            newOrderResponse(result.Order),
		NotificationSent: result.NotificationSent,
	})
}

// NextOrderNumber godoc
//
//	@Summary	Compute the next order number
//	@Tags		orders
//	@Produce	json
//	@Success	200	{object}	OrderNumberEnvelope
//	@Router		/next-order-number [get]
func (s *Server) NextOrderNumber(c echo.Context) error {
	number, err := s.handlers.GetNextOrderNumber.Handle(c.Request().Context(), queries.NewGetNextOrderNumberQuery())
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, OrderNumberEnvelope{Success: true, OrderNumber: number})
}

// TestMessage godoc
//
//	@Summary	Send an arbitrary message
//	@Tags		diagnostics
//	@Accept		json
//	@Produce	json
//	@Param		body	body		TestMessageRequest	true	"message"
//	@Success	200		{object}	MessageEnvelope
//	@Failure	400		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/test-message [post]
func (s *Server) TestMessage(c echo.Context) error {
	var req TestMessageRequest
	if err := decodeStrict(c, &req); err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewSendMessageCommand(req.To, req.Message)
	if err != nil {
		return s.writeError(c, err)
	}

	id, err := s.handlers.SendMessage.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageEnvelope{Success: true, MessageID: id})
}

// TestDailyNotification godoc
//
//	@Summary	Run the daily summary now
//	@Tags		diagnostics
//	@Produce	json
//	@Success	200	{object}	DailySummaryEnvelope
//	@Failure	500	{object}	ErrorResponse
//	@Router		/test-daily-notification [post]
func (s *Server) TestDailyNotification(c echo.Context) error {
	result, err := s.handlers.SendDailySummary.Handle(c.Request().Context(), commands.NewSendDailySummaryCommand())
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, DailySummaryEnvelope{
		Success:        true,
		InProgress:     result.InProgress,
		PaymentPending: result.PaymentPending,
		MessageID:      result.DeliveryID,
	})
}

// Health godoc
//
//	@Summary	Store connectivity check
//	@Tags		diagnostics
//	@Produce	json
//	@Success	200	{object}	HealthEnvelope
//	@Failure	503	{object}	ErrorResponse
//	@Router		/health [get]
func (s *Server) Health(c echo.Context) error {
	if err := s.health.CheckConnectivity(c.Request().Context()); err != nil {
		s.logger.Warn("store connectivity check failed", zap.Error(err))
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "store unreachable"})
	}
	return c.JSON(http.StatusOK, HealthEnvelope{Success: true, Status: "ok"})
}

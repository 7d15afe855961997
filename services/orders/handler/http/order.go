package http

import (
	"errors"
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/kurirmed/dispatch/internal/pkg/apperrors"
	"github.com/kurirmed/dispatch/internal/pkg/logger"
	"github.com/kurirmed/dispatch/internal/pkg/models"
	nrpkg "github.com/kurirmed/dispatch/internal/pkg/newrelic"
	"github.com/kurirmed/dispatch/internal/utils"
	"github.com/kurirmed/dispatch/services/orders"
	"github.com/labstack/echo/v4"
)

// OrderHandler handles HTTP requests for order lifecycle operations
type OrderHandler struct {
	orderUC orders.OrderUC
}

// NewOrderHandler creates a new order HTTP handler
func NewOrderHandler(orderUC orders.OrderUC) *OrderHandler {
	return &OrderHandler{orderUC: orderUC}
}

// RegisterRoutes registers order endpoints on the router group
func (h *OrderHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/orders/:orderID/transition", h.Transition)
	g.GET("/orders/:orderID", h.GetOrder)
	g.GET("/drivers/:driverID/orders", h.ListActiveByDriver)
	g.POST("/orders/:orderID/pod", h.SubmitProofOfDelivery)
	g.PUT("/orders/:orderID/payment-method", h.UpdatePaymentMethod)
}

// Transition handles a status transition request
func (h *OrderHandler) Transition(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Orders.Transition")

	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	var req models.TransitionRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Target == "" {
		return utils.BadRequestResponse(c, "Target status is required")
	}
	if req.Actor == "" {
		return utils.BadRequestResponse(c, "Actor is required")
	}

	result, err := h.orderUC.Transition(c.Request().Context(), orderID, req)
	if err != nil {
		logger.Warn("Transition rejected",
			logger.String("order_id", orderID.String()),
			logger.String("target", string(req.Target)),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return writeOrderError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Transition applied", result)
}

// GetOrder returns an order with its status history
func (h *OrderHandler) GetOrder(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Orders.GetOrder")

	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return writeOrderError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Order retrieved", order)
}

// ListActiveByDriver returns a driver's active orders
func (h *OrderHandler) ListActiveByDriver(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Orders.ListActiveByDriver")

	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	list, err := h.orderUC.ListActiveByDriver(c.Request().Context(), driverID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return writeOrderError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Active orders retrieved", list)
}

// SubmitProofOfDelivery stores delivery evidence for an order
func (h *OrderHandler) SubmitProofOfDelivery(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Orders.SubmitProofOfDelivery")

	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	var req struct {
		models.PODPayload
		Actor string `json:"actor"`
	}
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.SignatureRef == "" && req.PhotoRef == "" {
		return utils.BadRequestResponse(c, "A signature or photo reference is required")
	}

	if err := h.orderUC.SubmitProofOfDelivery(c.Request().Context(), orderID, req.PODPayload, req.Actor); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return writeOrderError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Proof of delivery stored", nil)
}

// UpdatePaymentMethod changes how an order is paid
func (h *OrderHandler) UpdatePaymentMethod(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Orders.UpdatePaymentMethod")

	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	var req struct {
		Method models.PaymentMethod `json:"method"`
		Actor  string               `json:"actor"`
	}
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.orderUC.UpdatePaymentMethod(c.Request().Context(), orderID, req.Method, req.Actor); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return writeOrderError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Payment method updated", nil)
}

// writeOrderError maps use case errors onto HTTP statuses
func writeOrderError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrOrderNotFound),
		errors.Is(err, apperrors.ErrDriverNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrAlreadyAssigned),
		errors.Is(err, apperrors.ErrAlreadyInState),
		errors.Is(err, apperrors.ErrDriverUnavailable):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrReasonRequired):
		return utils.BadRequestResponse(c, err.Error())
	case apperrors.IsInvalidTransition(err), errors.Is(err, apperrors.ErrStaleAction):
		return utils.UnprocessableEntityResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, "Request failed: "+err.Error())
	}
}

package http

import (
	"errors"
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/kurirmed/dispatch/internal/pkg/apperrors"
	"github.com/kurirmed/dispatch/internal/pkg/models"
	nrpkg "github.com/kurirmed/dispatch/internal/pkg/newrelic"
	"github.com/kurirmed/dispatch/internal/utils"
	"github.com/kurirmed/dispatch/services/dispatch"
	"github.com/labstack/echo/v4"
)

// maxBatchSize bounds one batch request; larger batches are split by the caller
const maxBatchSize = 100

// DispatchHandler handles HTTP requests for assignment operations
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewDispatchHandler creates a new dispatch HTTP handler
func NewDispatchHandler(dispatchUC dispatch.DispatchUC) *DispatchHandler {
	return &DispatchHandler{dispatchUC: dispatchUC}
}

// RegisterRoutes registers dispatch endpoints on the router group
func (h *DispatchHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/assignments", h.Assign)
	g.POST("/assignments/batch", h.AssignBatch)
	g.POST("/orders/:orderID/unassign", h.Unassign)
	g.PUT("/drivers/:driverID/availability", h.SetAvailability)
}

// Assign handles a single order-driver assignment
func (h *DispatchHandler) Assign(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Dispatch.Assign")

	var req struct {
		models.AssignmentPair
		Actor string `json:"actor"`
	}
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.OrderID == uuid.Nil || req.DriverID == uuid.Nil {
		return utils.BadRequestResponse(c, "Order ID and driver ID are required")
	}

	result := h.dispatchUC.Assign(c.Request().Context(), req.AssignmentPair, req.Actor)
	if !result.Success {
		return writeAssignFailure(c, result)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Order assigned", result)
}

// AssignBatch handles a batch of independent assignments. The response is
// always 200: each pair carries its own outcome.
func (h *DispatchHandler) AssignBatch(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Dispatch.AssignBatch")

	var req struct {
		models.AssignmentBatchRequest
		Actor string `json:"actor"`
	}
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if len(req.Pairs) == 0 {
		return utils.BadRequestResponse(c, "At least one assignment pair is required")
	}
	if len(req.Pairs) > maxBatchSize {
		return utils.BadRequestResponse(c, "Batch size exceeds limit")
	}

	results := h.dispatchUC.AssignBatch(c.Request().Context(), req.AssignmentBatchRequest, req.Actor)
	return utils.SuccessResponse(c, nethttp.StatusOK, "Batch processed", results)
}

// Unassign releases an order back to the pending pool
func (h *DispatchHandler) Unassign(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Dispatch.Unassign")

	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	var req struct {
		Actor string `json:"actor"`
		Note  string `json:"note"`
	}
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.dispatchUC.Unassign(c.Request().Context(), orderID, req.Actor, req.Note); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		switch {
		case errors.Is(err, apperrors.ErrOrderNotFound):
			return utils.NotFoundResponse(c, err.Error())
		case apperrors.IsInvalidTransition(err), errors.Is(err, apperrors.ErrAlreadyInState):
			return utils.UnprocessableEntityResponse(c, err.Error())
		default:
			return utils.InternalServerErrorResponse(c, "Unassign failed: "+err.Error())
		}
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Order unassigned", nil)
}

// SetAvailability toggles a driver's availability flag
func (h *DispatchHandler) SetAvailability(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Dispatch.SetAvailability")

	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	var req struct {
		Available bool `json:"available"`
	}
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.dispatchUC.SetDriverAvailability(c.Request().Context(), driverID, req.Available); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		if errors.Is(err, apperrors.ErrDriverNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "Availability update failed: "+err.Error())
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Driver availability updated", nil)
}

// writeAssignFailure maps a failed assignment result onto an HTTP status
func writeAssignFailure(c echo.Context, result *models.AssignmentResult) error {
	switch result.Error {
	case models.AssignErrAlreadyAssigned, models.AssignErrDriverUnavailable:
		return c.JSON(nethttp.StatusConflict, result)
	case models.AssignErrInvalidTransition:
		return c.JSON(nethttp.StatusUnprocessableEntity, result)
	case models.AssignErrOrderNotFound, models.AssignErrDriverNotFound:
		return c.JSON(nethttp.StatusNotFound, result)
	default:
		return c.JSON(nethttp.StatusInternalServerError, result)
	}
}

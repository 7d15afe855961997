package http

import (
	"errors"
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/kurirmed/dispatch/internal/pkg/apperrors"
	"github.com/kurirmed/dispatch/internal/pkg/models"
	nrpkg "github.com/kurirmed/dispatch/internal/pkg/newrelic"
	"github.com/kurirmed/dispatch/internal/utils"
	"github.com/kurirmed/dispatch/services/location"
	"github.com/labstack/echo/v4"
)

// LocationHandler handles HTTP requests for driver location tracking
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{locationUC: locationUC}
}

// RegisterRoutes registers location endpoints on the router group
func (h *LocationHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/drivers/:driverID/location", h.RecordPing)
	g.GET("/drivers/:driverID/location", h.ResolveLocation)
}

// RecordPing accepts a position report from a driver device. Accepted pings
// return 202; the broadcast happens asynchronously over NATS.
func (h *LocationHandler) RecordPing(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Location.RecordPing")

	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	var ping models.LocationPing
	if err := c.Bind(&ping); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	ping.DriverID = driverID

	if err := h.locationUC.RecordPing(c.Request().Context(), ping); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		if errors.Is(err, apperrors.ErrInvalidCoordinate) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "Failed to record ping: "+err.Error())
	}

	return utils.SuccessResponse(c, nethttp.StatusAccepted, "Ping accepted", nil)
}

// ResolveLocation returns the driver's believed position
func (h *LocationHandler) ResolveLocation(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Location.ResolveLocation")

	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	resolved, err := h.locationUC.ResolveLocation(c.Request().Context(), driverID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		if errors.Is(err, apperrors.ErrNoLocation) {
			return utils.NotFoundResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "Failed to resolve location: "+err.Error())
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Location resolved", resolved)
}

package http

import (
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/kurirmed/dispatch/internal/pkg/models"
	nrpkg "github.com/kurirmed/dispatch/internal/pkg/newrelic"
	"github.com/kurirmed/dispatch/internal/utils"
	syncsvc "github.com/kurirmed/dispatch/services/sync"
	"github.com/labstack/echo/v4"
)

// SyncHandler handles HTTP requests for offline action replay
type SyncHandler struct {
	syncUC syncsvc.SyncUC
}

// NewSyncHandler creates a new sync HTTP handler
func NewSyncHandler(syncUC syncsvc.SyncUC) *SyncHandler {
	return &SyncHandler{syncUC: syncUC}
}

// RegisterRoutes registers sync endpoints on the router group
func (h *SyncHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/sync/actions", h.Apply)
}

// Apply replays one queued action. The response is 200 for every terminal
// outcome, including rejections: the device stops retrying either way. A 5xx
// means nothing was recorded and the device must retry.
func (h *SyncHandler) Apply(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Sync.Apply")

	var action models.QueuedAction
	if err := c.Bind(&action); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if action.ClientActionID == uuid.Nil {
		return utils.BadRequestResponse(c, "Client action ID is required")
	}
	if action.OrderID == uuid.Nil {
		return utils.BadRequestResponse(c, "Order ID is required")
	}

	result, err := h.syncUC.Apply(c.Request().Context(), action)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Replay failed: "+err.Error())
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Action processed", result)
}

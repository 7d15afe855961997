// Package websocket exposes the dashboard's observer endpoint. Observers
// authenticate with a JWT, then receive order and driver events pushed
// through the fan-out hub until they disconnect or fall too far behind.
package websocket

import (
	nethttp "net/http"
	"strings"

	"github.com/gorilla/websocket"
	jwtpkg "github.com/kurirmed/dispatch/internal/pkg/jwt"
	"github.com/kurirmed/dispatch/internal/pkg/logger"
	"github.com/kurirmed/dispatch/internal/pkg/models"
	ws "github.com/kurirmed/dispatch/internal/pkg/websocket"
	"github.com/kurirmed/dispatch/internal/utils"
	"github.com/labstack/echo/v4"
)

// Handler upgrades observer connections and binds them to the hub
type Handler struct {
	cfg      *models.Config
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

// NewHandler creates a dashboard WebSocket handler
func NewHandler(cfg *models.Config, hub *ws.Hub) *Handler {
	return &Handler{
		cfg: cfg,
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *nethttp.Request) bool {
				return true
			},
		},
	}
}

// RegisterRoutes registers the observer endpoint
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/dashboard", h.HandleConnection)
}

// HandleConnection authenticates the observer and streams events until the
// connection drops
func (h *Handler) HandleConnection(c echo.Context) error {
	claims, err := h.authenticate(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid or missing token")
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Warn("WebSocket upgrade failed",
			logger.String("user_id", claims.UserID),
			logger.Err(err))
		return err
	}

	observer := h.hub.Register(claims.UserID, conn)
	logger.Info("Dashboard observer connected",
		logger.String("observer_id", observer.ID),
		logger.String("user_id", claims.UserID))

	defer func() {
		h.hub.Unregister(observer.ID)
		logger.Info("Dashboard observer disconnected",
			logger.String("observer_id", observer.ID),
			logger.String("user_id", claims.UserID))
	}()

	// Inbound traffic is only read to detect disconnects; the dashboard is
	// a one-way stream.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return nil
		}
	}
}

// authenticate accepts the token from the query string or a bearer header;
// browsers cannot set headers on WebSocket dials, devices can
func (h *Handler) authenticate(c echo.Context) (*models.ObserverClaims, error) {
	token := c.QueryParam("token")
	if token == "" {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token = strings.TrimPrefix(header, "Bearer ")
	}
	return jwtpkg.ValidateToken(token, h.cfg.JWT)
}

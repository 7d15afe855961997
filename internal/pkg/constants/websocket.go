package constants

// WebSocket event types delivered to dashboard observers
const (
	EventOrderStatusChanged    = "order_status_changed"
	EventDriverLocationChanged = "driver_location_changed"
)

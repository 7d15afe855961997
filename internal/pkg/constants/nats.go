package constants

// NATS subjects
const (
	// Order lifecycle
	SubjectOrderStatusChanged = "order.status"
	SubjectOrderAssigned      = "order.assigned"

	// Location tracking
	SubjectDriverLocation = "driver.location"

	// Push notification triggers (delivery channel is external)
	SubjectPushNotification = "notify.push"
)

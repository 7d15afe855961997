package constants

// Redis key formats
const (
	// KeyDriverLocation holds the most recent valid ping per driver.
	// Format: driver:location:{driver_id}
	KeyDriverLocation = "driver:location:%s"

	// KeySyncQueue holds the offline action queue for a courier device.
	// Format: sync:queue:{device_id}
	KeySyncQueue = "sync:queue:%s"
)

// Redis hash fields for driver location entries
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldTimestamp = "ts"
	FieldGeohash   = "geo"
)

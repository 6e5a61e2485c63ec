package hub

import "github.com/MKhiriev/go-notes-sync/internal/metrics"

const subsystem = "hub"

const (
	reasonBufferFull    = "buffer_full"
	reasonNoSubscribers = "no_subscribers"
)

var (
	droppedNotifications = metrics.NewCounter(
		"dropped_notifications",
		subsystem,
		"number of notifications not delivered to a session",
		[]string{"hub", "method", "reason"},
	)

	activeSubscriptions = metrics.NewGauge(
		"subscriptions",
		subsystem,
		"number of sessions subscribed to live notifications",
		[]string{"hub"},
	)
)

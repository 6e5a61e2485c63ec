package ws

import "github.com/MKhiriev/go-notes-sync/internal/metrics"

const subsystem = "ws"

var (
	openSessions = metrics.NewGauge(
		"sessions",
		subsystem,
		"number of open sync sessions",
		[]string{"hub", "codec"},
	)

	invocations = metrics.NewCounter(
		"invocations",
		subsystem,
		"number of client invocations by outcome",
		[]string{"hub", "target", "outcome"},
	)

	rejectedHandshakes = metrics.NewCounter(
		"rejected_handshakes",
		subsystem,
		"number of upgrade requests that failed",
		[]string{"hub"},
	)
)

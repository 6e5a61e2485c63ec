package workers

import "github.com/MKhiriev/go-notes-sync/internal/metrics"

const subsystem = "workers"

var (
	sweptLeases = metrics.NewCounter(
		"swept_fetch_leases",
		subsystem,
		"number of expired fetch leases removed",
		[]string{},
	).WithLabelValues()

	storageUp = metrics.NewGauge(
		"storage_up",
		subsystem,
		"whether the storage backend answered the last ping",
		[]string{"backend"},
	)
)

package service

import (
	"github.com/MKhiriev/go-notes-sync/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

const subsystem = "sync"

// Protocol generation label values.
const (
	generationCursor = "v1"
	generationDevice = "v2"
)

var (
	pushes = metrics.NewCounter(
		"pushes",
		subsystem,
		"number of push batches by outcome",
		[]string{"generation", "outcome"},
	)

	itemsStored = metrics.NewCounter(
		"items_stored",
		subsystem,
		"number of items accepted from pushes",
		[]string{"generation"},
	)

	itemsSent = metrics.NewCounter(
		"items_sent",
		subsystem,
		"number of items sent to fetching devices",
		[]string{"generation"},
	)

	chunksSent = metrics.NewCounter(
		"chunks_sent",
		subsystem,
		"number of acknowledged item chunks",
		[]string{"outcome"},
	)

	fetches = metrics.NewCounter(
		"fetches",
		subsystem,
		"number of backlog fetches by outcome",
		[]string{"generation", "outcome"},
	)

	fetchDuration = metrics.NewHistogramWithBuckets(
		"fetch_duration_seconds",
		subsystem,
		"duration of backlog fetches",
		[]string{"generation"},
		prometheus.ExponentialBuckets(0.01, 4, 10),
	)

	activeFetchLeases = metrics.NewGauge(
		"fetch_leases",
		subsystem,
		"number of generation 1 fetches holding a lease",
		[]string{},
	)

	guardRejections = metrics.NewCounter(
		"guard_rejections",
		subsystem,
		"number of operations rejected because the same one was running",
		[]string{"op"},
	)

	trackerOperations = metrics.NewCounter(
		"tracker_operations",
		subsystem,
		"number of device tracker writes by outcome",
		[]string{"op", "outcome"},
	)
)

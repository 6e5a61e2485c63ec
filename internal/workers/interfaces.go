// Package workers runs the background jobs of the sync server.
//
// Every job implements [Worker]; [Workers] runs them together and stops them
// all when the context ends or one of them fails.
package workers

import (
	"context"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Worker is a background job.
//
// Run blocks until ctx ends and then returns nil. A non-nil error stops the
// other workers started by the same [Workers].
type Worker interface {
	Run(ctx context.Context) error
}

// HealthSetter records serving statuses. It is satisfied by
// *health.Server of google.golang.org/grpc/health.
type HealthSetter interface {
	SetServingStatus(service string, servingStatus healthpb.HealthCheckResponse_ServingStatus)
}

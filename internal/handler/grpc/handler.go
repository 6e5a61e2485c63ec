package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

// Handler is the root gRPC transport handler.
//
// The sync protocol itself runs over websockets, so the gRPC listener only
// serves the standard health service, which load balancers and orchestrators
// probe. Its status is kept current by the storage health worker.
type Handler struct {
	// health answers grpc.health.v1.Health/Check and Watch.
	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] serving the statuses of health.
func NewHandler(health *health.Server, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		health: health,
		logger: logger,
	}
}

// Register attaches the health and reflection services to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
	reflection.Register(server)
}

// UnaryLogging logs every unary call with its duration and status code.
func (h *Handler) UnaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := next(h.logger.WithContext(ctx), req)

	event := h.logger.Debug()
	if err != nil {
		event = h.logger.Warn().Err(err)
	}
	event.
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Msg("gRPC call")

	return resp, err
}

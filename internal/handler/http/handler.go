package http

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-sync/internal/config"
	"github.com/MKhiriev/go-notes-sync/internal/handler/ws"
	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/service"
	"github.com/MKhiriev/go-notes-sync/internal/utils"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthChecker reports the serving status of the server. It is satisfied
// by *health.Server of grpc-go, which the storage probe keeps current.
type HealthChecker interface {
	Check(ctx context.Context, in *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error)
}

type Handler struct {
	services *service.Services
	hubs     *ws.Server
	health   HealthChecker

	requestTimeout time.Duration
	ids            *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, hubs *ws.Server, health HealthChecker, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		hubs:           hubs,
		health:         health,
		requestTimeout: cfg.RequestTimeout,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

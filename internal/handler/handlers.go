package handler

import (
	"github.com/MKhiriev/go-notes-sync/internal/config"
	"github.com/MKhiriev/go-notes-sync/internal/handler/grpc"
	"github.com/MKhiriev/go-notes-sync/internal/handler/http"
	"github.com/MKhiriev/go-notes-sync/internal/handler/ws"
	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/service"
	"google.golang.org/grpc/health"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler

	// Hubs serves the websocket sync hubs mounted by HTTP.
	Hubs *ws.Server
}

func NewHandlers(services *service.Services, health *health.Server, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.Hubs = ws.NewServer(services, cfg.Server, cfg.Sync, logger)
		handlers.HTTP = http.NewHandler(services, handlers.Hubs, health, cfg.Server, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(health, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

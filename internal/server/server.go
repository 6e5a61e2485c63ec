package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-notes-sync/internal/config"
	"github.com/MKhiriev/go-notes-sync/internal/handler"
	"github.com/MKhiriev/go-notes-sync/internal/handler/ws"
	"github.com/MKhiriev/go-notes-sync/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer

	// hubs holds the websocket sessions, which http.Server.Shutdown does not
	// track once hijacked.
	hubs *ws.Server

	workers BackgroundRunner

	logger *logger.Logger
}

// NewServer creates the servers enabled in cfg. workers may be nil.
func NewServer(handlers *handler.Handlers, workers BackgroundRunner, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		hubs:    handlers.Hubs,
		workers: workers,
		logger:  logger,
	}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Str("func", "server.RunServer").Msg("error running server")
	}
}

// Shutdown closes the websocket sessions first so that their handlers
// return, then stops the listeners.
func (s *server) Shutdown() {
	if s.hubs != nil {
		s.hubs.Shutdown()
	}

	// finish HTTP server
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

// run serves until ctx ends or a worker fails, then shuts everything down
// and waits for the workers.
func (s *server) run(ctx context.Context) error {
	// check if any server was created
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoServersToRun
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		background sync.WaitGroup
		workersErr error
	)
	if s.workers != nil {
		background.Go(func() {
			workersErr = s.workers.Run(ctx)
			// a failed worker takes the server down
			cancel()
		})
	}

	// launch all created servers
	if s.httpServer != nil {
		s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("launching HTTP server")
		go s.httpServer.RunServer()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Str("address", s.gRPCServer.gRPCNetListener.Addr().String()).Msg("launching gRPC server")
		go s.gRPCServer.RunServer()
	}

	<-ctx.Done()

	// finish started servers
	s.Shutdown()
	background.Wait()
	s.logger.Info().Msg("server shut down gracefully")

	return workersErr
}

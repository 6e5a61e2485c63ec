package server

import (
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/go-notes-sync/internal/config"
	myGRPC "github.com/MKhiriev/go-notes-sync/internal/handler/grpc"
	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
)

var keepaliveParams = keepalive.ServerParameters{
	MaxConnectionIdle: 2 * time.Hour,
	Time:              time.Minute,
	Timeout:           20 * time.Second,
}

type grpcServer struct {
	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("listen gRPC on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer(
		grpc.KeepaliveParams(keepaliveParams),
		grpc.UnaryInterceptor(handler.UnaryLogging),
	)
	handler.Register(server)

	return &grpcServer{
		server:          server,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Err(err).Str("func", "grpcServer.RunServer").Msg("gRPC server Serve")
	}
}

// Shutdown waits for running calls, but health Watch streams never end on
// their own, so the server is stopped hard after shutdownTimeout.
func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(shutdownTimeout):
		g.logger.Warn().Msg("gRPC graceful stop timed out")
		g.server.Stop()
	}
}

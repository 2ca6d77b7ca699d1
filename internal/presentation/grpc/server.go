package grpc

import (
	"fmt"
	"log/slog"
	"net"
	"os"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/academix/ledger-service/pkg/auth"
)

// Server wraps the gRPC server with ledger service handlers.
type Server struct {
	grpcServer   *grpclib.Server
	healthServer *health.Server
	handler      *LedgerHandler
	serviceName  string
	port         int
	logger       *slog.Logger
}

// NewServer creates a new gRPC server with the provided handler.
func NewServer(handler *LedgerHandler, serviceName string, port int, logger *slog.Logger, jwtService *auth.JWTService) *Server {
	// Add auth interceptor, skipping health check methods.
	authInterceptor := auth.UnaryAuthInterceptor(jwtService, []string{
		"/grpc.health.v1.Health/Check",
		"/grpc.health.v1.Health/Watch",
	})
	grpcServer := grpclib.NewServer(grpclib.UnaryInterceptor(authInterceptor))
	healthServer := health.NewServer()

	healthpb.RegisterHealthServer(grpcServer, healthServer)
	RegisterLedgerServiceServer(grpcServer, handler)

	// Only enable reflection when GRPC_REFLECTION=true.
	if os.Getenv("GRPC_REFLECTION") == "true" {
		reflection.Register(grpcServer)
	}

	return &Server{
		grpcServer:   grpcServer,
		healthServer: healthServer,
		handler:      handler,
		serviceName:  serviceName,
		port:         port,
		logger:       logger,
	}
}

// Start begins listening for gRPC connections.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", s.port, err)
	}

	s.logger.Info("gRPC server starting", "port", s.port)
	s.healthServer.SetServingStatus(s.serviceName, healthpb.HealthCheckResponse_SERVING)

	if err := s.grpcServer.Serve(listener); err != nil {
		return fmt.Errorf("gRPC server failed: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the gRPC server.
func (s *Server) Stop() {
	s.logger.Info("stopping gRPC server")
	s.healthServer.SetServingStatus(s.serviceName, healthpb.HealthCheckResponse_NOT_SERVING)
	s.grpcServer.GracefulStop()
}

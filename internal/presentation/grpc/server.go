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

	"github.com/agrocredito/agrocredito/internal/infrastructure/config"
	"github.com/agrocredito/agrocredito/pkg/auth"
	"github.com/agrocredito/agrocredito/pkg/tlsutil"
)

// Health checks stay reachable without a token.
var unauthenticatedMethods = []string{
	"/grpc.health.v1.Health/Check",
	"/grpc.health.v1.Health/Watch",
}

// Server wraps the gRPC server with the credit handler registered.
type Server struct {
	gs     *grpclib.Server
	logger *slog.Logger
}

// NewServer assembles the server: auth interceptor, optional TLS, health
// service, and reflection when GRPC_REFLECTION=true.
func NewServer(handler *CreditHandler, logger *slog.Logger, jwtService *auth.JWTService, tlsCfg config.TLSConfig) *Server {
	opts := []grpclib.ServerOption{
		grpclib.UnaryInterceptor(auth.UnaryAuthInterceptor(jwtService, unauthenticatedMethods)),
	}

	if creds := loadCreds(tlsCfg, logger); creds != nil {
		opts = append(opts, creds)
	}

	gs := grpclib.NewServer(opts...)

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(gs, healthSrv)
	healthSrv.SetServingStatus("agrocredito", healthpb.HealthCheckResponse_SERVING)

	if os.Getenv("GRPC_REFLECTION") == "true" {
		reflection.Register(gs)
	}

	RegisterCreditServiceServer(gs, handler)

	return &Server{gs: gs, logger: logger}
}

// loadCreds returns a Creds option, or nil when TLS is off or the key pair
// cannot be loaded. A broken key pair degrades to plaintext with a log line
// rather than refusing to start.
func loadCreds(tlsCfg config.TLSConfig, logger *slog.Logger) grpclib.ServerOption {
	if !tlsCfg.Enabled || tlsCfg.CertFile == "" || tlsCfg.KeyFile == "" {
		logger.Info("gRPC TLS not configured, running without TLS")
		return nil
	}
	creds, err := tlsutil.ServerTLSConfig(tlsCfg.CertFile, tlsCfg.KeyFile)
	if err != nil {
		logger.Error("failed to load TLS credentials, starting without TLS", "error", err)
		return nil
	}
	logger.Info("gRPC TLS enabled", "cert", tlsCfg.CertFile)
	return grpclib.Creds(creds)
}

// Serve listens on addr and blocks until the server stops.
func (s *Server) Serve(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	s.logger.Info("gRPC server listening", "addr", addr)
	return s.gs.Serve(lis)
}

// GracefulStop drains in-flight calls and stops the server.
func (s *Server) GracefulStop() {
	s.logger.Info("gRPC server shutting down")
	s.gs.GracefulStop()
}

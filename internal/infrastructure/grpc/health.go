package grpc

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"

	apperrors "github.com/Aixtrade/nothing/pkg/errors"
)

// HealthServer 暴露标准 grpc.health.v1.Health 服务
type HealthServer struct {
	service  string
	addr     string
	server   *grpc.Server
	health   *health.Server
	listener net.Listener
	logger   *zap.Logger
	serving  atomic.Bool
}

// NewHealthServer 创建健康检查服务，初始状态为 NOT_SERVING
func NewHealthServer(service, addr string, logger *zap.Logger) *HealthServer {
	logger = logger.With(zap.String("listener", "grpc"))

	server := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle: 5 * time.Minute,
			Time:              30 * time.Second,
			Timeout:           10 * time.Second,
		}),
		grpc.ChainUnaryInterceptor(
			RecoveryUnaryInterceptor(logger),
			LoggingUnaryInterceptor(logger),
		),
		grpc.ChainStreamInterceptor(
			RecoveryStreamInterceptor(logger),
			LoggingStreamInterceptor(logger),
		),
	)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(server, hs)

	s := &HealthServer{
		service: service,
		addr:    addr,
		server:  server,
		health:  hs,
		logger:  logger,
	}
	s.SetServing(false)
	return s
}

func (s *HealthServer) Listen() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return apperrors.NewListenError("grpc", s.addr, err)
	}
	s.listener = lis
	return nil
}

// Serve 阻塞直到 Shutdown
func (s *HealthServer) Serve() error {
	if s.listener == nil {
		return apperrors.NewListenError("grpc", s.addr, nil)
	}

	s.logger.Info("starting grpc health server", zap.String("addr", s.Addr()))
	s.serving.Store(true)
	defer s.serving.Store(false)

	if err := s.server.Serve(s.listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

// SetServing 同步更新整体状态与具名服务状态
func (s *HealthServer) SetServing(serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", st)
	s.health.SetServingStatus(s.service, st)
}

// Shutdown 先标记 NOT_SERVING，再优雅停止；ctx 超时则强制停止
func (s *HealthServer) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down grpc health server")
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.server.Stop()
		return ctx.Err()
	}
}

// Close 立即停止服务并释放监听
func (s *HealthServer) Close() error {
	s.server.Stop()
	if s.listener != nil {
		if err := s.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			return err
		}
	}
	return nil
}

func (s *HealthServer) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

func (s *HealthServer) Name() string {
	return "grpc"
}

func (s *HealthServer) Serving() bool {
	return s.serving.Load()
}

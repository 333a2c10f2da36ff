package grpc

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/Aixtrade/nothing/internal/infrastructure/observability/metrics"
)

// LoggingUnaryInterceptor 一元 RPC 日志拦截器
func LoggingUnaryInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()

		resp, err := handler(ctx, req)

		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("peer", peerAddr(ctx)),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			logger.Warn("grpc call failed", append(fields, zap.Error(err))...)
		} else {
			logger.Debug("grpc call completed", fields...)
		}

		return resp, err
	}
}

// LoggingStreamInterceptor 流式 RPC 日志拦截器
func LoggingStreamInterceptor(logger *zap.Logger) grpc.StreamServerInterceptor {
	return func(
		srv interface{},
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		start := time.Now()

		logger.Debug("grpc stream started",
			zap.String("method", info.FullMethod),
			zap.String("peer", peerAddr(ss.Context())),
		)

		err := handler(srv, ss)

		if err != nil && status.Code(err) != codes.Canceled {
			logger.Warn("grpc stream failed",
				zap.String("method", info.FullMethod),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
		} else {
			logger.Debug("grpc stream completed",
				zap.String("method", info.FullMethod),
				zap.Duration("duration", time.Since(start)),
			)
		}

		return err
	}
}

// RecoveryUnaryInterceptor 捕获 panic 并返回 codes.Internal
func RecoveryUnaryInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (resp interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("grpc panic recovered",
					zap.String("method", info.FullMethod),
					zap.Any("panic", r),
				)
				metrics.RecordPanic("grpc")
				err = status.Error(codes.Internal, "internal error")
			}
		}()

		return handler(ctx, req)
	}
}

// RecoveryStreamInterceptor 流式版本
func RecoveryStreamInterceptor(logger *zap.Logger) grpc.StreamServerInterceptor {
	return func(
		srv interface{},
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("grpc stream panic recovered",
					zap.String("method", info.FullMethod),
					zap.Any("panic", r),
				)
				metrics.RecordPanic("grpc")
				err = status.Error(codes.Internal, "internal error")
			}
		}()

		return handler(srv, ss)
	}
}

func peerAddr(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		return p.Addr.String()
	}
	return ""
}

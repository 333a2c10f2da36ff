package app

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Aixtrade/nothing/internal/config"
	grpcserver "github.com/Aixtrade/nothing/internal/infrastructure/grpc"
	httpserver "github.com/Aixtrade/nothing/internal/interfaces/http"
	"github.com/Aixtrade/nothing/internal/interfaces/http/handler"
)

type listener interface {
	Name() string
	Addr() string
	Listen() error
	Serve() error
	Shutdown(ctx context.Context) error
	Close() error
}

// App wires the public listener and the optional admin and gRPC health
// listeners into a single lifecycle.
type App struct {
	cfg    *config.Config
	logger *zap.Logger

	public *httpserver.Server
	admin  *httpserver.Server
	health *grpcserver.HealthServer
}

func New(cfg *config.Config, logger *zap.Logger) *App {
	a := &App{
		cfg:    cfg,
		logger: logger,
	}

	router := httpserver.NewRouter(httpserver.RouterConfig{
		Config: cfg,
		Logger: logger,
	})
	a.public = httpserver.NewServer("http", cfg.Server.HTTP.Addr(), router.Setup(), cfg.Server.HTTP, logger)

	probes := []handler.Probe{a.public}

	if cfg.Server.GRPC.Enabled {
		a.health = grpcserver.NewHealthServer(cfg.App.Name, cfg.Server.GRPC.Addr(), logger)
		probes = append(probes, a.health)
	}

	if cfg.Server.Admin.Enabled {
		admin := httpserver.NewAdminRouter(httpserver.AdminRouterConfig{
			Config: cfg,
			Logger: logger,
			Probes: probes,
		})
		a.admin = httpserver.NewServer("admin", cfg.Server.Admin.Addr(), admin.Setup(), cfg.Server.HTTP, logger)
	}

	return a
}

func (a *App) listeners() []listener {
	ls := []listener{a.public}
	if a.admin != nil {
		ls = append(ls, a.admin)
	}
	if a.health != nil {
		ls = append(ls, a.health)
	}
	return ls
}

// Listen binds every enabled listener. On failure the ones already bound are
// released and the first error is returned.
func (a *App) Listen() error {
	var bound []listener
	for _, l := range a.listeners() {
		if err := l.Listen(); err != nil {
			for _, b := range bound {
				if cerr := b.Close(); cerr != nil {
					a.logger.Warn("failed to release listener",
						zap.String("listener", b.Name()),
						zap.Error(cerr),
					)
				}
			}
			return err
		}
		bound = append(bound, l)
		a.logger.Info("listener bound",
			zap.String("listener", l.Name()),
			zap.String("addr", l.Addr()),
		)
	}
	return nil
}

// Run serves until ctx is cancelled or a listener fails, then shuts every
// listener down. A cancelled ctx with a clean shutdown returns nil.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, l := range a.listeners() {
		g.Go(l.Serve)
	}
	if a.health != nil {
		a.health.SetServing(true)
	}

	g.Go(func() error {
		<-gctx.Done()
		return a.shutdown()
	})

	return g.Wait()
}

func (a *App) shutdown() error {
	a.logger.Info("shutting down server...")

	ctx := context.Background()
	if timeout := a.cfg.Server.HTTP.ShutdownTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if a.health != nil {
		a.health.SetServing(false)
	}

	var errs []error
	for _, l := range a.listeners() {
		if err := l.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (a *App) HTTPAddr() string {
	return a.public.Addr()
}

func (a *App) AdminAddr() string {
	if a.admin == nil {
		return ""
	}
	return a.admin.Addr()
}

func (a *App) GRPCAddr() string {
	if a.health == nil {
		return ""
	}
	return a.health.Addr()
}

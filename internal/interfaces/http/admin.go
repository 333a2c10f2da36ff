package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Aixtrade/nothing/internal/config"
	"github.com/Aixtrade/nothing/internal/interfaces/http/handler"
	"github.com/Aixtrade/nothing/internal/interfaces/http/middleware"
)

// AdminRouter serves health probes and metrics on a listener of its own so
// they never shadow the public catch-all.
type AdminRouter struct {
	engine   *gin.Engine
	logger   *zap.Logger
	probes   []handler.Probe
	gatherer prometheus.Gatherer
}

type AdminRouterConfig struct {
	Config   *config.Config
	Logger   *zap.Logger
	Probes   []handler.Probe
	Gatherer prometheus.Gatherer
}

func NewAdminRouter(cfg AdminRouterConfig) *AdminRouter {
	setMode(cfg.Config)

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	return &AdminRouter{
		engine:   gin.New(),
		logger:   cfg.Logger,
		probes:   cfg.Probes,
		gatherer: gatherer,
	}
}

func (r *AdminRouter) Setup() *gin.Engine {
	r.engine.Use(middleware.Recovery(r.logger, "admin", nil))

	healthHandler := handler.NewHealthHandler(r.probes...)

	r.engine.GET("/health", healthHandler.Health)
	r.engine.GET("/ready", healthHandler.Ready)
	r.engine.GET("/live", healthHandler.Live)
	r.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))

	return r.engine
}

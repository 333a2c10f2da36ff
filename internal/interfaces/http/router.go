package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Aixtrade/nothing/internal/config"
	"github.com/Aixtrade/nothing/internal/interfaces/http/handler"
	"github.com/Aixtrade/nothing/internal/interfaces/http/middleware"
)

// Router serves the public listener: one handler for every method and path.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger *zap.Logger
}

type RouterConfig struct {
	Config *config.Config
	Logger *zap.Logger
}

func NewRouter(cfg RouterConfig) *Router {
	setMode(cfg.Config)

	return &Router{
		engine: gin.New(),
		cfg:    cfg.Config,
		logger: cfg.Logger,
	}
}

func (r *Router) Setup() *gin.Engine {
	nothingHandler := handler.NewNothingHandler()

	r.engine.Use(middleware.Recovery(r.logger, "http", nothingHandler.Respond))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Metrics())
	r.engine.Use(middleware.CORS())

	// "/*path" also matches "/". NoRoute picks up methods Any does not register.
	r.engine.Any("/*path", nothingHandler.Respond)
	r.engine.NoRoute(nothingHandler.Respond)

	return r.engine
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func setMode(cfg *config.Config) {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
		return
	}
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
}

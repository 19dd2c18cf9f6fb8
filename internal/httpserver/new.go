package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"tidy-planner/internal/middleware"
	"tidy-planner/internal/plan"
	"tidy-planner/internal/settings"
	"tidy-planner/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Domains
	planUC   plan.UseCase
	settings settings.Manager
	mw       middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	PlanUseCase    plan.UseCase
	Settings       settings.Manager
	RequestsPerMin int
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	shutdown := cfg.ShutdownTimeout
	if shutdown <= 0 {
		shutdown = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: shutdown,
		planUC:          cfg.PlanUseCase,
		settings:        cfg.Settings,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mw = middleware.New(logger, middleware.Config{RequestsPerMin: cfg.RequestsPerMin})
	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.planUC == nil {
		return errors.New("plan use case is required")
	}
	if srv.settings == nil {
		return errors.New("settings store is required")
	}
	return nil
}

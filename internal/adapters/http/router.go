package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotes-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotes-service/internal/platform/telemetry"
)

// DefaultRequestTimeout bounds a quotes request when no timeout is configured.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig holds what SetupRouter wires onto the engine.
type RouterConfig struct {
	Logger *slog.Logger

	// ServiceName names the OpenTelemetry server spans.
	ServiceName string

	HealthHandler *handlers.HealthHandler
	QuoteHandler  *handlers.QuoteHandler

	// Timeout is the per-request deadline on /quotes. Zero disables it.
	Timeout time.Duration

	CORS middleware.CORSConfig
}

// SetupRouter installs the middleware chain and the routes. Order, first to
// last: recovery, context logger, CORS, request ID, correlation ID, tracing,
// request logging. /quotes additionally gets the request timeout; the /-/
// probes do not.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// A trailing-slash redirect is answered before any middleware runs, so
	// it would go out without CORS headers. Unmatched paths 404 instead.
	engine.RedirectTrailingSlash = false

	engine.Use(
		middleware.Recovery(logger),
		middleware.ContextLogger(logger),
		middleware.CORS(cfg.CORS),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	engine.Use(telemetry.Middleware(cfg.ServiceName)...)
	engine.Use(middleware.Logging(logger))

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	if cfg.QuoteHandler != nil {
		api := engine.Group("")
		if cfg.Timeout > 0 {
			api.Use(middleware.SimpleTimeout(cfg.Timeout))
		}
		cfg.QuoteHandler.RegisterQuoteRoutes(api)
	}
}

// NewDefaultRouterConfig fills in the default timeout and CORS policy.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	serviceName string,
	healthHandler *handlers.HealthHandler,
	quoteHandler *handlers.QuoteHandler,
) RouterConfig {
	return RouterConfig{
		Logger:        logger,
		ServiceName:   serviceName,
		HealthHandler: healthHandler,
		QuoteHandler:  quoteHandler,
		Timeout:       DefaultRequestTimeout,
		CORS:          middleware.DefaultCORSConfig(),
	}
}

package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/bengobox/clock-service/internal/clock"
	"github.com/bengobox/clock-service/internal/config"
	"github.com/bengobox/clock-service/internal/httpapi"
	"github.com/bengobox/clock-service/internal/httpapi/handlers"
	httpmiddleware "github.com/bengobox/clock-service/internal/httpapi/middleware"
	"github.com/bengobox/clock-service/internal/report"
	"github.com/bengobox/clock-service/internal/web"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App wires core dependencies and exposes server lifecycle controls.
type App struct {
	cfg        *config.Config
	logger     *zap.Logger
	httpServer *http.Server
}

// Option customises App construction.
type Option func(*options)

type options struct {
	clock    clock.Clock
	registry *prometheus.Registry
}

// WithClock replaces the wall clock used by the hello endpoint.
func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithRegistry sets the registry metrics are recorded on and served from.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(o *options) { o.registry = reg }
}

// New constructs the application.
func New(cfg *config.Config, logger *zap.Logger, opts ...Option) (*App, error) {
	o := options{clock: clock.System{}}
	for _, opt := range opts {
		opt(&o)
	}

	builder, err := report.NewBuilder(cfg.App.ServiceName)
	if err != nil {
		return nil, fmt.Errorf("init report builder: %w", err)
	}
	helloHandler := handlers.NewHelloHandler(o.clock, builder)

	middlewares := []func(http.Handler) http.Handler{
		httpmiddleware.RequestID,
		httpmiddleware.AccessLog(logger),
	}
	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		reg := o.registry
		if reg == nil {
			reg = prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
		}
		middlewares = append(middlewares, httpmiddleware.NewMetrics(reg).Handler)
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	router := httpapi.NewRouter(httpapi.RouterDeps{
		HealthHandler:   handlers.Health,
		HelloHandler:    helloHandler.Hello,
		MetricsHandler:  metricsHandler,
		FrontendHandler: web.Handler(),
		Middlewares:     middlewares,
		BodyParser:      httpmiddleware.JSONBody,
		CORS: httpapi.CORSOptions{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			MaxAge:         cfg.CORS.MaxAge,
		},
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		httpServer: server,
	}, nil
}

// Handler exposes the routed handler, mainly for tests.
func (a *App) Handler() http.Handler {
	return a.httpServer.Handler
}

// Run listens on the configured address and serves until Shutdown.
func (a *App) Run() error {
	ln, err := net.Listen("tcp", a.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", a.httpServer.Addr, err)
	}
	return a.Serve(ln)
}

// Serve accepts connections on ln, with TLS if certificates are configured.
// It returns nil once Shutdown has been called.
func (a *App) Serve(ln net.Listener) error {
	var err error
	if a.cfg.HTTP.TLSCertFile != "" && a.cfg.HTTP.TLSKeyFile != "" {
		a.logger.Info("starting HTTPS server",
			zap.String("cert", a.cfg.HTTP.TLSCertFile),
			zap.String("key", a.cfg.HTTP.TLSKeyFile),
			zap.String("addr", ln.Addr().String()),
		)
		err = a.httpServer.ServeTLS(ln, a.cfg.HTTP.TLSCertFile, a.cfg.HTTP.TLSKeyFile)
	} else {
		a.logger.Info("starting HTTP server", zap.String("addr", ln.Addr().String()))
		err = a.httpServer.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully stops the HTTP server.
func (a *App) Shutdown(ctx context.Context) error {
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Warn("http server shutdown", zap.Error(err))
		return err
	}
	return nil
}

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"catalog/internal/config"
	"catalog/internal/metrics"
	mid "catalog/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// RouteRegistrar is implemented by every resource handler.
type RouteRegistrar interface {
	RegisterRoutes(g *echo.Group)
}

type Server struct {
	echo *echo.Echo
	addr string
	log  *zap.Logger
}

// New wires middleware, /health, /metrics and the API group.
func New(cfg config.Config, log *zap.Logger, m *metrics.Metrics, gatherer prometheus.Gatherer, handlers ...RouteRegistrar) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.CORSAllowOrigins,
		AllowHeaders:  []string{echo.HeaderContentType, mid.HeaderRequestID},
		ExposeHeaders: []string{mid.HeaderRequestID},
	}))
	e.Use(mid.RequestID())
	e.Use(mid.RequestLogger(log))
	if m != nil {
		e.Use(m.Middleware())
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := e.Group(cfg.APIPrefix)
	for _, h := range handlers {
		h.RegisterRoutes(api)
	}

	return &Server{echo: e, addr: ":" + cfg.Port, log: log}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server started", zap.String("addr", s.addr))
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.log.Info("server shutting down")
	return s.echo.Shutdown(shutdownCtx)
}

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/acmecorp/admin-api/internal/api/handler"
	"github.com/acmecorp/admin-api/internal/api/middleware"
	"github.com/acmecorp/admin-api/internal/pkg/logger"
	"github.com/go-chi/chi/v5"
	. "github.com/go-ozzo/ozzo-validation"
)

type ServerConfig struct {
	Host           string
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration
}

func (c *ServerConfig) Validate() error {
	return ValidateStruct(c,
		Field(&c.Port, Required, Min(1), Max(65535)),
	)
}

type HTTPServer struct {
	server *http.Server
	config *ServerConfig
	logger *logger.Logger
}

func NewHTTPServer(config *ServerConfig,
	userHandler *handler.UserHandler,
	teamHandler *handler.TeamHandler,
	authHandler *handler.AuthHandler,
	statsHandler *handler.StatsHandler,
	logger *logger.Logger) (*HTTPServer, error) {

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	router := setupRouter(userHandler, teamHandler, authHandler, statsHandler, config.RequestTimeout, logger)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Host, config.Port),
		Handler:      router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	return &HTTPServer{
		server: server,
		config: config,
		logger: logger.Component("http"),
	}, nil
}

func (s *HTTPServer) Start(_ context.Context) error {
	s.logger.Info("starting http server", "addr", s.server.Addr)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server failed", "error", err)
		}
	}()

	return nil
}

func (s *HTTPServer) Stop(ctx context.Context) error {
	s.logger.Info("stopping http server")

	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.Error("server shutdown failed", "error", err)
		return err
	}

	s.logger.Info("http server stopped successfully")
	return nil
}

func setupRouter(
	userHandler *handler.UserHandler,
	teamHandler *handler.TeamHandler,
	authHandler *handler.AuthHandler,
	statsHandler *handler.StatsHandler,
	requestTimeout time.Duration,
	logger *logger.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Timeout(requestTimeout))

	// liveness probe, deliberately outside /api
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			logger.Warn("failed to write health response", "error", err)
		}
	})

	r.Route("/api", func(r chi.Router) {
		r.Mount("/users", userHandler.Routes())
		r.Mount("/teams", teamHandler.Routes())
		r.Mount("/auth", authHandler.Routes())
		r.Mount("/stats", statsHandler.Routes())
	})

	return r
}

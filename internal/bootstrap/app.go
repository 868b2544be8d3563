package bootstrap

import (
	"context"
	"fmt"

	"github.com/acmecorp/admin-api/internal/api"
	"github.com/acmecorp/admin-api/internal/api/handler"
	"github.com/acmecorp/admin-api/internal/pkg/config"
	"github.com/acmecorp/admin-api/internal/pkg/logger"
	"github.com/acmecorp/admin-api/internal/service"
	"github.com/acmecorp/admin-api/internal/store"
)

type Application struct {
	Config *config.Config
	Logger *logger.Logger
	Store  *store.Memory

	UserService  *service.UserService
	TeamService  *service.TeamService
	AuthService  *service.AuthService
	StatsService *service.StatsService

	UserHandler  *handler.UserHandler
	TeamHandler  *handler.TeamHandler
	AuthHandler  *handler.AuthHandler
	StatsHandler *handler.StatsHandler

	HTTPServer *api.HTTPServer
}

func New() (*Application, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(&logger.Config{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		AddSource: cfg.LogAddSource,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	mem, err := store.NewMemory(&store.Config{
		Latency: cfg.StoreLatency,
	}, store.NewSequentialAllocator(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return &Application{
		Config: cfg,
		Logger: log,
		Store:  mem,
	}, nil
}

func (app *Application) Init(ctx context.Context) error {
	app.Logger.Info("initializing application")

	app.UserService = service.NewUserService(app.Store, app.Logger)
	app.TeamService = service.NewTeamService(app.Store, app.Logger)
	app.AuthService = service.NewAuthService(app.Store, app.Logger)
	app.StatsService = service.NewStatsService(app.Store, app.Store, app.Logger)

	app.UserHandler = handler.NewUserHandler(app.UserService, app.Logger)
	app.TeamHandler = handler.NewTeamHandler(app.TeamService, app.Logger)
	app.AuthHandler = handler.NewAuthHandler(app.AuthService, app.Logger)
	app.StatsHandler = handler.NewStatsHandler(app.StatsService, app.Logger)

	serverConfig := &api.ServerConfig{
		Host:           app.Config.ServerHost,
		Port:           app.Config.ServerPort,
		ReadTimeout:    app.Config.ServerReadTimeout,
		WriteTimeout:   app.Config.ServerWriteTimeout,
		IdleTimeout:    app.Config.ServerIdleTimeout,
		RequestTimeout: app.Config.ServerRequestTimeout,
	}

	server, err := api.NewHTTPServer(
		serverConfig,
		app.UserHandler,
		app.TeamHandler,
		app.AuthHandler,
		app.StatsHandler,
		app.Logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create http server: %w", err)
	}
	app.HTTPServer = server

	if err := app.HTTPServer.Start(ctx); err != nil {
		return fmt.Errorf("failed to start http server: %w", err)
	}

	app.Logger.Info("application initialized successfully")
	return nil
}

func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("shutting down application")

	if app.HTTPServer != nil {
		if err := app.HTTPServer.Stop(ctx); err != nil {
			app.Logger.Error("error stopping http server", "error", err)
		}
	}

	app.Logger.Info("application shutdown completed")
	return nil
}

package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ccrayp/portfolio-api/internal/api"
	"github.com/ccrayp/portfolio-api/internal/config"
	"github.com/ccrayp/portfolio-api/internal/keepalive"
	"github.com/ccrayp/portfolio-api/internal/platform/database"
	"github.com/ccrayp/portfolio-api/internal/platform/logger"
	"github.com/ccrayp/portfolio-api/internal/service"
	"github.com/ccrayp/portfolio-api/internal/service/auth"
)

// application holds the shared dependencies so they can be closed together
// on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	jwtService    auth.JWTService
	authenticator *auth.Authenticator

	postService       service.PostService
	projectService    service.ProjectService
	technologyService service.TechnologyService

	pinger *keepalive.Pinger
}

// loadApp loads configuration and sets up the logger.
func loadApp(configDir string) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadFrom(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver,
		"keep_alive", cfg.KeepAlive.Enabled())
	return cfg, l, nil
}

// newApplication wires stores, services and auth on top of an open,
// migrated database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.authenticator, err = auth.NewAuthenticator(cfg.Auth, app.jwtService, auth.BcryptVerifier{}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize authenticator: %w", err)
	}

	app.postService, err = service.NewPostService(db, database.NewPostStore(db, logger), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create post service: %w", err)
	}
	app.projectService, err = service.NewProjectService(db, database.NewProjectStore(db, logger), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create project service: %w", err)
	}
	app.technologyService, err = service.NewTechnologyService(db, database.NewTechnologyStore(db, logger), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create technology service: %w", err)
	}

	if cfg.KeepAlive.Enabled() {
		app.pinger, err = keepalive.NewPinger(cfg.KeepAlive, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create keep-alive pinger: %w", err)
		}
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// setupRouter builds the HTTP handler tree from the application's services.
func (app *application) setupRouter() http.Handler {
	return api.NewRouter(api.RouterDeps{
		Auth:         api.NewAuthHandler(app.authenticator, app.logger),
		Posts:        api.NewPostHandler(app.postService, app.logger),
		Projects:     api.NewProjectHandler(app.projectService, app.logger),
		Technologies: api.NewTechnologyHandler(app.technologyService, app.logger),
		JWTService:   app.jwtService,
		Logger:       app.logger,
	})
}

// Run serves HTTP until ctx is cancelled, then shuts down.
func (app *application) Run(ctx context.Context) error {
	if app.pinger != nil {
		app.pinger.Start(ctx)
	}

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.pinger != nil {
		app.pinger.Stop()
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}

// serve is the default command: connect, migrate and run the HTTP server.
func serve(ctx context.Context, configDir string) error {
	cfg, l, err := loadApp(configDir)
	if err != nil {
		return err
	}

	db, err := database.Open(ctx, cfg.Database, l)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(ctx, db, cfg.Database.Driver, l); err != nil {
		_ = db.Close()
		return err
	}

	app, err := newApplication(cfg, l, db)
	if err != nil {
		_ = db.Close()
		return err
	}
	return app.Run(ctx)
}

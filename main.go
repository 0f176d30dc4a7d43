package main

import (
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/edgeboard/edgeboard-engine/pkg/config"
	"github.com/edgeboard/edgeboard-engine/pkg/handlers"
	"github.com/edgeboard/edgeboard-engine/pkg/middleware"
	"github.com/edgeboard/edgeboard-engine/pkg/services"
	"github.com/edgeboard/edgeboard-engine/pkg/store"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := buildLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("version", cfg.Version),
		zap.String("store_base_url", cfg.Store.BaseURL),
	)

	entityStore, err := store.NewClient(cfg.Store.BaseURL, cfg.Store.Timeout(), logger)
	if err != nil {
		logger.Fatal("Failed to create store client", zap.Error(err))
	}

	ideaViews := services.NewIdeaViewService(entityStore, entityStore, logger)
	edgeViews := services.NewEdgeViewService(entityStore, entityStore, entityStore, logger)
	projectViews := services.NewProjectViewService(entityStore, entityStore, entityStore, edgeViews, logger)
	teamViews := services.NewTeamViewService(entityStore, logger)
	accountViews := services.NewAccountViewService(entityStore, entityStore, logger)

	mux := http.NewServeMux()

	// Register handlers
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewIdeasHandler(ideaViews, edgeViews, logger).RegisterRoutes(mux)
	handlers.NewEdgesHandler(edgeViews, logger).RegisterRoutes(mux)
	handlers.NewProjectsHandler(projectViews, logger).RegisterRoutes(mux)
	handlers.NewTeamHandler(teamViews, logger).RegisterRoutes(mux)
	handlers.NewAccountHandler(accountViews, logger).RegisterRoutes(mux)
	handlers.NewDashboardHandler(ideaViews, projectViews, teamViews, entityStore, logger).RegisterRoutes(mux)

	handler := middleware.RequestID()(middleware.RequestLogger(logger)(mux))

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("Starting edgeboard-engine", zap.String("addr", addr), zap.String("version", cfg.Version))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

func buildLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

package bootstrap

import (
	"strings"

	"github.com/gin-gonic/gin"

	"notice-backend/internal/analysis"
	"notice-backend/internal/documents"
	"notice-backend/internal/references"
	"notice-backend/internal/services/health"
	"notice-backend/internal/shared/config"
	"notice-backend/internal/shared/server"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	Index            *references.Index
	AnalysisHandler  *analysis.Handler
	DocumentsHandler *documents.Handler
}

// Build prepares shared dependencies and wires the router. The reference
// index is loaded exactly once here and shared read-only for the process
// lifetime.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	index := references.Load(cfg.ReferenceStorePath)
	engine := analysis.NewEngine(index)

	app := &App{
		Config:           cfg,
		Index:            index,
		AnalysisHandler:  analysis.NewHandler(engine),
		DocumentsHandler: documents.NewHandler(),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		AnalysisHandler:  app.AnalysisHandler,
		DocumentsHandler: app.DocumentsHandler,
		Health:           health.NewService(),
	})

	return app, nil
}

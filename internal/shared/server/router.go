package server

import (
	"strings"

	"github.com/gin-gonic/gin"

	"notice-backend/internal/analysis"
	"notice-backend/internal/documents"
	"notice-backend/internal/services/health"
	"notice-backend/internal/shared/config"
	"notice-backend/internal/shared/metrics"
	"notice-backend/internal/shared/server/middleware"
	"notice-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config           config.Config
	AnalysisHandler  *analysis.Handler
	DocumentsHandler *documents.Handler
	Health           *health.Service
}

// NewRouter constructs the gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, deps.Health.Status())
	})

	protected := api.Group("")
	protected.Use(
		middleware.Auth(deps.Config.APIToken),
		middleware.RequireRequestID(),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"ANALYZE":  {Rate: 10, Burst: 30},
				"DOCUMENT": {Rate: 10, Burst: 30},
			},
			GroupFor: func(c *gin.Context) string {
				switch {
				case strings.HasSuffix(c.Request.URL.Path, "/analyze"):
					return "ANALYZE"
				case strings.HasSuffix(c.Request.URL.Path, "/generate-document"):
					return "DOCUMENT"
				default:
					return ""
				}
			},
		}),
	)
	deps.AnalysisHandler.RegisterRoutes(protected)
	deps.DocumentsHandler.RegisterRoutes(protected)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

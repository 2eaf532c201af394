package analysis

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"notice-backend/internal/shared/metrics"
	"notice-backend/internal/shared/server/middleware"
	"notice-backend/internal/shared/server/respond"
	"notice-backend/internal/shared/telemetry"
)

// Handler wires HTTP handlers to the analysis engine.
type Handler struct {
	Engine *Engine
}

// NewHandler constructs a Handler.
func NewHandler(engine *Engine) *Handler {
	return &Handler{Engine: engine}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
}

func (h *Handler) analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid analyze payload", err.Error())
		return
	}
	req.Metadata.Jurisdiction = NormalizeJurisdiction(req.Metadata.Jurisdiction)
	c.Set("documentId", req.DocumentID)

	requestID := middleware.RequestIDFromContext(c)
	telemetry.Info("analysis.start", map[string]any{
		"request_id":  requestID,
		"document_id": req.DocumentID,
	})

	start := time.Now()
	metrics.IncAnalyzeRequests()

	issues := h.Engine.Analyze(req)
	summary := BuildSummary(issues, req.Metadata.Amount, req.Metadata.Jurisdiction)

	metrics.ObserveAnalyzeDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	telemetry.Info("analysis.success", map[string]any{
		"request_id":  requestID,
		"status":      "ok",
		"document_id": req.DocumentID,
		"results":     len(issues),
		"risk_level":  summary.RiskLevel,
	})

	respond.OK(c, AnalyzeResponse{
		DocumentID: req.DocumentID,
		Results:    issues,
		Summary:    summary,
		ServerTime: time.Now().UTC().Format(time.RFC3339),
	})
}

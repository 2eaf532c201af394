package documents

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"notice-backend/internal/shared/metrics"
	"notice-backend/internal/shared/server/middleware"
	"notice-backend/internal/shared/server/respond"
	"notice-backend/internal/shared/telemetry"
)

// Handler wires HTTP handlers to the document drafter.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate-document", h.generateDocument)
}

func (h *Handler) generateDocument(c *gin.Context) {
	var req DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid document payload", err.Error())
		return
	}
	c.Set("documentId", req.DocumentID)

	requestID := middleware.RequestIDFromContext(c)
	telemetry.Info("document.start", map[string]any{
		"request_id":  requestID,
		"document_id": req.DocumentID,
		"issue_type":  req.IssueType,
	})

	document := Build(req)
	metrics.IncDocumentsGenerated()

	telemetry.Info("document.generated", map[string]any{
		"request_id":  requestID,
		"document_id": req.DocumentID,
	})

	respond.OK(c, document)
}

package documents

import "notice-backend/internal/references"

// DocumentRequest is the validated payload for POST /generate-document.
type DocumentRequest struct {
	DocumentID      string                 `json:"document_id" binding:"required"`
	UserID          string                 `json:"user_id" binding:"required"`
	IssueType       string                 `json:"issue_type" binding:"required,oneof=process formality substance"`
	Actions         []string               `json:"actions"`
	References      []references.Reference `json:"references"`
	SummaryNextStep string                 `json:"summary_next_step"`
}

// DocumentResponse is the drafted letter plus flattened recommendations.
type DocumentResponse struct {
	DocumentID      string   `json:"document_id"`
	Title           string   `json:"title"`
	Body            string   `json:"body"`
	Recommendations []string `json:"recommendations"`
}

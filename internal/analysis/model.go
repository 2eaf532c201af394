package analysis

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"notice-backend/internal/references"
)

// Issue categories.
const (
	CategoryProcess   = "process"
	CategoryFormality = "formality"
	CategorySubstance = "substance"
)

// Risk levels. RiskLow is part of the API contract but the current
// aggregation never produces it; the floor is medium.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Attachment describes an uploaded file by metadata only; contents never
// reach this service.
type Attachment struct {
	Filename string `json:"filename" binding:"required"`
	MimeType string `json:"mime_type" binding:"required,min=3"`
	Hash     string `json:"hash" binding:"required,len=64"`
}

// Metadata carries the request context for one notice.
type Metadata struct {
	UserID       string  `json:"user_id" binding:"required"`
	IssueDate    string  `json:"issue_date" binding:"required,datetime=2006-01-02"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	Jurisdiction string  `json:"jurisdiction" binding:"required"`
}

// AnalyzeRequest is the validated payload for POST /analyze.
type AnalyzeRequest struct {
	DocumentID  string       `json:"document_id" binding:"required"`
	Source      string       `json:"source" binding:"required,oneof=ocr upload manual"`
	Metadata    Metadata     `json:"metadata" binding:"required"`
	Text        string       `json:"text" binding:"required,min=10"`
	Attachments []Attachment `json:"attachments" binding:"omitempty,dive"`
}

// Issue is one detected problem with its supporting citations.
type Issue struct {
	Type       string                 `json:"type"`
	Issue      string                 `json:"issue"`
	Confidence float64                `json:"confidence"`
	References []references.Reference `json:"references"`
	Actions    []string               `json:"actions"`
}

// Summary is the aggregate risk classification for one notice.
type Summary struct {
	RiskLevel string `json:"risk_level"`
	NextStep  string `json:"next_step"`
}

// AnalyzeResponse is the payload returned by POST /analyze.
type AnalyzeResponse struct {
	DocumentID string  `json:"document_id"`
	Results    []Issue `json:"results"`
	Summary    Summary `json:"summary"`
	ServerTime string  `json:"server_time"`
}

// NormalizeJurisdiction trims and title-cases a jurisdiction name the way
// the mobile client expects ("milano" -> "Milano").
func NormalizeJurisdiction(raw string) string {
	return cases.Title(language.Italian).String(strings.TrimSpace(raw))
}

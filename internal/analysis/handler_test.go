package analysis_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"notice-backend/internal/analysis"
	"notice-backend/internal/bootstrap"
	"notice-backend/internal/shared/config"
)

const testToken = "changeme"

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		APIToken:        testToken,
		// Point at a missing dataset so analyses run on the fallback set.
		ReferenceStorePath: filepath.Join(t.TempDir(), "missing.json"),
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func analyzePayload(text string, amount float64, jurisdiction string) map[string]any {
	return map[string]any{
		"document_id": "doc-1",
		"source":      "ocr",
		"metadata": map[string]any{
			"user_id":      "tester",
			"issue_date":   "2026-01-15",
			"amount":       amount,
			"jurisdiction": jurisdiction,
		},
		"text": text,
	}
}

func postAnalyze(t *testing.T, router *gin.Engine, payload map[string]any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func authHeaders() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + testToken,
		"Request-Id":    "req-1",
	}
}

func TestAnalyzeReturnsExpectedSummary(t *testing.T) {
	router := testRouter(t)

	cases := []struct {
		name         string
		text         string
		expectedRisk string
	}{
		{name: "late_notification_is_high", text: "Notifica con termine superato", expectedRisk: "high"},
		{name: "formal_request_is_medium", text: "Richiesta di informazioni formali", expectedRisk: "medium"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postAnalyze(t, router, analyzePayload(tc.text, 520, "Milano"), authHeaders())
			if resp.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
			}

			var body analysis.AnalyzeResponse
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if body.DocumentID != "doc-1" {
				t.Fatalf("expected document_id doc-1, got %q", body.DocumentID)
			}
			if body.Summary.RiskLevel != tc.expectedRisk {
				t.Fatalf("expected risk %q, got %q", tc.expectedRisk, body.Summary.RiskLevel)
			}
			if len(body.Results) == 0 {
				t.Fatalf("expected at least one finding")
			}
			if body.ServerTime == "" {
				t.Fatalf("expected server_time in response")
			}
		})
	}
}

func TestAnalyzeHighRiskOnLargeAmount(t *testing.T) {
	router := testRouter(t)

	resp := postAnalyze(t, router, analyzePayload("Testo privo di parole chiave rilevanti", 1200, "Lecco"), authHeaders())
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var body analysis.AnalyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Summary.RiskLevel != "high" {
		t.Fatalf("expected high risk above 1000, got %q", body.Summary.RiskLevel)
	}
}

func TestAnalyzeRateNegotiationScenario(t *testing.T) {
	router := testRouter(t)

	resp := postAnalyze(t, router, analyzePayload("Testo privo di parole chiave rilevanti", 900, "Roma"), authHeaders())
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var body analysis.AnalyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	found := false
	for _, issue := range body.Results {
		if issue.Type == analysis.CategoryProcess && issue.Confidence == 0.65 {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected a process finding at 0.65 for Roma above 800, got %+v", body.Results)
	}
}

func TestAnalyzeRequiresToken(t *testing.T) {
	router := testRouter(t)

	resp := postAnalyze(t, router, analyzePayload("Testing senza token", 100, "Milano"), map[string]string{
		"Request-Id": "req-2",
	})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestAnalyzeRejectsWrongToken(t *testing.T) {
	router := testRouter(t)

	resp := postAnalyze(t, router, analyzePayload("Testing token errato", 100, "Milano"), map[string]string{
		"Authorization": "Bearer sbagliato",
		"Request-Id":    "req-3",
	})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestAnalyzeRequiresRequestID(t *testing.T) {
	router := testRouter(t)

	resp := postAnalyze(t, router, analyzePayload("Testing senza request id", 100, "Milano"), map[string]string{
		"Authorization": "Bearer " + testToken,
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestAnalyzeValidatesPayload(t *testing.T) {
	router := testRouter(t)

	cases := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{
			name: "short_text",
			mutate: func(p map[string]any) {
				p["text"] = "corto"
			},
		},
		{
			name: "non_positive_amount",
			mutate: func(p map[string]any) {
				p["metadata"].(map[string]any)["amount"] = 0
			},
		},
		{
			name: "unknown_source",
			mutate: func(p map[string]any) {
				p["source"] = "fax"
			},
		},
		{
			name: "missing_jurisdiction",
			mutate: func(p map[string]any) {
				delete(p["metadata"].(map[string]any), "jurisdiction")
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := analyzePayload("Notifica con termine superato", 100, "Milano")
			tc.mutate(payload)
			resp := postAnalyze(t, router, payload, authHeaders())
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d: %s", resp.Code, resp.Body.String())
			}
		})
	}
}

func TestHealthEndpointIsOpen(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("expected status ok, got %v", body["status"])
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if !bytes.Contains(resp.Body.Bytes(), []byte("analyze_requests_total")) {
		t.Fatalf("expected analyze_requests_total in metrics output")
	}
}

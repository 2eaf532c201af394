package analysis

import (
	"strings"

	"notice-backend/internal/references"
	"notice-backend/internal/shared/metrics"
)

const (
	articleBonus  = 0.04
	confidenceCap = 0.99

	negotiationAmountThreshold    = 800
	substantiationAmountThreshold = 500
)

// centralJurisdictions gate the rate-negotiation finding. Fixed lowercase
// set, matched case-insensitively.
var centralJurisdictions = map[string]struct{}{
	"roma":   {},
	"milano": {},
}

// Engine evaluates the rule table against a validated request. The index is
// shared read-only state; Analyze itself is a pure computation and safe for
// concurrent use.
type Engine struct {
	index *references.Index
}

// NewEngine constructs an Engine over the given reference index.
func NewEngine(index *references.Index) *Engine {
	return &Engine{index: index}
}

// Analyze runs the keyword rules and the derived checks, in that order. The
// result is never empty: when nothing matches, a single low-confidence
// formality finding asks for more context.
func (e *Engine) Analyze(req AnalyzeRequest) []Issue {
	normalized := strings.ToLower(req.Text)
	article := extractArticle(req.Text)

	matched := e.index.Query(req.Text, references.DefaultQueryLimit)
	if len(matched) == 0 {
		matched = references.DefaultSet()
		metrics.IncEmptyIndexFallback()
	}

	var issues []Issue
	for _, r := range ruleTable {
		if !matchesAny(normalized, r.keywords) {
			continue
		}
		confidence := r.confidence
		if article != "" {
			confidence += articleBonus
		}
		if confidence > confidenceCap {
			confidence = confidenceCap
		}
		issues = append(issues, Issue{
			Type:       r.category,
			Issue:      r.issue,
			Confidence: confidence,
			References: firstN(matched, 2),
			Actions:    r.actions,
		})
	}

	if req.Metadata.Amount > negotiationAmountThreshold && isCentralJurisdiction(req.Metadata.Jurisdiction) {
		issues = append(issues, Issue{
			Type:       CategoryProcess,
			Issue:      "Giurisdizione centrale: valuta la possibilità di richiedere sconto o rateizzazione",
			Confidence: 0.65,
			References: references.Templates(),
			Actions: []string{
				"Chiedi visita ufficiale presso la prefettura di competenza",
				"Verifica la possibilità di dilazionare l’importo a rate",
			},
		})
	}

	if req.Metadata.Amount > substantiationAmountThreshold && !hasCategory(issues, CategorySubstance) {
		issues = append(issues, Issue{
			Type:       CategorySubstance,
			Issue:      "Importo contestato superiore a 500 senza allegati giustificativi",
			Confidence: 0.58,
			References: firstN(matched, 2),
			Actions: []string{
				"Allega la documentazione contabile che giustifica l’importo",
				"Richiedi la revisione dei calcoli alla prefettura competente",
			},
		})
	}

	if len(req.Attachments) > 0 {
		issues = append(issues, Issue{
			Type:       CategoryFormality,
			Issue:      "Documenti allegati: convalida leggibilità e date",
			Confidence: 0.6,
			References: firstN(references.Templates(), 1),
			Actions: []string{
				"Assicurati che ogni possibile allegato contenga i riferimenti temporali richiesti",
				"Conferma che i PDF siano testuali e non immagini sfocate",
			},
		})
	}

	if len(issues) == 0 {
		issues = append(issues, Issue{
			Type:       CategoryFormality,
			Issue:      "Analisi preliminare: serve maggior contesto",
			Confidence: 0.30,
			References: references.Fallback(),
			Actions: []string{
				"Chiedi all’utente di caricare la notifica/scansione originale",
				"Assicurati di avere i dati di notifica e il calendario della sanzione",
			},
		})
	}

	return issues
}

// extractArticle finds an "art." reference in the text and returns its span,
// or "" when the text has none. Substring heuristic, kept deliberately
// simple for behavioral compatibility with the mobile client.
func extractArticle(text string) string {
	lowered := strings.ToLower(text)
	start := strings.Index(lowered, "art.")
	if start < 0 {
		return ""
	}
	span := lowered[start:]
	if end := strings.Index(span[4:], " "); end >= 0 {
		span = span[:4+end]
	}
	return strings.Trim(span, ". ,")
}

func matchesAny(normalized string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(normalized, keyword) {
			return true
		}
	}
	return false
}

func hasCategory(issues []Issue, category string) bool {
	for _, issue := range issues {
		if issue.Type == category {
			return true
		}
	}
	return false
}

func isCentralJurisdiction(jurisdiction string) bool {
	_, ok := centralJurisdictions[strings.ToLower(strings.TrimSpace(jurisdiction))]
	return ok
}

func firstN(refs []references.Reference, n int) []references.Reference {
	if len(refs) > n {
		refs = refs[:n]
	}
	return refs
}

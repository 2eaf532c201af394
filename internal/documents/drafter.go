package documents

import (
	"fmt"
	"strings"
)

const intro = "Egregi Signori,\n" +
	"in relazione alla notifica ricevuta, l’analisi preliminare dell’agentic AI individua i seguenti punti critici."

// Build composes the response letter for one document request. Deterministic
// string composition: every action and citation appears verbatim in the body
// and the document id appears in the title.
func Build(req DocumentRequest) DocumentResponse {
	title := fmt.Sprintf("Bozza automatica per %s - %s", strings.ToUpper(req.IssueType), req.DocumentID)

	actionLines := make([]string, 0, len(req.Actions))
	for _, action := range req.Actions {
		actionLines = append(actionLines, "- "+action)
	}

	referenceLines := make([]string, 0, len(req.References))
	recommendations := make([]string, 0, len(req.References))
	for _, ref := range req.References {
		referenceLines = append(referenceLines, fmt.Sprintf("- %s (%s)", ref.Citation, ref.Source))
		recommendations = append(recommendations, ref.Citation)
	}

	body := fmt.Sprintf(
		"%s\n\nAzioni suggerite:\n%s\n\nRiferimenti normativi:\n%s\n\nProssimo passo consigliato: %s\n",
		intro,
		strings.Join(actionLines, "\n"),
		strings.Join(referenceLines, "\n"),
		req.SummaryNextStep,
	)

	return DocumentResponse{
		DocumentID:      req.DocumentID,
		Title:           title,
		Body:            body,
		Recommendations: recommendations,
	}
}

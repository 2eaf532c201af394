package analysis

import (
	"fmt"
	"strings"
)

const (
	highRiskAmountThreshold = 1000
	highRiskConfidenceFloor = 0.7
	nextStepMaxActions      = 3
	nextStepSeparator       = " · "
)

// BuildSummary reduces the findings plus the request metadata into a single
// risk level and a recommended next step. Pure function; issues is never
// empty by the engine's contract.
func BuildSummary(issues []Issue, amount float64, jurisdiction string) Summary {
	maxConfidence := 0.0
	for _, issue := range issues {
		if issue.Confidence > maxConfidence {
			maxConfidence = issue.Confidence
		}
	}

	level := RiskMedium
	if amount > highRiskAmountThreshold || maxConfidence >= highRiskConfidenceFloor {
		level = RiskHigh
	}

	var actions []string
	for _, issue := range issues {
		actions = append(actions, issue.Actions...)
	}
	if len(actions) > nextStepMaxActions {
		actions = actions[:nextStepMaxActions]
	}

	nextStep := strings.Join(actions, nextStepSeparator)
	if nextStep == "" {
		nextStep = fmt.Sprintf("Raccogli più contesto (%s)", jurisdiction)
	}

	return Summary{RiskLevel: level, NextStep: nextStep}
}

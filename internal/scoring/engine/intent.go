package engine

import "fmt"

// Intent bucket labels.
const (
	IntentHigh   = "High"
	IntentMedium = "Medium"
	IntentLow    = "Low"
)

// IntentFromScore derives the intent bucket from a total score. This
// thresholding is the single source of truth for intent; the AI label is
// never used directly.
func IntentFromScore(totalScore int) string {
	if totalScore >= 70 {
		return IntentHigh
	}
	if totalScore >= 40 {
		return IntentMedium
	}
	return IntentLow
}

// Combine merges the rule and AI scores into the persisted result fields:
// total score, intent bucket and a composed human-readable reasoning.
func Combine(ruleScore int, b Breakdown, aiScore int, aiReasoning string) (int, string, string) {
	total := ruleScore + aiScore
	intent := IntentFromScore(total)
	reasoning := fmt.Sprintf(
		"Rule Score: %d/50 (Role: %d, Industry: %d, Completeness: %d). AI Score: %d/50. %s",
		ruleScore, b.Role, b.Industry, b.Completeness, aiScore, aiReasoning,
	)
	return total, intent, reasoning
}

// Package classifier wraps the external intent-classification capability.
// It builds the qualification prompt, validates the structured reply, and
// owns the failure policy: degrade to a neutral default, or fail the run.
package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"leadscore_backend/internal/scoring/engine"
	"leadscore_backend/platform/apperr"
	"leadscore_backend/platform/config"
)

// Label-to-score table for the AI half of the total score.
const (
	scoreHigh    = 50
	scoreMedium  = 30
	scoreLow     = 10
	scoreUnknown = 0
)

// Fallback values used when the external call fails in degrade mode.
const (
	fallbackScore     = scoreMedium
	fallbackLabel     = engine.IntentMedium
	fallbackReasoning = "AI scoring unavailable; using neutral default."
)

// CompletionClient is the single external capability the classifier
// depends on: one synchronous structured completion per call.
type CompletionClient interface {
	CompleteJSON(ctx context.Context, prompt string) (string, error)
}

// Classification is the outcome of classifying one lead.
type Classification struct {
	Score     int
	Label     string
	Reasoning string
	// Degraded marks a fallback result substituted after an external
	// failure; FallbackCause carries the failure for logging.
	Degraded      bool
	FallbackCause error
}

// Classifier converts a lead/offer pair into an AI score with reasoning.
type Classifier struct {
	client      CompletionClient
	failureMode string
}

// New creates a classifier with the given failure mode
// (config.FailureModeDegrade or config.FailureModeFail).
func New(client CompletionClient, failureMode string) *Classifier {
	return &Classifier{client: client, failureMode: failureMode}
}

// Classify performs exactly one external call for the lead, with no retry.
// Transport errors, timeouts and malformed replies all route through the
// failure policy: in degrade mode a neutral default classification is
// returned, in fail mode a typed upstream error aborts the caller.
func (c *Classifier) Classify(ctx context.Context, lead engine.Lead, offer engine.Offer) (Classification, error) {
	raw, err := c.client.CompleteJSON(ctx, BuildPrompt(lead, offer))
	if err == nil {
		var cls Classification
		cls, err = parseReply(raw)
		if err == nil {
			return cls, nil
		}
	}

	if c.failureMode == config.FailureModeFail {
		return Classification{}, apperr.Wrap(apperr.KindUpstream, "AI intent classification failed", err).
			WithDetails(err.Error())
	}

	return Classification{
		Score:         fallbackScore,
		Label:         fallbackLabel,
		Reasoning:     fallbackReasoning,
		Degraded:      true,
		FallbackCause: err,
	}, nil
}

type intentReply struct {
	Intent    string `json:"intent"`
	Reasoning string `json:"reasoning"`
}

// parseReply validates the model's JSON reply. A reply that is not a JSON
// object with at least one of the expected fields is a classifier failure;
// a parsed-but-unrecognized label is not, and maps to a zero score.
func parseReply(raw string) (Classification, error) {
	var reply intentReply
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return Classification{}, fmt.Errorf("malformed classifier reply: %w", err)
	}
	if reply.Intent == "" && reply.Reasoning == "" {
		return Classification{}, fmt.Errorf("classifier reply missing intent and reasoning")
	}

	score := scoreUnknown
	switch strings.ToLower(reply.Intent) {
	case "high":
		score = scoreHigh
	case "medium":
		score = scoreMedium
	case "low":
		score = scoreLow
	}

	return Classification{
		Score:     score,
		Label:     reply.Intent,
		Reasoning: reply.Reasoning,
	}, nil
}

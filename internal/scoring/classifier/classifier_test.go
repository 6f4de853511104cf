package classifier

import (
	"context"
	"errors"
	"strings"
	"testing"

	"leadscore_backend/internal/scoring/engine"
	"leadscore_backend/platform/apperr"
	"leadscore_backend/platform/config"
)

type fakeClient struct {
	reply string
	err   error
	calls int
}

func (f *fakeClient) CompleteJSON(ctx context.Context, prompt string) (string, error) {
	f.calls++
	return f.reply, f.err
}

var testLead = engine.Lead{Name: "Jane", Role: "CEO", Industry: "software"}
var testOffer = engine.Offer{Name: "CRM Tool", IdealUseCases: []string{"software"}}

func TestClassify_MapsLabelsToScores(t *testing.T) {
	tests := []struct {
		reply string
		want  int
	}{
		{`{"intent": "High", "reasoning": "Decision maker in target industry."}`, 50},
		{`{"intent": "HIGH", "reasoning": "case insensitive"}`, 50},
		{`{"intent": "medium", "reasoning": "some fit"}`, 30},
		{`{"intent": "Low", "reasoning": "poor fit"}`, 10},
	}

	for _, tt := range tests {
		c := New(&fakeClient{reply: tt.reply}, config.FailureModeDegrade)
		cls, err := c.Classify(context.Background(), testLead, testOffer)
		if err != nil {
			t.Fatalf("reply %s: unexpected error: %v", tt.reply, err)
		}
		if cls.Score != tt.want {
			t.Fatalf("reply %s: expected score %d, got %d", tt.reply, tt.want, cls.Score)
		}
		if cls.Degraded {
			t.Fatalf("reply %s: unexpected degraded result", tt.reply)
		}
	}
}

func TestClassify_UnknownLabelScoresZeroButKeepsReasoning(t *testing.T) {
	c := New(&fakeClient{reply: `{"intent": "Maybe", "reasoning": "unsure about this one"}`}, config.FailureModeDegrade)

	cls, err := c.Classify(context.Background(), testLead, testOffer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cls.Score != 0 {
		t.Fatalf("expected score 0 for unknown label, got %d", cls.Score)
	}
	if cls.Degraded {
		t.Fatalf("unknown label must not count as a fallback")
	}
	if cls.Reasoning != "unsure about this one" {
		t.Fatalf("expected model reasoning preserved, got %q", cls.Reasoning)
	}
}

func TestClassify_TransportErrorDegrades(t *testing.T) {
	c := New(&fakeClient{err: errors.New("connection refused")}, config.FailureModeDegrade)

	cls, err := c.Classify(context.Background(), testLead, testOffer)
	if err != nil {
		t.Fatalf("degrade mode must not propagate the error, got %v", err)
	}
	if !cls.Degraded {
		t.Fatalf("expected degraded classification")
	}
	if cls.Score != 30 || cls.Label != engine.IntentMedium {
		t.Fatalf("expected neutral fallback 30/Medium, got %d/%s", cls.Score, cls.Label)
	}
	if cls.FallbackCause == nil {
		t.Fatalf("expected fallback cause to be carried")
	}
}

func TestClassify_MalformedReplyDegrades(t *testing.T) {
	for _, reply := range []string{"not json at all", "{}", `{"intent": "", "reasoning": ""}`} {
		c := New(&fakeClient{reply: reply}, config.FailureModeDegrade)
		cls, err := c.Classify(context.Background(), testLead, testOffer)
		if err != nil {
			t.Fatalf("reply %q: unexpected error: %v", reply, err)
		}
		if !cls.Degraded {
			t.Fatalf("reply %q: expected degraded classification", reply)
		}
	}
}

func TestClassify_FailFastModePropagatesUpstreamError(t *testing.T) {
	c := New(&fakeClient{err: errors.New("timeout")}, config.FailureModeFail)

	_, err := c.Classify(context.Background(), testLead, testOffer)
	if err == nil {
		t.Fatalf("expected error in fail mode")
	}
	if !apperr.Is(err, apperr.KindUpstream) {
		t.Fatalf("expected upstream error kind, got %v", err)
	}
}

func TestClassify_ExactlyOneCallPerInvocation(t *testing.T) {
	client := &fakeClient{err: errors.New("boom")}
	c := New(client, config.FailureModeDegrade)

	if _, err := c.Classify(context.Background(), testLead, testOffer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.calls != 1 {
		t.Fatalf("expected exactly one call, got %d", client.calls)
	}
}

func TestBuildPrompt_RendersAbsentFieldsAsPlaceholder(t *testing.T) {
	prompt := BuildPrompt(engine.Lead{Name: "Jane"}, testOffer)

	if !strings.Contains(prompt, "- Name: Jane") {
		t.Fatalf("prompt missing lead name:\n%s", prompt)
	}
	if !strings.Contains(prompt, "- Role: Not provided") {
		t.Fatalf("prompt missing role placeholder:\n%s", prompt)
	}
	if !strings.Contains(prompt, "- LinkedIn Bio: Not provided") {
		t.Fatalf("prompt missing bio placeholder:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Product/Offer: CRM Tool") {
		t.Fatalf("prompt missing offer name:\n%s", prompt)
	}
}

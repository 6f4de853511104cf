package engine

import "testing"

func TestIntentFromScore_Thresholds(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, IntentLow},
		{39, IntentLow},
		{40, IntentMedium},
		{69, IntentMedium},
		{70, IntentHigh},
		{100, IntentHigh},
	}

	for _, tt := range tests {
		if got := IntentFromScore(tt.score); got != tt.want {
			t.Fatalf("score %d: expected %s, got %s", tt.score, tt.want, got)
		}
	}
}

func TestCombine_TotalIntentAndReasoning(t *testing.T) {
	b := Breakdown{Role: 20, Industry: 20, Completeness: 0}
	total, intent, reasoning := Combine(40, b, 50, "Strong fit for the product.")

	if total != 90 {
		t.Fatalf("expected total 90, got %d", total)
	}
	if intent != IntentHigh {
		t.Fatalf("expected intent High, got %s", intent)
	}
	want := "Rule Score: 40/50 (Role: 20, Industry: 20, Completeness: 0). AI Score: 50/50. Strong fit for the product."
	if reasoning != want {
		t.Fatalf("unexpected reasoning:\n got: %s\nwant: %s", reasoning, want)
	}
}

func TestCombine_IntentIsPureFunctionOfTotal(t *testing.T) {
	// The AI label never drives the bucket directly; only the total does.
	total, intent, _ := Combine(10, Breakdown{Role: 10}, 30, "Medium fit.")
	if total != 40 || intent != IntentMedium {
		t.Fatalf("expected 40/Medium, got %d/%s", total, intent)
	}

	total, intent, _ = Combine(0, Breakdown{}, 30, "Medium fit.")
	if total != 30 || intent != IntentLow {
		t.Fatalf("expected 30/Low, got %d/%s", total, intent)
	}
}

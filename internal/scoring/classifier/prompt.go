package classifier

import (
	"fmt"
	"strings"

	"leadscore_backend/internal/scoring/engine"
)

const notProvided = "Not provided"

// BuildPrompt renders the qualification prompt for one lead/offer pair.
// Absent lead fields are rendered with an explicit placeholder so the
// prospect section never contains dangling labels.
func BuildPrompt(lead engine.Lead, offer engine.Offer) string {
	return fmt.Sprintf(`You are a B2B lead qualification expert. Analyze this prospect's fit for our product/offer.

Product/Offer: %s
Value Propositions: %s
Ideal Use Cases: %s

Prospect:
- Name: %s
- Role: %s
- Company: %s
- Industry: %s
- Location: %s
- LinkedIn Bio: %s

Based on the prospect's role, industry, and background, classify their buying intent as High, Medium, or Low. Provide a 1-2 sentence explanation for your reasoning.

Respond in this exact JSON format:
{
  "intent": "High|Medium|Low",
  "reasoning": "Your 1-2 sentence explanation"
}`,
		offer.Name,
		strings.Join(offer.ValueProps, ", "),
		strings.Join(offer.IdealUseCases, ", "),
		orPlaceholder(lead.Name),
		orPlaceholder(lead.Role),
		orPlaceholder(lead.Company),
		orPlaceholder(lead.Industry),
		orPlaceholder(lead.Location),
		orPlaceholder(lead.LinkedInBio),
	)
}

func orPlaceholder(v string) string {
	if v == "" {
		return notProvided
	}
	return v
}

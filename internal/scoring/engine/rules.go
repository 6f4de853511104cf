// Package engine implements the deterministic half of lead scoring: the
// rule score, the rule/AI combination and the intent thresholds. Everything
// in this package is a pure function.
package engine

import "strings"

// Decision-maker titles score the full role component; influencer titles
// score half. Matching is case-insensitive substring containment, and the
// decision-maker check wins.
var decisionMakerRoles = []string{
	"ceo", "cto", "cfo", "coo", "chief", "president", "vp", "vice president",
	"head of", "director", "owner", "founder", "partner",
}

var influencerRoles = []string{
	"manager", "lead", "senior", "principal", "architect", "specialist",
}

// Lead is the scoring view of a prospect. Absent fields are empty strings.
type Lead struct {
	Name        string
	Role        string
	Company     string
	Industry    string
	Location    string
	LinkedInBio string
}

// Offer is the scoring view of the product being sold.
type Offer struct {
	Name          string
	ValueProps    []string
	IdealUseCases []string
}

// Breakdown holds the rule score components for reasoning construction.
type Breakdown struct {
	Role         int
	Industry     int
	Completeness int
}

// ScoreRules computes the deterministic rule score (0-50) for a lead
// against an offer, returning the component breakdown alongside.
func ScoreRules(lead Lead, offer Offer) (int, Breakdown) {
	var b Breakdown

	roleLower := strings.ToLower(lead.Role)
	industryLower := strings.ToLower(lead.Industry)

	if containsAny(roleLower, decisionMakerRoles) {
		b.Role = 20
	} else if containsAny(roleLower, influencerRoles) {
		b.Role = 10
	}

	b.Industry = industryScore(industryLower, offer.IdealUseCases)

	if lead.Name != "" && lead.Role != "" && lead.Company != "" &&
		lead.Industry != "" && lead.Location != "" && lead.LinkedInBio != "" {
		b.Completeness = 10
	}

	return b.Role + b.Industry + b.Completeness, b
}

// industryScore awards 20 for an exact bidirectional substring match with
// any ideal use case, 10 for a keyword-level match, 0 otherwise.
func industryScore(industry string, useCases []string) int {
	if len(useCases) == 0 {
		return 0
	}

	for _, useCase := range useCases {
		uc := strings.ToLower(useCase)
		if strings.Contains(industry, uc) || strings.Contains(uc, industry) {
			return 20
		}
	}

	for _, useCase := range useCases {
		for _, keyword := range strings.Fields(strings.ToLower(useCase)) {
			if strings.Contains(industry, keyword) || strings.Contains(keyword, industry) {
				return 10
			}
		}
	}

	return 0
}

func containsAny(s string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(s, token) {
			return true
		}
	}
	return false
}

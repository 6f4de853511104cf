package transport

// ScoreRequest triggers a scoring run for one offer against all leads.
type ScoreRequest struct {
	OfferID string `json:"offer_id" validate:"required,uuid"`
}

// ScoreRunResponse reports the outcome of a scoring run.
type ScoreRunResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	ResultsCount int    `json:"results_count"`
}

// ResultsQuery holds the optional, conjunctive result filters.
type ResultsQuery struct {
	OfferID  string `form:"offer_id"`
	Intent   string `form:"intent"`
	MinScore *int   `form:"min_score"`
}

// ResultRecord is one flattened scoring result for display.
type ResultRecord struct {
	Name      string  `json:"name"`
	Role      *string `json:"role"`
	Company   *string `json:"company"`
	Industry  *string `json:"industry"`
	Location  *string `json:"location"`
	Intent    string  `json:"intent"`
	Score     int     `json:"score"`
	Reasoning string  `json:"reasoning"`
	OfferName string  `json:"offer_name"`
}

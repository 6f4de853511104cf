package transport

import "github.com/google/uuid"

// CreateOfferRequest contains data for creating a new offer.
type CreateOfferRequest struct {
	Name          string   `json:"name" validate:"required,min=1"`
	ValueProps    []string `json:"value_props,omitempty"`
	IdealUseCases []string `json:"ideal_use_cases,omitempty"`
}

// OfferResponse represents an offer in API responses.
type OfferResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ValueProps    []string  `json:"value_props"`
	IdealUseCases []string  `json:"ideal_use_cases"`
	CreatedAt     string    `json:"created_at"`
}

// CreateOfferResponse wraps a newly created offer.
type CreateOfferResponse struct {
	Success bool          `json:"success"`
	Offer   OfferResponse `json:"offer"`
}

// ListOffersResponse wraps the offer listing.
type ListOffersResponse struct {
	Success bool            `json:"success"`
	Offers  []OfferResponse `json:"offers"`
}

package repository

import (
	"context"

	"github.com/google/uuid"
)

// Offer is a persisted product/offer described by value propositions and
// ideal customer use cases. Offers are immutable after creation.
type Offer struct {
	ID            uuid.UUID
	Name          string
	ValueProps    []string
	IdealUseCases []string
	CreatedAt     string
}

// CreateParams contains the fields for creating a new offer.
type CreateParams struct {
	Name          string
	ValueProps    []string
	IdealUseCases []string
}

// Repository defines persistence operations for offers. Offer lookup for
// scoring lives in the scoring repository, which owns that query.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (Offer, error)
	List(ctx context.Context) ([]Offer, error)
}

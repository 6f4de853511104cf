package repository

import (
	"context"

	"github.com/google/uuid"

	"leadscore_backend/internal/leads/ingest"
)

// Lead is a persisted prospect record. Leads are created only via CSV
// ingestion and never updated in place.
type Lead struct {
	ID          uuid.UUID
	Name        string
	Role        *string
	Company     *string
	Industry    *string
	Location    *string
	LinkedInBio *string
	CreatedAt   string
}

// Repository defines persistence operations for leads.
type Repository interface {
	// CreateBatch persists all candidates in a single batch write and
	// returns the number of rows stored.
	CreateBatch(ctx context.Context, candidates []ingest.Candidate) (int, error)
	// List retrieves all leads ordered newest-first.
	List(ctx context.Context) ([]Lead, error)
}

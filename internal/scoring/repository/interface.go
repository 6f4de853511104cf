package repository

import (
	"context"

	"github.com/google/uuid"
)

// Offer is the scoring view of a persisted offer.
type Offer struct {
	ID            uuid.UUID
	Name          string
	ValueProps    []string
	IdealUseCases []string
}

// Lead is the scoring view of a persisted lead. Optional fields are nil
// when absent.
type Lead struct {
	ID          uuid.UUID
	Name        string
	Role        *string
	Company     *string
	Industry    *string
	Location    *string
	LinkedInBio *string
}

// ResultRow is one scoring outcome to persist. Re-scoring the same
// (lead, offer) pair appends a new row; there is no upsert.
type ResultRow struct {
	LeadID     uuid.UUID
	OfferID    uuid.UUID
	RuleScore  int
	AIScore    int
	TotalScore int
	Intent     string
	Reasoning  string
}

// Filters narrows a results query. Nil fields are not applied; applied
// filters are conjunctive.
type Filters struct {
	OfferID  *uuid.UUID
	Intent   *string
	MinScore *int
}

// ResultRecord is a scoring result joined with lead display fields and the
// offer name, as exposed by query and export.
type ResultRecord struct {
	Name      string
	Role      *string
	Company   *string
	Industry  *string
	Location  *string
	Intent    string
	Score     int
	Reasoning string
	OfferName string
}

// Repository defines persistence operations for scoring runs and results.
type Repository interface {
	// GetOffer loads the offer to score against.
	GetOffer(ctx context.Context, id uuid.UUID) (Offer, error)
	// ListLeads returns every lead in stable insertion order.
	ListLeads(ctx context.Context) ([]Lead, error)
	// InsertResults persists all rows of a run in a single batch write.
	InsertResults(ctx context.Context, rows []ResultRow) (int, error)
	// QueryResults returns filtered results ordered by total score descending.
	QueryResults(ctx context.Context, f Filters) ([]ResultRecord, error)
}

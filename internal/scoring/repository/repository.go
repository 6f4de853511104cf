package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadscore_backend/platform/apperr"
)

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new scoring repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// GetOffer loads the offer to score against.
func (r *Repo) GetOffer(ctx context.Context, id uuid.UUID) (Offer, error) {
	query := `
		SELECT id, name, value_props, ideal_use_cases
		FROM offers
		WHERE id = $1`

	var o Offer
	err := r.pool.QueryRow(ctx, query, id).Scan(&o.ID, &o.Name, &o.ValueProps, &o.IdealUseCases)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Offer{}, apperr.NotFound("Offer not found")
		}
		return Offer{}, fmt.Errorf("get offer for scoring: %w", err)
	}

	return o, nil
}

// ListLeads returns every lead ordered by creation time so a scoring run
// is deterministic.
func (r *Repo) ListLeads(ctx context.Context) ([]Lead, error) {
	query := `
		SELECT id, name, role, company, industry, location, linkedin_bio
		FROM leads
		ORDER BY created_at ASC, id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list leads for scoring: %w", err)
	}
	defer rows.Close()

	var results []Lead
	for rows.Next() {
		var l Lead
		if err := rows.Scan(&l.ID, &l.Name, &l.Role, &l.Company, &l.Industry, &l.Location, &l.LinkedInBio); err != nil {
			return nil, fmt.Errorf("scan scoring lead: %w", err)
		}
		results = append(results, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scoring leads: %w", err)
	}

	return results, nil
}

// InsertResults persists all rows with a single COPY. Either the whole run
// is stored or none of it is.
func (r *Repo) InsertResults(ctx context.Context, rows []ResultRow) (int, error) {
	source := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		source = append(source, []interface{}{
			row.LeadID, row.OfferID, row.RuleScore, row.AIScore, row.TotalScore, row.Intent, row.Reasoning,
		})
	}

	count, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"scoring_results"},
		[]string{"lead_id", "offer_id", "rule_score", "ai_score", "total_score", "intent", "reasoning"},
		pgx.CopyFromRows(source),
	)
	if err != nil {
		return 0, fmt.Errorf("batch insert scoring results: %w", err)
	}

	return int(count), nil
}

// QueryResults returns filtered results joined with lead display fields and
// the offer name, always ordered by total score descending.
func (r *Repo) QueryResults(ctx context.Context, f Filters) ([]ResultRecord, error) {
	query := `
		SELECT l.name, l.role, l.company, l.industry, l.location,
		       sr.intent, sr.total_score, sr.reasoning, o.name
		FROM scoring_results sr
		JOIN leads l ON l.id = sr.lead_id
		JOIN offers o ON o.id = sr.offer_id
		WHERE ($1::uuid IS NULL OR sr.offer_id = $1)
		  AND ($2::text IS NULL OR sr.intent = $2)
		  AND ($3::int IS NULL OR sr.total_score >= $3)
		ORDER BY sr.total_score DESC, sr.created_at DESC`

	rows, err := r.pool.Query(ctx, query, f.OfferID, f.Intent, f.MinScore)
	if err != nil {
		return nil, fmt.Errorf("query scoring results: %w", err)
	}
	defer rows.Close()

	var results []ResultRecord
	for rows.Next() {
		var rec ResultRecord
		err := rows.Scan(
			&rec.Name, &rec.Role, &rec.Company, &rec.Industry, &rec.Location,
			&rec.Intent, &rec.Score, &rec.Reasoning, &rec.OfferName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan scoring result: %w", err)
		}
		results = append(results, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scoring results: %w", err)
	}

	return results, nil
}

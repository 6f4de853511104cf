package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadscore_backend/internal/leads/ingest"
)

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new leads repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// CreateBatch persists all candidates with a single COPY. Either every row
// is stored or none is.
func (r *Repo) CreateBatch(ctx context.Context, candidates []ingest.Candidate) (int, error) {
	rows := make([][]interface{}, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, []interface{}{c.Name, c.Role, c.Company, c.Industry, c.Location, c.LinkedInBio})
	}

	count, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"leads"},
		[]string{"name", "role", "company", "industry", "location", "linkedin_bio"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("batch insert leads: %w", err)
	}

	return int(count), nil
}

// List retrieves all leads ordered newest-first.
func (r *Repo) List(ctx context.Context) ([]Lead, error) {
	query := `
		SELECT id, name, role, company, industry, location, linkedin_bio, created_at
		FROM leads
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var results []Lead
	for rows.Next() {
		var l Lead
		var createdAt time.Time

		err := rows.Scan(&l.ID, &l.Name, &l.Role, &l.Company, &l.Industry, &l.Location, &l.LinkedInBio, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}

		l.CreatedAt = createdAt.Format(time.RFC3339)
		results = append(results, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leads: %w", err)
	}

	return results, nil
}

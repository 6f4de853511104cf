package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new offers repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// Create inserts a new offer and returns the stored row.
func (r *Repo) Create(ctx context.Context, params CreateParams) (Offer, error) {
	query := `
		INSERT INTO offers (name, value_props, ideal_use_cases)
		VALUES ($1, $2, $3)
		RETURNING id, name, value_props, ideal_use_cases, created_at`

	var o Offer
	var createdAt time.Time

	err := r.pool.QueryRow(ctx, query, params.Name, params.ValueProps, params.IdealUseCases).Scan(
		&o.ID, &o.Name, &o.ValueProps, &o.IdealUseCases, &createdAt,
	)
	if err != nil {
		return Offer{}, fmt.Errorf("create offer: %w", err)
	}

	o.CreatedAt = createdAt.Format(time.RFC3339)

	return o, nil
}

// List retrieves all offers ordered newest-first.
func (r *Repo) List(ctx context.Context) ([]Offer, error) {
	query := `
		SELECT id, name, value_props, ideal_use_cases, created_at
		FROM offers
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()

	return scanOffers(rows)
}

// scanOffers is a helper to scan multiple rows into an Offer slice.
func scanOffers(rows pgx.Rows) ([]Offer, error) {
	var results []Offer

	for rows.Next() {
		var o Offer
		var createdAt time.Time

		if err := rows.Scan(&o.ID, &o.Name, &o.ValueProps, &o.IdealUseCases, &createdAt); err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}

		o.CreatedAt = createdAt.Format(time.RFC3339)
		results = append(results, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate offers: %w", err)
	}

	return results, nil
}

package service

import (
	"context"
	"fmt"
	"io"

	"leadscore_backend/internal/leads/ingest"
	"leadscore_backend/internal/leads/repository"
	"leadscore_backend/internal/leads/transport"
	"leadscore_backend/platform/apperr"
	"leadscore_backend/platform/logger"
)

// Service provides business logic for leads.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new leads service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Upload ingests a CSV stream of leads. Rows without a name are collected
// as warnings and skipped; a structurally broken stream fails the whole
// upload. Accepted leads are persisted in one batch write, so a storage
// failure after parsing is reported rather than silently dropped.
func (s *Service) Upload(ctx context.Context, file io.Reader) (transport.UploadLeadsResponse, error) {
	result, err := ingest.Parse(file)
	if err != nil {
		return transport.UploadLeadsResponse{}, apperr.Wrap(apperr.KindBadRequest, "Failed to parse CSV file", err).
			WithDetails(err.Error())
	}

	if len(result.Leads) == 0 {
		if result.RowCount() == 0 {
			return transport.UploadLeadsResponse{}, apperr.Validation("CSV file contains no data rows")
		}
		return transport.UploadLeadsResponse{}, apperr.Validation("No valid leads found in CSV").
			WithDetails(result.Errors)
	}

	count, err := s.repo.CreateBatch(ctx, result.Leads)
	if err != nil {
		s.log.DatabaseError("batch insert leads", err)
		return transport.UploadLeadsResponse{}, apperr.Wrap(apperr.KindInternal, "Failed to insert leads", err).
			WithDetails(err.Error())
	}

	s.log.IngestionResult(count, len(result.Errors))

	return transport.UploadLeadsResponse{
		Success:       true,
		Message:       fmt.Sprintf("Successfully uploaded %d leads", count),
		LeadsUploaded: count,
		Errors:        result.Errors,
	}, nil
}

// List retrieves all leads ordered newest-first.
func (s *Service) List(ctx context.Context) (transport.ListLeadsResponse, error) {
	leads, err := s.repo.List(ctx)
	if err != nil {
		s.log.DatabaseError("list leads", err)
		return transport.ListLeadsResponse{}, err
	}

	responses := make([]transport.LeadResponse, 0, len(leads))
	for _, l := range leads {
		responses = append(responses, transport.LeadResponse{
			ID:          l.ID,
			Name:        l.Name,
			Role:        l.Role,
			Company:     l.Company,
			Industry:    l.Industry,
			Location:    l.Location,
			LinkedInBio: l.LinkedInBio,
			CreatedAt:   l.CreatedAt,
		})
	}

	return transport.ListLeadsResponse{
		Success: true,
		Leads:   responses,
		Count:   len(responses),
	}, nil
}

package service

import (
	"context"

	"leadscore_backend/internal/offers/repository"
	"leadscore_backend/internal/offers/transport"
	"leadscore_backend/platform/logger"
)

// Service provides business logic for offers.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new offers service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Create stores a new offer. Missing value prop or use case lists default
// to empty so downstream scoring never sees nil.
func (s *Service) Create(ctx context.Context, req transport.CreateOfferRequest) (transport.OfferResponse, error) {
	params := repository.CreateParams{
		Name:          req.Name,
		ValueProps:    req.ValueProps,
		IdealUseCases: req.IdealUseCases,
	}
	if params.ValueProps == nil {
		params.ValueProps = []string{}
	}
	if params.IdealUseCases == nil {
		params.IdealUseCases = []string{}
	}

	offer, err := s.repo.Create(ctx, params)
	if err != nil {
		s.log.DatabaseError("create offer", err)
		return transport.OfferResponse{}, err
	}

	return toResponse(offer), nil
}

// List retrieves all offers ordered newest-first.
func (s *Service) List(ctx context.Context) ([]transport.OfferResponse, error) {
	offers, err := s.repo.List(ctx)
	if err != nil {
		s.log.DatabaseError("list offers", err)
		return nil, err
	}

	responses := make([]transport.OfferResponse, 0, len(offers))
	for _, o := range offers {
		responses = append(responses, toResponse(o))
	}

	return responses, nil
}

func toResponse(o repository.Offer) transport.OfferResponse {
	return transport.OfferResponse{
		ID:            o.ID,
		Name:          o.Name,
		ValueProps:    o.ValueProps,
		IdealUseCases: o.IdealUseCases,
		CreatedAt:     o.CreatedAt,
	}
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"leadscore_backend/internal/scoring/classifier"
	"leadscore_backend/internal/scoring/engine"
	"leadscore_backend/internal/scoring/repository"
	"leadscore_backend/internal/scoring/transport"
	"leadscore_backend/platform/apperr"
	"leadscore_backend/platform/logger"
)

// IntentClassifier is the scoring service's view of the AI classifier.
type IntentClassifier interface {
	Classify(ctx context.Context, lead engine.Lead, offer engine.Offer) (classifier.Classification, error)
}

// Service orchestrates scoring runs and result queries.
type Service struct {
	repo       repository.Repository
	classifier IntentClassifier
	log        *logger.Logger
}

// New creates a new scoring service.
func New(repo repository.Repository, cls IntentClassifier, log *logger.Logger) *Service {
	return &Service{repo: repo, classifier: cls, log: log}
}

// Run scores every lead against the given offer. Leads are processed
// sequentially in store order; all results are written in one batch at the
// end, so a store failure fails the entire run.
func (s *Service) Run(ctx context.Context, offerID uuid.UUID) (transport.ScoreRunResponse, error) {
	start := time.Now()

	offer, err := s.repo.GetOffer(ctx, offerID)
	if err != nil {
		return transport.ScoreRunResponse{}, err
	}

	leads, err := s.repo.ListLeads(ctx)
	if err != nil {
		s.log.DatabaseError("list leads for scoring", err)
		return transport.ScoreRunResponse{}, apperr.Wrap(apperr.KindInternal, "Failed to retrieve leads", err).
			WithDetails(err.Error())
	}
	if len(leads) == 0 {
		return transport.ScoreRunResponse{}, apperr.Validation("No leads found to score")
	}

	engineOffer := engine.Offer{
		Name:          offer.Name,
		ValueProps:    offer.ValueProps,
		IdealUseCases: offer.IdealUseCases,
	}

	rows := make([]repository.ResultRow, 0, len(leads))
	fallbacks := 0

	for _, lead := range leads {
		engineLead := toEngineLead(lead)
		ruleScore, breakdown := engine.ScoreRules(engineLead, engineOffer)

		cls, err := s.classifier.Classify(ctx, engineLead, engineOffer)
		if err != nil {
			// Fail-fast mode: abort before anything is persisted.
			return transport.ScoreRunResponse{}, err
		}
		if cls.Degraded {
			fallbacks++
			s.log.ClassifierFallback(lead.ID.String(), cls.FallbackCause)
		}

		total, intent, reasoning := engine.Combine(ruleScore, breakdown, cls.Score, cls.Reasoning)

		rows = append(rows, repository.ResultRow{
			LeadID:     lead.ID,
			OfferID:    offer.ID,
			RuleScore:  ruleScore,
			AIScore:    cls.Score,
			TotalScore: total,
			Intent:     intent,
			Reasoning:  reasoning,
		})
	}

	count, err := s.repo.InsertResults(ctx, rows)
	if err != nil {
		s.log.DatabaseError("insert scoring results", err)
		return transport.ScoreRunResponse{}, apperr.Wrap(apperr.KindInternal, "Failed to save scoring results", err).
			WithDetails(err.Error())
	}

	s.log.ScoringRun(offer.ID.String(), count, fallbacks, float64(time.Since(start).Microseconds())/1000.0)

	return transport.ScoreRunResponse{
		Success:      true,
		Message:      fmt.Sprintf("Successfully scored %d leads", count),
		ResultsCount: count,
	}, nil
}

// Results returns filtered scoring results ordered by total score descending.
func (s *Service) Results(ctx context.Context, q transport.ResultsQuery) ([]transport.ResultRecord, error) {
	filters, err := toFilters(q)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.QueryResults(ctx, filters)
	if err != nil {
		s.log.DatabaseError("query scoring results", err)
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to retrieve results", err).
			WithDetails(err.Error())
	}

	out := make([]transport.ResultRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, transport.ResultRecord{
			Name:      rec.Name,
			Role:      rec.Role,
			Company:   rec.Company,
			Industry:  rec.Industry,
			Location:  rec.Location,
			Intent:    rec.Intent,
			Score:     rec.Score,
			Reasoning: rec.Reasoning,
			OfferName: rec.OfferName,
		})
	}

	return out, nil
}

// Export renders the filtered results as a CSV document.
func (s *Service) Export(ctx context.Context, q transport.ResultsQuery) ([]byte, error) {
	records, err := s.Results(ctx, q)
	if err != nil {
		return nil, err
	}
	return RenderCSV(records), nil
}

func toFilters(q transport.ResultsQuery) (repository.Filters, error) {
	var f repository.Filters

	if q.OfferID != "" {
		id, err := uuid.Parse(q.OfferID)
		if err != nil {
			return repository.Filters{}, apperr.BadRequest("invalid offer_id")
		}
		f.OfferID = &id
	}
	if q.Intent != "" {
		intent := q.Intent
		f.Intent = &intent
	}
	f.MinScore = q.MinScore

	return f, nil
}

func toEngineLead(l repository.Lead) engine.Lead {
	return engine.Lead{
		Name:        l.Name,
		Role:        deref(l.Role),
		Company:     deref(l.Company),
		Industry:    deref(l.Industry),
		Location:    deref(l.Location),
		LinkedInBio: deref(l.LinkedInBio),
	}
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

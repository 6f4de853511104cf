package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"leadscore_backend/internal/scoring/classifier"
	"leadscore_backend/internal/scoring/engine"
	"leadscore_backend/internal/scoring/repository"
	"leadscore_backend/internal/scoring/transport"
	"leadscore_backend/platform/apperr"
	"leadscore_backend/platform/logger"
)

type fakeRepo struct {
	offer      repository.Offer
	offerErr   error
	leads      []repository.Lead
	leadsErr   error
	inserted   [][]repository.ResultRow
	insertErr  error
	records    []repository.ResultRecord
	recordsErr error
	filters    repository.Filters
}

func (f *fakeRepo) GetOffer(_ context.Context, id uuid.UUID) (repository.Offer, error) {
	if f.offerErr != nil {
		return repository.Offer{}, f.offerErr
	}
	return f.offer, nil
}

func (f *fakeRepo) ListLeads(_ context.Context) ([]repository.Lead, error) {
	if f.leadsErr != nil {
		return nil, f.leadsErr
	}
	return f.leads, nil
}

func (f *fakeRepo) InsertResults(_ context.Context, rows []repository.ResultRow) (int, error) {
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.inserted = append(f.inserted, rows)
	return len(rows), nil
}

func (f *fakeRepo) QueryResults(_ context.Context, filters repository.Filters) ([]repository.ResultRecord, error) {
	f.filters = filters
	if f.recordsErr != nil {
		return nil, f.recordsErr
	}
	return f.records, nil
}

type fakeClassifier struct {
	result classifier.Classification
	err    error
	calls  int
}

func (f *fakeClassifier) Classify(_ context.Context, _ engine.Lead, _ engine.Offer) (classifier.Classification, error) {
	f.calls++
	if f.err != nil {
		return classifier.Classification{}, f.err
	}
	return f.result, nil
}

func strPtr(v string) *string { return &v }

func sampleRepo() *fakeRepo {
	return &fakeRepo{
		offer: repository.Offer{
			ID:            uuid.New(),
			Name:          "AI Outreach Automation",
			ValueProps:    []string{"24/7 outreach"},
			IdealUseCases: []string{"B2B SaaS mid-market"},
		},
		leads: []repository.Lead{
			{ID: uuid.New(), Name: "Jane", Role: strPtr("CEO"), Company: strPtr("Acme"), Industry: strPtr("B2B SaaS mid-market"), Location: strPtr("Berlin"), LinkedInBio: strPtr("Founder at Acme")},
			{ID: uuid.New(), Name: "Bob", Role: strPtr("Intern"), Company: strPtr("Beta")},
		},
	}
}

func newScoringService(repo *fakeRepo, cls IntentClassifier) *Service {
	return New(repo, cls, logger.New("test"))
}

func TestRun_ScoresAllLeadsInOneBatch(t *testing.T) {
	repo := sampleRepo()
	cls := &fakeClassifier{result: classifier.Classification{
		Score:     50,
		Label:     engine.IntentHigh,
		Reasoning: "Strong fit.",
	}}
	svc := newScoringService(repo, cls)

	resp, err := svc.Run(context.Background(), repo.offer.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.ResultsCount != 2 {
		t.Fatalf("expected 2 results, got %d", resp.ResultsCount)
	}
	if resp.Message != "Successfully scored 2 leads" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if cls.calls != 2 {
		t.Fatalf("expected one classification per lead, got %d", cls.calls)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected one batch insert, got %d", len(repo.inserted))
	}

	// Jane: decision maker (20) + exact industry (20) + complete profile (10).
	jane := repo.inserted[0][0]
	if jane.RuleScore != 50 || jane.AIScore != 50 {
		t.Fatalf("unexpected Jane scores: %+v", jane)
	}
	if jane.TotalScore != 100 || jane.Intent != engine.IntentHigh {
		t.Fatalf("unexpected Jane total: %+v", jane)
	}
	if !strings.HasSuffix(jane.Reasoning, "AI Score: 50/50. Strong fit.") {
		t.Fatalf("unexpected reasoning: %q", jane.Reasoning)
	}
	if jane.OfferID != repo.offer.ID || jane.LeadID != repo.leads[0].ID {
		t.Fatalf("row must reference lead and offer: %+v", jane)
	}
}

func TestRun_OfferLookupErrorPassesThrough(t *testing.T) {
	repo := sampleRepo()
	repo.offerErr = apperr.NotFound("Offer not found")
	svc := newScoringService(repo, &fakeClassifier{})

	_, err := svc.Run(context.Background(), uuid.New())
	if apperr.GetKind(err) != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRun_NoLeadsIsValidationError(t *testing.T) {
	repo := sampleRepo()
	repo.leads = nil
	svc := newScoringService(repo, &fakeClassifier{})

	_, err := svc.Run(context.Background(), repo.offer.ID)
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRun_LeadListFailureIsInternal(t *testing.T) {
	repo := sampleRepo()
	repo.leadsErr = errors.New("connection reset")
	svc := newScoringService(repo, &fakeClassifier{})

	_, err := svc.Run(context.Background(), repo.offer.ID)
	if apperr.GetKind(err) != apperr.KindInternal {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestRun_DegradedClassificationCompletesRun(t *testing.T) {
	repo := sampleRepo()
	fallbackNote := "AI scoring unavailable; using neutral default."
	cls := &fakeClassifier{result: classifier.Classification{
		Score:         30,
		Label:         engine.IntentMedium,
		Reasoning:     fallbackNote,
		Degraded:      true,
		FallbackCause: errors.New("upstream timeout"),
	}}
	svc := newScoringService(repo, cls)

	resp, err := svc.Run(context.Background(), repo.offer.ID)
	if err != nil {
		t.Fatalf("degraded run must succeed: %v", err)
	}
	if resp.ResultsCount != 2 {
		t.Fatalf("expected 2 results, got %d", resp.ResultsCount)
	}

	bob := repo.inserted[0][1]
	if bob.AIScore != 30 {
		t.Fatalf("expected fallback AI score, got %+v", bob)
	}
	if !strings.Contains(bob.Reasoning, fallbackNote) {
		t.Fatalf("reasoning must carry the fallback note: %q", bob.Reasoning)
	}
}

func TestRun_ClassifierErrorAbortsBeforePersisting(t *testing.T) {
	repo := sampleRepo()
	cls := &fakeClassifier{err: apperr.Upstream("AI intent classification failed")}
	svc := newScoringService(repo, cls)

	_, err := svc.Run(context.Background(), repo.offer.ID)
	if apperr.GetKind(err) != apperr.KindUpstream {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if len(repo.inserted) != 0 {
		t.Fatalf("nothing must be persisted on abort, got %d batches", len(repo.inserted))
	}
}

func TestRun_ResultInsertFailureIsInternal(t *testing.T) {
	repo := sampleRepo()
	repo.insertErr = errors.New("constraint violation")
	cls := &fakeClassifier{result: classifier.Classification{Score: 10, Label: engine.IntentLow, Reasoning: "Weak fit."}}
	svc := newScoringService(repo, cls)

	_, err := svc.Run(context.Background(), repo.offer.ID)
	if apperr.GetKind(err) != apperr.KindInternal {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestResults_MapsRecordsAndFilters(t *testing.T) {
	offerID := uuid.New()
	repo := sampleRepo()
	repo.records = []repository.ResultRecord{
		{Name: "Jane", Role: strPtr("CEO"), Intent: engine.IntentHigh, Score: 90, Reasoning: "r", OfferName: "AI Outreach Automation"},
	}
	svc := newScoringService(repo, &fakeClassifier{})

	minScore := 70
	out, err := svc.Results(context.Background(), transport.ResultsQuery{
		OfferID:  offerID.String(),
		Intent:   engine.IntentHigh,
		MinScore: &minScore,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 1 || out[0].Name != "Jane" || out[0].OfferName != "AI Outreach Automation" {
		t.Fatalf("unexpected records: %+v", out)
	}

	if repo.filters.OfferID == nil || *repo.filters.OfferID != offerID {
		t.Fatalf("offer filter not applied: %+v", repo.filters)
	}
	if repo.filters.Intent == nil || *repo.filters.Intent != engine.IntentHigh {
		t.Fatalf("intent filter not applied: %+v", repo.filters)
	}
	if repo.filters.MinScore == nil || *repo.filters.MinScore != 70 {
		t.Fatalf("min score filter not applied: %+v", repo.filters)
	}
}

func TestResults_UnfilteredQueryLeavesFiltersNil(t *testing.T) {
	repo := sampleRepo()
	svc := newScoringService(repo, &fakeClassifier{})

	if _, err := svc.Results(context.Background(), transport.ResultsQuery{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.filters.OfferID != nil || repo.filters.Intent != nil || repo.filters.MinScore != nil {
		t.Fatalf("expected no filters, got %+v", repo.filters)
	}
}

func TestResults_InvalidOfferIDIsBadRequest(t *testing.T) {
	svc := newScoringService(sampleRepo(), &fakeClassifier{})

	_, err := svc.Results(context.Background(), transport.ResultsQuery{OfferID: "not-a-uuid"})
	if apperr.GetKind(err) != apperr.KindBadRequest {
		t.Fatalf("expected bad request, got %v", err)
	}
}

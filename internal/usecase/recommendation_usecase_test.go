package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"hirex/internal/domain/matching"
	"hirex/internal/repository"
)

type mockCandidateRepo struct {
	candidate matching.Candidate
	err       error
	calls     int
}

func (m *mockCandidateRepo) FindByID(ctx context.Context, id string) (matching.Candidate, error) {
	m.calls++
	return m.candidate, m.err
}

func (m *mockCandidateRepo) Upsert(ctx context.Context, c matching.Candidate) error {
	return nil
}

type mockJobRepo struct {
	jobs  []matching.Job
	err   error
	calls int
}

func (m *mockJobRepo) ListActive(ctx context.Context, limit, offset int) ([]matching.Job, error) {
	m.calls++
	return m.jobs, m.err
}

func (m *mockJobRepo) UpsertBatch(ctx context.Context, jobs []repository.JobUpsert) error {
	return nil
}

type mockCache struct {
	store          map[string][]byte
	deletedPattern string
}

func newMockCache() *mockCache {
	return &mockCache{store: map[string][]byte{}}
}

func (m *mockCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (m *mockCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = b
	return nil
}

func (m *mockCache) DeleteByPattern(ctx context.Context, pattern string) error {
	m.deletedPattern = pattern
	for k := range m.store {
		delete(m.store, k)
	}
	return nil
}

func TestRecommendForCandidate_ComputesAndCaches(t *testing.T) {
	candidates := &mockCandidateRepo{candidate: testCandidate()}
	jobs := &mockJobRepo{jobs: []matching.Job{testJob("a"), testJob("b")}}
	cache := newMockCache()

	uc := NewRecommendationUsecase(candidates, jobs, matching.NewEngine(2), cache)

	out, err := uc.RecommendForCandidate(context.Background(), "cand-1", 5)
	if err != nil {
		t.Fatalf("recommend error: %v", err)
	}
	if out.CandidateID != "cand-1" {
		t.Fatalf("expected candidate cand-1, got %q", out.CandidateID)
	}
	if len(out.Matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(out.Matches))
	}
	if len(cache.store) != 1 {
		t.Fatalf("expected 1 cached entry, got %d", len(cache.store))
	}

	// Second call is served from cache.
	if _, err := uc.RecommendForCandidate(context.Background(), "cand-1", 5); err != nil {
		t.Fatalf("recommend error (2nd): %v", err)
	}
	if candidates.calls != 1 || jobs.calls != 1 {
		t.Fatalf("expected repos hit once, got candidates=%d jobs=%d", candidates.calls, jobs.calls)
	}
}

func TestRecommendForCandidate_NotFound(t *testing.T) {
	candidates := &mockCandidateRepo{err: repository.ErrCandidateNotFound}
	jobs := &mockJobRepo{}

	uc := NewRecommendationUsecase(candidates, jobs, matching.NewEngine(2), nil)

	_, err := uc.RecommendForCandidate(context.Background(), "missing", 5)
	if !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound, got %v", err)
	}
}

func TestRecommendForCandidate_InvalidInputs(t *testing.T) {
	uc := NewRecommendationUsecase(&mockCandidateRepo{}, &mockJobRepo{}, matching.NewEngine(2), nil)

	if _, err := uc.RecommendForCandidate(context.Background(), "", 5); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty id, got %v", err)
	}
	if _, err := uc.RecommendForCandidate(context.Background(), "cand-1", 0); !errors.Is(err, matching.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for top_n 0, got %v", err)
	}
}

func TestInvalidateAll_DropsRecommendationKeys(t *testing.T) {
	cache := newMockCache()
	cache.store["recommend:cand-1:5"] = []byte(`{}`)

	uc := NewRecommendationUsecase(&mockCandidateRepo{}, &mockJobRepo{}, matching.NewEngine(2), cache)

	if err := uc.InvalidateAll(context.Background()); err != nil {
		t.Fatalf("invalidate error: %v", err)
	}
	if cache.deletedPattern != "recommend:*" {
		t.Fatalf("expected pattern recommend:*, got %q", cache.deletedPattern)
	}
	if len(cache.store) != 0 {
		t.Fatalf("expected cache emptied, got %d entries", len(cache.store))
	}
}

package usecase

import (
	"context"
	"errors"
	"fmt"

	"hirex/internal/domain/matching"
	"hirex/internal/repository"
)

const recommendationKeyPrefix = "recommend:"

type RecommendationUsecase interface {
	RecommendForCandidate(ctx context.Context, candidateID string, topN int) (matching.CandidateMatches, error)
	InvalidateAll(ctx context.Context) error
}

type Recommendation struct {
	candidates repository.CandidateRepository
	jobs       repository.JobRepository
	engine     *matching.Engine
	cache      MatchCache
}

func NewRecommendationUsecase(
	candidates repository.CandidateRepository,
	jobs repository.JobRepository,
	engine *matching.Engine,
	cache MatchCache,
) *Recommendation {
	return &Recommendation{candidates: candidates, jobs: jobs, engine: engine, cache: cache}
}

func (u *Recommendation) RecommendForCandidate(ctx context.Context, candidateID string, topN int) (matching.CandidateMatches, error) {
	if candidateID == "" {
		return matching.CandidateMatches{}, ErrInvalidInput
	}
	if topN < 1 {
		return matching.CandidateMatches{}, matching.ErrInvalidRequest
	}

	key := fmt.Sprintf("%s%s:%d", recommendationKeyPrefix, candidateID, topN)
	if u.cache != nil {
		var cached matching.CandidateMatches
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	cand, err := u.candidates.FindByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return matching.CandidateMatches{}, ErrCandidateNotFound
		}
		return matching.CandidateMatches{}, ErrInternal
	}

	jobs, err := u.jobs.ListActive(ctx, 500, 0)
	if err != nil {
		return matching.CandidateMatches{}, ErrInternal
	}

	results, err := u.engine.Match([]matching.Candidate{cand}, jobs, matching.DefaultWeights(), topN)
	if err != nil {
		return matching.CandidateMatches{}, err
	}
	out := results[0]

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, out, 0)
	}
	return out, nil
}

// InvalidateAll drops every cached recommendation; called after job
// ingestion changes the active job set.
func (u *Recommendation) InvalidateAll(ctx context.Context) error {
	if u.cache == nil {
		return nil
	}
	return u.cache.DeleteByPattern(ctx, recommendationKeyPrefix+"*")
}

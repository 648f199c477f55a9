package usecase

import (
	"context"

	"hirex/internal/config"
	"hirex/internal/domain/matching"
)

// WeightOverrides carries optional per-request weight replacements; nil
// fields fall back to the engine defaults for that component.
type WeightOverrides struct {
	Skills     *float64
	Experience *float64
	Salary     *float64
	Location   *float64
	Industry   *float64
}

type MatchParams struct {
	Candidates []matching.Candidate
	Jobs       []matching.Job
	Weights    *WeightOverrides
	TopN       *int
}

type MatchOutput struct {
	Weights matching.Weights
	TopN    int
	Results []matching.CandidateMatches
}

type MatchUsecase interface {
	Match(ctx context.Context, params MatchParams) (MatchOutput, error)
}

type Match struct {
	engine *matching.Engine
	cfg    config.MatchingConfig
}

func NewMatchUsecase(engine *matching.Engine, cfg config.MatchingConfig) *Match {
	return &Match{engine: engine, cfg: cfg}
}

func (u *Match) Match(ctx context.Context, params MatchParams) (MatchOutput, error) {
	_ = ctx // scoring is synchronous and in-memory; the caller owns timeouts

	topN := u.cfg.DefaultTopN
	if topN < 1 {
		topN = matching.DefaultTopN
	}
	if params.TopN != nil {
		topN = *params.TopN
	}
	if topN < 1 {
		return MatchOutput{}, matching.ErrInvalidRequest
	}
	if u.cfg.MaxTopN > 0 && topN > u.cfg.MaxTopN {
		topN = u.cfg.MaxTopN
	}

	weights := resolveWeights(params.Weights)

	results, err := u.engine.Match(params.Candidates, params.Jobs, weights, topN)
	if err != nil {
		return MatchOutput{}, err
	}

	return MatchOutput{Weights: weights, TopN: topN, Results: results}, nil
}

func resolveWeights(ov *WeightOverrides) matching.Weights {
	w := matching.DefaultWeights()
	if ov == nil {
		return w
	}
	if ov.Skills != nil {
		w.Skills = *ov.Skills
	}
	if ov.Experience != nil {
		w.Experience = *ov.Experience
	}
	if ov.Salary != nil {
		w.Salary = *ov.Salary
	}
	if ov.Location != nil {
		w.Location = *ov.Location
	}
	if ov.Industry != nil {
		w.Industry = *ov.Industry
	}
	return w
}

package matching

import "sync"

const DefaultTopN = 5

// Engine ranks job postings for candidate profiles using the weighted
// heuristic scorers in this package. Scoring is a pure function of its
// inputs, so candidates are processed concurrently; results land in an
// indexed slice and the output is identical to a sequential run.
type Engine struct {
	workers int
}

// NewEngine returns an engine that ranks up to workers candidates
// concurrently. workers <= 0 falls back to 4.
func NewEngine(workers int) *Engine {
	if workers <= 0 {
		workers = 4
	}
	return &Engine{workers: workers}
}

// Match ranks every job for every candidate and returns the top topN jobs
// per candidate, preserving candidate request order. It fails atomically
// with ErrInvalidWeight or ErrInvalidRequest before scoring anything; an
// empty job list yields empty match lists, not an error.
func (e *Engine) Match(candidates []Candidate, jobs []Job, w Weights, topN int) ([]CandidateMatches, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if topN < 1 {
		return nil, ErrInvalidRequest
	}

	results := make([]CandidateMatches, len(candidates))
	sem := make(chan struct{}, e.workers)
	var wg sync.WaitGroup

	for i, c := range candidates {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, c Candidate) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = CandidateMatches{
				CandidateID: c.ID,
				Matches:     rankJobs(c, jobs, w, topN),
			}
		}(i, c)
	}
	wg.Wait()

	return results, nil
}

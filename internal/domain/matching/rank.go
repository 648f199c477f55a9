package matching

import "sort"

// rankJobs scores every job for one candidate, orders by total descending
// with ties broken by ascending job id, and truncates to topN. topN must
// already be validated by the caller.
func rankJobs(c Candidate, jobs []Job, w Weights, topN int) []JobMatch {
	scored := make([]JobMatch, 0, len(jobs))
	for _, j := range jobs {
		b := scoreJob(c, j, w)
		scored = append(scored, JobMatch{Job: j, Score: b.Total, Breakdown: b})
	}

	sort.Slice(scored, func(i, k int) bool {
		if scored[i].Score != scored[k].Score {
			return scored[i].Score > scored[k].Score
		}
		return scored[i].Job.ID < scored[k].Job.ID
	})

	if topN < len(scored) {
		scored = scored[:topN]
	}
	return scored
}

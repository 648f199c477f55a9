package matching

import "strings"

// Candidate is an immutable snapshot of a job seeker for one match request.
type Candidate struct {
	ID                 string
	FullName           string
	YearsExperience    int
	Skills             []string
	DesiredSalary      *int
	PreferredLocations []string
	OpenToRemote       bool
	Industries         []string
}

// Job is an immutable snapshot of a posting for one match request.
// SalaryMin/SalaryMax may be nil, meaning unbounded on that side.
type Job struct {
	ID                     string
	Title                  string
	Company                string
	RequiredSkills         []string
	NiceToHaveSkills       []string
	MinimumYearsExperience int
	SalaryMin              *int
	SalaryMax              *int
	Location               string
	RemoteAllowed          bool
	Industries             []string
}

// ComponentScore is one sub-score together with the weight that was
// actually applied to it. Weight is 0 when the component had no data and
// was excluded from the total.
type ComponentScore struct {
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
}

// ScoreBreakdown decomposes a total score into its five components.
type ScoreBreakdown struct {
	Skills     ComponentScore `json:"skills"`
	Experience ComponentScore `json:"experience"`
	Salary     ComponentScore `json:"salary"`
	Location   ComponentScore `json:"location"`
	Industry   ComponentScore `json:"industry"`
	Total      float64        `json:"total"`
}

// JobMatch couples a job with its score for one candidate.
type JobMatch struct {
	Job       Job
	Score     float64
	Breakdown ScoreBreakdown
}

// CandidateMatches holds the ranked jobs for one candidate, at most topN
// entries, sorted by total score descending.
type CandidateMatches struct {
	CandidateID string
	Matches     []JobMatch
}

func normalizedSet(values []string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		out[v] = struct{}{}
	}
	return out
}

func intersectionCount(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for k := range a {
		if _, ok := b[k]; ok {
			n++
		}
	}
	return n
}

package matching

import (
	"math"
	"reflect"
	"testing"
)

func berlinCandidate() Candidate {
	return Candidate{
		ID:                 "cand-1",
		FullName:           "Ada Example",
		YearsExperience:    5,
		Skills:             []string{"Python", "FastAPI", "SQL"},
		DesiredSalary:      intPtr(90000),
		PreferredLocations: []string{"Berlin"},
		OpenToRemote:       true,
		Industries:         []string{"FinTech", "SaaS"},
	}
}

func berlinJob(id string) Job {
	return Job{
		ID:                     id,
		Title:                  "Backend Engineer",
		Company:                "Acme",
		RequiredSkills:         []string{"Python", "FastAPI"},
		NiceToHaveSkills:       []string{"SQL"},
		MinimumYearsExperience: 4,
		SalaryMin:              intPtr(85000),
		SalaryMax:              intPtr(100000),
		Location:               "Berlin",
		RemoteAllowed:          true,
		Industries:             []string{"FinTech"},
	}
}

func TestScoreJob_PerfectMatchScoresOne(t *testing.T) {
	b := scoreJob(berlinCandidate(), berlinJob("job-1"), DefaultWeights())

	for name, s := range map[string]float64{
		"skills":     b.Skills.Score,
		"experience": b.Experience.Score,
		"salary":     b.Salary.Score,
		"location":   b.Location.Score,
		"industry":   b.Industry.Score,
	} {
		if s != 1.0 {
			t.Fatalf("expected %s score 1.0, got %v", name, s)
		}
	}
	if b.Total != 1.0 {
		t.Fatalf("expected total 1.0, got %v", b.Total)
	}
}

func TestScoreJob_PerfectMatchWithEqualWeights(t *testing.T) {
	w := Weights{Skills: 1, Experience: 1, Salary: 1, Location: 1, Industry: 1}
	b := scoreJob(berlinCandidate(), berlinJob("job-1"), w)
	if b.Total != 1.0 {
		t.Fatalf("expected total 1.0 with equal weights, got %v", b.Total)
	}
}

func TestScoreJob_ZeroComponentsStillRenormalizeOverPresentOnes(t *testing.T) {
	// Same candidate, but disjoint industries and no location/remote fit:
	// location and industry score 0 yet stay in the denominator.
	j := berlinJob("job-2")
	j.Location = "Munich"
	j.RemoteAllowed = false
	j.Industries = []string{"Gaming"}

	c := berlinCandidate()
	c.OpenToRemote = false

	b := scoreJob(c, j, DefaultWeights())
	if b.Location.Score != 0 || b.Industry.Score != 0 {
		t.Fatalf("expected zero location/industry scores, got %v/%v", b.Location.Score, b.Industry.Score)
	}
	if b.Location.Weight != 0.15 || b.Industry.Weight != 0.15 {
		t.Fatalf("zero-scored components with data keep their weight")
	}

	// skills 1*0.35 + experience 1*0.20 + salary 1*0.15 over full weight 1.0
	if math.Abs(b.Total-0.7) > 1e-9 {
		t.Fatalf("expected total 0.7, got %v", b.Total)
	}
	if b.Total >= 1.0 {
		t.Fatalf("total must be strictly below 1.0")
	}
}

func TestScoreJob_MissingFieldsAreExcludedNotPenalized(t *testing.T) {
	c := berlinCandidate()
	c.DesiredSalary = nil

	j := berlinJob("job-3")
	j.Location = ""
	j.Industries = nil
	j.SalaryMin = nil
	j.SalaryMax = nil

	b := scoreJob(c, j, DefaultWeights())
	if b.Salary.Weight != 0 || b.Location.Weight != 0 || b.Industry.Weight != 0 {
		t.Fatalf("absent components must record zero applied weight: %+v", b)
	}

	// Only skills and experience contribute: (0.35*1 + 0.20*1) / 0.55 = 1.
	if b.Total != 1.0 {
		t.Fatalf("expected total 1.0 from skills+experience only, got %v", b.Total)
	}
}

func TestScoreJob_EmptyInputsNeverDivideByZero(t *testing.T) {
	// Bare candidate against a bare job: only experience carries data
	// (years 0 against no requirement is a valid input, not missing data).
	b := scoreJob(Candidate{ID: "c"}, Job{ID: "j"}, DefaultWeights())
	if b.Total != 1.0 {
		t.Fatalf("expected total 1.0 from the experience component alone, got %v", b.Total)
	}
	if b.Skills.Weight != 0 || b.Salary.Weight != 0 || b.Location.Weight != 0 || b.Industry.Weight != 0 {
		t.Fatalf("absent components must record zero weight: %+v", b)
	}

	// A zero weight on the only present component leaves an empty
	// denominator; the total is defined as 0.
	b = scoreJob(Candidate{ID: "c"}, Job{ID: "j"}, Weights{Skills: 1})
	if b.Total != 0 {
		t.Fatalf("expected total 0 with no contributing weight, got %v", b.Total)
	}
}

func TestEngine_TopNTruncation(t *testing.T) {
	c := berlinCandidate()
	jobs := make([]Job, 0, 5)
	// Increasingly steep experience bars: job a is the best fit, e the worst.
	for i := 0; i < 5; i++ {
		j := berlinJob(string(rune('a' + i)))
		j.MinimumYearsExperience = 5 * (i + 1)
		jobs = append(jobs, j)
	}

	out, err := NewEngine(2).Match([]Candidate{c}, jobs, DefaultWeights(), 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 || len(out[0].Matches) != 2 {
		t.Fatalf("expected 1 candidate with 2 matches, got %+v", out)
	}
	if out[0].Matches[0].Score < out[0].Matches[1].Score {
		t.Fatalf("matches must be sorted descending")
	}
	if out[0].Matches[0].Job.ID != "a" || out[0].Matches[1].Job.ID != "b" {
		t.Fatalf("expected the two best jobs a,b; got %s,%s",
			out[0].Matches[0].Job.ID, out[0].Matches[1].Job.ID)
	}
}

func TestEngine_TieBreaksByJobIDAscending(t *testing.T) {
	c := berlinCandidate()
	jobs := []Job{berlinJob("zeta"), berlinJob("alpha"), berlinJob("mid")}

	out, err := NewEngine(1).Match([]Candidate{c}, jobs, DefaultWeights(), 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	got := []string{}
	for _, m := range out[0].Matches {
		got = append(got, m.Job.ID)
	}
	want := []string{"alpha", "mid", "zeta"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected tie order %v, got %v", want, got)
	}
}

func TestEngine_DeterministicAcrossRunsAndWorkerCounts(t *testing.T) {
	candidates := []Candidate{berlinCandidate(), {ID: "cand-2", Skills: []string{"Go"}}, {ID: "cand-3"}}
	jobs := []Job{berlinJob("j1"), berlinJob("j2"), {ID: "j3", RequiredSkills: []string{"Go"}}}

	first, err := NewEngine(8).Match(candidates, jobs, DefaultWeights(), 3)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, workers := range []int{1, 2, 8} {
		again, err := NewEngine(workers).Match(candidates, jobs, DefaultWeights(), 3)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("workers=%d produced different output", workers)
		}
	}
}

func TestEngine_PreservesCandidateOrder(t *testing.T) {
	candidates := []Candidate{{ID: "z"}, {ID: "a"}, {ID: "m"}}
	out, err := NewEngine(4).Match(candidates, nil, DefaultWeights(), 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for i, c := range candidates {
		if out[i].CandidateID != c.ID {
			t.Fatalf("candidate order not preserved at %d: %s", i, out[i].CandidateID)
		}
		if len(out[i].Matches) != 0 {
			t.Fatalf("empty job list must produce empty matches")
		}
	}
}

func TestEngine_InvalidInputs(t *testing.T) {
	e := NewEngine(2)

	if _, err := e.Match(nil, nil, DefaultWeights(), 0); err != ErrInvalidRequest {
		t.Fatalf("expected ErrInvalidRequest for top_n < 1, got %v", err)
	}
	if _, err := e.Match(nil, nil, Weights{Skills: -1}, 5); err != ErrInvalidWeight {
		t.Fatalf("expected ErrInvalidWeight, got %v", err)
	}
}

func TestEngine_TopNLargerThanJobCountReturnsAll(t *testing.T) {
	out, err := NewEngine(2).Match([]Candidate{berlinCandidate()}, []Job{berlinJob("only")}, DefaultWeights(), 50)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out[0].Matches) != 1 {
		t.Fatalf("expected all jobs returned, got %d", len(out[0].Matches))
	}
}

package dto

import (
	"hirex/internal/domain/matching"
	"hirex/internal/usecase"
)

type CandidateRequest struct {
	ID                 string   `json:"id"`
	FullName           string   `json:"full_name"`
	YearsExperience    int      `json:"years_experience"`
	Skills             []string `json:"skills"`
	DesiredSalary      *int     `json:"desired_salary"`
	PreferredLocations []string `json:"preferred_locations"`
	OpenToRemote       bool     `json:"open_to_remote"`
	Industries         []string `json:"industries"`
}

type JobRequest struct {
	ID                     string   `json:"id"`
	Title                  string   `json:"title"`
	Company                string   `json:"company"`
	RequiredSkills         []string `json:"required_skills"`
	NiceToHaveSkills       []string `json:"nice_to_have_skills"`
	MinimumYearsExperience int      `json:"minimum_years_experience"`
	SalaryMin              *int     `json:"salary_min"`
	SalaryMax              *int     `json:"salary_max"`
	Location               string   `json:"location"`
	RemoteAllowed          bool     `json:"remote_allowed"`
	Industries             []string `json:"industries"`
}

type WeightsRequest struct {
	Skills     *float64 `json:"skills"`
	Experience *float64 `json:"experience"`
	Salary     *float64 `json:"salary"`
	Location   *float64 `json:"location"`
	Industry   *float64 `json:"industry"`
}

type MatchRequest struct {
	Candidates []CandidateRequest `json:"candidates"`
	Jobs       []JobRequest       `json:"jobs"`
	Weights    *WeightsRequest    `json:"weights"`
	TopN       *int               `json:"top_n"`
}

type WeightsResponse struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Salary     float64 `json:"salary"`
	Location   float64 `json:"location"`
	Industry   float64 `json:"industry"`
}

type JobMatchResponse struct {
	JobID     string                  `json:"job_id"`
	Title     string                  `json:"title"`
	Company   string                  `json:"company,omitempty"`
	Score     float64                 `json:"score"`
	Breakdown matching.ScoreBreakdown `json:"breakdown"`
}

type CandidateMatchesResponse struct {
	CandidateID string             `json:"candidate_id"`
	Matches     []JobMatchResponse `json:"matches"`
}

type MatchResponse struct {
	Weights WeightsResponse            `json:"weights"`
	TopN    int                        `json:"top_n"`
	Results []CandidateMatchesResponse `json:"results"`
}

func (r CandidateRequest) ToDomain() matching.Candidate {
	return matching.Candidate{
		ID:                 r.ID,
		FullName:           r.FullName,
		YearsExperience:    r.YearsExperience,
		Skills:             r.Skills,
		DesiredSalary:      r.DesiredSalary,
		PreferredLocations: r.PreferredLocations,
		OpenToRemote:       r.OpenToRemote,
		Industries:         r.Industries,
	}
}

func (r JobRequest) ToDomain() matching.Job {
	return matching.Job{
		ID:                     r.ID,
		Title:                  r.Title,
		Company:                r.Company,
		RequiredSkills:         r.RequiredSkills,
		NiceToHaveSkills:       r.NiceToHaveSkills,
		MinimumYearsExperience: r.MinimumYearsExperience,
		SalaryMin:              r.SalaryMin,
		SalaryMax:              r.SalaryMax,
		Location:               r.Location,
		RemoteAllowed:          r.RemoteAllowed,
		Industries:             r.Industries,
	}
}

func (r *WeightsRequest) ToOverrides() *usecase.WeightOverrides {
	if r == nil {
		return nil
	}
	return &usecase.WeightOverrides{
		Skills:     r.Skills,
		Experience: r.Experience,
		Salary:     r.Salary,
		Location:   r.Location,
		Industry:   r.Industry,
	}
}

func NewMatchResponse(out usecase.MatchOutput) MatchResponse {
	resp := MatchResponse{
		Weights: WeightsResponse{
			Skills:     out.Weights.Skills,
			Experience: out.Weights.Experience,
			Salary:     out.Weights.Salary,
			Location:   out.Weights.Location,
			Industry:   out.Weights.Industry,
		},
		TopN:    out.TopN,
		Results: make([]CandidateMatchesResponse, 0, len(out.Results)),
	}
	for _, cm := range out.Results {
		resp.Results = append(resp.Results, NewCandidateMatchesResponse(cm))
	}
	return resp
}

func NewCandidateMatchesResponse(cm matching.CandidateMatches) CandidateMatchesResponse {
	out := CandidateMatchesResponse{
		CandidateID: cm.CandidateID,
		Matches:     make([]JobMatchResponse, 0, len(cm.Matches)),
	}
	for _, m := range cm.Matches {
		out.Matches = append(out.Matches, JobMatchResponse{
			JobID:     m.Job.ID,
			Title:     m.Job.Title,
			Company:   m.Job.Company,
			Score:     m.Score,
			Breakdown: m.Breakdown,
		})
	}
	return out
}

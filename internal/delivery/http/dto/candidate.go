package dto

import "hirex/internal/domain/matching"

type CandidateResponse struct {
	ID                 string   `json:"id"`
	FullName           string   `json:"full_name"`
	YearsExperience    int      `json:"years_experience"`
	Skills             []string `json:"skills"`
	DesiredSalary      *int     `json:"desired_salary"`
	PreferredLocations []string `json:"preferred_locations"`
	OpenToRemote       bool     `json:"open_to_remote"`
	Industries         []string `json:"industries"`
}

func NewCandidateResponse(c matching.Candidate) CandidateResponse {
	return CandidateResponse{
		ID:                 c.ID,
		FullName:           c.FullName,
		YearsExperience:    c.YearsExperience,
		Skills:             emptySlice(c.Skills),
		DesiredSalary:      c.DesiredSalary,
		PreferredLocations: emptySlice(c.PreferredLocations),
		OpenToRemote:       c.OpenToRemote,
		Industries:         emptySlice(c.Industries),
	}
}

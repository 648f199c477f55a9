package dto

import "hirex/internal/domain/matching"

type JobResponse struct {
	ID                     string   `json:"id"`
	Title                  string   `json:"title"`
	Company                string   `json:"company,omitempty"`
	RequiredSkills         []string `json:"required_skills"`
	NiceToHaveSkills       []string `json:"nice_to_have_skills"`
	MinimumYearsExperience int      `json:"minimum_years_experience"`
	SalaryMin              *int     `json:"salary_min"`
	SalaryMax              *int     `json:"salary_max"`
	Location               string   `json:"location,omitempty"`
	RemoteAllowed          bool     `json:"remote_allowed"`
	Industries             []string `json:"industries"`
}

type JobListResponse struct {
	Jobs  []JobResponse `json:"jobs"`
	Total int           `json:"total"`
}

func NewJobResponse(j matching.Job) JobResponse {
	return JobResponse{
		ID:                     j.ID,
		Title:                  j.Title,
		Company:                j.Company,
		RequiredSkills:         emptySlice(j.RequiredSkills),
		NiceToHaveSkills:       emptySlice(j.NiceToHaveSkills),
		MinimumYearsExperience: j.MinimumYearsExperience,
		SalaryMin:              j.SalaryMin,
		SalaryMax:              j.SalaryMax,
		Location:               j.Location,
		RemoteAllowed:          j.RemoteAllowed,
		Industries:             emptySlice(j.Industries),
	}
}

func NewJobListResponse(jobs []matching.Job) JobListResponse {
	out := JobListResponse{Jobs: make([]JobResponse, 0, len(jobs)), Total: len(jobs)}
	for _, j := range jobs {
		out.Jobs = append(out.Jobs, NewJobResponse(j))
	}
	return out
}

func emptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

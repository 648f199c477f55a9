package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"hirex/internal/domain/matching"
	"hirex/internal/repository"
)

// RemotiveScraper pulls postings from the public Remotive job board API.
type RemotiveScraper struct {
	client  *http.Client
	apiBase string
	limit   int
}

func NewRemotiveScraper() *RemotiveScraper {
	return &RemotiveScraper{
		client: &http.Client{
			Timeout: 25 * time.Second,
		},
		apiBase: "https://remotive.com",
		limit:   100,
	}
}

func (s *RemotiveScraper) Name() string { return "remotive" }

type remotiveEnvelope struct {
	Jobs []remotiveJob `json:"jobs"`
}

type remotiveJob struct {
	ID          int    `json:"id"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Category    string `json:"category"`
	Location    string `json:"candidate_required_location"`
	Salary      string `json:"salary"`
	Description string `json:"description"`
}

func (s *RemotiveScraper) Fetch(ctx context.Context) ([]repository.JobUpsert, error) {
	if s == nil {
		return nil, fmt.Errorf("nil scraper")
	}

	url := fmt.Sprintf("%s/api/remote-jobs?limit=%d", strings.TrimRight(s.apiBase, "/"), s.limit)
	body, err := httpGetWithRetry(ctx, s.client, url, 3)
	if err != nil {
		return nil, err
	}

	var envelope remotiveEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	out := make([]repository.JobUpsert, 0, len(envelope.Jobs))
	for _, it := range envelope.Jobs {
		if it.ID == 0 || strings.TrimSpace(it.Title) == "" {
			continue
		}
		description := stripHTML(it.Description)
		required, nice := extractSkills(description)
		salaryMin, salaryMax := extractSalary(description)
		if salaryMin == nil && salaryMax == nil {
			salaryMin, salaryMax = extractSalary(it.Salary)
		}

		out = append(out, repository.JobUpsert{
			Job: matching.Job{
				ID:                     "remotive-" + strconv.Itoa(it.ID),
				Title:                  strings.TrimSpace(it.Title),
				Company:                strings.TrimSpace(it.CompanyName),
				RequiredSkills:         required,
				NiceToHaveSkills:       nice,
				MinimumYearsExperience: extractMinYears(description),
				SalaryMin:              salaryMin,
				SalaryMax:              salaryMax,
				Location:               strings.TrimSpace(it.Location),
				RemoteAllowed:          true,
				Industries:             extractIndustries(description + " " + it.Category),
			},
			Source:    s.Name(),
			URL:       normalizeURL(it.URL),
			ScrapedAt: now,
		})
	}
	return out, nil
}

var htmlTagPattern = regexp.MustCompile(`(?s)<[^>]*>`)

func stripHTML(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, "\n")
	s = strings.ReplaceAll(s, "&amp;", "&")
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	return strings.TrimSpace(s)
}

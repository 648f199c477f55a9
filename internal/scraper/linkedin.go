package scraper

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"hirex/internal/domain/matching"
	"hirex/internal/repository"

	"github.com/gocolly/colly/v2"
)

// LinkedInScraper fetches individual job posting pages. Seed URLs come from
// configuration or from headless listing discovery.
type LinkedInScraper struct {
	seedURLs []string
	workers  int
	headless *HeadlessLister
}

func NewLinkedInScraper(seedURLs []string, workers int, headless *HeadlessLister) *LinkedInScraper {
	return &LinkedInScraper{seedURLs: seedURLs, workers: workers, headless: headless}
}

func (s *LinkedInScraper) Name() string { return "linkedin" }

func (s *LinkedInScraper) Fetch(ctx context.Context) ([]repository.JobUpsert, error) {
	if s == nil {
		return nil, fmt.Errorf("nil scraper")
	}

	urls := make([]string, 0, len(s.seedURLs))
	for _, u := range s.seedURLs {
		if IsValidJobURL(u) {
			urls = append(urls, normalizeURL(u))
		}
	}
	if s.headless != nil {
		discovered, err := s.headless.DiscoverJobURLs(ctx)
		if err == nil {
			for _, u := range discovered {
				if IsValidJobURL(u) {
					urls = append(urls, u)
				}
			}
		}
	}
	urls = dedupe(urls)
	if len(urls) == 0 {
		return nil, nil
	}

	pool := NewWorkerPool(s.workers, len(urls))
	pool.SetRateLimit(2)
	results := pool.Run(ctx)

	upserts := make([]repository.JobUpsert, len(urls))
	for i, jobURL := range urls {
		i, jobURL := i, jobURL
		pool.Submit(func(ctx context.Context) error {
			up, err := s.scrapePosting(ctx, jobURL)
			if err != nil {
				return err
			}
			upserts[i] = up
			return nil
		})
	}
	pool.Close()

	var lastErr error
	for res := range results {
		if res.Err != nil {
			lastErr = res.Err
		}
	}

	out := make([]repository.JobUpsert, 0, len(upserts))
	for _, up := range upserts {
		if up.Job.ID != "" {
			out = append(out, up)
		}
	}
	if len(out) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return out, nil
}

type postingPage struct {
	title       string
	company     string
	location    string
	description string
}

func (s *LinkedInScraper) scrapePosting(ctx context.Context, jobURL string) (repository.JobUpsert, error) {
	c := colly.NewCollector(
		colly.AllowedDomains("linkedin.com", "www.linkedin.com"),
	)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*linkedin.com*", Parallelism: 2, RandomDelay: 750 * time.Millisecond, Delay: 400 * time.Millisecond})

	var page postingPage
	var reqErr error

	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})

	c.OnHTML("h1", func(e *colly.HTMLElement) {
		if page.title == "" {
			page.title = strings.TrimSpace(e.Text)
		}
	})
	c.OnHTML(".topcard__org-name-link", func(e *colly.HTMLElement) {
		if page.company == "" {
			page.company = strings.TrimSpace(e.Text)
		}
	})
	c.OnHTML(".topcard__flavor--bullet", func(e *colly.HTMLElement) {
		if page.location == "" {
			page.location = strings.TrimSpace(e.Text)
		}
	})
	c.OnHTML(".description__text", func(e *colly.HTMLElement) {
		if page.description == "" {
			page.description = strings.TrimSpace(e.Text)
		}
	})
	c.OnHTML("body", func(e *colly.HTMLElement) {
		if page.description == "" {
			page.description = strings.TrimSpace(e.Text)
		}
	})

	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return repository.JobUpsert{}, ctx.Err()
	}
	if err := c.Visit(jobURL); err != nil {
		return repository.JobUpsert{}, err
	}
	c.Wait()
	if reqErr != nil {
		return repository.JobUpsert{}, reqErr
	}

	return buildUpsert(s.Name(), jobURL, page), nil
}

func buildUpsert(source, jobURL string, page postingPage) repository.JobUpsert {
	required, nice := extractSkills(page.description)
	salaryMin, salaryMax := extractSalary(page.description)

	return repository.JobUpsert{
		Job: matching.Job{
			ID:                     source + "-" + ExternalJobID(jobURL),
			Title:                  pickNonEmpty(page.title, "Unknown Position"),
			Company:                page.company,
			RequiredSkills:         required,
			NiceToHaveSkills:       nice,
			MinimumYearsExperience: extractMinYears(page.description),
			SalaryMin:              salaryMin,
			SalaryMax:              salaryMax,
			Location:               page.location,
			RemoteAllowed:          extractRemote(page.description, page.location),
			Industries:             extractIndustries(page.description),
		},
		Source:    source,
		URL:       normalizeURL(jobURL),
		ScrapedAt: time.Now().UTC(),
	}
}

// IsValidJobURL accepts only job posting pages, not search or profile URLs.
func IsValidJobURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return strings.HasSuffix(u.Hostname(), "linkedin.com") && strings.Contains(u.Path, "/jobs/view/")
}

// ExternalJobID takes the trailing path segment, usually the numeric posting id.
func ExternalJobID(jobURL string) string {
	u, err := url.Parse(strings.TrimSpace(jobURL))
	if err != nil {
		return strings.TrimSpace(jobURL)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) == 0 {
		return strings.TrimSpace(jobURL)
	}
	last := strings.TrimSpace(parts[len(parts)-1])
	if last == "" {
		return strings.TrimSpace(jobURL)
	}
	return last
}

package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"hirex/internal/domain/matching"
	"hirex/internal/repository"
)

type fakeJobRepo struct {
	mu      sync.Mutex
	upserts []repository.JobUpsert
	err     error
}

func (r *fakeJobRepo) ListActive(ctx context.Context, limit, offset int) ([]matching.Job, error) {
	return nil, fmt.Errorf("not implemented")
}

func (r *fakeJobRepo) UpsertBatch(ctx context.Context, jobs []repository.JobUpsert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.upserts = append(r.upserts, jobs...)
	return nil
}

func TestRemotiveScraper_FetchAndExtract(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/remote-jobs", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"jobs":[{
			"id": 42,
			"url": "https://remotive.com/remote-jobs/software-dev/backend-42",
			"title": "Backend Engineer",
			"company_name": "Acme",
			"category": "Software Development",
			"candidate_required_location": "Worldwide",
			"salary": "$100,000 - $130,000",
			"description": "<p>Required: 4+ years of experience with Python and PostgreSQL.</p><p>Nice to have: Kubernetes.</p><p>We are a fintech startup.</p>"
		}]}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	s := NewRemotiveScraper()
	s.apiBase = server.URL

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	out, err := s.Fetch(ctx)
	if err != nil {
		t.Fatalf("fetch error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 posting, got %d", len(out))
	}

	job := out[0].Job
	if job.ID != "remotive-42" {
		t.Fatalf("expected id remotive-42, got %q", job.ID)
	}
	if job.Title != "Backend Engineer" || job.Company != "Acme" {
		t.Fatalf("unexpected title/company: %q %q", job.Title, job.Company)
	}
	if !job.RemoteAllowed {
		t.Fatal("remotive postings are remote")
	}
	if job.MinimumYearsExperience != 4 {
		t.Fatalf("expected 4 years, got %d", job.MinimumYearsExperience)
	}
	if job.SalaryMin == nil || *job.SalaryMin != 100000 {
		t.Fatalf("expected salary min 100000, got %v", job.SalaryMin)
	}
	if len(job.RequiredSkills) == 0 {
		t.Fatalf("expected required skills, got none")
	}
	if len(job.Industries) != 1 || job.Industries[0] != "Fintech" {
		t.Fatalf("expected [Fintech], got %v", job.Industries)
	}
	if out[0].Source != "remotive" {
		t.Fatalf("expected source remotive, got %q", out[0].Source)
	}
}

func TestService_RunOnce_NotifiesAfterUpsert(t *testing.T) {
	var notified bool
	var gotToken string
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		notified = true
		gotToken = r.Header.Get("X-Internal-Token")
		w.WriteHeader(http.StatusOK)
	}))
	defer hook.Close()

	repo := &fakeJobRepo{}
	src := stubSource{name: "stub", jobs: []repository.JobUpsert{
		{Job: stubJob("stub-1"), Source: "stub", ScrapedAt: time.Now().UTC()},
	}}

	svc := NewService([]Source{src}, repo, NewWebhookNotifier(hook.URL, "secret"), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := svc.RunOnce(ctx); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if len(repo.upserts) != 1 {
		t.Fatalf("expected 1 upsert, got %d", len(repo.upserts))
	}
	if !notified {
		t.Fatal("expected webhook notification")
	}
	if gotToken != "secret" {
		t.Fatalf("expected internal token header, got %q", gotToken)
	}
}

func TestService_RunOnce_FailingSourceDoesNotStopOthers(t *testing.T) {
	repo := &fakeJobRepo{}
	broken := stubSource{name: "broken", err: fmt.Errorf("boom")}
	good := stubSource{name: "good", jobs: []repository.JobUpsert{
		{Job: stubJob("good-1"), Source: "good", ScrapedAt: time.Now().UTC()},
	}}

	svc := NewService([]Source{broken, good}, repo, nil, nil)

	if err := svc.RunOnce(context.Background()); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if len(repo.upserts) != 1 {
		t.Fatalf("expected 1 upsert from good source, got %d", len(repo.upserts))
	}
}

func TestWorkerPool_RunsAllTasks(t *testing.T) {
	pool := NewWorkerPool(3, 8)
	results := pool.Run(context.Background())

	var mu sync.Mutex
	ran := 0
	for i := 0; i < 10; i++ {
		pool.Submit(func(ctx context.Context) error {
			mu.Lock()
			ran++
			mu.Unlock()
			return nil
		})
	}
	pool.Close()

	errs := 0
	for res := range results {
		if res.Err != nil {
			errs++
		}
	}
	if ran != 10 {
		t.Fatalf("expected 10 tasks run, got %d", ran)
	}
	if errs != 0 {
		t.Fatalf("expected no errors, got %d", errs)
	}
}

func TestIsValidJobURL(t *testing.T) {
	cases := []struct {
		url  string
		want bool
	}{
		{"https://www.linkedin.com/jobs/view/1234567", true},
		{"https://linkedin.com/jobs/view/1234567/", true},
		{"https://www.linkedin.com/in/someone", false},
		{"https://example.com/jobs/view/1", false},
		{"::bad::", false},
	}
	for _, tc := range cases {
		if got := IsValidJobURL(tc.url); got != tc.want {
			t.Fatalf("IsValidJobURL(%q) = %v, want %v", tc.url, got, tc.want)
		}
	}
}

func TestExternalJobID(t *testing.T) {
	if got := ExternalJobID("https://www.linkedin.com/jobs/view/1234567/"); got != "1234567" {
		t.Fatalf("expected 1234567, got %q", got)
	}
}

func stubJob(id string) matching.Job {
	return matching.Job{ID: id, Title: "Backend Engineer", RequiredSkills: []string{"go"}}
}

type stubSource struct {
	name string
	jobs []repository.JobUpsert
	err  error
}

func (s stubSource) Name() string { return s.name }

func (s stubSource) Fetch(ctx context.Context) ([]repository.JobUpsert, error) {
	return s.jobs, s.err
}

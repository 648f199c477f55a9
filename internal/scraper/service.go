package scraper

import (
	"context"
	"fmt"
	"log"
	"time"

	"hirex/internal/repository"
)

// Source is a job board adapter producing normalized postings.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]repository.JobUpsert, error)
}

type Service struct {
	sources  []Source
	jobs     repository.JobRepository
	notifier *WebhookNotifier
	logger   *log.Logger
}

func NewService(sources []Source, jobs repository.JobRepository, notifier *WebhookNotifier, logger *log.Logger) *Service {
	return &Service{sources: sources, jobs: jobs, notifier: notifier, logger: logger}
}

// RunOnce fetches every source, upserts the postings it produced and notifies
// the API server once at the end. A failing source does not stop the others.
func (s *Service) RunOnce(ctx context.Context) error {
	if s == nil || s.jobs == nil {
		return fmt.Errorf("nil service/repository")
	}

	total := 0
	var lastErr error
	for _, src := range s.sources {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		started := time.Now()
		upserts, err := src.Fetch(ctx)
		if err != nil {
			lastErr = err
			s.logf("source=%s error: %v", src.Name(), err)
			continue
		}
		if len(upserts) == 0 {
			s.logf("source=%s no postings", src.Name())
			continue
		}

		if err := s.jobs.UpsertBatch(ctx, upserts); err != nil {
			lastErr = err
			s.logf("source=%s upsert error: %v", src.Name(), err)
			continue
		}

		total += len(upserts)
		s.logf("source=%s upserted=%d took=%s", src.Name(), len(upserts), time.Since(started).Round(time.Millisecond))
	}

	if total > 0 && s.notifier != nil {
		if err := s.notifier.NotifyCompleted(ctx, total); err != nil {
			s.logf("webhook notify error: %v", err)
		}
	}

	if total == 0 && lastErr != nil {
		return lastErr
	}
	return nil
}

func (s *Service) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"hirex/internal/config"
	"hirex/internal/database/migration"
	dbpostgres "hirex/internal/database/postgres"
	"hirex/internal/repository"
	"hirex/internal/scraper"
)

func main() {
	sourcesFlag := flag.String("sources", "remotive", "comma separated sources: remotive, linkedin")
	timeout := flag.Duration("timeout", 10*time.Minute, "total run timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := log.New(os.Stdout, "scraper | ", log.LstdFlags)

	connCtx, connCancel := context.WithTimeout(context.Background(), 15*time.Second)
	db, err := dbpostgres.Connect(connCtx, cfg.Database)
	connCancel()
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer func() { _ = db.Close() }()

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer migCancel()
	if err := migration.Run(migCtx, db, logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	sources := buildSources(cfg, *sourcesFlag)
	if len(sources) == 0 {
		log.Fatalf("no valid sources in %q", *sourcesFlag)
	}

	jobs := repository.NewPostgresJobRepository(db)
	notifier := scraper.NewWebhookNotifier(cfg.Scraper.ServerWebhookURL, cfg.App.InternalToken)
	svc := scraper.NewService(sources, jobs, notifier, logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := svc.RunOnce(ctx); err != nil {
		log.Fatalf("scrape run failed: %v", err)
	}
}

func buildSources(cfg config.Config, raw string) []scraper.Source {
	var out []scraper.Source
	for _, name := range strings.Split(raw, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "remotive":
			out = append(out, scraper.NewRemotiveScraper())
		case "linkedin":
			var lister *scraper.HeadlessLister
			if cfg.Scraper.LinkedInSearch != "" {
				lister = scraper.NewHeadlessLister(cfg.Scraper.LinkedInSearch, 25)
			}
			out = append(out, scraper.NewLinkedInScraper(cfg.Scraper.LinkedInSeedURLs, cfg.Scraper.Workers, lister))
		}
	}
	return out
}

package migration

import (
	"context"
	"fmt"
	"log"

	"hirex/internal/database"
)

type statement struct {
	name string
	sql  string
}

var statements = []statement{
	{
		name: "create_users",
		sql: `CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	},
	{
		name: "create_candidates",
		sql: `CREATE TABLE IF NOT EXISTS candidates (
			id TEXT PRIMARY KEY,
			full_name TEXT NOT NULL,
			years_experience INT NOT NULL DEFAULT 0,
			skills TEXT[] NOT NULL DEFAULT '{}',
			desired_salary BIGINT,
			preferred_locations TEXT[] NOT NULL DEFAULT '{}',
			open_to_remote BOOLEAN NOT NULL DEFAULT true,
			industries TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	},
	{
		name: "create_jobs",
		sql: `CREATE TABLE IF NOT EXISTS jobs (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			company TEXT,
			required_skills TEXT[] NOT NULL DEFAULT '{}',
			nice_to_have_skills TEXT[] NOT NULL DEFAULT '{}',
			minimum_years_experience INT NOT NULL DEFAULT 0,
			salary_min BIGINT,
			salary_max BIGINT,
			location TEXT,
			remote_allowed BOOLEAN NOT NULL DEFAULT true,
			industries TEXT[] NOT NULL DEFAULT '{}',
			source TEXT,
			url TEXT,
			is_active BOOLEAN NOT NULL DEFAULT true,
			scraped_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			CONSTRAINT jobs_salary_range CHECK (
				salary_min IS NULL OR salary_max IS NULL OR salary_min <= salary_max
			)
		)`,
	},
	{
		name: "index_jobs_active",
		sql:  `CREATE INDEX IF NOT EXISTS idx_jobs_active ON jobs (is_active, updated_at DESC)`,
	},
	{
		name: "index_jobs_source_url",
		sql:  `CREATE UNIQUE INDEX IF NOT EXISTS idx_jobs_source_url ON jobs (source, url) WHERE url IS NOT NULL`,
	},
}

// Run applies the idempotent schema statements in order.
func Run(ctx context.Context, db database.DB, logger *log.Logger) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, st := range statements {
		if _, err := db.Exec(ctx, st.sql); err != nil {
			return fmt.Errorf("migration %s: %w", st.name, err)
		}
		if logger != nil {
			logger.Printf("migration applied | name=%s", st.name)
		}
	}
	return nil
}

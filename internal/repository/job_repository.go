package repository

import (
	"context"
	"strings"
	"time"

	"hirex/internal/database"
	"hirex/internal/domain/matching"
)

type JobRepository interface {
	ListActive(ctx context.Context, limit, offset int) ([]matching.Job, error)
	UpsertBatch(ctx context.Context, jobs []JobUpsert) error
}

// JobUpsert is a scraped posting together with its provenance.
type JobUpsert struct {
	Job       matching.Job
	Source    string
	URL       string
	ScrapedAt time.Time
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) ListActive(ctx context.Context, limit, offset int) ([]matching.Job, error) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, title, COALESCE(company, ''), required_skills, nice_to_have_skills,
		        minimum_years_experience, salary_min, salary_max,
		        COALESCE(location, ''), remote_allowed, industries
		 FROM jobs
		 WHERE is_active
		 ORDER BY id
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matching.Job, 0)
	for rows.Next() {
		var j matching.Job
		var salaryMin, salaryMax *int64
		if err := rows.Scan(
			&j.ID, &j.Title, &j.Company, &j.RequiredSkills, &j.NiceToHaveSkills,
			&j.MinimumYearsExperience, &salaryMin, &salaryMax,
			&j.Location, &j.RemoteAllowed, &j.Industries,
		); err != nil {
			return nil, err
		}
		j.SalaryMin = intFromInt64(salaryMin)
		j.SalaryMax = intFromInt64(salaryMax)
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) UpsertBatch(ctx context.Context, jobs []JobUpsert) error {
	if len(jobs) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, in := range jobs {
		j := in.Job
		if strings.TrimSpace(j.ID) == "" || strings.TrimSpace(j.Title) == "" {
			continue
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO jobs (
				id, title, company, required_skills, nice_to_have_skills,
				minimum_years_experience, salary_min, salary_max, location,
				remote_allowed, industries, source, url, is_active, scraped_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,true,$14,$15)
			ON CONFLICT (id) DO UPDATE SET
				title = EXCLUDED.title,
				company = COALESCE(NULLIF(EXCLUDED.company, ''), jobs.company),
				required_skills = EXCLUDED.required_skills,
				nice_to_have_skills = EXCLUDED.nice_to_have_skills,
				minimum_years_experience = EXCLUDED.minimum_years_experience,
				salary_min = COALESCE(EXCLUDED.salary_min, jobs.salary_min),
				salary_max = COALESCE(EXCLUDED.salary_max, jobs.salary_max),
				location = COALESCE(NULLIF(EXCLUDED.location, ''), jobs.location),
				remote_allowed = EXCLUDED.remote_allowed,
				industries = EXCLUDED.industries,
				is_active = true,
				scraped_at = EXCLUDED.scraped_at,
				updated_at = EXCLUDED.updated_at`,
			strings.TrimSpace(j.ID),
			strings.TrimSpace(j.Title),
			strings.TrimSpace(j.Company),
			emptyIfNil(j.RequiredSkills),
			emptyIfNil(j.NiceToHaveSkills),
			j.MinimumYearsExperience,
			int64FromInt(j.SalaryMin),
			int64FromInt(j.SalaryMax),
			strings.TrimSpace(j.Location),
			j.RemoteAllowed,
			emptyIfNil(j.Industries),
			nullableText(in.Source),
			nullableText(in.URL),
			in.ScrapedAt.UTC(),
			time.Now().UTC(),
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func intFromInt64(v *int64) *int {
	if v == nil {
		return nil
	}
	out := int(*v)
	return &out
}

func int64FromInt(v *int) *int64 {
	if v == nil {
		return nil
	}
	out := int64(*v)
	return &out
}

func nullableText(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"hirex/internal/database"
	"hirex/internal/domain/matching"

	"github.com/jackc/pgx/v5"
)

var ErrCandidateNotFound = errors.New("candidate not found")

type CandidateRepository interface {
	FindByID(ctx context.Context, id string) (matching.Candidate, error)
	Upsert(ctx context.Context, c matching.Candidate) error
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) FindByID(ctx context.Context, id string) (matching.Candidate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return matching.Candidate{}, ErrCandidateNotFound
	}

	row := r.db.QueryRow(ctx,
		`SELECT id, full_name, years_experience, skills, desired_salary,
		        preferred_locations, open_to_remote, industries
		 FROM candidates WHERE id = $1`,
		id,
	)

	var c matching.Candidate
	var desired *int64
	if err := row.Scan(
		&c.ID, &c.FullName, &c.YearsExperience, &c.Skills, &desired,
		&c.PreferredLocations, &c.OpenToRemote, &c.Industries,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return matching.Candidate{}, ErrCandidateNotFound
		}
		return matching.Candidate{}, err
	}
	if desired != nil {
		v := int(*desired)
		c.DesiredSalary = &v
	}
	return c, nil
}

func (r *PostgresCandidateRepository) Upsert(ctx context.Context, c matching.Candidate) error {
	var desired *int64
	if c.DesiredSalary != nil {
		v := int64(*c.DesiredSalary)
		desired = &v
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO candidates (
			id, full_name, years_experience, skills, desired_salary,
			preferred_locations, open_to_remote, industries, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			years_experience = EXCLUDED.years_experience,
			skills = EXCLUDED.skills,
			desired_salary = EXCLUDED.desired_salary,
			preferred_locations = EXCLUDED.preferred_locations,
			open_to_remote = EXCLUDED.open_to_remote,
			industries = EXCLUDED.industries,
			updated_at = EXCLUDED.updated_at`,
		strings.TrimSpace(c.ID),
		strings.TrimSpace(c.FullName),
		c.YearsExperience,
		emptyIfNil(c.Skills),
		desired,
		emptyIfNil(c.PreferredLocations),
		c.OpenToRemote,
		emptyIfNil(c.Industries),
		time.Now().UTC(),
	)
	return err
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

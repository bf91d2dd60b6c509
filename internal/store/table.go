package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"jobmatch-engine/internal/domain"
)

const schemaVersion = 1

func Migrate(db *sql.DB) error {

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}

	if v >= schemaVersion {
		return tx.Commit()
	}

	// ---- Schema v1 ----

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS jobs (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  company TEXT NOT NULL,
  location TEXT NOT NULL,
  salary_min INTEGER,
  salary_max INTEGER,
  employment_type TEXT NOT NULL DEFAULT '',
  company_size TEXT NOT NULL DEFAULT '',
  industry TEXT NOT NULL DEFAULT '',
  required_skills TEXT NOT NULL DEFAULT '[]',
  values_promoted TEXT NOT NULL DEFAULT '[]',
  experience_required TEXT NOT NULL DEFAULT '',
  role_level TEXT NOT NULL DEFAULT '',
  imported_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_jobs_industry
ON jobs(industry);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(fmt.Sprintf(`PRAGMA user_version = %d;`, schemaVersion)); err != nil {
		return err
	}

	return tx.Commit()
}

// ListJobs returns every stored job in insertion order.
func ListJobs(ctx context.Context, db *sql.DB) ([]domain.Job, error) {
	rows, err := db.QueryContext(ctx, `
SELECT id, title, company, location, salary_min, salary_max,
       employment_type, company_size, industry,
       required_skills, values_promoted, experience_required, role_level
FROM jobs
ORDER BY rowid;
`)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	out := []domain.Job{}
	for rows.Next() {
		var j domain.Job
		var salMin, salMax sql.NullInt64
		var skillsJSON, valuesJSON string
		if err := rows.Scan(
			&j.ID,
			&j.Title,
			&j.Company,
			&j.Location,
			&salMin,
			&salMax,
			&j.EmploymentType,
			&j.CompanySize,
			&j.Industry,
			&skillsJSON,
			&valuesJSON,
			&j.ExperienceRequired,
			&j.RoleLevel,
		); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		if salMin.Valid && salMax.Valid {
			j.SalaryRange = &domain.SalaryRange{Min: int(salMin.Int64), Max: int(salMax.Int64)}
		}
		if err := json.Unmarshal([]byte(skillsJSON), &j.RequiredSkills); err != nil {
			return nil, fmt.Errorf("job %s: required_skills: %w", j.ID, err)
		}
		if err := json.Unmarshal([]byte(valuesJSON), &j.ValuesPromoted); err != nil {
			return nil, fmt.Errorf("job %s: values_promoted: %w", j.ID, err)
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func CountJobs(ctx context.Context, db *sql.DB) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs;`).Scan(&n)
	return n, err
}

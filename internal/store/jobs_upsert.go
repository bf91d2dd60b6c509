package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"jobmatch-engine/internal/domain"
)

// InsertJobs writes jobs in one transaction. Ids already present are left
// untouched. It returns how many rows were added.
func InsertJobs(ctx context.Context, db *sql.DB, jobs []domain.Job) (added int, err error) {
	for _, j := range jobs {
		if err := j.Validate(); err != nil {
			return 0, fmt.Errorf("job %q: %w", j.ID, err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
INSERT OR IGNORE INTO jobs (
  id, title, company, location, salary_min, salary_max,
  employment_type, company_size, industry,
  required_skills, values_promoted, experience_required, role_level)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, j := range jobs {
		var salMin, salMax sql.NullInt64
		if j.SalaryRange != nil {
			salMin = sql.NullInt64{Int64: int64(j.SalaryRange.Min), Valid: true}
			salMax = sql.NullInt64{Int64: int64(j.SalaryRange.Max), Valid: true}
		}
		res, err := stmt.ExecContext(ctx,
			j.ID, j.Title, j.Company, j.Location, salMin, salMax,
			j.EmploymentType, j.CompanySize, j.Industry,
			jsonList(j.RequiredSkills), jsonList(j.ValuesPromoted),
			j.ExperienceRequired, j.RoleLevel,
		)
		if err != nil {
			return 0, fmt.Errorf("insert job %s: %w", j.ID, err)
		}
		if n, err := res.RowsAffected(); err == nil && n > 0 {
			added++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return added, nil
}

func jsonList(xs []string) string {
	if xs == nil {
		return "[]"
	}
	b, _ := json.Marshal(xs)
	return string(b)
}

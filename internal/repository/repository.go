// Package repository holds the postgres-backed stores for employees and
// projects.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"hr-management/internal/models"
)

// DB is satisfied by *pgxpool.Pool. Every call acquires a connection from the
// pool and releases it when the statement (or transaction) is done.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// project_id is read through COALESCE so a NULL reference scans as 0; ids
// start at 1.
const employeeColumns = `id, name, surname, email, birth_date, job_title, salary, COALESCE(project_id, 0)`

const projectColumns = `id, name, description, start_date, end_date, completion_percentage`

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var (
		e   models.Employee
		pid int64
	)
	if err := row.Scan(&e.ID, &e.Name, &e.Surname, &e.Email, &e.BirthDate, &e.JobTitle, &e.Salary, &pid); err != nil {
		return models.Employee{}, err
	}
	if pid != 0 {
		e.ProjectID = &pid
	}
	return e, nil
}

func scanProject(row pgx.Row) (models.Project, error) {
	var p models.Project
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.StartDate, &p.EndDate, &p.CompletionPercentage); err != nil {
		return models.Project{}, err
	}
	p.Employees = []models.Employee{}
	return p, nil
}

func collectEmployees(rows pgx.Rows) ([]models.Employee, error) {
	defer rows.Close()

	out := make([]models.Employee, 0, 16)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

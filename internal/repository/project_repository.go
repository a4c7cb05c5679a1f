package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"hr-management/internal/models"
)

type ProjectRepository struct {
	db DB
}

func NewProjectRepository(db DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a project. A new project has no employees.
func (r *ProjectRepository) Create(ctx context.Context, p models.Project) (models.Project, error) {
	const q = `
INSERT INTO projects (name, description, start_date, end_date, completion_percentage)
VALUES ($1, $2, $3, $4, $5)
RETURNING id;
`
	if err := r.db.QueryRow(ctx, q, p.Name, p.Description, p.StartDate, p.EndDate, p.CompletionPercentage).Scan(&p.ID); err != nil {
		return models.Project{}, fmt.Errorf("insert project: %w", err)
	}
	p.Employees = []models.Employee{}
	return p, nil
}

// List returns every project with its assigned employees.
func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	rows, err := r.db.Query(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0, 16)
	index := make(map[int64]int)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("list projects: %w", err)
		}
		index[p.ID] = len(projects)
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	rows.Close()

	if len(projects) == 0 {
		return projects, nil
	}

	erows, err := r.db.Query(ctx, `SELECT `+employeeColumns+` FROM employees WHERE project_id IS NOT NULL ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list project employees: %w", err)
	}
	employees, err := collectEmployees(erows)
	if err != nil {
		return nil, fmt.Errorf("list project employees: %w", err)
	}
	for _, e := range employees {
		// a project created after the first query is not in the index
		if i, ok := index[*e.ProjectID]; ok {
			projects[i].Employees = append(projects[i].Employees, e)
		}
	}
	return projects, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (models.Project, error) {
	p, err := scanProject(r.db.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Project{}, models.ErrProjectNotFound
		}
		return models.Project{}, fmt.Errorf("get project: %w", err)
	}
	if p.Employees, err = r.employeesOf(ctx, id); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// Update overwrites the project's own columns. Assignments are not touched.
func (r *ProjectRepository) Update(ctx context.Context, id int64, p models.Project) (models.Project, error) {
	q := `
UPDATE projects
SET name = $1, description = $2, start_date = $3, end_date = $4, completion_percentage = $5
WHERE id = $6
RETURNING ` + projectColumns
	out, err := scanProject(r.db.QueryRow(ctx, q, p.Name, p.Description, p.StartDate, p.EndDate, p.CompletionPercentage, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Project{}, models.ErrProjectNotFound
		}
		return models.Project{}, fmt.Errorf("update project: %w", err)
	}
	if out.Employees, err = r.employeesOf(ctx, id); err != nil {
		return models.Project{}, err
	}
	return out, nil
}

// Delete removes a project that has no assigned employees. A project with
// employees is left in place and ErrProjectHasEmployees is returned.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	ct, err := tx.Exec(ctx, `
DELETE FROM projects
WHERE id = $1 AND NOT EXISTS (SELECT 1 FROM employees WHERE project_id = $1)`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if ct.RowsAffected() == 0 {
		exists, err := projectExists(ctx, tx, id)
		if err != nil {
			return err
		}
		if !exists {
			return models.ErrProjectNotFound
		}
		return models.ErrProjectHasEmployees
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// AssignEmployee links an unassigned employee to the project with a single
// conditional UPDATE. When nothing changes, the preconditions are checked in
// order (employee exists, employee unassigned, project exists) to report why.
// Concurrent assigns of one employee serialize on its row lock; the later one
// re-evaluates project_id IS NULL against the committed row and updates nothing.
func (r *ProjectRepository) AssignEmployee(ctx context.Context, projectID, employeeID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	ct, err := tx.Exec(ctx, `
UPDATE employees
SET project_id = $1
WHERE id = $2
  AND project_id IS NULL
  AND EXISTS (SELECT 1 FROM projects WHERE id = $1)`, projectID, employeeID)
	if err != nil {
		return fmt.Errorf("assign employee: %w", err)
	}
	if ct.RowsAffected() == 0 {
		current, err := currentProject(ctx, tx, employeeID)
		if err != nil {
			return err
		}
		if current != 0 {
			return models.ErrAlreadyAssigned
		}
		return models.ErrProjectNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// UnassignEmployee clears the employee's project reference if it points at
// projectID.
func (r *ProjectRepository) UnassignEmployee(ctx context.Context, projectID, employeeID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	ct, err := tx.Exec(ctx, `UPDATE employees SET project_id = NULL WHERE id = $2 AND project_id = $1`, projectID, employeeID)
	if err != nil {
		return fmt.Errorf("unassign employee: %w", err)
	}
	if ct.RowsAffected() == 0 {
		if _, err := currentProject(ctx, tx, employeeID); err != nil {
			return err
		}
		exists, err := projectExists(ctx, tx, projectID)
		if err != nil {
			return err
		}
		if !exists {
			return models.ErrProjectNotFound
		}
		return models.ErrNotAssigned
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *ProjectRepository) employeesOf(ctx context.Context, projectID int64) ([]models.Employee, error) {
	rows, err := r.db.Query(ctx, `SELECT `+employeeColumns+` FROM employees WHERE project_id = $1 ORDER BY id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list project employees: %w", err)
	}
	out, err := collectEmployees(rows)
	if err != nil {
		return nil, fmt.Errorf("list project employees: %w", err)
	}
	return out, nil
}

// currentProject returns the employee's project id, 0 when unassigned.
func currentProject(ctx context.Context, tx pgx.Tx, employeeID int64) (int64, error) {
	var pid int64
	err := tx.QueryRow(ctx, `SELECT COALESCE(project_id, 0) FROM employees WHERE id = $1`, employeeID).Scan(&pid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, models.ErrEmployeeNotFound
		}
		return 0, fmt.Errorf("load employee: %w", err)
	}
	return pid, nil
}

func projectExists(ctx context.Context, tx pgx.Tx, id int64) (bool, error) {
	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM projects WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check project: %w", err)
	}
	return exists, nil
}

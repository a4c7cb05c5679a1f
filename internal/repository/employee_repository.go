package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"hr-management/internal/models"
)

type EmployeeRepository struct {
	db DB
}

func NewEmployeeRepository(db DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create inserts an unassigned employee and returns it with its new id.
func (r *EmployeeRepository) Create(ctx context.Context, e models.Employee) (models.Employee, error) {
	const q = `
INSERT INTO employees (name, surname, email, birth_date, job_title, salary)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id;
`
	if err := r.db.QueryRow(ctx, q, e.Name, e.Surname, e.Email, e.BirthDate, e.JobTitle, e.Salary).Scan(&e.ID); err != nil {
		return models.Employee{}, fmt.Errorf("insert employee: %w", err)
	}
	e.ProjectID = nil
	return e, nil
}

func (r *EmployeeRepository) List(ctx context.Context) ([]models.Employee, error) {
	rows, err := r.db.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	out, err := collectEmployees(rows)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return out, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (models.Employee, error) {
	e, err := scanEmployee(r.db.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, models.ErrEmployeeNotFound
		}
		return models.Employee{}, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// Update overwrites every column of the employee, project_id included.
func (r *EmployeeRepository) Update(ctx context.Context, id int64, e models.Employee) (models.Employee, error) {
	q := `
UPDATE employees
SET name = $1, surname = $2, email = $3, birth_date = $4, job_title = $5, salary = $6, project_id = $7
WHERE id = $8
RETURNING ` + employeeColumns
	out, err := scanEmployee(r.db.QueryRow(ctx, q, e.Name, e.Surname, e.Email, e.BirthDate, e.JobTitle, e.Salary, e.ProjectID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, models.ErrEmployeeNotFound
		}
		return models.Employee{}, fmt.Errorf("update employee: %w", err)
	}
	return out, nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return models.ErrEmployeeNotFound
	}
	return nil
}

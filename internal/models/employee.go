package models

import "time"

// DateLayout is the wire format of every date field.
const DateLayout = "2006-01-02"

// Employee is a row of the employees table.
type Employee struct {
	ID        int64
	Name      string
	Surname   string
	Email     string
	BirthDate time.Time
	JobTitle  string
	Salary    float64
	ProjectID *int64
}

type CreateEmployeeDTO struct {
	Name      string   `json:"name" binding:"required,max=50"`
	Surname   string   `json:"surname" binding:"required,max=50"`
	Email     string   `json:"email" binding:"required,email,max=100"`
	BirthDate string   `json:"birth_date" binding:"required,datetime=2006-01-02"` // "YYYY-MM-DD"
	JobTitle  string   `json:"job_title" binding:"required,max=100"`
	Salary    *float64 `json:"salary" binding:"required"`
}

// UpdateEmployeeDTO replaces every field of an employee. An omitted
// project_id clears the assignment.
type UpdateEmployeeDTO struct {
	CreateEmployeeDTO
	ProjectID *int64 `json:"project_id"`
}

type EmployeeResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Surname   string  `json:"surname"`
	Email     string  `json:"email"`
	BirthDate string  `json:"birth_date"`
	JobTitle  string  `json:"job_title"`
	Salary    float64 `json:"salary"`
	ProjectID *int64  `json:"project_id"`
}

// ToEmployee converts the payload into an unassigned Employee.
func (in CreateEmployeeDTO) ToEmployee() (Employee, error) {
	birth, err := time.Parse(DateLayout, in.BirthDate)
	if err != nil {
		return Employee{}, err
	}
	var salary float64
	if in.Salary != nil {
		salary = *in.Salary
	}
	return Employee{
		Name:      in.Name,
		Surname:   in.Surname,
		Email:     in.Email,
		BirthDate: birth,
		JobTitle:  in.JobTitle,
		Salary:    salary,
	}, nil
}

func (in UpdateEmployeeDTO) ToEmployee() (Employee, error) {
	e, err := in.CreateEmployeeDTO.ToEmployee()
	if err != nil {
		return Employee{}, err
	}
	e.ProjectID = in.ProjectID
	return e, nil
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Surname:   e.Surname,
		Email:     e.Email,
		BirthDate: e.BirthDate.Format(DateLayout),
		JobTitle:  e.JobTitle,
		Salary:    e.Salary,
		ProjectID: e.ProjectID,
	}
}

func NewEmployeeResponses(list []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, NewEmployeeResponse(e))
	}
	return out
}

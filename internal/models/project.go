package models

import "time"

// Project is a row of the projects table together with the employees
// currently assigned to it.
type Project struct {
	ID                   int64
	Name                 string
	Description          string
	StartDate            time.Time
	EndDate              time.Time
	CompletionPercentage float64
	Employees            []Employee
}

type CreateProjectDTO struct {
	Name                 string   `json:"name" binding:"required,max=100"`
	Description          string   `json:"description" binding:"required,max=500"`
	StartDate            string   `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate              string   `json:"end_date" binding:"required,datetime=2006-01-02"`
	CompletionPercentage *float64 `json:"completion_percentage" binding:"required"`
}

// UpdateProjectDTO has the same shape as the create payload; assignments are
// left untouched by an update.
type UpdateProjectDTO struct {
	CreateProjectDTO
}

type ProjectResponse struct {
	ID                   int64              `json:"id"`
	Name                 string             `json:"name"`
	Description          string             `json:"description"`
	StartDate            string             `json:"start_date"`
	EndDate              string             `json:"end_date"`
	CompletionPercentage float64            `json:"completion_percentage"`
	Employees            []EmployeeResponse `json:"employees"`
}

func (in CreateProjectDTO) ToProject() (Project, error) {
	start, err := time.Parse(DateLayout, in.StartDate)
	if err != nil {
		return Project{}, err
	}
	end, err := time.Parse(DateLayout, in.EndDate)
	if err != nil {
		return Project{}, err
	}
	var pct float64
	if in.CompletionPercentage != nil {
		pct = *in.CompletionPercentage
	}
	return Project{
		Name:                 in.Name,
		Description:          in.Description,
		StartDate:            start,
		EndDate:              end,
		CompletionPercentage: pct,
	}, nil
}

func NewProjectResponse(p Project) ProjectResponse {
	return ProjectResponse{
		ID:                   p.ID,
		Name:                 p.Name,
		Description:          p.Description,
		StartDate:            p.StartDate.Format(DateLayout),
		EndDate:              p.EndDate.Format(DateLayout),
		CompletionPercentage: p.CompletionPercentage,
		Employees:            NewEmployeeResponses(p.Employees),
	}
}

func NewProjectResponses(list []Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(list))
	for _, p := range list {
		out = append(out, NewProjectResponse(p))
	}
	return out
}

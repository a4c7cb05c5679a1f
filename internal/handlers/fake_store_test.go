package handlers_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5/pgconn"

	"hr-management/internal/models"
)

// memStore mirrors the repository semantics in memory.
type memStore struct {
	mu        sync.Mutex
	nextEmp   int64
	nextProj  int64
	employees map[int64]models.Employee
	projects  map[int64]models.Project
	failWith  error
}

func newMemStore() *memStore {
	return &memStore{
		employees: map[int64]models.Employee{},
		projects:  map[int64]models.Project{},
	}
}

var errEmailTaken = &pgconn.PgError{
	Code:           "23505",
	Message:        `duplicate key value violates unique constraint "employees_email_key"`,
	ConstraintName: "employees_email_key",
}

func (s *memStore) emailTaken(email string, except int64) bool {
	for id, e := range s.employees {
		if id != except && e.Email == email {
			return true
		}
	}
	return false
}

type employeeStore struct{ *memStore }

func (s employeeStore) Create(_ context.Context, e models.Employee) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return models.Employee{}, s.failWith
	}
	if s.emailTaken(e.Email, 0) {
		return models.Employee{}, errEmailTaken
	}
	s.nextEmp++
	e.ID = s.nextEmp
	e.ProjectID = nil
	s.employees[e.ID] = e
	return e, nil
}

func (s employeeStore) List(context.Context) ([]models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	out := make([]models.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s employeeStore) GetByID(_ context.Context, id int64) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.employees[id]
	if !ok {
		return models.Employee{}, models.ErrEmployeeNotFound
	}
	return e, nil
}

func (s employeeStore) Update(_ context.Context, id int64, e models.Employee) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.employees[id]; !ok {
		return models.Employee{}, models.ErrEmployeeNotFound
	}
	if s.emailTaken(e.Email, id) {
		return models.Employee{}, errEmailTaken
	}
	e.ID = id
	s.employees[id] = e
	return e, nil
}

func (s employeeStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.employees[id]; !ok {
		return models.ErrEmployeeNotFound
	}
	delete(s.employees, id)
	return nil
}

type projectStore struct{ *memStore }

func (s projectStore) withEmployees(p models.Project) models.Project {
	p.Employees = []models.Employee{}
	ids := make([]int64, 0)
	for id, e := range s.employees {
		if e.ProjectID != nil && *e.ProjectID == p.ID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		p.Employees = append(p.Employees, s.employees[id])
	}
	return p
}

func (s projectStore) Create(_ context.Context, p models.Project) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextProj++
	p.ID = s.nextProj
	p.Employees = nil
	s.projects[p.ID] = p
	return s.withEmployees(p), nil
}

func (s projectStore) List(context.Context) ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, s.withEmployees(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s projectStore) GetByID(_ context.Context, id int64) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return models.Project{}, models.ErrProjectNotFound
	}
	return s.withEmployees(p), nil
}

func (s projectStore) Update(_ context.Context, id int64, p models.Project) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[id]; !ok {
		return models.Project{}, models.ErrProjectNotFound
	}
	p.ID = id
	s.projects[id] = p
	return s.withEmployees(p), nil
}

func (s projectStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return models.ErrProjectNotFound
	}
	if len(s.withEmployees(p).Employees) > 0 {
		return models.ErrProjectHasEmployees
	}
	delete(s.projects, id)
	return nil
}

func (s projectStore) AssignEmployee(_ context.Context, projectID, employeeID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.employees[employeeID]
	if !ok {
		return models.ErrEmployeeNotFound
	}
	if e.ProjectID != nil {
		return models.ErrAlreadyAssigned
	}
	if _, ok := s.projects[projectID]; !ok {
		return models.ErrProjectNotFound
	}
	pid := projectID
	e.ProjectID = &pid
	s.employees[employeeID] = e
	return nil
}

func (s projectStore) UnassignEmployee(_ context.Context, projectID, employeeID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.employees[employeeID]
	if !ok {
		return models.ErrEmployeeNotFound
	}
	if _, ok := s.projects[projectID]; !ok {
		return models.ErrProjectNotFound
	}
	if e.ProjectID == nil || *e.ProjectID != projectID {
		return models.ErrNotAssigned
	}
	e.ProjectID = nil
	s.employees[employeeID] = e
	return nil
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

var errDown = errors.New("connection refused")

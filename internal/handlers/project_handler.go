package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hr-management/internal/models"
)

type ProjectStore interface {
	Create(ctx context.Context, p models.Project) (models.Project, error)
	List(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id int64) (models.Project, error)
	Update(ctx context.Context, id int64, p models.Project) (models.Project, error)
	Delete(ctx context.Context, id int64) error
	AssignEmployee(ctx context.Context, projectID, employeeID int64) error
	UnassignEmployee(ctx context.Context, projectID, employeeID int64) error
}

type ProjectHandler struct {
	store ProjectStore
	log   *zap.Logger
}

func NewProjectHandler(store ProjectStore, log *zap.Logger) *ProjectHandler {
	return &ProjectHandler{store: store, log: log}
}

// POST /projects/
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var in models.CreateProjectDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidInput(c, err)
		return
	}
	p, err := in.ToProject()
	if err != nil {
		invalidInput(c, err)
		return
	}
	created, err := h.store.Create(c.Request.Context(), p)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, models.NewProjectResponse(created))
}

// GET /projects/
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	list, err := h.store.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, models.NewProjectResponses(list))
}

// GET /projects/:id
func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, models.NewProjectResponse(p))
}

// PUT /projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in models.UpdateProjectDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidInput(c, err)
		return
	}
	p, err := in.ToProject()
	if err != nil {
		invalidInput(c, err)
		return
	}
	updated, err := h.store.Update(c.Request.Context(), id, p)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, models.NewProjectResponse(updated))
}

// DELETE /projects/:id (rejected while employees are assigned)
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "project deleted successfully"})
}

// POST /projects/:id/assign/:employee_id
func (h *ProjectHandler) AssignEmployee(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	employeeID, ok := pathID(c, "employee_id")
	if !ok {
		return
	}
	if err := h.store.AssignEmployee(c.Request.Context(), projectID, employeeID); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "employee assigned to project successfully"})
}

// DELETE /projects/:id/assign/:employee_id
func (h *ProjectHandler) UnassignEmployee(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	employeeID, ok := pathID(c, "employee_id")
	if !ok {
		return
	}
	if err := h.store.UnassignEmployee(c.Request.Context(), projectID, employeeID); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "employee unassigned from project successfully"})
}

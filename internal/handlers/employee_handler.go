package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hr-management/internal/models"
)

type EmployeeStore interface {
	Create(ctx context.Context, e models.Employee) (models.Employee, error)
	List(ctx context.Context) ([]models.Employee, error)
	GetByID(ctx context.Context, id int64) (models.Employee, error)
	Update(ctx context.Context, id int64, e models.Employee) (models.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type EmployeeHandler struct {
	store EmployeeStore
	log   *zap.Logger
}

func NewEmployeeHandler(store EmployeeStore, log *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{store: store, log: log}
}

// POST /employees/
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var in models.CreateEmployeeDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidInput(c, err)
		return
	}

	e, err := in.ToEmployee()
	if err != nil {
		invalidInput(c, err)
		return
	}
	created, err := h.store.Create(c.Request.Context(), e)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, models.NewEmployeeResponse(created))
}

// GET /employees/
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	list, err := h.store.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, models.NewEmployeeResponses(list))
}

// GET /employees/:id
func (h *EmployeeHandler) GetEmployeeByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	e, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, models.NewEmployeeResponse(e))
}

// PUT /employees/:id replaces every field; a missing project_id unassigns.
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in models.UpdateEmployeeDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidInput(c, err)
		return
	}

	e, err := in.ToEmployee()
	if err != nil {
		invalidInput(c, err)
		return
	}
	updated, err := h.store.Update(c.Request.Context(), id, e)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, models.NewEmployeeResponse(updated))
}

// DELETE /employees/:id
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "employee deleted successfully"})
}

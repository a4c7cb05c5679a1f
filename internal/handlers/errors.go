package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"hr-management/internal/models"
)

// respondError writes the HTTP response for an error returned by a store.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrAlreadyAssigned), errors.Is(err, models.ErrNotAssigned):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrProjectHasEmployees):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		// the access log reports it at Error level through c.Errors
		_ = c.Error(err)
		log.Debug("store failure",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "details": parsePgErr(err)})
	}
}

func invalidInput(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid input", "details": err.Error()})
}

// parsePgErr turns constraint violations into short messages.
func parsePgErr(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "storage error"
	}
	switch pgErr.ConstraintName {
	case "employees_email_key":
		return "email already exists"
	case "employees_project_id_fkey":
		if strings.HasPrefix(pgErr.Message, "update or delete") {
			return "project still has assigned employees"
		}
		return "project_id does not reference an existing project"
	}
	return pgErr.Message
}

// pathID reads an integer path parameter. Ids that no row can carry (0 or
// negative) still reach the store and come back as not found.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid input", "details": name + " must be an integer"})
		return 0, false
	}
	return id, true
}

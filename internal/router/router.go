package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hr-management/internal/handlers"
	"hr-management/internal/middleware"
)

type Deps struct {
	Employees handlers.EmployeeStore
	Projects  handlers.ProjectStore
	DB        handlers.Pinger
	Log       *zap.Logger

	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
}

func Setup(r *gin.Engine, d Deps) {
	r.Use(middleware.RequestID(d.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(d.CORSAllowedOrigins))
	r.Use(middleware.RateLimit(d.RateLimitRPS, d.RateLimitBurst))

	eh := handlers.NewEmployeeHandler(d.Employees, d.Log)
	ph := handlers.NewProjectHandler(d.Projects, d.Log)
	hh := handlers.NewHealthHandler(d.DB)

	r.GET("/health", hh.Health)

	employees := r.Group("/employees")
	employees.POST("/", eh.CreateEmployee)
	employees.GET("/", eh.ListEmployees)
	employees.GET("/:id", eh.GetEmployeeByID)
	employees.PUT("/:id", eh.UpdateEmployee)
	employees.DELETE("/:id", eh.DeleteEmployee)

	projects := r.Group("/projects")
	projects.POST("/", ph.CreateProject)
	projects.GET("/", ph.ListProjects)
	projects.GET("/:id", ph.GetProjectByID)
	projects.PUT("/:id", ph.UpdateProject)
	projects.DELETE("/:id", ph.DeleteProject)
	projects.POST("/:id/assign/:employee_id", ph.AssignEmployee)
	projects.DELETE("/:id/assign/:employee_id", ph.UnassignEmployee)
}

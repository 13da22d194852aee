package job

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/ssengur01/TalentFlows/internal/middleware"
	"github.com/ssengur01/TalentFlows/pkg/logger"
	"go.uber.org/zap"
)

// Handler exposes the job endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates the job handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterPublicRoutes mounts the routes reachable without a bearer token.
// Anonymous listing is tenant-selected by the X-Tenant-Id header; an
// unresolved tenant simply yields an empty board.
func (h *Handler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/jobs", h.List)
	g.GET("/jobs/:id", h.Get)
}

// RegisterProtectedRoutes mounts the routes requiring authentication.
func (h *Handler) RegisterProtectedRoutes(g *echo.Group) {
	g.POST("/jobs", h.Create)
	g.PUT("/jobs/:id", h.Update)
	g.DELETE("/jobs/:id", h.Delete)
	g.POST("/jobs/:id/publish", h.Publish)
}

type jobRequest struct {
	Title          string   `json:"title" validate:"required"`
	Description    string   `json:"description" validate:"required"`
	Location       string   `json:"location"`
	SalaryMin      *float64 `json:"salaryMin"`
	SalaryMax      *float64 `json:"salaryMax"`
	Requirements   string   `json:"requirements"`
	Benefits       string   `json:"benefits"`
	EmploymentType string   `json:"employmentType"`
}

func (r *jobRequest) toInput() Input {
	return Input{
		Title:          r.Title,
		Description:    r.Description,
		Location:       r.Location,
		SalaryMin:      r.SalaryMin,
		SalaryMax:      r.SalaryMax,
		Requirements:   r.Requirements,
		Benefits:       r.Benefits,
		EmploymentType: r.EmploymentType,
	}
}

// List handles GET /api/jobs
func (h *Handler) List(c echo.Context) error {
	tc := middleware.TenantFromEcho(c)

	jobs, err := h.svc.List(c.Request().Context(), tc)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}

// Get handles GET /api/jobs/:id
func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid job id")
	}

	j, err := h.svc.Get(c.Request().Context(), middleware.TenantFromEcho(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, j)
}

// Create handles POST /api/jobs
func (h *Handler) Create(c echo.Context) error {
	log := logger.FromEcho(c)

	var req jobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	j, err := h.svc.Create(c.Request().Context(), middleware.TenantFromEcho(c), req.toInput())
	if err != nil {
		return err
	}

	log.Info("Job created",
		zap.String("job_id", j.ID.String()),
		zap.String("title", j.Title))
	return c.JSON(http.StatusCreated, j)
}

// Update handles PUT /api/jobs/:id
func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid job id")
	}

	var req jobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	j, err := h.svc.Update(c.Request().Context(), middleware.TenantFromEcho(c), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, j)
}

// Publish handles POST /api/jobs/:id/publish
func (h *Handler) Publish(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid job id")
	}

	j, err := h.svc.Publish(c.Request().Context(), middleware.TenantFromEcho(c), id)
	if err != nil {
		return err
	}

	log.Info("Job published", zap.String("job_id", j.ID.String()))
	return c.JSON(http.StatusOK, j)
}

// Delete handles DELETE /api/jobs/:id
func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid job id")
	}

	if err := h.svc.Delete(c.Request().Context(), middleware.TenantFromEcho(c), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

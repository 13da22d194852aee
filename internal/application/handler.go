package application

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/ssengur01/TalentFlows/internal/middleware"
	"github.com/ssengur01/TalentFlows/pkg/logger"
	"go.uber.org/zap"
)

// Handler exposes the application endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates the application handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the application routes on the given group. All of
// them require authentication.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/applications", h.List)
	g.GET("/applications/:id", h.Get)
	g.POST("/applications", h.Create)
	g.PUT("/applications/:id/status", h.UpdateStatus)
}

type applicationRequest struct {
	JobID       uuid.UUID `json:"jobId" validate:"required"`
	CandidateID uuid.UUID `json:"candidateId" validate:"required"`
	CoverLetter string    `json:"coverLetter"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

// List handles GET /api/applications
func (h *Handler) List(c echo.Context) error {
	apps, err := h.svc.List(c.Request().Context(), middleware.TenantFromEcho(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apps)
}

// Get handles GET /api/applications/:id
func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid application id")
	}

	app, err := h.svc.Get(c.Request().Context(), middleware.TenantFromEcho(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, app)
}

// Create handles POST /api/applications
func (h *Handler) Create(c echo.Context) error {
	log := logger.FromEcho(c)

	var req applicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	app, err := h.svc.Create(c.Request().Context(), middleware.TenantFromEcho(c), Input{
		JobID:       req.JobID,
		CandidateID: req.CandidateID,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		return err
	}

	log.Info("Application created",
		zap.String("application_id", app.ID.String()),
		zap.String("job_id", app.JobID.String()))
	return c.JSON(http.StatusCreated, app)
}

// UpdateStatus handles PUT /api/applications/:id/status
func (h *Handler) UpdateStatus(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid application id")
	}

	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	app, err := h.svc.UpdateStatus(c.Request().Context(), middleware.TenantFromEcho(c), id, req.Status)
	if err != nil {
		return err
	}

	log.Info("Application status changed",
		zap.String("application_id", app.ID.String()),
		zap.String("status", app.Status))
	return c.JSON(http.StatusOK, app)
}

package candidate

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/ssengur01/TalentFlows/pkg/logger"
	"go.uber.org/zap"
)

// Handler exposes the candidate endpoints. No tenant restriction applies on
// any of these routes.
type Handler struct {
	svc *Service
}

// NewHandler creates the candidate handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the candidate routes on the given group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/candidates", h.List)
	g.GET("/candidates/:id", h.Get)
	g.POST("/candidates", h.Create)
	g.PUT("/candidates/:id", h.Update)
	g.DELETE("/candidates/:id", h.Delete)
}

type candidateRequest struct {
	FullName          string `json:"fullName" validate:"required"`
	Email             string `json:"email" validate:"required,email"`
	Phone             string `json:"phone"`
	ResumeURL         string `json:"resumeUrl"`
	Skills            string `json:"skills"`
	YearsOfExperience int    `json:"yearsOfExperience"`
	Education         string `json:"education"`
	LinkedInURL       string `json:"linkedInUrl"`
}

func (r *candidateRequest) toInput() Input {
	return Input{
		FullName:          r.FullName,
		Email:             r.Email,
		Phone:             r.Phone,
		ResumeURL:         r.ResumeURL,
		Skills:            r.Skills,
		YearsOfExperience: r.YearsOfExperience,
		Education:         r.Education,
		LinkedInURL:       r.LinkedInURL,
	}
}

// List handles GET /api/candidates
func (h *Handler) List(c echo.Context) error {
	candidates, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, candidates)
}

// Get handles GET /api/candidates/:id
func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid candidate id")
	}

	profile, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Create handles POST /api/candidates
func (h *Handler) Create(c echo.Context) error {
	log := logger.FromEcho(c)

	var req candidateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.svc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	log.Info("Candidate profile created",
		zap.String("candidate_id", profile.ID.String()))
	return c.JSON(http.StatusCreated, profile)
}

// Update handles PUT /api/candidates/:id
func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid candidate id")
	}

	var req candidateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.svc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Delete handles DELETE /api/candidates/:id
func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid candidate id")
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

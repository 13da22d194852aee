package company

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/ssengur01/TalentFlows/internal/middleware"
	"github.com/ssengur01/TalentFlows/pkg/logger"
	"go.uber.org/zap"
)

// Handler exposes the company endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates the company handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the company routes on the given group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/companies", h.List)
	g.GET("/companies/:id", h.Get)
	g.POST("/companies", h.Create)
	g.PUT("/companies/:id", h.Update)
	g.DELETE("/companies/:id", h.Delete)
}

type companyRequest struct {
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description"`
	Industry      string `json:"industry"`
	Website       string `json:"website"`
	LogoURL       string `json:"logoUrl"`
	Location      string `json:"location"`
	EmployeeCount int    `json:"employeeCount"`
}

func (r *companyRequest) toInput() Input {
	return Input{
		Name:          r.Name,
		Description:   r.Description,
		Industry:      r.Industry,
		Website:       r.Website,
		LogoURL:       r.LogoURL,
		Location:      r.Location,
		EmployeeCount: r.EmployeeCount,
	}
}

// List handles GET /api/companies
func (h *Handler) List(c echo.Context) error {
	companies, err := h.svc.List(c.Request().Context(), middleware.TenantFromEcho(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, companies)
}

// Get handles GET /api/companies/:id
func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid company id")
	}

	profile, err := h.svc.Get(c.Request().Context(), middleware.TenantFromEcho(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Create handles POST /api/companies
func (h *Handler) Create(c echo.Context) error {
	log := logger.FromEcho(c)

	var req companyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.svc.Create(c.Request().Context(), middleware.TenantFromEcho(c), req.toInput())
	if err != nil {
		return err
	}

	log.Info("Company profile created",
		zap.String("company_id", profile.ID.String()),
		zap.String("name", profile.Name))
	return c.JSON(http.StatusCreated, profile)
}

// Update handles PUT /api/companies/:id
func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid company id")
	}

	var req companyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.svc.Update(c.Request().Context(), middleware.TenantFromEcho(c), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Delete handles DELETE /api/companies/:id
func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid company id")
	}

	if err := h.svc.Delete(c.Request().Context(), middleware.TenantFromEcho(c), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

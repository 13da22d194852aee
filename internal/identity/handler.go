package identity

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/ssengur01/TalentFlows/pkg/logger"
	"go.uber.org/zap"
)

var (
	registerCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "identity_register_total",
		Help: "Total number of registration attempts",
	})
	loginCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "identity_login_total",
		Help: "Total number of login attempts",
	})
	refreshCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "identity_refresh_total",
		Help: "Total number of token refresh attempts",
	})
)

// Handler exposes the authentication endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates the identity handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the auth routes on the given group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/refresh", h.Refresh)
}

type registerRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"fullName" validate:"required"`
	Role        string `json:"role" validate:"required,oneof=Company Candidate"`
	CompanyName string `json:"companyName"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type authResponse struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refreshToken"`
	Expiration   time.Time `json:"expiration"`
}

// Register handles POST /api/auth/register
func (h *Handler) Register(c echo.Context) error {
	log := logger.FromEcho(c)
	registerCounter.Inc()

	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.svc.Register(c.Request().Context(), RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		Role:        req.Role,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		return err
	}

	log.Info("User registered",
		zap.String("email", req.Email),
		zap.String("role", req.Role))
	return c.JSON(http.StatusOK, authResponse{
		Token:        result.Token,
		RefreshToken: result.RefreshToken,
		Expiration:   result.Expiration,
	})
}

// Login handles POST /api/auth/login
func (h *Handler) Login(c echo.Context) error {
	log := logger.FromEcho(c)
	loginCounter.Inc()

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	log.Info("User logged in", zap.String("email", req.Email))
	return c.JSON(http.StatusOK, authResponse{
		Token:        result.Token,
		RefreshToken: result.RefreshToken,
		Expiration:   result.Expiration,
	})
}

// Refresh handles POST /api/auth/refresh
func (h *Handler) Refresh(c echo.Context) error {
	refreshCounter.Inc()

	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.svc.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{
		Token:        result.Token,
		RefreshToken: result.RefreshToken,
		Expiration:   result.Expiration,
	})
}

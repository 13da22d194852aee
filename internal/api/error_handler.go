package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ssengur01/TalentFlows/internal/model"
	"go.uber.org/zap"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps domain
// errors to deterministic status codes, logs unexpected errors server-side
// and renders a consistent {"error": "<message>"} envelope.
func NewHTTPErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, echo.Map{"error": msg})
	}
}

func resolveError(err error, log *zap.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Field-level validation failures carry their own message.
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Message
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, model.ErrTenantRequired):
		return http.StatusBadRequest, "tenant could not be resolved"
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, model.ErrEmailTaken):
		return http.StatusConflict, "email already registered"
	case errors.Is(err, model.ErrInvalidStatus):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, model.ErrInvalidRefreshToken):
		return http.StatusUnauthorized, "invalid refresh token"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error("unhandled error",
		zap.Error(err),
		zap.String("method", c.Request().Method),
		zap.String("path", c.Path()),
	)

	return http.StatusInternalServerError, "internal server error"
}

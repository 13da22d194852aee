package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/ssengur01/TalentFlows/internal/tenant"
	"github.com/ssengur01/TalentFlows/pkg/logger"
	"go.uber.org/zap"
)

const tenantKey = "tenant_context"

// TenantMiddleware derives the request's effective tenant exactly once and
// stores it as a tenant.Context for handlers to pass on explicitly.
//
// Resolution order: the X-Tenant-Id header forwarded by the gateway, then
// the tenant claim of the bearer token. Authenticated requests without a
// resolvable tenant are rejected; anonymous requests proceed with the
// unresolved sentinel and see empty results from scoped reads.
func TenantMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromEcho(c)

			id := tenant.FromHeader(c.Request().Header)

			claims, authenticated := ClaimsFromEcho(c)
			if id == uuid.Nil && authenticated {
				id = claims.TenantID
			}

			if authenticated && id == uuid.Nil {
				log.Warn("Authenticated request without resolvable tenant",
					zap.String("subject", claims.Subject))
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant could not be resolved"})
			}

			c.Set(tenantKey, tenant.NewContext(id))
			return next(c)
		}
	}
}

// TenantFromEcho retrieves the tenant context derived by TenantMiddleware.
// Returns the unresolved sentinel when the middleware did not run.
func TenantFromEcho(c echo.Context) tenant.Context {
	tc, ok := c.Get(tenantKey).(tenant.Context)
	if !ok {
		return tenant.NewContext(uuid.Nil)
	}
	return tc
}

package tenant

import (
	"net/http"

	"github.com/google/uuid"
)

// HeaderName is the request header the gateway uses to forward the tenant
// identifier after validating the bearer token.
const HeaderName = "X-Tenant-Id"

// FromHeader extracts the tenant ID from the request headers. A missing or
// malformed value resolves to uuid.Nil. Pure function, no side effects;
// whether an unresolved tenant is acceptable is the caller's decision.
func FromHeader(h http.Header) uuid.UUID {
	raw := h.Get(HeaderName)
	if raw == "" {
		return uuid.Nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}

package tenant

import "github.com/google/uuid"

// Context carries the effective tenant of one request. It is derived once
// by the tenant middleware and passed as an ordinary parameter into every
// service and repository call; no layer reads it from ambient state.
type Context struct {
	tenantID uuid.UUID
}

// NewContext builds a Context for the given tenant ID. uuid.Nil means
// unresolved.
func NewContext(id uuid.UUID) Context {
	return Context{tenantID: id}
}

// TenantID returns the effective tenant ID, uuid.Nil when unresolved.
func (c Context) TenantID() uuid.UUID {
	return c.tenantID
}

// Resolved reports whether a tenant was identified for the request.
func (c Context) Resolved() bool {
	return c.tenantID != uuid.Nil
}

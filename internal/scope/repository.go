// Package scope implements the tenant-scoped repository: every storage
// operation against a tenant-scoped entity carries a mandatory tenant_id
// predicate derived from the request's tenant.Context. GlobalRepository is
// the explicit bypass for globally-scoped entities and system-level lookups.
package scope

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ssengur01/TalentFlows/internal/model"
	"github.com/ssengur01/TalentFlows/internal/tenant"
	"gorm.io/gorm"
)

// Record is implemented by every tenant-scoped entity (via model.TenantEntity).
type Record interface {
	EntityID() uuid.UUID
	OwnerTenant() uuid.UUID
	StampTenant(uuid.UUID)
}

// Repository provides tenant-scoped access to entities of type T.
type Repository[T any] struct {
	db *gorm.DB
}

// NewRepository creates a tenant-scoped repository for T.
func NewRepository[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// WithTx returns a repository bound to the given transaction.
func (r *Repository[T]) WithTx(tx *gorm.DB) *Repository[T] {
	return &Repository[T]{db: tx}
}

// List returns all records of the caller's tenant, optionally narrowed by an
// extra condition. An unresolved tenant yields empty results, never an error.
func (r *Repository[T]) List(ctx context.Context, tc tenant.Context, conds ...interface{}) ([]T, error) {
	if !tc.Resolved() {
		return []T{}, nil
	}

	q := r.db.WithContext(ctx).Where("tenant_id = ?", tc.TenantID())
	if len(conds) > 0 {
		q = q.Where(conds[0], conds[1:]...)
	}

	var out []T
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns the record with the given ID if it belongs to the caller's
// tenant. A record owned by another tenant is indistinguishable from a
// missing one.
func (r *Repository[T]) Get(ctx context.Context, tc tenant.Context, id uuid.UUID) (*T, error) {
	if !tc.Resolved() {
		return nil, model.ErrNotFound
	}

	var out T
	err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tc.TenantID()).
		First(&out).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

// Create inserts the record, stamping its tenant ID from the context and
// overriding any caller-supplied value.
func (r *Repository[T]) Create(ctx context.Context, tc tenant.Context, rec Record) error {
	if !tc.Resolved() {
		return model.ErrTenantRequired
	}

	rec.StampTenant(tc.TenantID())
	return r.db.WithContext(ctx).Create(rec).Error
}

// Update persists the record's current field values under the tenant
// predicate. The id, tenant_id and created_at columns are never written, so
// the owning tenant is immutable. Zero affected rows means the record does
// not exist within the caller's tenant.
func (r *Repository[T]) Update(ctx context.Context, tc tenant.Context, rec Record) error {
	if !tc.Resolved() {
		return model.ErrNotFound
	}

	res := r.db.WithContext(ctx).
		Model(rec).
		Where("id = ? AND tenant_id = ?", rec.EntityID(), tc.TenantID()).
		Select("*").
		Omit("id", "tenant_id", "created_at").
		Updates(rec)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Delete removes the record under the tenant predicate. Deleting a record
// outside the caller's tenant behaves identically to deleting a missing one.
func (r *Repository[T]) Delete(ctx context.Context, tc tenant.Context, id uuid.UUID) error {
	if !tc.Resolved() {
		return model.ErrNotFound
	}

	var zero T
	res := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tc.TenantID()).
		Delete(&zero)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

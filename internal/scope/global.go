package scope

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ssengur01/TalentFlows/internal/model"
	"gorm.io/gorm"
)

// GlobalRepository is the deliberate, named bypass of the tenant filter.
// Its only call sites are:
//   - the candidate service (candidates are globally-scoped by design)
//   - the identity service (tenant and user records, including the
//     login-time user lookup by email that must run before any tenant
//     context exists)
//   - the outbox dispatcher (system-level event rows)
//
// Adding a new call site extends this list; nothing else may construct one.
type GlobalRepository[T any] struct {
	db *gorm.DB
}

// NewGlobalRepository creates an unfiltered repository for T.
func NewGlobalRepository[T any](db *gorm.DB) *GlobalRepository[T] {
	return &GlobalRepository[T]{db: db}
}

// WithTx returns a repository bound to the given transaction.
func (r *GlobalRepository[T]) WithTx(tx *gorm.DB) *GlobalRepository[T] {
	return &GlobalRepository[T]{db: tx}
}

// List returns all records, optionally narrowed by a condition.
func (r *GlobalRepository[T]) List(ctx context.Context, conds ...interface{}) ([]T, error) {
	q := r.db.WithContext(ctx)
	if len(conds) > 0 {
		q = q.Where(conds[0], conds[1:]...)
	}

	var out []T
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns the record with the given ID regardless of tenant.
func (r *GlobalRepository[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	var out T
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

// FindOne returns the first record matching the condition.
func (r *GlobalRepository[T]) FindOne(ctx context.Context, cond string, args ...interface{}) (*T, error) {
	var out T
	err := r.db.WithContext(ctx).Where(cond, args...).First(&out).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

// Create inserts the record as-is. No tenant stamping happens here.
func (r *GlobalRepository[T]) Create(ctx context.Context, rec interface{}) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// Update persists the record's current field values by primary key.
func (r *GlobalRepository[T]) Update(ctx context.Context, id uuid.UUID, rec interface{}) error {
	res := r.db.WithContext(ctx).
		Model(rec).
		Where("id = ?", id).
		Select("*").
		Omit("id", "created_at").
		Updates(rec)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Delete removes the record by primary key.
func (r *GlobalRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	var zero T
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&zero)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

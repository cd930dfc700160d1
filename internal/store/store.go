// Package store is the tenant-isolated persistence core. Every accessor is
// scoped to one owning tenant: reads filter on the owner column, inserts
// stamp it from the request identity rather than trusting the payload, and
// rows belonging to other tenants surface as ErrNotFound. The scoping is
// generic over any model implementing models.Owned, so adding an entity
// never requires new enforcement code.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/careerpilot/backend/internal/models"
)

// ownerColumn is the owner column shared by every owned table.
const ownerColumn = "user_id"

// Store wraps the database with tenant-scoped access.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ownedPtr constrains PT to a pointer to a tenant-owned model.
type ownedPtr[T any] interface {
	*T
	models.Owned
}

func validate(row any) error {
	if v, ok := row.(models.Validator); ok {
		return v.Validate()
	}
	return nil
}

// Create inserts row for tenant. The owner field is overwritten with the
// request tenant, so a caller cannot create rows as somebody else.
func Create[T any, PT ownedPtr[T]](ctx context.Context, s *Store, tenant uuid.UUID, row PT) error {
	row.SetOwnerID(tenant)
	if err := validate(row); err != nil {
		return err
	}
	return translate(s.db.WithContext(ctx).Create(row).Error)
}

// Get returns the tenant's row with the given id. A row owned by another
// tenant is indistinguishable from a missing one.
func Get[T any, PT ownedPtr[T]](ctx context.Context, s *Store, tenant, id uuid.UUID) (PT, error) {
	var row T
	err := s.db.WithContext(ctx).
		Where(ownerColumn+" = ? AND id = ?", tenant, id).
		First(&row).Error
	if err != nil {
		var zero PT
		return zero, translate(err)
	}
	return &row, nil
}

// List returns all of the tenant's rows, optionally refined by query options
// (ordering, limits).
func List[T any, PT ownedPtr[T]](ctx context.Context, s *Store, tenant uuid.UUID, opts ...func(*gorm.DB) *gorm.DB) ([]T, error) {
	q := s.db.WithContext(ctx).Where(ownerColumn+" = ?", tenant)
	for _, opt := range opts {
		q = opt(q)
	}
	var rows []T
	if err := q.Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

// Save writes back a previously loaded row. The update is keyed on both the
// primary key and the owner column, so a row id belonging to another tenant
// updates nothing and reports ErrNotFound.
func Save[T any, PT ownedPtr[T]](ctx context.Context, s *Store, tenant uuid.UUID, row PT) error {
	if row.OwnerID() != tenant {
		return ErrNotFound
	}
	if err := validate(row); err != nil {
		return err
	}
	res := s.db.WithContext(ctx).
		Model(row).
		Where(ownerColumn+" = ?", tenant).
		Select("*").
		Omit("id", "created_at", ownerColumn).
		Updates(row)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the tenant's row with the given id.
func Delete[T any, PT ownedPtr[T]](ctx context.Context, s *Store, tenant, id uuid.UUID) error {
	var row T
	res := s.db.WithContext(ctx).
		Where(ownerColumn+" = ? AND id = ?", tenant, id).
		Delete(&row)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Ordered is a List option applying an ORDER BY clause.
func Ordered(expr string) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB { return q.Order(expr) }
}

// Limit is a List option bounding the result size.
func Limit(n int) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB { return q.Limit(n) }
}

// UpsertLearningProgress writes progress for one milestone. The second write
// for the same (tenant, milestone) pair updates the existing row; the table
// never holds two rows for the pair.
func (s *Store) UpsertLearningProgress(ctx context.Context, tenant uuid.UUID, p *models.LearningProgress) error {
	p.SetOwnerID(tenant)
	if err := p.Validate(); err != nil {
		return err
	}
	if p.Completed && p.CompletedAt == nil {
		now := time.Now()
		p.CompletedAt = &now
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: ownerColumn}, {Name: "milestone_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"roadmap_id", "completed", "time_spent_minutes", "completed_at", "updated_at",
			}),
		}).
		Create(p).Error
	return translate(err)
}

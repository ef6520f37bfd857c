package repository

import (
	"context"
	"errors"

	"fieldops/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ResourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

func (r *ResourceRepository) Create(ctx context.Context, res *domain.Resource) error {
	return r.db.WithContext(ctx).Create(res).Error
}

// CreateWithTask inserts a resource and its initial task in one
// transaction; used by intake flows that assign a technician up front.
func (r *ResourceRepository) CreateWithTask(ctx context.Context, res *domain.Resource, t *domain.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(res).Error; err != nil {
			return err
		}
		t.ResourceID = res.ID
		return tx.Create(t).Error
	})
}

func (r *ResourceRepository) GetByID(ctx context.Context, id int64) (*domain.Resource, error) {
	var res domain.Resource
	err := r.db.WithContext(ctx).First(&res, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Update writes the given columns. The caller gates state changes through
// the state machine before calling in.
func (r *ResourceRepository) Update(ctx context.Context, id int64, updates map[string]any) error {
	tx := r.db.WithContext(ctx).Model(&domain.Resource{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCascade removes the resource and every reservation and task that
// references it. The resource row is locked first so in-flight reservation
// or assignment transactions on the same resource serialize against the
// delete instead of resurrecting dependents.
func (r *ResourceRepository) DeleteCascade(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var res domain.Resource
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&res, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if err := tx.Where("resource_id = ?", id).Delete(&domain.Reservation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("resource_id = ?", id).Delete(&domain.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Resource{}, id).Error
	})
}

func (r *ResourceRepository) List(ctx context.Context) ([]domain.Resource, error) {
	var out []domain.Resource
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *ResourceRepository) ListByState(ctx context.Context, state domain.ResourceState) ([]domain.Resource, error) {
	var out []domain.Resource
	err := r.db.WithContext(ctx).
		Where("state = ?", state).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// ListByAssignee returns resources assigned to a technician, optionally
// excluding one state (the dashboard hides Completed).
func (r *ResourceRepository) ListByAssignee(ctx context.Context, assigneeID int64, excludeState domain.ResourceState) ([]domain.Resource, error) {
	q := r.db.WithContext(ctx).Where("assignee_id = ?", assigneeID)
	if excludeState != "" {
		q = q.Where("state <> ?", excludeState)
	}
	var out []domain.Resource
	err := q.Order("created_at DESC").Find(&out).Error
	return out, err
}

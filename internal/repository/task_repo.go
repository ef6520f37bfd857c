package repository

import (
	"context"
	"errors"
	"time"

	"fieldops/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// TaskDetails is a task row joined with the names the dashboards show.
type TaskDetails struct {
	ID           int64  `json:"id"`
	ResourceID   int64  `json:"resource_id"`
	ResourceName string `json:"resource_name"`
	AdminID      int64  `json:"admin_id"`
	AdminName    string `json:"admin_name"`
	AssigneeID   int64  `json:"assignee_id"`
	AssigneeName string `json:"assignee_name"`
	TaskType     string `json:"task_type"`
	Description  string `json:"description"`
	AssignedDate string `json:"assigned_date"`
	State        string `json:"state"`
}

// AssignSerialized creates the task and moves the resource to Assigned in
// one transaction. The resource row is locked FOR UPDATE so concurrent
// assign/complete/delete calls on the same resource serialize.
func (r *TaskRepository) AssignSerialized(ctx context.Context, t *domain.Task, assigneeName string) (*domain.Resource, error) {
	var resource domain.Resource
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&resource, t.ResourceID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if !resource.State.CanTransition(domain.ResourceAssigned) {
			return ErrStaleState
		}

		if err := tx.Create(t).Error; err != nil {
			return err
		}

		resource.State = domain.ResourceAssigned
		resource.AssigneeID = &t.AssigneeID
		resource.AssigneeName = assigneeName
		return tx.Model(&domain.Resource{}).Where("id = ?", resource.ID).Updates(map[string]any{
			"state":         resource.State,
			"assignee_id":   t.AssigneeID,
			"assignee_name": assigneeName,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// CompleteSerialized stores the completion record, moves the resource to
// Completed and closes every pending task for (resource, assignee), all in
// one transaction.
func (r *TaskRepository) CompleteSerialized(ctx context.Context, resourceID, assigneeID int64, rec domain.CompletionRecord, now time.Time) (*domain.Resource, error) {
	var resource domain.Resource
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND assignee_id = ?", resourceID, assigneeID).
			First(&resource).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if !resource.State.CanTransition(domain.ResourceCompleted) {
			return ErrStaleState
		}

		updates := map[string]any{
			"state":              domain.ResourceCompleted,
			"final_description":  rec.FinalDescription,
			"final_gps_location": rec.GPSLocation,
			"photo_url":          rec.PhotoURL,
			"reference":          rec.Reference,
			"serial_number":      rec.SerialNumber,
			"payment_method":     rec.PaymentMethod,
			"transaction_number": rec.TransactionNumber,
			"completed_at":       now,
		}
		if err := tx.Model(&domain.Resource{}).Where("id = ?", resourceID).Updates(updates).Error; err != nil {
			return err
		}

		err = tx.Model(&domain.Task{}).
			Where("resource_id = ? AND assignee_id = ? AND state = ?",
				resourceID, assigneeID, domain.TaskPendiente).
			Update("state", domain.TaskCompletada).Error
		if err != nil {
			return err
		}

		return tx.First(&resource, resourceID).Error
	})
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

func (r *TaskRepository) ListByAssignee(ctx context.Context, assigneeID int64, completedOnly bool) ([]TaskDetails, error) {
	q := `
SELECT t.id, t.resource_id, res.name AS resource_name, t.admin_id, a.name AS admin_name,
       t.assignee_id, u.name AS assignee_name, t.task_type, t.description, t.assigned_date, t.state
FROM tasks t
JOIN resources res ON res.id = t.resource_id
JOIN users u ON u.id = t.assignee_id
JOIN users a ON a.id = t.admin_id
WHERE t.assignee_id = ?
`
	args := []any{assigneeID}
	if completedOnly {
		q += " AND t.state = ?"
		args = append(args, domain.TaskCompletada)
	}
	q += " ORDER BY t.assigned_date DESC, t.id DESC"

	var out []TaskDetails
	err := r.db.WithContext(ctx).Raw(q, args...).Scan(&out).Error
	return out, err
}

func (r *TaskRepository) ListAll(ctx context.Context) ([]TaskDetails, error) {
	q := `
SELECT t.id, t.resource_id, res.name AS resource_name, t.admin_id, a.name AS admin_name,
       t.assignee_id, u.name AS assignee_name, t.task_type, t.description, t.assigned_date, t.state
FROM tasks t
JOIN resources res ON res.id = t.resource_id
JOIN users u ON u.id = t.assignee_id
JOIN users a ON a.id = t.admin_id
ORDER BY t.assigned_date DESC, t.id DESC
`
	var out []TaskDetails
	err := r.db.WithContext(ctx).Raw(q).Scan(&out).Error
	return out, err
}

func (r *TaskRepository) ListByResource(ctx context.Context, resourceID int64) ([]domain.Task, error) {
	var out []domain.Task
	err := r.db.WithContext(ctx).
		Where("resource_id = ?", resourceID).
		Order("assigned_date DESC, id DESC").
		Find(&out).Error
	return out, err
}

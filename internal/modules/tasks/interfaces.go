package tasks

import (
	"context"
	"time"

	"fieldops/internal/domain"
	"fieldops/internal/repository"
)

// TaskRepository owns task storage. The *Serialized methods commit their
// task write and the companion resource update together or not at all.
type TaskRepository interface {
	AssignSerialized(ctx context.Context, t *domain.Task, assigneeName string) (*domain.Resource, error)
	CompleteSerialized(ctx context.Context, resourceID, assigneeID int64, rec domain.CompletionRecord, now time.Time) (*domain.Resource, error)
	ListByAssignee(ctx context.Context, assigneeID int64, completedOnly bool) ([]repository.TaskDetails, error)
	ListAll(ctx context.Context) ([]repository.TaskDetails, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type ResourceCreator interface {
	CreateWithTask(ctx context.Context, res *domain.Resource, t *domain.Task) error
}

// NotificationSender is fire-and-forget: implementations log failures and
// never surface them to the calling operation.
type NotificationSender interface {
	NotifyTaskAssigned(ctx context.Context, assigneeID, resourceID int64, resourceName, taskType string)
	NotifyTaskCompleted(ctx context.Context, assigneeID, resourceID int64, resourceName string, completedAt time.Time)
}

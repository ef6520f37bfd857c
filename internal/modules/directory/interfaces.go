package directory

import (
	"context"

	"fieldops/internal/domain"
)

type ResourceRepository interface {
	Create(ctx context.Context, res *domain.Resource) error
	CreateWithTask(ctx context.Context, res *domain.Resource, t *domain.Task) error
	GetByID(ctx context.Context, id int64) (*domain.Resource, error)
	Update(ctx context.Context, id int64, updates map[string]any) error
	DeleteCascade(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Resource, error)
	ListByState(ctx context.Context, state domain.ResourceState) ([]domain.Resource, error)
	ListByAssignee(ctx context.Context, assigneeID int64, excludeState domain.ResourceState) ([]domain.Resource, error)
}

type ReservationLister interface {
	ListByResource(ctx context.Context, resourceID int64) ([]domain.Reservation, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

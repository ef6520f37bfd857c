package auth

import (
	"context"

	"fieldops/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListTechnicians(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id int64, updates map[string]any) error
	DeleteWithTasks(ctx context.Context, id int64) error
}

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

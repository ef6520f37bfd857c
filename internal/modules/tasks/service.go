package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fieldops/internal/domain"
	"fieldops/internal/repository"
)

type Service struct {
	tasks     TaskRepository
	users     UserRepository
	resources ResourceCreator
	notifs    NotificationSender
	now       func() time.Time
}

func NewService(tasks TaskRepository, users UserRepository, resources ResourceCreator, notifs NotificationSender) *Service {
	return &Service{
		tasks:     tasks,
		users:     users,
		resources: resources,
		notifs:    notifs,
		now:       time.Now,
	}
}

// AssignTask hands a resource to a technician: a new task in Pendiente plus
// the resource moving to Assigned, committed together. Re-assigning an
// already assigned resource re-targets it and appends another task;
// completed resources are closed for good.
func (s *Service) AssignTask(ctx context.Context, adminID int64, req AssignTaskRequest) (*domain.Task, *domain.Resource, error) {
	assignee, err := s.users.GetByID(ctx, req.AssigneeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	if assignee.IsAdmin() {
		return nil, nil, ErrInvalidRole
	}

	t := &domain.Task{
		ResourceID:   req.ResourceID,
		AdminID:      adminID,
		AssigneeID:   req.AssigneeID,
		TaskType:     req.TaskType,
		Description:  req.Description,
		AssignedDate: s.now().Format("2006-01-02"),
		State:        domain.TaskPendiente,
	}

	resource, err := s.tasks.AssignSerialized(ctx, t, assignee.Name)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, nil, ErrNotFound
		case errors.Is(err, repository.ErrStaleState):
			return nil, nil, ErrConflict
		}
		return nil, nil, err
	}

	if s.notifs != nil {
		s.notifs.NotifyTaskAssigned(ctx, assignee.ID, resource.ID, resource.Name, t.TaskType)
	}

	return t, resource, nil
}

// CompleteTask closes out an installation. GPS coordinates and the photo
// reference are mandatory; nothing is persisted when they are missing.
func (s *Service) CompleteTask(ctx context.Context, assigneeID int64, resourceID int64, req CompleteTaskRequest) (*domain.Resource, error) {
	if req.Latitude == "" || req.Longitude == "" || req.PhotoURL == "" {
		return nil, ErrInvalid
	}

	rec := domain.CompletionRecord{
		FinalDescription:  req.FinalDescription,
		GPSLocation:       fmt.Sprintf("%s,%s", req.Latitude, req.Longitude),
		PhotoURL:          req.PhotoURL,
		Reference:         req.Reference,
		SerialNumber:      req.SerialNumber,
		PaymentMethod:     req.PaymentMethod,
		TransactionNumber: req.TransactionNumber,
	}

	now := s.now()
	resource, err := s.tasks.CompleteSerialized(ctx, resourceID, assigneeID, rec, now)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrNotFound
		case errors.Is(err, repository.ErrStaleState):
			return nil, ErrConflict
		}
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.NotifyTaskCompleted(ctx, assigneeID, resource.ID, resource.Name, now)
	}

	return resource, nil
}

// RepairIntake opens a repair/migration work order and assigns it in one
// step: a fresh Assigned resource plus its task, committed together.
func (s *Service) RepairIntake(ctx context.Context, adminID int64, req RepairIntakeRequest) (*domain.Resource, error) {
	assignee, err := s.users.GetByID(ctx, req.AssigneeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if assignee.IsAdmin() {
		return nil, ErrInvalidRole
	}

	res := &domain.Resource{
		Name:           fmt.Sprintf("%s - %s", req.TaskType, req.ClientName),
		Description:    req.Description,
		State:          domain.ResourceAssigned,
		ClientName:     req.ClientName,
		ClientPhone:    req.ClientPhone,
		ServiceRequest: req.ServiceType,
		AssigneeID:     &assignee.ID,
		AssigneeName:   assignee.Name,
	}
	t := &domain.Task{
		AdminID:      adminID,
		AssigneeID:   req.AssigneeID,
		TaskType:     req.TaskType,
		Description:  req.Description,
		AssignedDate: s.now().Format("2006-01-02"),
		State:        domain.TaskPendiente,
	}

	if err := s.resources.CreateWithTask(ctx, res, t); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.NotifyTaskAssigned(ctx, assignee.ID, res.ID, res.Name, t.TaskType)
	}

	return res, nil
}

func (s *Service) ListForAssignee(ctx context.Context, assigneeID int64, completedOnly bool) ([]repository.TaskDetails, error) {
	return s.tasks.ListByAssignee(ctx, assigneeID, completedOnly)
}

func (s *Service) ListAll(ctx context.Context) ([]repository.TaskDetails, error) {
	return s.tasks.ListAll(ctx)
}

package directory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fieldops/internal/domain"
	"fieldops/internal/repository"
)

type Service struct {
	resources    ResourceRepository
	reservations ReservationLister
	users        UserRepository
	now          func() time.Time
}

func NewService(resources ResourceRepository, reservations ReservationLister, users UserRepository) *Service {
	return &Service{
		resources:    resources,
		reservations: reservations,
		users:        users,
		now:          time.Now,
	}
}

// CreateResource registers an installation work order. When an assignee is
// named at intake the resource starts out Assigned with its first task,
// both written in one transaction.
func (s *Service) CreateResource(ctx context.Context, adminID int64, req CreateResourceRequest) (*domain.Resource, error) {
	res := &domain.Resource{
		Name:           req.Name,
		Description:    req.Description,
		State:          domain.ResourcePending,
		ImageURL:       req.ImageURL,
		RequestedTime:  req.RequestedTime,
		ClientCode:     req.ClientCode,
		ClientName:     req.ClientName,
		ClientPhone:    req.ClientPhone,
		ServiceRequest: req.ServiceRequest,
		Reference:      req.Reference,
		NAPBoxRoute:    req.NAPBoxRoute,
	}
	if req.Latitude != "" && req.Longitude != "" {
		res.GPSLocation = fmt.Sprintf("%s,%s", req.Latitude, req.Longitude)
	}

	if req.AssigneeID == 0 {
		if err := s.resources.Create(ctx, res); err != nil {
			return nil, err
		}
		return res, nil
	}

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

	res.State = domain.ResourceAssigned
	res.AssigneeID = &assignee.ID
	res.AssigneeName = assignee.Name

	t := &domain.Task{
		AdminID:      adminID,
		AssigneeID:   assignee.ID,
		TaskType:     req.ServiceRequest,
		Description:  fmt.Sprintf("Instalacion de %s para el cliente %s", req.ServiceRequest, req.ClientName),
		AssignedDate: s.now().Format("2006-01-02"),
		State:        domain.TaskPendiente,
	}
	if err := s.resources.CreateWithTask(ctx, res, t); err != nil {
		return nil, err
	}
	return res, nil
}

// GetResource returns a resource with its reservation calendar, the detail
// page payload.
func (s *Service) GetResource(ctx context.Context, id int64) (*domain.Resource, []domain.Reservation, error) {
	res, err := s.resources.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	reservations, err := s.reservations.ListByResource(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return res, reservations, nil
}

// UpdateResource applies a partial edit. A state patch must follow the
// machine: the directory never moves a resource backward.
func (s *Service) UpdateResource(ctx context.Context, id int64, req UpdateResourceRequest) (*domain.Resource, error) {
	res, err := s.resources.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.State != nil {
		next := domain.ResourceState(*req.State)
		if next != res.State && !res.State.CanTransition(next) {
			return nil, ErrInvalidTransition
		}
		updates["state"] = next
	}

	if len(updates) > 0 {
		if err := s.resources.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	return s.resources.GetByID(ctx, id)
}

// DeleteResource removes the resource and cascades over its reservations
// and tasks.
func (s *Service) DeleteResource(ctx context.Context, id int64) error {
	err := s.resources.DeleteCascade(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Service) ListResources(ctx context.Context, state string) ([]domain.Resource, error) {
	if state == "" {
		return s.resources.List(ctx)
	}
	return s.resources.ListByState(ctx, domain.ResourceState(state))
}

func (s *Service) ListAssignedTo(ctx context.Context, assigneeID int64, excludeState string) ([]domain.Resource, error) {
	return s.resources.ListByAssignee(ctx, assigneeID, domain.ResourceState(excludeState))
}

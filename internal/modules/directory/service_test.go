package directory

import (
	"context"
	"testing"

	"fieldops/internal/domain"
	"fieldops/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockResourceRepository struct {
	mock.Mock
}

func (m *MockResourceRepository) Create(ctx context.Context, res *domain.Resource) error {
	args := m.Called(ctx, res)
	if args.Error(0) == nil {
		res.ID = 11
	}
	return args.Error(0)
}

func (m *MockResourceRepository) CreateWithTask(ctx context.Context, res *domain.Resource, t *domain.Task) error {
	args := m.Called(ctx, res, t)
	if args.Error(0) == nil {
		res.ID = 11
		t.ResourceID = 11
	}
	return args.Error(0)
}

func (m *MockResourceRepository) GetByID(ctx context.Context, id int64) (*domain.Resource, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}

func (m *MockResourceRepository) Update(ctx context.Context, id int64, updates map[string]any) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

func (m *MockResourceRepository) DeleteCascade(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockResourceRepository) List(ctx context.Context) ([]domain.Resource, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resource), args.Error(1)
}

func (m *MockResourceRepository) ListByState(ctx context.Context, state domain.ResourceState) ([]domain.Resource, error) {
	args := m.Called(ctx, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resource), args.Error(1)
}

func (m *MockResourceRepository) ListByAssignee(ctx context.Context, assigneeID int64, excludeState domain.ResourceState) ([]domain.Resource, error) {
	args := m.Called(ctx, assigneeID, excludeState)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resource), args.Error(1)
}

type MockReservationLister struct {
	mock.Mock
}

func (m *MockReservationLister) ListByResource(ctx context.Context, resourceID int64) ([]domain.Reservation, error) {
	args := m.Called(ctx, resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestCreateResource_PlainIntake(t *testing.T) {
	repo := new(MockResourceRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo, new(MockReservationLister), new(MockUserRepository))

	res, err := service.CreateResource(context.Background(), 1, CreateResourceRequest{
		Name:      "FTTH drop",
		Latitude:  "-12.04",
		Longitude: "-77.02",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.ResourcePending, res.State)
	assert.Equal(t, "-12.04,-77.02", res.GPSLocation)
	repo.AssertNotCalled(t, "CreateWithTask", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateResource_InlineAssignment(t *testing.T) {
	repo := new(MockResourceRepository)
	users := new(MockUserRepository)

	users.On("GetByID", mock.Anything, int64(4)).
		Return(&domain.User{ID: 4, Name: "Tech", Role: domain.RoleTechnician}, nil)
	repo.On("CreateWithTask", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo, new(MockReservationLister), users)

	res, err := service.CreateResource(context.Background(), 1, CreateResourceRequest{
		Name:           "FTTH drop",
		ServiceRequest: "Internet 100M",
		ClientName:     "Juan Perez",
		AssigneeID:     4,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.ResourceAssigned, res.State)
	assert.Equal(t, "Tech", res.AssigneeName)
	repo.AssertExpectations(t)
}

func TestUpdateResource_RejectsBackwardState(t *testing.T) {
	repo := new(MockResourceRepository)
	repo.On("GetByID", mock.Anything, int64(11)).
		Return(&domain.Resource{ID: 11, State: domain.ResourceCompleted}, nil)

	service := NewService(repo, new(MockReservationLister), new(MockUserRepository))

	state := "Pending"
	_, err := service.UpdateResource(context.Background(), 11, UpdateResourceRequest{State: &state})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateResource_NameOnly(t *testing.T) {
	repo := new(MockResourceRepository)
	repo.On("GetByID", mock.Anything, int64(11)).
		Return(&domain.Resource{ID: 11, State: domain.ResourceAssigned}, nil)
	repo.On("Update", mock.Anything, int64(11), map[string]any{"name": "Renamed"}).Return(nil)

	service := NewService(repo, new(MockReservationLister), new(MockUserRepository))

	name := "Renamed"
	_, err := service.UpdateResource(context.Background(), 11, UpdateResourceRequest{Name: &name})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDeleteResource_Missing(t *testing.T) {
	repo := new(MockResourceRepository)
	repo.On("DeleteCascade", mock.Anything, int64(99)).Return(repository.ErrNotFound)

	service := NewService(repo, new(MockReservationLister), new(MockUserRepository))

	err := service.DeleteResource(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

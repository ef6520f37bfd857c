package tasks

import (
	"context"
	"testing"
	"time"

	"fieldops/internal/domain"
	"fieldops/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) AssignSerialized(ctx context.Context, t *domain.Task, assigneeName string) (*domain.Resource, error) {
	args := m.Called(ctx, t, assigneeName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}

func (m *MockTaskRepository) CompleteSerialized(ctx context.Context, resourceID, assigneeID int64, rec domain.CompletionRecord, now time.Time) (*domain.Resource, error) {
	args := m.Called(ctx, resourceID, assigneeID, rec, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}

func (m *MockTaskRepository) ListByAssignee(ctx context.Context, assigneeID int64, completedOnly bool) ([]repository.TaskDetails, error) {
	args := m.Called(ctx, assigneeID, completedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.TaskDetails), args.Error(1)
}

func (m *MockTaskRepository) ListAll(ctx context.Context) ([]repository.TaskDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.TaskDetails), args.Error(1)
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

type MockResourceCreator struct {
	mock.Mock
}

func (m *MockResourceCreator) CreateWithTask(ctx context.Context, res *domain.Resource, t *domain.Task) error {
	args := m.Called(ctx, res, t)
	if args.Error(0) == nil {
		res.ID = 77
		t.ResourceID = 77
	}
	return args.Error(0)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyTaskAssigned(ctx context.Context, assigneeID, resourceID int64, resourceName, taskType string) {
	m.Called(ctx, assigneeID, resourceID, resourceName, taskType)
}

func (m *MockNotificationSender) NotifyTaskCompleted(ctx context.Context, assigneeID, resourceID int64, resourceName string, completedAt time.Time) {
	m.Called(ctx, assigneeID, resourceID, resourceName, completedAt)
}

func technician(id int64) *domain.User {
	return &domain.User{ID: id, Name: "Tech", Role: domain.RoleTechnician}
}

func TestAssignTask_Success(t *testing.T) {
	taskRepo := new(MockTaskRepository)
	userRepo := new(MockUserRepository)
	notifs := new(MockNotificationSender)

	userRepo.On("GetByID", mock.Anything, int64(4)).Return(technician(4), nil)
	taskRepo.On("AssignSerialized", mock.Anything, mock.Anything, "Tech").
		Return(&domain.Resource{ID: 9, Name: "Install", State: domain.ResourceAssigned}, nil)
	notifs.On("NotifyTaskAssigned", mock.Anything, int64(4), int64(9), "Install", "FTTH").Return()

	service := NewService(taskRepo, userRepo, new(MockResourceCreator), notifs)

	task, resource, err := service.AssignTask(context.Background(), 1, AssignTaskRequest{
		ResourceID: 9,
		AssigneeID: 4,
		TaskType:   "FTTH",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.TaskPendiente, task.State)
	assert.Equal(t, int64(1), task.AdminID)
	assert.Equal(t, domain.ResourceAssigned, resource.State)
	notifs.AssertExpectations(t)
}

func TestAssignTask_AdminAssignee(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", mock.Anything, int64(2)).
		Return(&domain.User{ID: 2, Role: domain.RoleAdmin}, nil)

	service := NewService(new(MockTaskRepository), userRepo, new(MockResourceCreator), nil)

	_, _, err := service.AssignTask(context.Background(), 1, AssignTaskRequest{
		ResourceID: 9,
		AssigneeID: 2,
		TaskType:   "FTTH",
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestAssignTask_CompletedResource(t *testing.T) {
	taskRepo := new(MockTaskRepository)
	userRepo := new(MockUserRepository)

	userRepo.On("GetByID", mock.Anything, int64(4)).Return(technician(4), nil)
	taskRepo.On("AssignSerialized", mock.Anything, mock.Anything, "Tech").
		Return(nil, repository.ErrStaleState)

	service := NewService(taskRepo, userRepo, new(MockResourceCreator), nil)

	_, _, err := service.AssignTask(context.Background(), 1, AssignTaskRequest{
		ResourceID: 9,
		AssigneeID: 4,
		TaskType:   "FTTH",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAssignTask_MissingAssignee(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", mock.Anything, int64(44)).Return(nil, repository.ErrNotFound)

	service := NewService(new(MockTaskRepository), userRepo, new(MockResourceCreator), nil)

	_, _, err := service.AssignTask(context.Background(), 1, AssignTaskRequest{
		ResourceID: 9,
		AssigneeID: 44,
		TaskType:   "FTTH",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompleteTask_RequiresGPSAndPhoto(t *testing.T) {
	taskRepo := new(MockTaskRepository)
	service := NewService(taskRepo, new(MockUserRepository), new(MockResourceCreator), nil)

	cases := []CompleteTaskRequest{
		{Latitude: "", Longitude: "-77.02", PhotoURL: "/static/uploads/a.jpg"},
		{Latitude: "-12.04", Longitude: "", PhotoURL: "/static/uploads/a.jpg"},
		{Latitude: "-12.04", Longitude: "-77.02", PhotoURL: ""},
	}
	for _, req := range cases {
		_, err := service.CompleteTask(context.Background(), 4, 9, req)
		assert.ErrorIs(t, err, ErrInvalid)
	}
	// storage never touched on validation failure
	taskRepo.AssertNotCalled(t, "CompleteSerialized", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCompleteTask_Success(t *testing.T) {
	taskRepo := new(MockTaskRepository)
	notifs := new(MockNotificationSender)

	completedAt := time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC)
	expected := &domain.Resource{ID: 9, Name: "Install", State: domain.ResourceCompleted, CompletedAt: &completedAt}

	taskRepo.On("CompleteSerialized", mock.Anything, int64(9), int64(4),
		mock.MatchedBy(func(rec domain.CompletionRecord) bool {
			return rec.GPSLocation == "-12.04,-77.02" && rec.PhotoURL == "/static/uploads/a.jpg"
		}), completedAt).Return(expected, nil)
	notifs.On("NotifyTaskCompleted", mock.Anything, int64(4), int64(9), "Install", completedAt).Return()

	service := NewService(taskRepo, new(MockUserRepository), new(MockResourceCreator), notifs)
	service.now = func() time.Time { return completedAt }

	resource, err := service.CompleteTask(context.Background(), 4, 9, CompleteTaskRequest{
		Latitude:  "-12.04",
		Longitude: "-77.02",
		PhotoURL:  "/static/uploads/a.jpg",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.ResourceCompleted, resource.State)
	notifs.AssertExpectations(t)
}

func TestCompleteTask_NotAssignedToCaller(t *testing.T) {
	taskRepo := new(MockTaskRepository)
	taskRepo.On("CompleteSerialized", mock.Anything, int64(9), int64(5), mock.Anything, mock.Anything).
		Return(nil, repository.ErrNotFound)

	service := NewService(taskRepo, new(MockUserRepository), new(MockResourceCreator), nil)

	_, err := service.CompleteTask(context.Background(), 5, 9, CompleteTaskRequest{
		Latitude:  "-12.04",
		Longitude: "-77.02",
		PhotoURL:  "/static/uploads/a.jpg",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepairIntake_CreatesResourceAndTask(t *testing.T) {
	userRepo := new(MockUserRepository)
	creator := new(MockResourceCreator)
	notifs := new(MockNotificationSender)

	userRepo.On("GetByID", mock.Anything, int64(4)).Return(technician(4), nil)
	creator.On("CreateWithTask", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	notifs.On("NotifyTaskAssigned", mock.Anything, int64(4), int64(77), "Migracion - Juan Perez", "Migracion").Return()

	service := NewService(new(MockTaskRepository), userRepo, creator, notifs)

	resource, err := service.RepairIntake(context.Background(), 1, RepairIntakeRequest{
		ClientName: "Juan Perez",
		TaskType:   "Migracion",
		AssigneeID: 4,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.ResourceAssigned, resource.State)
	assert.Equal(t, "Migracion - Juan Perez", resource.Name)
	require.NotNil(t, resource.AssigneeID)
	assert.Equal(t, int64(4), *resource.AssigneeID)
	creator.AssertExpectations(t)
}

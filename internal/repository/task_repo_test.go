package repository

import (
	"context"
	"testing"
	"time"

	"fieldops/internal/database"
	"fieldops/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTaskDB(t *testing.T) (*UserRepository, *ResourceRepository, *TaskRepository) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return NewUserRepository(db), NewResourceRepository(db), NewTaskRepository(db)
}

func seedInstallation(t *testing.T, users *UserRepository, resources *ResourceRepository) (*domain.User, *domain.User, *domain.Resource) {
	t.Helper()
	ctx := context.Background()

	admin := &domain.User{Name: "Admin", Email: "admin@test.local", Role: domain.RoleAdmin}
	require.NoError(t, users.Create(ctx, admin))
	tech := &domain.User{Name: "Carlos Huaman", Email: "carlos@test.local", Role: domain.RoleTechnician}
	require.NoError(t, users.Create(ctx, tech))

	res := &domain.Resource{Name: "Instalacion - Juan Garcia", State: domain.ResourcePending}
	require.NoError(t, resources.Create(ctx, res))
	return admin, tech, res
}

func TestAssignThenCompleteLifecycle(t *testing.T) {
	users, resources, tasks := setupTaskDB(t)
	admin, tech, res := seedInstallation(t, users, resources)
	ctx := context.Background()

	task := &domain.Task{
		ResourceID:   res.ID,
		AdminID:      admin.ID,
		AssigneeID:   tech.ID,
		TaskType:     "Instalacion",
		AssignedDate: "2024-01-01",
		State:        domain.TaskPendiente,
	}
	updated, err := tasks.AssignSerialized(ctx, task, tech.Name)
	require.NoError(t, err)
	assert.Equal(t, domain.ResourceAssigned, updated.State)
	require.NotNil(t, updated.AssigneeID)
	assert.Equal(t, tech.ID, *updated.AssigneeID)

	now := time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC)
	completed, err := tasks.CompleteSerialized(ctx, res.ID, tech.ID, domain.CompletionRecord{
		FinalDescription: "ONU instalada y probada",
		GPSLocation:      "-12.046374,-77.042793",
		PhotoURL:         "/static/uploads/2024/01/02/evidencia.jpg",
		SerialNumber:     "HWTC-9921",
	}, now)
	require.NoError(t, err)
	assert.Equal(t, domain.ResourceCompleted, completed.State)
	assert.Equal(t, "-12.046374,-77.042793", completed.FinalGPSLocation)
	require.NotNil(t, completed.CompletedAt)

	// the pending task closed out with the resource
	remaining, err := tasks.ListByResource(ctx, res.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, domain.TaskCompletada, remaining[0].State)
}

func TestCompletedResourceCannotBeReassigned(t *testing.T) {
	users, resources, tasks := setupTaskDB(t)
	admin, tech, res := seedInstallation(t, users, resources)
	ctx := context.Background()

	_, err := tasks.AssignSerialized(ctx, &domain.Task{
		ResourceID: res.ID, AdminID: admin.ID, AssigneeID: tech.ID,
		TaskType: "Instalacion", AssignedDate: "2024-01-01", State: domain.TaskPendiente,
	}, tech.Name)
	require.NoError(t, err)

	_, err = tasks.CompleteSerialized(ctx, res.ID, tech.ID, domain.CompletionRecord{
		GPSLocation: "-12.05,-77.03",
		PhotoURL:    "/static/uploads/x.jpg",
	}, time.Now())
	require.NoError(t, err)

	_, err = tasks.AssignSerialized(ctx, &domain.Task{
		ResourceID: res.ID, AdminID: admin.ID, AssigneeID: tech.ID,
		TaskType: "Reparacion", AssignedDate: "2024-01-03", State: domain.TaskPendiente,
	}, tech.Name)
	assert.ErrorIs(t, err, ErrStaleState)
}

func TestCompleteByWrongTechnician(t *testing.T) {
	users, resources, tasks := setupTaskDB(t)
	admin, tech, res := seedInstallation(t, users, resources)
	ctx := context.Background()

	other := &domain.User{Name: "Otro", Email: "otro@test.local", Role: domain.RoleTechnician}
	require.NoError(t, users.Create(ctx, other))

	_, err := tasks.AssignSerialized(ctx, &domain.Task{
		ResourceID: res.ID, AdminID: admin.ID, AssigneeID: tech.ID,
		TaskType: "Instalacion", AssignedDate: "2024-01-01", State: domain.TaskPendiente,
	}, tech.Name)
	require.NoError(t, err)

	_, err = tasks.CompleteSerialized(ctx, res.ID, other.ID, domain.CompletionRecord{
		GPSLocation: "-12.05,-77.03",
		PhotoURL:    "/static/uploads/x.jpg",
	}, time.Now())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReassignmentReTargetsAssignedResource(t *testing.T) {
	users, resources, tasks := setupTaskDB(t)
	admin, tech, res := seedInstallation(t, users, resources)
	ctx := context.Background()

	second := &domain.User{Name: "Maria Quispe", Email: "maria@test.local", Role: domain.RoleTechnician}
	require.NoError(t, users.Create(ctx, second))

	_, err := tasks.AssignSerialized(ctx, &domain.Task{
		ResourceID: res.ID, AdminID: admin.ID, AssigneeID: tech.ID,
		TaskType: "Instalacion", AssignedDate: "2024-01-01", State: domain.TaskPendiente,
	}, tech.Name)
	require.NoError(t, err)

	updated, err := tasks.AssignSerialized(ctx, &domain.Task{
		ResourceID: res.ID, AdminID: admin.ID, AssigneeID: second.ID,
		TaskType: "Instalacion", AssignedDate: "2024-01-02", State: domain.TaskPendiente,
	}, second.Name)
	require.NoError(t, err)
	assert.Equal(t, domain.ResourceAssigned, updated.State)
	assert.Equal(t, second.Name, updated.AssigneeName)

	// both tasks remain as the resource's history
	history, err := tasks.ListByResource(ctx, res.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

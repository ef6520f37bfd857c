package domain

import "time"

type TaskState string

// Task states keep the original dispatch-sheet wording used by the
// operations team.
const (
	TaskPendiente  TaskState = "Pendiente"
	TaskCompletada TaskState = "Completada"
)

// Task is one unit of assigned work: an admin handing a resource to a
// technician. A resource accumulates tasks over time (installation, then
// repair or migration re-assignments).
type Task struct {
	ID           int64     `json:"id"`
	ResourceID   int64     `json:"resource_id" gorm:"index"`
	AdminID      int64     `json:"admin_id"`
	AssigneeID   int64     `json:"assignee_id" gorm:"index"`
	TaskType     string    `json:"task_type"`
	Description  string    `json:"description,omitempty" gorm:"type:text"`
	AssignedDate string    `json:"assigned_date"` // "2006-01-02"
	State        TaskState `json:"state"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Task) TableName() string { return "tasks" }

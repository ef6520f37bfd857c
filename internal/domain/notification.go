package domain

import "time"

type NotificationType string

const (
	NotifTaskAssigned       NotificationType = "task_assigned"
	NotifTaskCompleted      NotificationType = "task_completed"
	NotifReservationCreated NotificationType = "reservation_created"
)

type Notification struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"user_id" gorm:"index:idx_notifications_user_unread,priority:1"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message" gorm:"type:text"`
	IsRead    bool             `json:"is_read" gorm:"index:idx_notifications_user_unread,priority:2"`
	CreatedAt time.Time        `json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }

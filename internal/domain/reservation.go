package domain

import "time"

// Reservation is a time-windowed claim on a resource. The window is the
// half-open interval [StartTime, EndTime) on a single calendar date.
// Date is "2006-01-02", times are zero-padded "15:04", so the stored
// strings compare correctly both in Go and in SQL.
type Reservation struct {
	ID         int64  `json:"id"`
	ResourceID int64  `json:"resource_id" gorm:"index:idx_reservations_resource_date,priority:1;uniqueIndex:idx_no_double_booking,priority:1"`
	UserID     int64  `json:"user_id" gorm:"index"`
	Date       string `json:"date" gorm:"index:idx_reservations_resource_date,priority:2;uniqueIndex:idx_no_double_booking,priority:2"`
	StartTime  string `json:"start_time" gorm:"uniqueIndex:idx_no_double_booking,priority:3"`
	EndTime    string `json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
}

func (Reservation) TableName() string { return "reservations" }

// Overlaps applies the half-open interval test against another window on
// the same resource and date.
func (r Reservation) Overlaps(start, end string) bool {
	return r.StartTime < end && r.EndTime > start
}

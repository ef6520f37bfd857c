package domain

import "time"

type ResourceState string

const (
	ResourcePending   ResourceState = "Pending"
	ResourceAssigned  ResourceState = "Assigned"
	ResourceCompleted ResourceState = "Completed"
)

// CanTransition reports whether the installation state machine allows
// moving from s to next. Completed is terminal; re-targeting an assigned
// resource stays in Assigned.
func (s ResourceState) CanTransition(next ResourceState) bool {
	switch s {
	case ResourcePending:
		return next == ResourceAssigned
	case ResourceAssigned:
		return next == ResourceAssigned || next == ResourceCompleted
	default:
		return false
	}
}

// Resource is an installation work order: something a technician gets sent
// out for and clients reserve visit slots against.
type Resource struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name" validate:"required"`
	Description string        `json:"description,omitempty" gorm:"type:text"`
	State       ResourceState `json:"state" gorm:"index"`
	ImageURL    string        `json:"image_url,omitempty"`

	// Client/request metadata captured at intake.
	RequestedTime  string `json:"requested_time,omitempty"`
	ClientCode     string `json:"client_code,omitempty"`
	ClientName     string `json:"client_name,omitempty"`
	ClientPhone    string `json:"client_phone,omitempty"`
	ServiceRequest string `json:"service_request,omitempty"`
	Reference      string `json:"reference,omitempty"`
	NAPBoxRoute    string `json:"nap_box_route,omitempty"`
	GPSLocation    string `json:"gps_location,omitempty"`

	AssigneeID   *int64 `json:"assignee_id,omitempty" gorm:"index"`
	AssigneeName string `json:"assignee_name,omitempty"`

	// Completion record, filled when a technician closes out the job.
	FinalDescription  string     `json:"final_description,omitempty" gorm:"type:text"`
	FinalGPSLocation  string     `json:"final_gps_location,omitempty"`
	PhotoURL          string     `json:"photo_url,omitempty"`
	SerialNumber      string     `json:"serial_number,omitempty"`
	PaymentMethod     string     `json:"payment_method,omitempty"`
	TransactionNumber string     `json:"transaction_number,omitempty"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Resource) TableName() string { return "resources" }

// CompletionRecord carries the artifacts a technician submits when closing
// an installation. GPS and photo are mandatory.
type CompletionRecord struct {
	FinalDescription  string
	GPSLocation       string
	PhotoURL          string
	Reference         string
	SerialNumber      string
	PaymentMethod     string
	TransactionNumber string
}

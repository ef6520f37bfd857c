package directory

type CreateResourceRequest struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	ImageURL       string `json:"image_url"`
	RequestedTime  string `json:"requested_time"`
	ClientCode     string `json:"client_code"`
	ClientName     string `json:"client_name"`
	ClientPhone    string `json:"client_phone"`
	ServiceRequest string `json:"service_request"`
	Reference      string `json:"reference"`
	NAPBoxRoute    string `json:"nap_box_route"`
	Latitude       string `json:"latitude"`
	Longitude      string `json:"longitude"`

	// Optional inline technician assignment at intake.
	AssigneeID int64 `json:"assignee_id"`
}

type UpdateResourceRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	State       *string `json:"state"`
	ImageURL    *string `json:"image_url"`
}

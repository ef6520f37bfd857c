package tasks

type AssignTaskRequest struct {
	ResourceID  int64  `json:"resource_id" binding:"required"`
	AssigneeID  int64  `json:"assignee_id" binding:"required"`
	TaskType    string `json:"task_type" binding:"required"`
	Description string `json:"description"`
}

type CompleteTaskRequest struct {
	FinalDescription  string `json:"final_description"`
	Latitude          string `json:"latitude"`
	Longitude         string `json:"longitude"`
	PhotoURL          string `json:"photo_url"`
	Reference         string `json:"reference"`
	SerialNumber      string `json:"serial_number"`
	PaymentMethod     string `json:"payment_method"`
	TransactionNumber string `json:"transaction_number"`
}

// RepairIntakeRequest opens a repair or migration job for an existing
// subscriber and hands it straight to a technician.
type RepairIntakeRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone"`
	ServiceType string `json:"service_type"`
	TaskType    string `json:"task_type" binding:"required"`
	AssigneeID  int64  `json:"assignee_id" binding:"required"`
	Description string `json:"description"`
}

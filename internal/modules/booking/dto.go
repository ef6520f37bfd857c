package booking

type CreateReservationRequest struct {
	ResourceID int64  `json:"resource_id" binding:"required"`
	Date       string `json:"date" binding:"required"`       // 2006-01-02
	StartTime  string `json:"start_time" binding:"required"` // 15:04
	EndTime    string `json:"end_time" binding:"required"`   // 15:04
}

package request

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

package set_booking_status

// SetStatusRequest HTTP request model
type SetStatusRequest struct {
	Status string `json:"status"`
}

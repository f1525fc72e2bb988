package reschedule_booking

import (
	"time"

	rescheduleBooking "github.com/m04kA/SMC-CourtService/internal/usecase/reschedule_booking"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	StartTime string `json:"startTime"` // RFC 3339
	EndTime   string `json:"endTime"`   // RFC 3339
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64   `json:"id"`
	CourtID    int64   `json:"courtId"`
	UserID     int64   `json:"userId"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"totalPrice"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest(userID, bookingID int64) (*rescheduleBooking.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleBooking.Request{
		UserID:    userID,
		BookingID: bookingID,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.ID,
		CourtID:    resp.CourtID,
		UserID:     resp.UserID,
		StartTime:  resp.StartTime.Format(time.RFC3339),
		EndTime:    resp.EndTime.Format(time.RFC3339),
		Status:     resp.Status,
		TotalPrice: resp.TotalPrice,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}

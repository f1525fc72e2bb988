package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-CourtService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CourtID   int64  `json:"courtId"`
	StartTime string `json:"startTime"` // RFC 3339, "2025-10-15T10:00:00Z"
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
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:    userID,
		CourtID:   r.CourtID,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
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

package process_payment

import (
	"time"

	processPayment "github.com/m04kA/SMC-CourtService/internal/usecase/process_payment"
)

// ProcessPaymentRequest HTTP request model
type ProcessPaymentRequest struct {
	BookingID *int64  `json:"bookingId,omitempty"`
	Amount    float64 `json:"amount"`
	Type      string  `json:"type"` // "booking", "membership", "other"
}

// PaymentResponse HTTP response model
type PaymentResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"userId"`
	BookingID     *int64  `json:"bookingId,omitempty"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	Type          string  `json:"type"`
	TransactionID string  `json:"transactionId"`
	PaymentDate   string  `json:"paymentDate"`
	CreatedAt     string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ProcessPaymentRequest) ToUseCaseRequest(userID int64) *processPayment.Request {
	return &processPayment.Request{
		UserID:    userID,
		BookingID: r.BookingID,
		Amount:    r.Amount,
		Type:      r.Type,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *processPayment.Response) *PaymentResponse {
	return &PaymentResponse{
		ID:            resp.ID,
		UserID:        resp.UserID,
		BookingID:     resp.BookingID,
		Amount:        resp.Amount,
		Status:        resp.Status,
		Type:          resp.Type,
		TransactionID: resp.TransactionID,
		PaymentDate:   resp.PaymentDate.Format(time.RFC3339),
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}

package process_payment

import "time"

// Request модель запроса на проведение платежа
// UserID берется только из аутентифицированного контекста запроса
type Request struct {
	UserID    int64
	BookingID *int64
	Amount    float64
	Type      string
}

// Response модель ответа с проведенным платежом
type Response struct {
	ID            int64
	UserID        int64
	BookingID     *int64
	Amount        float64
	Status        string
	Type          string
	TransactionID string
	PaymentDate   time.Time
	CreatedAt     time.Time
}

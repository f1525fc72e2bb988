package create_booking

import "time"

// Request модель запроса на создание бронирования
// UserID берется только из аутентифицированного контекста запроса,
// никогда из тела запроса
type Request struct {
	UserID    int64
	CourtID   int64
	StartTime time.Time
	EndTime   time.Time
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64
	CourtID    int64
	UserID     int64
	StartTime  time.Time
	EndTime    time.Time
	Status     string
	TotalPrice float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

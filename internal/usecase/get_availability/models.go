package get_availability

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// Request модель запроса сетки доступности корта на дату
type Request struct {
	CourtID int64
	Date    time.Time
}

// Response модель ответа с сеткой слотов
// Слоты идут в хронологическом порядке и покрывают рабочие часы без перекрытий
type Response struct {
	CourtID int64
	Date    time.Time
	Slots   []domain.TimeSlot
}

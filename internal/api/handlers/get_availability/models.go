package get_availability

import (
	"github.com/m04kA/SMC-CourtService/internal/domain"
	getAvailability "github.com/m04kA/SMC-CourtService/internal/usecase/get_availability"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	StartTime   string `json:"startTime"` // "10:00"
	EndTime     string `json:"endTime"`   // "11:00"
	IsAvailable bool   `json:"isAvailable"`
}

// AvailabilityResponse HTTP модель сетки доступности
type AvailabilityResponse struct {
	CourtID int64          `json:"courtId"`
	Date    string         `json:"date"` // "2025-10-15"
	Slots   []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime:   slot.StartTime.Format(domain.TimeFormat),
			EndTime:     slot.EndTime.Format(domain.TimeFormat),
			IsAvailable: slot.IsAvailable,
		})
	}

	return &AvailabilityResponse{
		CourtID: resp.CourtID,
		Date:    resp.Date.Format(domain.DateFormat),
		Slots:   slots,
	}
}

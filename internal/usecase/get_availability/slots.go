package get_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// buildSlotGrid строит сетку слотов на дату по рабочим часам
// Слоты покрывают интервал [OpenTime, CloseTime) шагом SlotDurationMinutes,
// неполный последний слот отбрасывается
func buildSlotGrid(date time.Time, hours domain.OperatingHours) ([]domain.TimeSlot, error) {
	openMinutes, err := hours.OpenTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("invalid open time: %w", err)
	}

	closeMinutes, err := hours.CloseTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("invalid close time: %w", err)
	}

	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	slots := make([]domain.TimeSlot, 0, (closeMinutes-openMinutes)/hours.SlotDurationMinutes)

	for cursor := openMinutes; cursor+hours.SlotDurationMinutes <= closeMinutes; cursor += hours.SlotDurationMinutes {
		slots = append(slots, domain.TimeSlot{
			StartTime:   midnight.Add(time.Duration(cursor) * time.Minute),
			EndTime:     midnight.Add(time.Duration(cursor+hours.SlotDurationMinutes) * time.Minute),
			IsAvailable: true,
		})
	}

	return slots, nil
}

// markOccupied помечает занятыми слоты, пересекающиеся с активными бронированиями
func markOccupied(slots []domain.TimeSlot, bookings []*domain.Booking) {
	for i := range slots {
		for _, b := range bookings {
			if slots[i].Overlaps(b.StartTime, b.EndTime) {
				slots[i].IsAvailable = false
				break
			}
		}
	}
}

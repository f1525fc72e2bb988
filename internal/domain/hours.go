package domain

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// ErrInvalidOperatingHours возвращается при некорректной конфигурации рабочих часов
var ErrInvalidOperatingHours = errors.New("domain: invalid operating hours")

// OperatingHours рабочие часы кортов и ширина слота сетки доступности
// Явный объект конфигурации, передается в расчёт доступности при конструировании
type OperatingHours struct {
	OpenTime            types.TimeString
	CloseTime           types.TimeString
	SlotDurationMinutes int
}

// Validate проверяет согласованность рабочих часов
func (h OperatingHours) Validate() error {
	if err := h.OpenTime.Validate(); err != nil {
		return fmt.Errorf("%w: open time: %v", ErrInvalidOperatingHours, err)
	}
	if err := h.CloseTime.Validate(); err != nil {
		return fmt.Errorf("%w: close time: %v", ErrInvalidOperatingHours, err)
	}
	if !h.OpenTime.IsBefore(h.CloseTime) {
		return fmt.Errorf("%w: open time must be before close time", ErrInvalidOperatingHours)
	}
	if h.SlotDurationMinutes <= 0 {
		return fmt.Errorf("%w: slot duration must be positive", ErrInvalidOperatingHours)
	}
	return nil
}

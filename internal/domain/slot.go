package domain

import "time"

// TimeSlot represents a fixed-width availability window for a court
// Слоты не хранятся в базе - это проекция расписания на сетку рабочих часов
type TimeSlot struct {
	StartTime   time.Time
	EndTime     time.Time
	IsAvailable bool
}

// Overlaps reports whether the slot intersects [start, end)
func (s *TimeSlot) Overlaps(start, end time.Time) bool {
	return s.StartTime.Before(end) && s.EndTime.After(start)
}

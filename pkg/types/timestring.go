// Package types содержит общие типы для работы со временем в формате HH:MM
package types

import (
	"errors"
	"fmt"
	"time"
)

// timeFormat формат времени HH:MM
const timeFormat = "15:04"

// ErrInvalidTimeString возвращается при некорректном формате строки времени
var ErrInvalidTimeString = errors.New("types: invalid time string format")

// TimeString время в пределах суток в формате "HH:MM" (например, "08:00")
// Используется для рабочих часов и отображения слотов
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := time.Parse(timeFormat, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(s), nil
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что строка времени соответствует формату HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeFormat, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// Minutes возвращает количество минут с начала суток
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает новое время, сдвинутое на указанное количество минут
// Выход за пределы суток считается ошибкой
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}

	total += minutes
	if total < 0 || total > 24*60 {
		return "", fmt.Errorf("%w: %q + %d minutes is out of day range", ErrInvalidTimeString, string(t), minutes)
	}

	// 24:00 представляем как конец суток
	if total == 24*60 {
		return TimeString("24:00"), nil
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если время строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// OnDate возвращает момент времени: указанная дата + это время суток
// Часовой пояс берется из переданной даты
func (t TimeString) OnDate(date time.Time) (time.Time, error) {
	parsed, err := time.Parse(timeFormat, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, date.Location()), nil
}

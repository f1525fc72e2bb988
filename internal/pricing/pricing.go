// Package pricing расчёт стоимости бронирования по почасовой ставке корта
package pricing

import (
	"errors"
	"math"
	"time"
)

var (
	// ErrInvalidInterval возвращается, когда конец интервала не позже начала
	ErrInvalidInterval = errors.New("pricing: end must be after start")

	// ErrNegativeRate возвращается при отрицательной почасовой ставке
	ErrNegativeRate = errors.New("pricing: hourly rate must be non-negative")
)

// Engine вычисляет стоимость бронирования
// Чистая функция без состояния; конструктор оставлен для симметрии с остальными
// компонентами и на случай появления настроек валюты
type Engine struct{}

// NewEngine создает новый экземпляр движка расчёта стоимости
func NewEngine() *Engine {
	return &Engine{}
}

// Price возвращает стоимость интервала [start, end) по ставке rate за час
// Дробные часы допустимы (1.5 часа = полтора тарифа)
// Результат округляется до 2 знаков банковским округлением (round half to even),
// одинаково при создании и при любом пересчёте
func (e *Engine) Price(rate float64, start, end time.Time) (float64, error) {
	if !end.After(start) {
		return 0, ErrInvalidInterval
	}
	if rate < 0 {
		return 0, ErrNegativeRate
	}

	hours := end.Sub(start).Hours()
	return roundToCents(rate * hours), nil
}

// roundToCents округляет до минорной единицы валюты (2 знака), half to even
func roundToCents(amount float64) float64 {
	return math.RoundToEven(amount*100) / 100
}

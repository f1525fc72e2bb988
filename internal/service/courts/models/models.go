package models

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// Request модели

// CreateCourtRequest запрос на создание корта
type CreateCourtRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	IsIndoor    bool    `json:"isIndoor"`
	HourlyRate  float64 `json:"hourlyRate"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
}

// UpdateCourtRequest запрос на обновление корта
// Обновляются только переданные поля
type UpdateCourtRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	HourlyRate  *float64 `json:"hourlyRate,omitempty"`
	IsAvailable *bool    `json:"isAvailable,omitempty"`
}

// Response модели

// CourtResponse ответ с данными корта
type CourtResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsIndoor    bool      `json:"isIndoor"`
	HourlyRate  float64   `json:"hourlyRate"`
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CourtListResponse ответ со списком кортов
type CourtListResponse struct {
	Courts []CourtResponse `json:"courts"`
}

// Методы конвертации

// FromDomainCourt конвертирует domain модель в DTO
func FromDomainCourt(c *domain.Court) *CourtResponse {
	if c == nil {
		return nil
	}

	return &CourtResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsIndoor:    c.IsIndoor,
		HourlyRate:  c.HourlyRate,
		IsAvailable: c.IsAvailable,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// FromDomainCourtList конвертирует список domain моделей в DTO
func FromDomainCourtList(courts []*domain.Court) *CourtListResponse {
	resp := &CourtListResponse{
		Courts: make([]CourtResponse, 0, len(courts)),
	}

	for _, court := range courts {
		if courtResp := FromDomainCourt(court); courtResp != nil {
			resp.Courts = append(resp.Courts, *courtResp)
		}
	}

	return resp
}

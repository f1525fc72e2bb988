package courts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtService/internal/service/courts/models"
)

// Service сервис для работы с кортами
type Service struct {
	courtRepo CourtRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса кортов
func NewService(courtRepo CourtRepository, logger Logger) *Service {
	return &Service{
		courtRepo: courtRepo,
		logger:    logger,
	}
}

// List получает список кортов
// При onlyAvailable=true возвращает только открытые для бронирования
func (s *Service) List(ctx context.Context, onlyAvailable bool) (*models.CourtListResponse, error) {
	s.logger.Info("List: fetching courts, onlyAvailable=%v", onlyAvailable)

	courts, err := s.courtRepo.List(ctx, onlyAvailable)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d courts", len(courts))
	return models.FromDomainCourtList(courts), nil
}

// GetByID получает корт по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CourtResponse, error) {
	s.logger.Info("GetByID: fetching court id=%d", id)

	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("GetByID: court id=%d not found", id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("GetByID: repository error for court id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched court id=%d", id)
	return models.FromDomainCourt(court), nil
}

// Create создает новый корт
func (s *Service) Create(ctx context.Context, req *models.CreateCourtRequest) (*models.CourtResponse, error) {
	s.logger.Info("Create: creating court name=%q", req.Name)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	court := &domain.Court{
		Name:        req.Name,
		Description: req.Description,
		IsIndoor:    req.IsIndoor,
		HourlyRate:  req.HourlyRate,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		court.IsAvailable = *req.IsAvailable
	}

	created, err := s.courtRepo.Create(ctx, court)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created court id=%d", created.ID)
	return models.FromDomainCourt(created), nil
}

// Update обновляет данные корта
// Обновляются только переданные поля, тип покрытия (крытый/открытый) не меняется
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateCourtRequest) (*models.CourtResponse, error) {
	s.logger.Info("Update: updating court id=%d", id)

	if err := validateUpdateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed for court id=%d: %v", id, err)
		return nil, err
	}

	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("Update: court id=%d not found", id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("Update: repository error for court id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		court.Name = *req.Name
	}
	if req.Description != nil {
		court.Description = *req.Description
	}
	if req.HourlyRate != nil {
		court.HourlyRate = *req.HourlyRate
	}
	if req.IsAvailable != nil {
		court.IsAvailable = *req.IsAvailable
	}

	if err := s.courtRepo.Update(ctx, court); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("Update: court id=%d not found during update", id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("Update: repository error for court id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated court id=%d", id)
	return models.FromDomainCourt(court), nil
}

// validateCreateRequest валидирует запрос на создание корта
func validateCreateRequest(req *models.CreateCourtRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxCourtNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if len(req.Description) > domain.MaxCourtDescriptionLength {
		return fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}
	if req.HourlyRate < 0 {
		return fmt.Errorf("%w: hourlyRate must be non-negative", ErrInvalidInput)
	}
	return nil
}

// validateUpdateRequest валидирует запрос на обновление корта
func validateUpdateRequest(req *models.UpdateCourtRequest) error {
	if req.Name != nil {
		if *req.Name == "" {
			return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
		}
		if len(*req.Name) > domain.MaxCourtNameLength {
			return fmt.Errorf("%w: name is too long", ErrInvalidInput)
		}
	}
	if req.Description != nil && len(*req.Description) > domain.MaxCourtDescriptionLength {
		return fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}
	if req.HourlyRate != nil && *req.HourlyRate < 0 {
		return fmt.Errorf("%w: hourlyRate must be non-negative", ErrInvalidInput)
	}
	return nil
}

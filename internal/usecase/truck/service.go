package truck

import (
	"context"
	"fmt"
	"time"

	"github.com/dkozyrev/foodway/internal/domain"
	"github.com/dkozyrev/foodway/internal/pkg/logger"
	"github.com/dkozyrev/foodway/internal/repository"
)

// CreateTruckRequest - запрос на создание грузовика
type CreateTruckRequest struct {
	Registration string `json:"Registration"`
	Capacity     int    `json:"Capacity"`
	Model        string `json:"Model"`
	Condition    int    `json:"Condition"`
}

// UpdateTruckRequest - частичное обновление грузовика. Repository пишет все
// колонки целиком, поэтому незаданные поля сервис дополняет из текущей строки.
type UpdateTruckRequest struct {
	Registration *string `json:"Registration,omitempty"`
	Capacity     *int    `json:"Capacity,omitempty"`
	Model        *string `json:"Model,omitempty"`
	Condition    *int    `json:"Condition,omitempty"`
}

// Service содержит бизнес-логику работы с грузовиками
type Service struct {
	truckRepo repository.TruckRepository
	logger    logger.Logger
}

// NewService создает новый экземпляр TruckService
func NewService(truckRepo repository.TruckRepository, logger logger.Logger) *Service {
	return &Service{
		truckRepo: truckRepo,
		logger:    logger,
	}
}

// CreateTruck создает новый грузовик
func (s *Service) CreateTruck(ctx context.Context, req *CreateTruckRequest) (*domain.Truck, error) {
	truck := &domain.Truck{
		Registration: req.Registration,
		Capacity:     req.Capacity,
		Model:        req.Model,
		Condition:    req.Condition,
	}

	if err := truck.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.truckRepo.Create(ctx, truck); err != nil {
		s.logger.Error("Failed to create truck", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("failed to create truck: %w", err)
	}

	s.logger.Info("Truck created successfully", map[string]interface{}{
		"truck_id":     truck.ID,
		"registration": truck.Registration,
	})

	return truck, nil
}

// GetAllTrucks возвращает все грузовики
func (s *Service) GetAllTrucks(ctx context.Context) ([]*domain.Truck, error) {
	return s.truckRepo.GetAll(ctx)
}

// GetTruckByID возвращает грузовик по id
func (s *Service) GetTruckByID(ctx context.Context, id int64) (*domain.Truck, error) {
	return s.truckRepo.GetByID(ctx, id)
}

// GetAvailableToday возвращает грузовики без маршрута на текущую дату
func (s *Service) GetAvailableToday(ctx context.Context) ([]*domain.Truck, error) {
	return s.truckRepo.GetAvailableOn(ctx, time.Now())
}

// UpdateTruck сливает частичный запрос с текущим состоянием и перезаписывает
// грузовик целиком
func (s *Service) UpdateTruck(ctx context.Context, id int64, req *UpdateTruckRequest) (*domain.Truck, error) {
	truck, err := s.truckRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Registration != nil {
		truck.Registration = *req.Registration
	}
	if req.Capacity != nil {
		truck.Capacity = *req.Capacity
	}
	if req.Model != nil {
		truck.Model = *req.Model
	}
	if req.Condition != nil {
		truck.Condition = *req.Condition
	}

	if err := truck.Validate(); err != nil {
		return nil, err
	}

	if err := s.truckRepo.Update(ctx, truck); err != nil {
		return nil, err
	}

	return truck, nil
}

// DeleteTruck удаляет грузовик. Без force удаление занятого грузовика
// завершается ErrTruckInUse; с force ссылающиеся маршруты каскадно
// удаляются первыми.
func (s *Service) DeleteTruck(ctx context.Context, id int64, force bool) error {
	// Существование проверяем до удаления, чтобы отличить 404 от 400
	if _, err := s.truckRepo.GetByID(ctx, id); err != nil {
		return err
	}

	removed, err := s.truckRepo.Delete(ctx, id, force)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrTruckNotFound
	}

	s.logger.Info("Truck deleted", map[string]interface{}{
		"truck_id": id,
		"force":    force,
	})

	return nil
}

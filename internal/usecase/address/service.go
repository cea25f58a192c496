package address

import (
	"context"
	"fmt"

	"github.com/dkozyrev/foodway/internal/domain"
	"github.com/dkozyrev/foodway/internal/pkg/logger"
	"github.com/dkozyrev/foodway/internal/repository"
)

// CreateAddressRequest - запрос на создание адреса
type CreateAddressRequest struct {
	Street     string `json:"Street"`
	City       string `json:"City"`
	State      string `json:"State"`
	PostalCode string `json:"Postal_Code"`
	Country    string `json:"Country"`
}

// Service содержит бизнес-логику работы с адресами
type Service struct {
	addressRepo repository.AddressRepository
	logger      logger.Logger
}

// NewService создает новый экземпляр AddressService
func NewService(addressRepo repository.AddressRepository, logger logger.Logger) *Service {
	return &Service{
		addressRepo: addressRepo,
		logger:      logger,
	}
}

// CreateAddress создает новый адрес
func (s *Service) CreateAddress(ctx context.Context, req *CreateAddressRequest) (*domain.Address, error) {
	address := &domain.Address{
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	}

	if err := address.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.addressRepo.Create(ctx, address); err != nil {
		s.logger.Error("Failed to create address", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("failed to create address: %w", err)
	}

	return address, nil
}

// GetAllAddresses возвращает все адреса
func (s *Service) GetAllAddresses(ctx context.Context) ([]*domain.Address, error) {
	return s.addressRepo.GetAll(ctx)
}

// GetAddressByID возвращает адрес по id
func (s *Service) GetAddressByID(ctx context.Context, id int64) (*domain.Address, error) {
	return s.addressRepo.GetByID(ctx, id)
}

// UpdateAddress обновляет адрес целиком
func (s *Service) UpdateAddress(ctx context.Context, id int64, req *CreateAddressRequest) (*domain.Address, error) {
	// Существование проверяем заранее, чтобы вернуть внятный 404
	if _, err := s.addressRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	address := &domain.Address{
		ID:         id,
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	}

	if err := address.Validate(); err != nil {
		return nil, err
	}

	if err := s.addressRepo.Update(ctx, address); err != nil {
		return nil, err
	}

	return address, nil
}

// DeleteAddress удаляет адрес
func (s *Service) DeleteAddress(ctx context.Context, id int64) error {
	removed, err := s.addressRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrAddressNotFound
	}
	return nil
}

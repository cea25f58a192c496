package donation

import (
	"context"
	"fmt"

	"github.com/dkozyrev/foodway/internal/domain"
	"github.com/dkozyrev/foodway/internal/pkg/logger"
	"github.com/dkozyrev/foodway/internal/repository"
)

// CreateDonationRequest - запрос на создание пожертвования
type CreateDonationRequest struct {
	UserID    int64       `json:"User_ID"`
	ProductID int64       `json:"Product_ID"`
	Quantity  int         `json:"Quantity"`
	Date      domain.Date `json:"Date"`
}

// UpdateDonationRequest - частичное обновление пожертвования
type UpdateDonationRequest struct {
	Quantity *int                   `json:"Quantity,omitempty"`
	Date     *domain.Date           `json:"Date,omitempty"`
	Status   *domain.DonationStatus `json:"Status,omitempty"`
}

// Service содержит бизнес-логику работы с пожертвованиями
type Service struct {
	donationRepo repository.DonationRepository
	productRepo  repository.ProductRepository
	logger       logger.Logger
}

// NewService создает новый экземпляр DonationService
func NewService(
	donationRepo repository.DonationRepository,
	productRepo repository.ProductRepository,
	logger logger.Logger,
) *Service {
	return &Service{
		donationRepo: donationRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// CreateDonation создает пожертвование со статусом pending
func (s *Service) CreateDonation(ctx context.Context, req *CreateDonationRequest) (int64, error) {
	donation := &domain.Donation{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Date:      req.Date,
		Status:    domain.DonationPending,
	}

	if err := donation.Validate(); err != nil {
		return 0, err
	}

	if _, err := s.productRepo.GetByID(ctx, donation.ProductID); err != nil {
		return 0, err
	}

	id, err := s.donationRepo.Create(ctx, donation)
	if err != nil {
		s.logger.Error("Failed to create donation", map[string]interface{}{
			"error": err.Error(),
		})
		return 0, fmt.Errorf("failed to create donation: %w", err)
	}

	return id, nil
}

// GetAllDonations возвращает все пожертвования
func (s *Service) GetAllDonations(ctx context.Context) ([]*domain.Donation, error) {
	return s.donationRepo.GetAll(ctx)
}

// GetDonationByID возвращает пожертвование по id
func (s *Service) GetDonationByID(ctx context.Context, id int64) (*domain.Donation, error) {
	return s.donationRepo.GetByID(ctx, id)
}

// GetDonationsByUser возвращает пожертвования пользователя
func (s *Service) GetDonationsByUser(ctx context.Context, userID int64) ([]*domain.Donation, error) {
	return s.donationRepo.GetByUser(ctx, userID)
}

// UpdateDonation сливает частичный запрос с текущим состоянием
func (s *Service) UpdateDonation(ctx context.Context, id int64, req *UpdateDonationRequest) (*domain.Donation, error) {
	donation, err := s.donationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Quantity != nil {
		donation.Quantity = *req.Quantity
	}
	if req.Date != nil {
		donation.Date = *req.Date
	}
	if req.Status != nil {
		donation.Status = *req.Status
	}

	if err := donation.Validate(); err != nil {
		return nil, err
	}

	if err := s.donationRepo.Update(ctx, donation); err != nil {
		return nil, err
	}

	return donation, nil
}

// DeleteDonation удаляет пожертвование
func (s *Service) DeleteDonation(ctx context.Context, id int64) error {
	removed, err := s.donationRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrDonationNotFound
	}
	return nil
}

package request

import (
	"context"
	"fmt"

	"github.com/dkozyrev/foodway/internal/domain"
	"github.com/dkozyrev/foodway/internal/pkg/logger"
	"github.com/dkozyrev/foodway/internal/repository"
)

// CreateRequestRequest - запрос на создание заявки
type CreateRequestRequest struct {
	UserID    int64       `json:"User_ID"`
	ProductID int64       `json:"Product_ID"`
	Quantity  int         `json:"Quantity"`
	Date      domain.Date `json:"Date"`
}

// UpdateRequestRequest - частичное обновление заявки
type UpdateRequestRequest struct {
	Quantity *int                  `json:"Quantity,omitempty"`
	Date     *domain.Date          `json:"Date,omitempty"`
	Status   *domain.RequestStatus `json:"Status,omitempty"`
}

// Service содержит бизнес-логику работы с заявками на продукты
type Service struct {
	requestRepo repository.RequestRepository
	productRepo repository.ProductRepository
	logger      logger.Logger
}

// NewService создает новый экземпляр RequestService
func NewService(
	requestRepo repository.RequestRepository,
	productRepo repository.ProductRepository,
	logger logger.Logger,
) *Service {
	return &Service{
		requestRepo: requestRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// CreateRequest создает заявку со статусом pending
func (s *Service) CreateRequest(ctx context.Context, req *CreateRequestRequest) (int64, error) {
	request := &domain.Request{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Date:      req.Date,
		Status:    domain.RequestPending,
	}

	if err := request.Validate(); err != nil {
		return 0, err
	}

	if _, err := s.productRepo.GetByID(ctx, request.ProductID); err != nil {
		return 0, err
	}

	id, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		s.logger.Error("Failed to create request", map[string]interface{}{
			"error": err.Error(),
		})
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	return id, nil
}

// GetAllRequests возвращает все заявки
func (s *Service) GetAllRequests(ctx context.Context) ([]*domain.Request, error) {
	return s.requestRepo.GetAll(ctx)
}

// GetRequestByID возвращает заявку по id
func (s *Service) GetRequestByID(ctx context.Context, id int64) (*domain.Request, error) {
	return s.requestRepo.GetByID(ctx, id)
}

// GetRequestsByUser возвращает заявки пользователя
func (s *Service) GetRequestsByUser(ctx context.Context, userID int64) ([]*domain.Request, error) {
	return s.requestRepo.GetByUser(ctx, userID)
}

// UpdateRequest сливает частичный запрос с текущим состоянием
func (s *Service) UpdateRequest(ctx context.Context, id int64, req *UpdateRequestRequest) (*domain.Request, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Quantity != nil {
		request.Quantity = *req.Quantity
	}
	if req.Date != nil {
		request.Date = *req.Date
	}
	if req.Status != nil {
		request.Status = *req.Status
	}

	if err := request.Validate(); err != nil {
		return nil, err
	}

	if err := s.requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	return request, nil
}

// DeleteRequest удаляет заявку
func (s *Service) DeleteRequest(ctx context.Context, id int64) error {
	removed, err := s.requestRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrRequestNotFound
	}
	return nil
}

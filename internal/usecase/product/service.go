package product

import (
	"context"
	"fmt"

	"github.com/dkozyrev/foodway/internal/domain"
	"github.com/dkozyrev/foodway/internal/pkg/logger"
	"github.com/dkozyrev/foodway/internal/repository"
)

// CreateProductRequest - запрос на создание продукта
type CreateProductRequest struct {
	Name       string `json:"Name"`
	CategoryID int64  `json:"Category_ID"`
}

// Service содержит бизнес-логику работы с каталогом продуктов
type Service struct {
	productRepo repository.ProductRepository
	logger      logger.Logger
}

// NewService создает новый экземпляр ProductService
func NewService(productRepo repository.ProductRepository, logger logger.Logger) *Service {
	return &Service{
		productRepo: productRepo,
		logger:      logger,
	}
}

// CreateProduct создает новый продукт
func (s *Service) CreateProduct(ctx context.Context, req *CreateProductRequest) (*domain.Product, error) {
	product := &domain.Product{
		Name:       req.Name,
		CategoryID: req.CategoryID,
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error("Failed to create product", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// GetAllProducts возвращает весь каталог
func (s *Service) GetAllProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.productRepo.GetAll(ctx)
}

// GetProductByID возвращает продукт по id
func (s *Service) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

// UpdateProduct обновляет продукт целиком
func (s *Service) UpdateProduct(ctx context.Context, id int64, req *CreateProductRequest) (*domain.Product, error) {
	if _, err := s.productRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	product := &domain.Product{
		ID:         id,
		Name:       req.Name,
		CategoryID: req.CategoryID,
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct удаляет продукт
func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	removed, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrProductNotFound
	}
	return nil
}

// GetCategories возвращает список категорий
func (s *Service) GetCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.productRepo.GetCategories(ctx)
}

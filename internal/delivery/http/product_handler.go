package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dkozyrev/foodway/internal/domain"
	"github.com/dkozyrev/foodway/internal/pkg/logger"
	"github.com/dkozyrev/foodway/internal/usecase/product"
)

// ProductService определяет интерфейс для сервиса каталога продуктов
type ProductService interface {
	CreateProduct(ctx context.Context, req *product.CreateProductRequest) (*domain.Product, error)
	GetAllProducts(ctx context.Context) ([]*domain.Product, error)
	GetProductByID(ctx context.Context, id int64) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, req *product.CreateProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	GetCategories(ctx context.Context) ([]*domain.Category, error)
}

// ProductHandler обрабатывает запросы к каталогу продуктов
type ProductHandler struct {
	productService ProductService
	logger         logger.Logger
}

// NewProductHandler создает новый handler
func NewProductHandler(productService ProductService, logger logger.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// GetProducts возвращает весь каталог
// GET /products
func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.GetAllProducts(r.Context())
	if err != nil {
		h.logger.Error("Failed to get products", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get products")
		return
	}

	respondJSON(w, http.StatusOK, products)
}

// GetCategories возвращает список категорий
// GET /products/categories
func (h *ProductHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.productService.GetCategories(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to get categories")
		return
	}

	respondJSON(w, http.StatusOK, categories)
}

// GetProductByID возвращает продукт по ID
// GET /products/{id}
func (h *ProductHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	p, err := h.productService.GetProductByID(r.Context(), id)
	if err != nil {
		respondDomainError(w, err, "Failed to get product")
		return
	}

	respondJSON(w, http.StatusOK, p)
}

// CreateProduct создает новый продукт
// POST /products (только admin)
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req product.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := h.productService.CreateProduct(r.Context(), &req)
	if err != nil {
		respondDomainError(w, err, "Failed to create product")
		return
	}

	respondJSON(w, http.StatusCreated, p)
}

// UpdateProduct обновляет продукт
// PUT /products/{id} (только admin)
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req product.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := h.productService.UpdateProduct(r.Context(), id, &req)
	if err != nil {
		respondDomainError(w, err, "Failed to update product")
		return
	}

	respondJSON(w, http.StatusOK, p)
}

// DeleteProduct удаляет продукт
// DELETE /products/{id} (только admin)
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
		respondDomainError(w, err, "Failed to delete product")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

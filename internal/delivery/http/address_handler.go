package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dkozyrev/foodway/internal/domain"
	"github.com/dkozyrev/foodway/internal/pkg/logger"
	"github.com/dkozyrev/foodway/internal/usecase/address"
)

// AddressService определяет интерфейс для сервиса адресов
type AddressService interface {
	CreateAddress(ctx context.Context, req *address.CreateAddressRequest) (*domain.Address, error)
	GetAllAddresses(ctx context.Context) ([]*domain.Address, error)
	GetAddressByID(ctx context.Context, id int64) (*domain.Address, error)
	UpdateAddress(ctx context.Context, id int64, req *address.CreateAddressRequest) (*domain.Address, error)
	DeleteAddress(ctx context.Context, id int64) error
}

// AddressHandler обрабатывает запросы связанные с адресами
type AddressHandler struct {
	addressService AddressService
	logger         logger.Logger
}

// NewAddressHandler создает новый handler
func NewAddressHandler(addressService AddressService, logger logger.Logger) *AddressHandler {
	return &AddressHandler{
		addressService: addressService,
		logger:         logger,
	}
}

// GetAddresses возвращает все адреса
// GET /addresses
func (h *AddressHandler) GetAddresses(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.addressService.GetAllAddresses(r.Context())
	if err != nil {
		h.logger.Error("Failed to get addresses", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get addresses")
		return
	}

	respondJSON(w, http.StatusOK, addresses)
}

// GetAddressByID возвращает адрес по ID
// GET /addresses/{id}
func (h *AddressHandler) GetAddressByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid address ID")
		return
	}

	a, err := h.addressService.GetAddressByID(r.Context(), id)
	if err != nil {
		respondDomainError(w, err, "Failed to get address")
		return
	}

	respondJSON(w, http.StatusOK, a)
}

// CreateAddress создает новый адрес
// POST /addresses
func (h *AddressHandler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	var req address.CreateAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	a, err := h.addressService.CreateAddress(r.Context(), &req)
	if err != nil {
		respondDomainError(w, err, "Failed to create address")
		return
	}

	respondJSON(w, http.StatusCreated, a)
}

// UpdateAddress обновляет адрес
// PUT /addresses/{id}
func (h *AddressHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid address ID")
		return
	}

	var req address.CreateAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	a, err := h.addressService.UpdateAddress(r.Context(), id, &req)
	if err != nil {
		respondDomainError(w, err, "Failed to update address")
		return
	}

	respondJSON(w, http.StatusOK, a)
}

// DeleteAddress удаляет адрес
// DELETE /addresses/{id} (только admin)
func (h *AddressHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid address ID")
		return
	}

	if err := h.addressService.DeleteAddress(r.Context(), id); err != nil {
		respondDomainError(w, err, "Failed to delete address")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dkozyrev/foodway/internal/domain"
	"github.com/dkozyrev/foodway/internal/pkg/logger"
	"github.com/dkozyrev/foodway/internal/usecase/truck"
)

// TruckService определяет интерфейс для сервиса грузовиков
type TruckService interface {
	CreateTruck(ctx context.Context, req *truck.CreateTruckRequest) (*domain.Truck, error)
	GetAllTrucks(ctx context.Context) ([]*domain.Truck, error)
	GetTruckByID(ctx context.Context, id int64) (*domain.Truck, error)
	GetAvailableToday(ctx context.Context) ([]*domain.Truck, error)
	UpdateTruck(ctx context.Context, id int64, req *truck.UpdateTruckRequest) (*domain.Truck, error)
	DeleteTruck(ctx context.Context, id int64, force bool) error
}

// TruckHandler обрабатывает запросы связанные с грузовиками
type TruckHandler struct {
	truckService TruckService
	logger       logger.Logger
}

// NewTruckHandler создает новый handler
func NewTruckHandler(truckService TruckService, logger logger.Logger) *TruckHandler {
	return &TruckHandler{
		truckService: truckService,
		logger:       logger,
	}
}

// GetTrucks возвращает все грузовики
// GET /trucks
func (h *TruckHandler) GetTrucks(w http.ResponseWriter, r *http.Request) {
	trucks, err := h.truckService.GetAllTrucks(r.Context())
	if err != nil {
		h.logger.Error("Failed to get trucks", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get trucks")
		return
	}

	respondJSON(w, http.StatusOK, trucks)
}

// GetAvailableToday возвращает грузовики без маршрута на сегодня.
// Пустой массив, если свободных нет.
// GET /trucks/availableToday
func (h *TruckHandler) GetAvailableToday(w http.ResponseWriter, r *http.Request) {
	trucks, err := h.truckService.GetAvailableToday(r.Context())
	if err != nil {
		h.logger.Error("Failed to get available trucks", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get available trucks")
		return
	}

	respondJSON(w, http.StatusOK, trucks)
}

// GetTruckByID возвращает грузовик по ID
// GET /trucks/{id}
func (h *TruckHandler) GetTruckByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid truck ID")
		return
	}

	t, err := h.truckService.GetTruckByID(r.Context(), id)
	if err != nil {
		if domain.IsNotFound(err) {
			respondError(w, http.StatusNotFound, "Truck not found")
			return
		}
		h.logger.Error("Failed to get truck", map[string]interface{}{
			"truck_id": id,
			"error":    err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get truck")
		return
	}

	respondJSON(w, http.StatusOK, t)
}

// CreateTruck создает новый грузовик
// POST /trucks
func (h *TruckHandler) CreateTruck(w http.ResponseWriter, r *http.Request) {
	var req truck.CreateTruckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	t, err := h.truckService.CreateTruck(r.Context(), &req)
	if err != nil {
		respondDomainError(w, err, "Failed to create truck")
		return
	}

	respondJSON(w, http.StatusCreated, t)
}

// UpdateTruck обновляет грузовик (частичные поля сливаются с текущими)
// PUT /trucks/{id}
func (h *TruckHandler) UpdateTruck(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid truck ID")
		return
	}

	var req truck.UpdateTruckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	t, err := h.truckService.UpdateTruck(r.Context(), id, &req)
	if err != nil {
		respondDomainError(w, err, "Failed to update truck")
		return
	}

	respondJSON(w, http.StatusOK, t)
}

// DeleteTruck удаляет грузовик; ?force=true каскадно удаляет ссылающиеся
// маршруты. Без force занятый грузовик дает 400 с упоминанием его id.
// DELETE /trucks/{id}?force=true|false (только admin)
func (h *TruckHandler) DeleteTruck(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid truck ID")
		return
	}

	force := r.URL.Query().Get("force") == "true"

	if err := h.truckService.DeleteTruck(r.Context(), id, force); err != nil {
		respondDomainError(w, err, "Failed to delete truck")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dkozyrev/foodway/internal/domain"
	"github.com/dkozyrev/foodway/internal/pkg/logger"
	"github.com/dkozyrev/foodway/internal/usecase/request"
)

// RequestService определяет интерфейс для сервиса заявок
type RequestService interface {
	CreateRequest(ctx context.Context, req *request.CreateRequestRequest) (int64, error)
	GetAllRequests(ctx context.Context) ([]*domain.Request, error)
	GetRequestByID(ctx context.Context, id int64) (*domain.Request, error)
	GetRequestsByUser(ctx context.Context, userID int64) ([]*domain.Request, error)
	UpdateRequest(ctx context.Context, id int64, req *request.UpdateRequestRequest) (*domain.Request, error)
	DeleteRequest(ctx context.Context, id int64) error
}

// RequestHandler обрабатывает запросы связанные с заявками на продукты
type RequestHandler struct {
	requestService RequestService
	logger         logger.Logger
}

// NewRequestHandler создает новый handler
func NewRequestHandler(requestService RequestService, logger logger.Logger) *RequestHandler {
	return &RequestHandler{
		requestService: requestService,
		logger:         logger,
	}
}

// GetRequests возвращает все заявки
// GET /requests
func (h *RequestHandler) GetRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requestService.GetAllRequests(r.Context())
	if err != nil {
		h.logger.Error("Failed to get requests", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get requests")
		return
	}

	respondJSON(w, http.StatusOK, requests)
}

// GetRequestByID возвращает заявку по ID
// GET /requests/{id}
func (h *RequestHandler) GetRequestByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	rq, err := h.requestService.GetRequestByID(r.Context(), id)
	if err != nil {
		respondDomainError(w, err, "Failed to get request")
		return
	}

	respondJSON(w, http.StatusOK, rq)
}

// GetMyRequests возвращает заявки текущего пользователя
// GET /requests/me
func (h *RequestHandler) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	claims, ok := getClaims(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	requests, err := h.requestService.GetRequestsByUser(r.Context(), claims.UserID)
	if err != nil {
		respondDomainError(w, err, "Failed to get requests")
		return
	}

	respondJSON(w, http.StatusOK, requests)
}

// CreateRequest создает новую заявку
// POST /requests
func (h *RequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Не-админ подает заявки только от своего имени
	if claims, ok := getClaims(r); ok && claims.Role != domain.RoleAdmin {
		req.UserID = claims.UserID
	}

	id, err := h.requestService.CreateRequest(r.Context(), &req)
	if err != nil {
		respondDomainError(w, err, "Failed to create request")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]int64{
		"requestId": id,
	})
}

// UpdateRequest обновляет заявку
// PUT /requests/{id}
func (h *RequestHandler) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	var req request.UpdateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rq, err := h.requestService.UpdateRequest(r.Context(), id, &req)
	if err != nil {
		respondDomainError(w, err, "Failed to update request")
		return
	}

	respondJSON(w, http.StatusOK, rq)
}

// DeleteRequest удаляет заявку
// DELETE /requests/{id} (только admin)
func (h *RequestHandler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	if err := h.requestService.DeleteRequest(r.Context(), id); err != nil {
		respondDomainError(w, err, "Failed to delete request")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dkozyrev/foodway/internal/domain"
	"github.com/dkozyrev/foodway/internal/pkg/logger"
	"github.com/dkozyrev/foodway/internal/usecase/donation"
)

// DonationService определяет интерфейс для сервиса пожертвований
type DonationService interface {
	CreateDonation(ctx context.Context, req *donation.CreateDonationRequest) (int64, error)
	GetAllDonations(ctx context.Context) ([]*domain.Donation, error)
	GetDonationByID(ctx context.Context, id int64) (*domain.Donation, error)
	GetDonationsByUser(ctx context.Context, userID int64) ([]*domain.Donation, error)
	UpdateDonation(ctx context.Context, id int64, req *donation.UpdateDonationRequest) (*domain.Donation, error)
	DeleteDonation(ctx context.Context, id int64) error
}

// DonationHandler обрабатывает запросы связанные с пожертвованиями
type DonationHandler struct {
	donationService DonationService
	logger          logger.Logger
}

// NewDonationHandler создает новый handler
func NewDonationHandler(donationService DonationService, logger logger.Logger) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
		logger:          logger,
	}
}

// GetDonations возвращает все пожертвования
// GET /donations
func (h *DonationHandler) GetDonations(w http.ResponseWriter, r *http.Request) {
	donations, err := h.donationService.GetAllDonations(r.Context())
	if err != nil {
		h.logger.Error("Failed to get donations", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get donations")
		return
	}

	respondJSON(w, http.StatusOK, donations)
}

// GetDonationByID возвращает пожертвование по ID
// GET /donations/{id}
func (h *DonationHandler) GetDonationByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid donation ID")
		return
	}

	d, err := h.donationService.GetDonationByID(r.Context(), id)
	if err != nil {
		respondDomainError(w, err, "Failed to get donation")
		return
	}

	respondJSON(w, http.StatusOK, d)
}

// GetMyDonations возвращает пожертвования текущего пользователя
// GET /donations/me
func (h *DonationHandler) GetMyDonations(w http.ResponseWriter, r *http.Request) {
	claims, ok := getClaims(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	donations, err := h.donationService.GetDonationsByUser(r.Context(), claims.UserID)
	if err != nil {
		respondDomainError(w, err, "Failed to get donations")
		return
	}

	respondJSON(w, http.StatusOK, donations)
}

// CreateDonation создает новое пожертвование
// POST /donations
func (h *DonationHandler) CreateDonation(w http.ResponseWriter, r *http.Request) {
	var req donation.CreateDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Не-админ может жертвовать только от своего имени
	if claims, ok := getClaims(r); ok && claims.Role != domain.RoleAdmin {
		req.UserID = claims.UserID
	}

	id, err := h.donationService.CreateDonation(r.Context(), &req)
	if err != nil {
		respondDomainError(w, err, "Failed to create donation")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]int64{
		"donationId": id,
	})
}

// UpdateDonation обновляет пожертвование
// PUT /donations/{id}
func (h *DonationHandler) UpdateDonation(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid donation ID")
		return
	}

	var req donation.UpdateDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	d, err := h.donationService.UpdateDonation(r.Context(), id, &req)
	if err != nil {
		respondDomainError(w, err, "Failed to update donation")
		return
	}

	respondJSON(w, http.StatusOK, d)
}

// DeleteDonation удаляет пожертвование
// DELETE /donations/{id} (только admin)
func (h *DonationHandler) DeleteDonation(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid donation ID")
		return
	}

	if err := h.donationService.DeleteDonation(r.Context(), id); err != nil {
		respondDomainError(w, err, "Failed to delete donation")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

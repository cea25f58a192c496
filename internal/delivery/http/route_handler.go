package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dkozyrev/foodway/internal/domain"
	"github.com/dkozyrev/foodway/internal/pkg/logger"
	"github.com/dkozyrev/foodway/internal/usecase/route"
)

// RouteService определяет интерфейс для сервиса маршрутов
type RouteService interface {
	CreateRoute(ctx context.Context, req *route.CreateRouteRequest) (int64, error)
	GetRouteByID(ctx context.Context, id int64) (*domain.Route, error)
	GetAllRoutes(ctx context.Context) ([]*domain.Route, error)
	GetRoutesByDriver(ctx context.Context, driverID int64) ([]*domain.Route, error)
	UpdateRoute(ctx context.Context, id int64, req *route.UpdateRouteRequest) (*domain.Route, error)
	DeleteRoute(ctx context.Context, id int64) error
	AddDestination(ctx context.Context, routeID int64, req *route.DestinationRequest) (int64, error)
	RemoveDestination(ctx context.Context, routeID, destinationID int64) error
	AddProduct(ctx context.Context, destinationID int64, req *route.ProductLineRequest) (int64, error)
	RemoveProduct(ctx context.Context, destinationID, productID int64) error
}

// RouteHandler обрабатывает запросы к агрегату маршрута (туры, пункты, позиции)
type RouteHandler struct {
	routeService RouteService
	logger       logger.Logger
}

// NewRouteHandler создает новый handler
func NewRouteHandler(routeService RouteService, logger logger.Logger) *RouteHandler {
	return &RouteHandler{
		routeService: routeService,
		logger:       logger,
	}
}

// GetRoutes возвращает все маршруты
// GET /tours
func (h *RouteHandler) GetRoutes(w http.ResponseWriter, r *http.Request) {
	routes, err := h.routeService.GetAllRoutes(r.Context())
	if err != nil {
		h.logger.Error("Failed to get routes", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get routes")
		return
	}

	respondJSON(w, http.StatusOK, routes)
}

// GetRouteByID возвращает маршрут с деревом пунктов и позиций
// GET /tours/{id}
func (h *RouteHandler) GetRouteByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid route ID")
		return
	}

	rt, err := h.routeService.GetRouteByID(r.Context(), id)
	if err != nil {
		if domain.IsNotFound(err) {
			respondError(w, http.StatusNotFound, "Route not found")
			return
		}
		h.logger.Error("Failed to get route", map[string]interface{}{
			"route_id": id,
			"error":    err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get route")
		return
	}

	respondJSON(w, http.StatusOK, rt)
}

// GetRoutesByDriver возвращает маршруты, закрепленные за водителем
// GET /tours/driver/{id}
func (h *RouteHandler) GetRoutesByDriver(w http.ResponseWriter, r *http.Request) {
	driverID, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid driver ID")
		return
	}

	routes, err := h.routeService.GetRoutesByDriver(r.Context(), driverID)
	if err != nil {
		h.logger.Error("Failed to get driver routes", map[string]interface{}{
			"driver_id": driverID,
			"error":     err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get routes")
		return
	}

	respondJSON(w, http.StatusOK, routes)
}

// CreateRoute создает маршрут со всем деревом пунктов в одной транзакции
// POST /tours
func (h *RouteHandler) CreateRoute(w http.ResponseWriter, r *http.Request) {
	var req route.CreateRouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.routeService.CreateRoute(r.Context(), &req)
	if err != nil {
		respondDomainError(w, err, "Failed to create route")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]int64{
		"routeId": id,
	})
}

// UpdateRoute обновляет скалярные поля маршрута
// PUT /tours/{id}
func (h *RouteHandler) UpdateRoute(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid route ID")
		return
	}

	var req route.UpdateRouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rt, err := h.routeService.UpdateRoute(r.Context(), id, &req)
	if err != nil {
		respondDomainError(w, err, "Failed to update route")
		return
	}

	respondJSON(w, http.StatusOK, rt)
}

// DeleteRoute удаляет маршрут каскадом
// DELETE /tours/{id} (только admin)
func (h *RouteHandler) DeleteRoute(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid route ID")
		return
	}

	if err := h.routeService.DeleteRoute(r.Context(), id); err != nil {
		respondDomainError(w, err, "Failed to delete route")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddDestination добавляет пункт к существующему маршруту
// POST /tours/{id}/destinations
func (h *RouteHandler) AddDestination(w http.ResponseWriter, r *http.Request) {
	routeID, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid route ID")
		return
	}

	var req route.DestinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.routeService.AddDestination(r.Context(), routeID, &req)
	if err != nil {
		respondDomainError(w, err, "Failed to add destination")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]int64{
		"destinationId": id,
	})
}

// RemoveDestination удаляет пункт маршрута вместе с позициями
// DELETE /tours/{id}/destinations/{destinationId} (только admin)
func (h *RouteHandler) RemoveDestination(w http.ResponseWriter, r *http.Request) {
	routeID, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid route ID")
		return
	}
	destinationID, err := parseIDParam(r, "destinationId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid destination ID")
		return
	}

	if err := h.routeService.RemoveDestination(r.Context(), routeID, destinationID); err != nil {
		respondDomainError(w, err, "Failed to remove destination")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddProduct добавляет продуктовую позицию к пункту маршрута
// POST /destinations/{id}/products
func (h *RouteHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	destinationID, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid destination ID")
		return
	}

	var req route.ProductLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.routeService.AddProduct(r.Context(), destinationID, &req)
	if err != nil {
		respondDomainError(w, err, "Failed to add product")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]int64{
		"id": id,
	})
}

// RemoveProduct удаляет продуктовую позицию из пункта маршрута
// DELETE /destinations/{id}/products/{productId} (только admin)
func (h *RouteHandler) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	destinationID, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid destination ID")
		return
	}
	productID, err := parseIDParam(r, "productId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := h.routeService.RemoveProduct(r.Context(), destinationID, productID); err != nil {
		respondDomainError(w, err, "Failed to remove product")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

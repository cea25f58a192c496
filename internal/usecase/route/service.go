package route

import (
	"context"
	"fmt"

	"github.com/dkozyrev/foodway/internal/domain"
	"github.com/dkozyrev/foodway/internal/pkg/logger"
	"github.com/dkozyrev/foodway/internal/repository"
)

// ProductLineRequest - одна позиция "продукт + количество"
type ProductLineRequest struct {
	ProductID int64 `json:"Product_ID"`
	Quantity  int   `json:"Quantity"`
}

// DestinationRequest - пункт маршрута в запросе на создание
type DestinationRequest struct {
	AddressID int64                `json:"Address_ID"`
	Products  []ProductLineRequest `json:"Products"`
}

// CreateRouteRequest - запрос на создание маршрута со всем деревом пунктов
type CreateRouteRequest struct {
	Date         domain.Date          `json:"Date"`
	DriverID     *int64               `json:"User_ID,omitempty"`
	TruckID      int64                `json:"Truck_ID"`
	Collection   bool                 `json:"Type"`
	Destinations []DestinationRequest `json:"Destinations"`
}

// UpdateRouteRequest - частичное обновление скалярных полей маршрута.
// Пункты назначения этим запросом не меняются.
type UpdateRouteRequest struct {
	Date       *domain.Date `json:"Date,omitempty"`
	DriverID   *int64       `json:"User_ID,omitempty"`
	TruckID    *int64       `json:"Truck_ID,omitempty"`
	Collection *bool        `json:"Type,omitempty"`
}

// Empty сообщает, что в запросе нет ни одного обновляемого поля
func (r *UpdateRouteRequest) Empty() bool {
	return r.Date == nil && r.DriverID == nil && r.TruckID == nil && r.Collection == nil
}

// Service содержит бизнес-логику работы с агрегатом маршрута
type Service struct {
	routeRepo repository.RouteRepository
	truckRepo repository.TruckRepository
	userRepo  repository.UserRepository
	logger    logger.Logger
}

// NewService создает новый экземпляр RouteService
func NewService(
	routeRepo repository.RouteRepository,
	truckRepo repository.TruckRepository,
	userRepo repository.UserRepository,
	logger logger.Logger,
) *Service {
	return &Service{
		routeRepo: routeRepo,
		truckRepo: truckRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// CreateRoute создает маршрут вместе с пунктами и позициями и возвращает его id
func (s *Service) CreateRoute(ctx context.Context, req *CreateRouteRequest) (int64, error) {
	s.logger.Info("Creating new route", map[string]interface{}{
		"date":         req.Date.Format(domain.DateLayout),
		"truck_id":     req.TruckID,
		"destinations": len(req.Destinations),
	})

	route := &domain.Route{
		Date:       req.Date,
		DriverID:   req.DriverID,
		TruckID:    req.TruckID,
		Collection: req.Collection,
	}
	for _, d := range req.Destinations {
		dest := &domain.Destination{AddressID: d.AddressID}
		for _, line := range d.Products {
			dest.Products = append(dest.Products, &domain.DestinationProduct{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
			})
		}
		route.Destinations = append(route.Destinations, dest)
	}

	// Валидация всего дерева, включая положительность количества
	if err := route.Validate(); err != nil {
		return 0, err
	}

	// Грузовик и водитель должны существовать до записи
	if _, err := s.truckRepo.GetByID(ctx, route.TruckID); err != nil {
		return 0, err
	}
	if route.DriverID != nil {
		if _, err := s.userRepo.GetByID(ctx, *route.DriverID); err != nil {
			return 0, err
		}
	}

	id, err := s.routeRepo.Create(ctx, route)
	if err != nil {
		s.logger.Error("Failed to create route", map[string]interface{}{
			"error": err.Error(),
		})
		return 0, fmt.Errorf("failed to create route: %w", err)
	}

	s.logger.Info("Route created successfully", map[string]interface{}{
		"route_id": id,
	})

	return id, nil
}

// GetRouteByID возвращает маршрут с вложенным деревом пунктов
func (s *Service) GetRouteByID(ctx context.Context, id int64) (*domain.Route, error) {
	route, err := s.routeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, domain.ErrRouteNotFound
	}
	return route, nil
}

// GetAllRoutes возвращает все маршруты
func (s *Service) GetAllRoutes(ctx context.Context) ([]*domain.Route, error) {
	return s.routeRepo.GetAll(ctx)
}

// GetRoutesByDriver возвращает маршруты, закрепленные за водителем
func (s *Service) GetRoutesByDriver(ctx context.Context, driverID int64) ([]*domain.Route, error) {
	return s.routeRepo.GetAllByDriver(ctx, driverID)
}

// UpdateRoute обновляет скалярные поля маршрута и возвращает его актуальное
// состояние. Запрос без единого обновляемого поля - намеренный no-op:
// маршрут возвращается как есть, с признаком успеха.
func (s *Service) UpdateRoute(ctx context.Context, id int64, req *UpdateRouteRequest) (*domain.Route, error) {
	existing, err := s.GetRouteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Empty() {
		return existing, nil
	}

	if req.TruckID != nil {
		if _, err := s.truckRepo.GetByID(ctx, *req.TruckID); err != nil {
			return nil, err
		}
	}
	if req.DriverID != nil {
		if _, err := s.userRepo.GetByID(ctx, *req.DriverID); err != nil {
			return nil, err
		}
	}

	params := &repository.UpdateRouteParams{
		Date:       req.Date,
		DriverID:   req.DriverID,
		TruckID:    req.TruckID,
		Collection: req.Collection,
	}
	if err := s.routeRepo.Update(ctx, id, params); err != nil {
		return nil, err
	}

	return s.GetRouteByID(ctx, id)
}

// DeleteRoute удаляет маршрут каскадом
func (s *Service) DeleteRoute(ctx context.Context, id int64) error {
	removed, err := s.routeRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrRouteNotFound
	}

	s.logger.Info("Route deleted", map[string]interface{}{
		"route_id": id,
	})

	return nil
}

// AddDestination добавляет пункт к маршруту и возвращает id нового пункта
func (s *Service) AddDestination(ctx context.Context, routeID int64, req *DestinationRequest) (int64, error) {
	dest := &domain.Destination{AddressID: req.AddressID}
	for _, line := range req.Products {
		dest.Products = append(dest.Products, &domain.DestinationProduct{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	if err := dest.Validate(); err != nil {
		return 0, err
	}

	return s.routeRepo.AddDestination(ctx, routeID, dest)
}

// RemoveDestination удаляет пункт маршрута вместе с его позициями
func (s *Service) RemoveDestination(ctx context.Context, routeID, destinationID int64) error {
	return s.routeRepo.RemoveDestination(ctx, routeID, destinationID)
}

// AddProduct добавляет продуктовую позицию к пункту маршрута
func (s *Service) AddProduct(ctx context.Context, destinationID int64, req *ProductLineRequest) (int64, error) {
	line := &domain.DestinationProduct{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}

	if err := line.Validate(); err != nil {
		return 0, err
	}

	return s.routeRepo.AddProduct(ctx, destinationID, line)
}

// RemoveProduct удаляет продуктовую позицию из пункта маршрута
func (s *Service) RemoveProduct(ctx context.Context, destinationID, productID int64) error {
	removed, err := s.routeRepo.RemoveProduct(ctx, destinationID, productID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrProductLineNotFound
	}
	return nil
}

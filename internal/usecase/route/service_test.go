package route

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dkozyrev/foodway/internal/domain"
	"github.com/dkozyrev/foodway/internal/pkg/logger"
	"github.com/dkozyrev/foodway/internal/repository"
)

// MockRouteRepository - мок для route repository
type MockRouteRepository struct {
	mock.Mock
}

func (m *MockRouteRepository) Create(ctx context.Context, route *domain.Route) (int64, error) {
	args := m.Called(ctx, route)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRouteRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockRouteRepository) GetAll(ctx context.Context) ([]*domain.Route, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.Route), args.Error(1)
}

func (m *MockRouteRepository) GetAllByDriver(ctx context.Context, driverID int64) ([]*domain.Route, error) {
	args := m.Called(ctx, driverID)
	return args.Get(0).([]*domain.Route), args.Error(1)
}

func (m *MockRouteRepository) Update(ctx context.Context, id int64, params *repository.UpdateRouteParams) error {
	args := m.Called(ctx, id, params)
	return args.Error(0)
}

func (m *MockRouteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRouteRepository) AddDestination(ctx context.Context, routeID int64, dest *domain.Destination) (int64, error) {
	args := m.Called(ctx, routeID, dest)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRouteRepository) RemoveDestination(ctx context.Context, routeID, destinationID int64) error {
	args := m.Called(ctx, routeID, destinationID)
	return args.Error(0)
}

func (m *MockRouteRepository) AddProduct(ctx context.Context, destinationID int64, line *domain.DestinationProduct) (int64, error) {
	args := m.Called(ctx, destinationID, line)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRouteRepository) RemoveProduct(ctx context.Context, destinationID, productID int64) (bool, error) {
	args := m.Called(ctx, destinationID, productID)
	return args.Bool(0), args.Error(1)
}

// MockTruckRepository - мок для truck repository
type MockTruckRepository struct {
	mock.Mock
}

func (m *MockTruckRepository) Create(ctx context.Context, truck *domain.Truck) (int64, error) {
	args := m.Called(ctx, truck)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTruckRepository) GetAll(ctx context.Context) ([]*domain.Truck, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.Truck), args.Error(1)
}

func (m *MockTruckRepository) GetByID(ctx context.Context, id int64) (*domain.Truck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Truck), args.Error(1)
}

func (m *MockTruckRepository) GetAvailableOn(ctx context.Context, date time.Time) ([]*domain.Truck, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]*domain.Truck), args.Error(1)
}

func (m *MockTruckRepository) Update(ctx context.Context, truck *domain.Truck) error {
	args := m.Called(ctx, truck)
	return args.Error(0)
}

func (m *MockTruckRepository) Delete(ctx context.Context, id int64, force bool) (bool, error) {
	args := m.Called(ctx, id, force)
	return args.Bool(0), args.Error(1)
}

// MockUserRepository - мок для user repository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testDate(t *testing.T, s string) domain.Date {
	t.Helper()
	parsed, err := time.Parse(domain.DateLayout, s)
	assert.NoError(t, err)
	return domain.Date{Time: parsed}
}

func newTestService() (*Service, *MockRouteRepository, *MockTruckRepository, *MockUserRepository) {
	routeRepo := new(MockRouteRepository)
	truckRepo := new(MockTruckRepository)
	userRepo := new(MockUserRepository)
	svc := NewService(routeRepo, truckRepo, userRepo, logger.NewNoop())
	return svc, routeRepo, truckRepo, userRepo
}

func TestService_CreateRoute(t *testing.T) {
	t.Run("успешное создание с водителем", func(t *testing.T) {
		svc, routeRepo, truckRepo, userRepo := newTestService()

		driverID := int64(5)
		truckRepo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Truck{ID: 3}, nil)
		userRepo.On("GetByID", mock.Anything, driverID).Return(&domain.User{ID: driverID}, nil)
		routeRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Route")).Return(int64(42), nil)

		id, err := svc.CreateRoute(context.Background(), &CreateRouteRequest{
			Date:     testDate(t, "2025-06-15"),
			DriverID: &driverID,
			TruckID:  3,
			Destinations: []DestinationRequest{
				{AddressID: 7, Products: []ProductLineRequest{{ProductID: 2, Quantity: 10}}},
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(42), id)
		routeRepo.AssertExpectations(t)
		truckRepo.AssertExpectations(t)
		userRepo.AssertExpectations(t)
	})

	t.Run("маршрут без пунктов отклоняется до обращения к БД", func(t *testing.T) {
		svc, routeRepo, _, _ := newTestService()

		_, err := svc.CreateRoute(context.Background(), &CreateRouteRequest{
			Date:    testDate(t, "2025-06-15"),
			TruckID: 3,
		})

		assert.ErrorIs(t, err, domain.ErrInvalidRouteData)
		routeRepo.AssertNotCalled(t, "Create")
	})

	t.Run("нулевое количество отклоняется", func(t *testing.T) {
		svc, routeRepo, _, _ := newTestService()

		_, err := svc.CreateRoute(context.Background(), &CreateRouteRequest{
			Date:    testDate(t, "2025-06-15"),
			TruckID: 3,
			Destinations: []DestinationRequest{
				{AddressID: 7, Products: []ProductLineRequest{{ProductID: 2, Quantity: 0}}},
			},
		})

		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
		routeRepo.AssertNotCalled(t, "Create")
	})

	t.Run("несуществующий грузовик", func(t *testing.T) {
		svc, routeRepo, truckRepo, _ := newTestService()

		truckRepo.On("GetByID", mock.Anything, int64(999)).Return(nil, domain.ErrTruckNotFound)

		_, err := svc.CreateRoute(context.Background(), &CreateRouteRequest{
			Date:    testDate(t, "2025-06-15"),
			TruckID: 999,
			Destinations: []DestinationRequest{
				{AddressID: 7},
			},
		})

		assert.ErrorIs(t, err, domain.ErrTruckNotFound)
		routeRepo.AssertNotCalled(t, "Create")
	})

	t.Run("маршрут без водителя допустим", func(t *testing.T) {
		svc, routeRepo, truckRepo, userRepo := newTestService()

		truckRepo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Truck{ID: 3}, nil)
		routeRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Route")).Return(int64(43), nil)

		id, err := svc.CreateRoute(context.Background(), &CreateRouteRequest{
			Date:    testDate(t, "2025-06-15"),
			TruckID: 3,
			Destinations: []DestinationRequest{
				{AddressID: 7},
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(43), id)
		userRepo.AssertNotCalled(t, "GetByID")
	})
}

func TestService_GetRouteByID(t *testing.T) {
	t.Run("отсутствующий маршрут дает ErrRouteNotFound", func(t *testing.T) {
		svc, routeRepo, _, _ := newTestService()

		routeRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

		_, err := svc.GetRouteByID(context.Background(), 99)

		assert.ErrorIs(t, err, domain.ErrRouteNotFound)
	})
}

func TestService_UpdateRoute(t *testing.T) {
	existing := &domain.Route{ID: 42, TruckID: 3, Destinations: []*domain.Destination{{ID: 1, RouteID: 42, AddressID: 7}}}

	t.Run("пустой запрос - no-op, маршрут возвращается как есть", func(t *testing.T) {
		svc, routeRepo, _, _ := newTestService()

		routeRepo.On("GetByID", mock.Anything, int64(42)).Return(existing, nil)

		got, err := svc.UpdateRoute(context.Background(), 42, &UpdateRouteRequest{})

		assert.NoError(t, err)
		assert.Equal(t, existing, got)
		routeRepo.AssertNotCalled(t, "Update")
	})

	t.Run("смена грузовика с проверкой существования", func(t *testing.T) {
		svc, routeRepo, truckRepo, _ := newTestService()

		newTruck := int64(5)
		updated := &domain.Route{ID: 42, TruckID: newTruck, Destinations: existing.Destinations}

		routeRepo.On("GetByID", mock.Anything, int64(42)).Return(existing, nil).Once()
		truckRepo.On("GetByID", mock.Anything, newTruck).Return(&domain.Truck{ID: newTruck}, nil)
		routeRepo.On("Update", mock.Anything, int64(42), mock.AnythingOfType("*repository.UpdateRouteParams")).Return(nil)
		routeRepo.On("GetByID", mock.Anything, int64(42)).Return(updated, nil).Once()

		got, err := svc.UpdateRoute(context.Background(), 42, &UpdateRouteRequest{TruckID: &newTruck})

		assert.NoError(t, err)
		assert.Equal(t, newTruck, got.TruckID)
		routeRepo.AssertExpectations(t)
	})

	t.Run("маршрут не найден", func(t *testing.T) {
		svc, routeRepo, _, _ := newTestService()

		routeRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

		newTruck := int64(5)
		_, err := svc.UpdateRoute(context.Background(), 99, &UpdateRouteRequest{TruckID: &newTruck})

		assert.ErrorIs(t, err, domain.ErrRouteNotFound)
	})
}

func TestService_DeleteRoute(t *testing.T) {
	t.Run("успешное удаление", func(t *testing.T) {
		svc, routeRepo, _, _ := newTestService()

		routeRepo.On("Delete", mock.Anything, int64(42)).Return(true, nil)

		assert.NoError(t, svc.DeleteRoute(context.Background(), 42))
	})

	t.Run("маршрут не найден", func(t *testing.T) {
		svc, routeRepo, _, _ := newTestService()

		routeRepo.On("Delete", mock.Anything, int64(99)).Return(false, nil)

		err := svc.DeleteRoute(context.Background(), 99)
		assert.ErrorIs(t, err, domain.ErrRouteNotFound)
	})
}

func TestService_AddProduct(t *testing.T) {
	t.Run("нулевое количество отклоняется до обращения к БД", func(t *testing.T) {
		svc, routeRepo, _, _ := newTestService()

		_, err := svc.AddProduct(context.Background(), 10, &ProductLineRequest{ProductID: 2, Quantity: 0})

		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
		routeRepo.AssertNotCalled(t, "AddProduct")
	})

	t.Run("успешное добавление", func(t *testing.T) {
		svc, routeRepo, _, _ := newTestService()

		routeRepo.On("AddProduct", mock.Anything, int64(10), mock.AnythingOfType("*domain.DestinationProduct")).
			Return(int64(20), nil)

		id, err := svc.AddProduct(context.Background(), 10, &ProductLineRequest{ProductID: 2, Quantity: 5})

		assert.NoError(t, err)
		assert.Equal(t, int64(20), id)
	})
}

func TestService_RemoveProduct(t *testing.T) {
	t.Run("отсутствующая позиция дает ErrProductLineNotFound", func(t *testing.T) {
		svc, routeRepo, _, _ := newTestService()

		routeRepo.On("RemoveProduct", mock.Anything, int64(10), int64(99)).Return(false, nil)

		err := svc.RemoveProduct(context.Background(), 10, 99)
		assert.ErrorIs(t, err, domain.ErrProductLineNotFound)
	})
}

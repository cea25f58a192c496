package repository

import (
	"context"
	"time"

	"github.com/dkozyrev/foodway/internal/domain"
)

// UpdateRouteParams - частичное обновление скалярных полей маршрута.
// Обновляются только поля из этого списка; nil означает "не трогать".
type UpdateRouteParams struct {
	Date       *domain.Date
	DriverID   *int64
	TruckID    *int64
	Collection *bool
}

// Empty сообщает, что ни одно обновляемое поле не задано
func (p *UpdateRouteParams) Empty() bool {
	return p.Date == nil && p.DriverID == nil && p.TruckID == nil && p.Collection == nil
}

// RouteRepository определяет методы для работы с агрегатом маршрута
// (маршрут -> пункты назначения -> продуктовые позиции)
type RouteRepository interface {
	// Create сохраняет маршрут вместе со всем деревом пунктов и позиций
	// в одной транзакции и возвращает id нового маршрута
	Create(ctx context.Context, route *domain.Route) (int64, error)

	// GetByID возвращает маршрут с вложенными пунктами и позициями.
	// Возвращает (nil, nil), если маршрут не найден
	GetByID(ctx context.Context, id int64) (*domain.Route, error)

	// GetAll возвращает все маршруты; пустой срез, если маршрутов нет
	GetAll(ctx context.Context) ([]*domain.Route, error)

	// GetAllByDriver возвращает маршруты, закрепленные за водителем
	GetAllByDriver(ctx context.Context, driverID int64) ([]*domain.Route, error)

	// Update обновляет скалярные поля маршрута. Смена типа каскадно
	// переносится на пункты в той же транзакции
	Update(ctx context.Context, id int64, params *UpdateRouteParams) error

	// Delete удаляет маршрут каскадом (позиции -> пункты -> маршрут).
	// Возвращает, была ли удалена строка самого маршрута
	Delete(ctx context.Context, id int64) (bool, error)

	// AddDestination добавляет пункт (с позициями) к существующему маршруту.
	// Тип пункта берется у маршрута. Возвращает id нового пункта
	AddDestination(ctx context.Context, routeID int64, dest *domain.Destination) (int64, error)

	// RemoveDestination удаляет пункт и его позиции, предварительно проверив,
	// что пункт принадлежит указанному маршруту
	RemoveDestination(ctx context.Context, routeID, destinationID int64) error

	// AddProduct добавляет продуктовую позицию к существующему пункту
	AddProduct(ctx context.Context, destinationID int64, line *domain.DestinationProduct) (int64, error)

	// RemoveProduct удаляет позицию; возвращает, была ли удалена строка
	RemoveProduct(ctx context.Context, destinationID, productID int64) (bool, error)
}

// TruckRepository определяет методы для работы с грузовиками
type TruckRepository interface {
	// Create создает грузовик и возвращает его id
	Create(ctx context.Context, truck *domain.Truck) (int64, error)

	// GetAll возвращает все грузовики
	GetAll(ctx context.Context) ([]*domain.Truck, error)

	// GetByID возвращает грузовик по id
	GetByID(ctx context.Context, id int64) (*domain.Truck, error)

	// GetAvailableOn возвращает грузовики без маршрута на указанную дату
	GetAvailableOn(ctx context.Context, date time.Time) ([]*domain.Truck, error)

	// Update перезаписывает все поля грузовика; слияние частичных
	// обновлений - обязанность сервисного слоя
	Update(ctx context.Context, truck *domain.Truck) error

	// Delete удаляет грузовик. Без force возвращает ErrTruckInUse,
	// если на грузовик ссылается хоть один маршрут; с force сначала
	// каскадно удаляет ссылающиеся маршруты
	Delete(ctx context.Context, id int64, force bool) (bool, error)
}

// AddressRepository определяет методы для работы с адресами
type AddressRepository interface {
	Create(ctx context.Context, address *domain.Address) (int64, error)
	GetAll(ctx context.Context) ([]*domain.Address, error)
	GetByID(ctx context.Context, id int64) (*domain.Address, error)
	Update(ctx context.Context, address *domain.Address) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	// Create создает нового пользователя
	Create(ctx context.Context, user *domain.User) error

	// GetByID возвращает пользователя по ID
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail возвращает пользователя по email
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update обновляет данные пользователя
	Update(ctx context.Context, user *domain.User) error

	// Delete удаляет пользователя (мягкое удаление - is_active = false)
	Delete(ctx context.Context, id int64) error

	// List возвращает список пользователей с пагинацией
	List(ctx context.Context, limit, offset int) ([]*domain.User, error)

	// UpdateLastLogin обновляет время последнего входа
	UpdateLastLogin(ctx context.Context, id int64) error
}

// ProductRepository определяет методы для работы с каталогом продуктов
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (int64, error)
	GetAll(ctx context.Context) ([]*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id int64) (bool, error)

	// GetCategories возвращает список категорий продуктов
	GetCategories(ctx context.Context) ([]*domain.Category, error)
}

// DonationRepository определяет методы для работы с пожертвованиями
type DonationRepository interface {
	Create(ctx context.Context, donation *domain.Donation) (int64, error)
	GetAll(ctx context.Context) ([]*domain.Donation, error)
	GetByID(ctx context.Context, id int64) (*domain.Donation, error)
	GetByUser(ctx context.Context, userID int64) ([]*domain.Donation, error)
	Update(ctx context.Context, donation *domain.Donation) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// RequestRepository определяет методы для работы с заявками на продукты
type RequestRepository interface {
	Create(ctx context.Context, request *domain.Request) (int64, error)
	GetAll(ctx context.Context) ([]*domain.Request, error)
	GetByID(ctx context.Context, id int64) (*domain.Request, error)
	GetByUser(ctx context.Context, userID int64) ([]*domain.Request, error)
	Update(ctx context.Context, request *domain.Request) error
	Delete(ctx context.Context, id int64) (bool, error)
}

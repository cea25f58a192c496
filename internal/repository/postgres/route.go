package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/dkozyrev/foodway/internal/domain"
	"github.com/dkozyrev/foodway/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type routeRepository struct {
	db *pgxpool.Pool
}

// NewRouteRepository создает repository агрегата маршрута
func NewRouteRepository(db *pgxpool.Pool) repository.RouteRepository {
	return &routeRepository{db: db}
}

// routeHeaderQuery - шапка маршрута с водителем и грузовиком.
// Грузовик - обязательная ссылка (inner join), водитель может отсутствовать.
const routeHeaderQuery = `
	SELECT r.id, r.date, r.driver_id, r.truck_id, r.is_collection,
	       u.first_name, u.last_name,
	       t.id, t.registration, t.capacity, t.model, t.condition
	FROM routes r
	INNER JOIN trucks t ON t.id = r.truck_id
	LEFT JOIN users u ON u.id = r.driver_id
`

// destinationRowsQuery - плоская выборка пунктов маршрута с адресом и
// позициями. Цепочка позиций left join: пункт без продуктов дает одну
// строку с NULL в полях позиции.
const destinationRowsQuery = `
	SELECT d.route_id, d.id, d.address_id, d.is_collection,
	       a.street, a.city, a.state, a.postal_code, a.country,
	       dp.id, dp.product_id, dp.quantity, p.name, c.name
	FROM destinations d
	INNER JOIN addresses a ON a.id = d.address_id
	LEFT JOIN destination_products dp ON dp.destination_id = d.id
	LEFT JOIN products p ON p.id = dp.product_id
	LEFT JOIN categories c ON c.id = p.category_id
`

func (r *routeRepository) Create(ctx context.Context, route *domain.Route) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var routeID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO routes (date, driver_id, truck_id, is_collection)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, route.Date.Time, route.DriverID, route.TruckID, route.Collection).Scan(&routeID)
	if err != nil {
		return 0, err
	}

	for _, dest := range route.Destinations {
		// Тип пункта всегда наследуется от маршрута
		var destID int64
		err = tx.QueryRow(ctx, `
			INSERT INTO destinations (route_id, address_id, is_collection)
			VALUES ($1, $2, $3)
			RETURNING id
		`, routeID, dest.AddressID, route.Collection).Scan(&destID)
		if err != nil {
			return 0, err
		}

		for _, line := range dest.Products {
			_, err = tx.Exec(ctx, `
				INSERT INTO destination_products (destination_id, product_id, quantity)
				VALUES ($1, $2, $3)
			`, destID, line.ProductID, line.Quantity)
			if err != nil {
				return 0, err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	return routeID, nil
}

func (r *routeRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	route, err := r.scanRouteHeader(r.db.QueryRow(ctx, routeHeaderQuery+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	rows, err := r.db.Query(ctx, destinationRowsQuery+`
		WHERE d.route_id = $1
		ORDER BY d.id, dp.id
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flat, err := scanDestinationRows(rows)
	if err != nil {
		return nil, err
	}

	route.Destinations = groupDestinations(flat)
	if route.Destinations == nil {
		route.Destinations = []*domain.Destination{}
	}

	return route, nil
}

func (r *routeRepository) GetAll(ctx context.Context) ([]*domain.Route, error) {
	return r.getRoutes(ctx, routeHeaderQuery+` ORDER BY r.date, r.id`)
}

func (r *routeRepository) GetAllByDriver(ctx context.Context, driverID int64) ([]*domain.Route, error) {
	return r.getRoutes(ctx, routeHeaderQuery+` WHERE r.driver_id = $1 ORDER BY r.date, r.id`, driverID)
}

// getRoutes выполняет запрос шапок, затем одним запросом забирает пункты
// всех найденных маршрутов и раскладывает их по дереву
func (r *routeRepository) getRoutes(ctx context.Context, query string, args ...interface{}) ([]*domain.Route, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := []*domain.Route{}
	ids := []int64{}
	for rows.Next() {
		route, err := r.scanRouteHeader(rows)
		if err != nil {
			return nil, err
		}
		routes = append(routes, route)
		ids = append(ids, route.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(routes) == 0 {
		return routes, nil
	}

	destRows, err := r.db.Query(ctx, destinationRowsQuery+`
		WHERE d.route_id = ANY($1)
		ORDER BY d.route_id, d.id, dp.id
	`, ids)
	if err != nil {
		return nil, err
	}
	defer destRows.Close()

	flat, err := scanDestinationRows(destRows)
	if err != nil {
		return nil, err
	}

	attachDestinations(routes, flat)

	return routes, nil
}

func (r *routeRepository) Update(ctx context.Context, id int64, params *repository.UpdateRouteParams) error {
	// Пустое обновление - документированный no-op
	if params.Empty() {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	set := []string{}
	args := []interface{}{id}
	next := 2

	if params.Date != nil {
		set = append(set, "date = $"+strconv.Itoa(next))
		args = append(args, params.Date.Time)
		next++
	}
	if params.DriverID != nil {
		set = append(set, "driver_id = $"+strconv.Itoa(next))
		args = append(args, *params.DriverID)
		next++
	}
	if params.TruckID != nil {
		set = append(set, "truck_id = $"+strconv.Itoa(next))
		args = append(args, *params.TruckID)
		next++
	}
	if params.Collection != nil {
		set = append(set, "is_collection = $"+strconv.Itoa(next))
		args = append(args, *params.Collection)
		next++
	}

	result, err := tx.Exec(ctx, "UPDATE routes SET "+strings.Join(set, ", ")+" WHERE id = $1", args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrRouteNotFound
	}

	// Тип денормализован на пунктах: смена типа маршрута каскадно
	// переносится на них в той же транзакции
	if params.Collection != nil {
		_, err = tx.Exec(ctx, `
			UPDATE destinations SET is_collection = $2 WHERE route_id = $1
		`, id, *params.Collection)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *routeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	// Каскад строго снизу вверх: позиции -> пункты -> маршрут
	_, err = tx.Exec(ctx, `
		DELETE FROM destination_products
		WHERE destination_id IN (SELECT id FROM destinations WHERE route_id = $1)
	`, id)
	if err != nil {
		return false, err
	}

	_, err = tx.Exec(ctx, `DELETE FROM destinations WHERE route_id = $1`, id)
	if err != nil {
		return false, err
	}

	result, err := tx.Exec(ctx, `DELETE FROM routes WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}

	return result.RowsAffected() > 0, nil
}

func (r *routeRepository) AddDestination(ctx context.Context, routeID int64, dest *domain.Destination) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	// Пункт обязан принадлежать существующему маршруту и наследует его тип
	var isCollection bool
	err = tx.QueryRow(ctx, `SELECT is_collection FROM routes WHERE id = $1`, routeID).Scan(&isCollection)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrRouteNotFound
		}
		return 0, err
	}

	var destID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO destinations (route_id, address_id, is_collection)
		VALUES ($1, $2, $3)
		RETURNING id
	`, routeID, dest.AddressID, isCollection).Scan(&destID)
	if err != nil {
		return 0, err
	}

	for _, line := range dest.Products {
		_, err = tx.Exec(ctx, `
			INSERT INTO destination_products (destination_id, product_id, quantity)
			VALUES ($1, $2, $3)
		`, destID, line.ProductID, line.Quantity)
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	return destID, nil
}

func (r *routeRepository) RemoveDestination(ctx context.Context, routeID, destinationID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Проверяем всю цепочку владения: пункт должен принадлежать маршруту
	var exists bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM destinations WHERE id = $1 AND route_id = $2)
	`, destinationID, routeID).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrDestinationNotFound
	}

	_, err = tx.Exec(ctx, `DELETE FROM destination_products WHERE destination_id = $1`, destinationID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `DELETE FROM destinations WHERE id = $1`, destinationID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *routeRepository) AddProduct(ctx context.Context, destinationID int64, line *domain.DestinationProduct) (int64, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM destinations WHERE id = $1)
	`, destinationID).Scan(&exists)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, domain.ErrDestinationNotFound
	}

	var lineID int64
	err = r.db.QueryRow(ctx, `
		INSERT INTO destination_products (destination_id, product_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id
	`, destinationID, line.ProductID, line.Quantity).Scan(&lineID)
	if err != nil {
		return 0, err
	}

	return lineID, nil
}

func (r *routeRepository) RemoveProduct(ctx context.Context, destinationID, productID int64) (bool, error) {
	result, err := r.db.Exec(ctx, `
		DELETE FROM destination_products
		WHERE destination_id = $1 AND product_id = $2
	`, destinationID, productID)
	if err != nil {
		return false, err
	}

	return result.RowsAffected() > 0, nil
}

// scanRouteHeader сканирует одну строку шапки маршрута
func (r *routeRepository) scanRouteHeader(row pgx.Row) (*domain.Route, error) {
	route := &domain.Route{Truck: &domain.Truck{}}
	var firstName, lastName *string

	err := row.Scan(
		&route.ID,
		&route.Date.Time,
		&route.DriverID,
		&route.TruckID,
		&route.Collection,
		&firstName,
		&lastName,
		&route.Truck.ID,
		&route.Truck.Registration,
		&route.Truck.Capacity,
		&route.Truck.Model,
		&route.Truck.Condition,
	)
	if err != nil {
		return nil, err
	}

	if firstName != nil || lastName != nil {
		name := strings.TrimSpace(deref(firstName) + " " + deref(lastName))
		route.Driver = &name
	}

	return route, nil
}

// scanDestinationRows сканирует плоский результат destinationRowsQuery
func scanDestinationRows(rows pgx.Rows) ([]destinationRow, error) {
	var flat []destinationRow
	for rows.Next() {
		var row destinationRow
		err := rows.Scan(
			&row.RouteID,
			&row.DestinationID,
			&row.AddressID,
			&row.Collection,
			&row.Street,
			&row.City,
			&row.State,
			&row.PostalCode,
			&row.Country,
			&row.LineID,
			&row.ProductID,
			&row.Quantity,
			&row.ProductName,
			&row.CategoryName,
		)
		if err != nil {
			return nil, err
		}
		flat = append(flat, row)
	}

	return flat, rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dkozyrev/foodway/internal/domain"
	"github.com/dkozyrev/foodway/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type truckRepository struct {
	db *pgxpool.Pool
}

// NewTruckRepository создает repository грузовиков
func NewTruckRepository(db *pgxpool.Pool) repository.TruckRepository {
	return &truckRepository{db: db}
}

func (r *truckRepository) Create(ctx context.Context, truck *domain.Truck) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO trucks (registration, capacity, model, condition)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, truck.Registration, truck.Capacity, truck.Model, truck.Condition).Scan(&id)
	if err != nil {
		return 0, err
	}

	truck.ID = id
	return id, nil
}

func (r *truckRepository) GetAll(ctx context.Context) ([]*domain.Truck, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, registration, capacity, model, condition
		FROM trucks
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTrucks(rows)
}

func (r *truckRepository) GetByID(ctx context.Context, id int64) (*domain.Truck, error) {
	truck := &domain.Truck{}
	err := r.db.QueryRow(ctx, `
		SELECT id, registration, capacity, model, condition
		FROM trucks
		WHERE id = $1
	`, id).Scan(&truck.ID, &truck.Registration, &truck.Capacity, &truck.Model, &truck.Condition)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTruckNotFound
		}
		return nil, err
	}

	return truck, nil
}

// GetAvailableOn возвращает грузовики, за которыми не закреплен ни один
// маршрут на указанную дату: left join по маршрутам этой даты, остаются
// строки без совпадения
func (r *truckRepository) GetAvailableOn(ctx context.Context, date time.Time) ([]*domain.Truck, error) {
	rows, err := r.db.Query(ctx, `
		SELECT t.id, t.registration, t.capacity, t.model, t.condition
		FROM trucks t
		LEFT JOIN routes r ON r.truck_id = t.id AND r.date = $1
		WHERE r.id IS NULL
		ORDER BY t.id
	`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTrucks(rows)
}

// Update перезаписывает все четыре колонки; частичные обновления
// предварительно сливает сервисный слой
func (r *truckRepository) Update(ctx context.Context, truck *domain.Truck) error {
	result, err := r.db.Exec(ctx, `
		UPDATE trucks
		SET registration = $2, capacity = $3, model = $4, condition = $5
		WHERE id = $1
	`, truck.ID, truck.Registration, truck.Capacity, truck.Model, truck.Condition)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrTruckNotFound
	}

	return nil
}

func (r *truckRepository) Delete(ctx context.Context, id int64, force bool) (bool, error) {
	if !force {
		var refs int
		err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM routes WHERE truck_id = $1`, id).Scan(&refs)
		if err != nil {
			return false, err
		}
		if refs > 0 {
			return false, fmt.Errorf("%w: truck %d is assigned to %d route(s)", domain.ErrTruckInUse, id, refs)
		}

		result, err := r.db.Exec(ctx, `DELETE FROM trucks WHERE id = $1`, id)
		if err != nil {
			return false, err
		}
		return result.RowsAffected() > 0, nil
	}

	// force: сначала каскадно удаляем ссылающиеся маршруты
	// (позиции -> пункты -> маршруты), затем сам грузовик
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		DELETE FROM destination_products
		WHERE destination_id IN (
			SELECT d.id FROM destinations d
			INNER JOIN routes r ON r.id = d.route_id
			WHERE r.truck_id = $1
		)
	`, id)
	if err != nil {
		return false, err
	}

	_, err = tx.Exec(ctx, `
		DELETE FROM destinations
		WHERE route_id IN (SELECT id FROM routes WHERE truck_id = $1)
	`, id)
	if err != nil {
		return false, err
	}

	_, err = tx.Exec(ctx, `DELETE FROM routes WHERE truck_id = $1`, id)
	if err != nil {
		return false, err
	}

	result, err := tx.Exec(ctx, `DELETE FROM trucks WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}

	return result.RowsAffected() > 0, nil
}

// scanTrucks - вспомогательная функция для сканирования результатов запроса
func scanTrucks(rows pgx.Rows) ([]*domain.Truck, error) {
	trucks := []*domain.Truck{}
	for rows.Next() {
		truck := &domain.Truck{}
		err := rows.Scan(&truck.ID, &truck.Registration, &truck.Capacity, &truck.Model, &truck.Condition)
		if err != nil {
			return nil, err
		}
		trucks = append(trucks, truck)
	}

	return trucks, rows.Err()
}

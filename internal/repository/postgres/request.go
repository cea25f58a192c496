package postgres

import (
	"context"
	"errors"

	"github.com/dkozyrev/foodway/internal/domain"
	"github.com/dkozyrev/foodway/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type requestRepository struct {
	db *pgxpool.Pool
}

// NewRequestRepository создает repository заявок на продукты
func NewRequestRepository(db *pgxpool.Pool) repository.RequestRepository {
	return &requestRepository{db: db}
}

const requestQuery = `
	SELECT rq.id, rq.user_id, rq.product_id, rq.quantity, rq.date, rq.status,
	       u.first_name || ' ' || u.last_name, p.name
	FROM requests rq
	INNER JOIN users u ON u.id = rq.user_id
	INNER JOIN products p ON p.id = rq.product_id
`

func (r *requestRepository) Create(ctx context.Context, request *domain.Request) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO requests (user_id, product_id, quantity, date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, request.UserID, request.ProductID, request.Quantity, request.Date.Time, request.Status).Scan(&id)
	if err != nil {
		return 0, err
	}

	request.ID = id
	return id, nil
}

func (r *requestRepository) GetAll(ctx context.Context) ([]*domain.Request, error) {
	rows, err := r.db.Query(ctx, requestQuery+` ORDER BY rq.date DESC, rq.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRequests(rows)
}

func (r *requestRepository) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	request := &domain.Request{}
	err := r.db.QueryRow(ctx, requestQuery+` WHERE rq.id = $1`, id).Scan(
		&request.ID,
		&request.UserID,
		&request.ProductID,
		&request.Quantity,
		&request.Date.Time,
		&request.Status,
		&request.User,
		&request.Product,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}

	return request, nil
}

func (r *requestRepository) GetByUser(ctx context.Context, userID int64) ([]*domain.Request, error) {
	rows, err := r.db.Query(ctx, requestQuery+` WHERE rq.user_id = $1 ORDER BY rq.date DESC, rq.id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRequests(rows)
}

func (r *requestRepository) Update(ctx context.Context, request *domain.Request) error {
	result, err := r.db.Exec(ctx, `
		UPDATE requests
		SET user_id = $2, product_id = $3, quantity = $4, date = $5, status = $6
		WHERE id = $1
	`, request.ID, request.UserID, request.ProductID, request.Quantity, request.Date.Time, request.Status)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRequestNotFound
	}

	return nil
}

func (r *requestRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM requests WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	return result.RowsAffected() > 0, nil
}

func scanRequests(rows pgx.Rows) ([]*domain.Request, error) {
	requests := []*domain.Request{}
	for rows.Next() {
		request := &domain.Request{}
		err := rows.Scan(
			&request.ID,
			&request.UserID,
			&request.ProductID,
			&request.Quantity,
			&request.Date.Time,
			&request.Status,
			&request.User,
			&request.Product,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, rows.Err()
}

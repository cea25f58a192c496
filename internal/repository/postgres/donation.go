package postgres

import (
	"context"
	"errors"

	"github.com/dkozyrev/foodway/internal/domain"
	"github.com/dkozyrev/foodway/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type donationRepository struct {
	db *pgxpool.Pool
}

// NewDonationRepository создает repository пожертвований
func NewDonationRepository(db *pgxpool.Pool) repository.DonationRepository {
	return &donationRepository{db: db}
}

// donationQuery - денормализованное чтение: имя донора и название
// продукта присоединяются сразу, отдельных запросов не требуется
const donationQuery = `
	SELECT dn.id, dn.user_id, dn.product_id, dn.quantity, dn.date, dn.status,
	       u.first_name || ' ' || u.last_name, p.name
	FROM donations dn
	INNER JOIN users u ON u.id = dn.user_id
	INNER JOIN products p ON p.id = dn.product_id
`

func (r *donationRepository) Create(ctx context.Context, donation *domain.Donation) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO donations (user_id, product_id, quantity, date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, donation.UserID, donation.ProductID, donation.Quantity, donation.Date.Time, donation.Status).Scan(&id)
	if err != nil {
		return 0, err
	}

	donation.ID = id
	return id, nil
}

func (r *donationRepository) GetAll(ctx context.Context) ([]*domain.Donation, error) {
	rows, err := r.db.Query(ctx, donationQuery+` ORDER BY dn.date DESC, dn.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDonations(rows)
}

func (r *donationRepository) GetByID(ctx context.Context, id int64) (*domain.Donation, error) {
	donation := &domain.Donation{}
	err := r.db.QueryRow(ctx, donationQuery+` WHERE dn.id = $1`, id).Scan(
		&donation.ID,
		&donation.UserID,
		&donation.ProductID,
		&donation.Quantity,
		&donation.Date.Time,
		&donation.Status,
		&donation.User,
		&donation.Product,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}

	return donation, nil
}

func (r *donationRepository) GetByUser(ctx context.Context, userID int64) ([]*domain.Donation, error) {
	rows, err := r.db.Query(ctx, donationQuery+` WHERE dn.user_id = $1 ORDER BY dn.date DESC, dn.id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDonations(rows)
}

func (r *donationRepository) Update(ctx context.Context, donation *domain.Donation) error {
	result, err := r.db.Exec(ctx, `
		UPDATE donations
		SET user_id = $2, product_id = $3, quantity = $4, date = $5, status = $6
		WHERE id = $1
	`, donation.ID, donation.UserID, donation.ProductID, donation.Quantity, donation.Date.Time, donation.Status)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrDonationNotFound
	}

	return nil
}

func (r *donationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM donations WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	return result.RowsAffected() > 0, nil
}

// scanDonations - вспомогательная функция для сканирования результатов запроса
func scanDonations(rows pgx.Rows) ([]*domain.Donation, error) {
	donations := []*domain.Donation{}
	for rows.Next() {
		donation := &domain.Donation{}
		err := rows.Scan(
			&donation.ID,
			&donation.UserID,
			&donation.ProductID,
			&donation.Quantity,
			&donation.Date.Time,
			&donation.Status,
			&donation.User,
			&donation.Product,
		)
		if err != nil {
			return nil, err
		}
		donations = append(donations, donation)
	}

	return donations, rows.Err()
}

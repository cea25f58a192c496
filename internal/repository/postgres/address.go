package postgres

import (
	"context"
	"errors"

	"github.com/dkozyrev/foodway/internal/domain"
	"github.com/dkozyrev/foodway/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type addressRepository struct {
	db *pgxpool.Pool
}

// NewAddressRepository создает repository адресов
func NewAddressRepository(db *pgxpool.Pool) repository.AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) Create(ctx context.Context, address *domain.Address) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO addresses (street, city, state, postal_code, country)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, address.Street, address.City, address.State, address.PostalCode, address.Country).Scan(&id)
	if err != nil {
		return 0, err
	}

	address.ID = id
	return id, nil
}

func (r *addressRepository) GetAll(ctx context.Context) ([]*domain.Address, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, street, city, state, postal_code, country
		FROM addresses
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := []*domain.Address{}
	for rows.Next() {
		address := &domain.Address{}
		err := rows.Scan(&address.ID, &address.Street, &address.City, &address.State, &address.PostalCode, &address.Country)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, address)
	}

	return addresses, rows.Err()
}

func (r *addressRepository) GetByID(ctx context.Context, id int64) (*domain.Address, error) {
	address := &domain.Address{}
	err := r.db.QueryRow(ctx, `
		SELECT id, street, city, state, postal_code, country
		FROM addresses
		WHERE id = $1
	`, id).Scan(&address.ID, &address.Street, &address.City, &address.State, &address.PostalCode, &address.Country)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAddressNotFound
		}
		return nil, err
	}

	return address, nil
}

func (r *addressRepository) Update(ctx context.Context, address *domain.Address) error {
	result, err := r.db.Exec(ctx, `
		UPDATE addresses
		SET street = $2, city = $3, state = $4, postal_code = $5, country = $6
		WHERE id = $1
	`, address.ID, address.Street, address.City, address.State, address.PostalCode, address.Country)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrAddressNotFound
	}

	return nil
}

func (r *addressRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	return result.RowsAffected() > 0, nil
}

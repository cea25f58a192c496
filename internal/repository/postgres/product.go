package postgres

import (
	"context"
	"errors"

	"github.com/dkozyrev/foodway/internal/domain"
	"github.com/dkozyrev/foodway/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type productRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository создает repository каталога продуктов
func NewProductRepository(db *pgxpool.Pool) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO products (name, category_id)
		VALUES ($1, $2)
		RETURNING id
	`, product.Name, product.CategoryID).Scan(&id)
	if err != nil {
		return 0, err
	}

	product.ID = id
	return id, nil
}

func (r *productRepository) GetAll(ctx context.Context) ([]*domain.Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.name, p.category_id, c.name
		FROM products p
		INNER JOIN categories c ON c.id = p.category_id
		ORDER BY p.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		product := &domain.Product{}
		err := rows.Scan(&product.ID, &product.Name, &product.CategoryID, &product.Category)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	product := &domain.Product{}
	err := r.db.QueryRow(ctx, `
		SELECT p.id, p.name, p.category_id, c.name
		FROM products p
		INNER JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1
	`, id).Scan(&product.ID, &product.Name, &product.CategoryID, &product.Category)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	return product, nil
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	result, err := r.db.Exec(ctx, `
		UPDATE products SET name = $2, category_id = $3 WHERE id = $1
	`, product.ID, product.Name, product.CategoryID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	return result.RowsAffected() > 0, nil
}

func (r *productRepository) GetCategories(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []*domain.Category{}
	for rows.Next() {
		category := &domain.Category{}
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

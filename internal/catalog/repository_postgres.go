package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var ErrProductNotFound = errors.New("product not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// List all products
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context) ([]*Product, error) {
	query := `
		SELECT
			id,
			name,
			description,
			price::text,
			image_url,
			category,
			created_at
		FROM products
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

// --------------------------------------------------
// List products in one category
// --------------------------------------------------
func (r *PostgresRepository) ListByCategory(ctx context.Context, category string) ([]*Product, error) {
	query := `
		SELECT
			id,
			name,
			description,
			price::text,
			image_url,
			category,
			created_at
		FROM products
		WHERE category = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

// --------------------------------------------------
// Find one product
// --------------------------------------------------
func (r *PostgresRepository) FindByID(ctx context.Context, id int) (*Product, error) {
	query := `
		SELECT
			id,
			name,
			description,
			price::text,
			image_url,
			category,
			created_at
		FROM products
		WHERE id = $1
	`

	row := r.db.QueryRow(ctx, query, id)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// --------------------------------------------------
// Create a new product
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, product *Product) error {
	query := `
		INSERT INTO products (name, description, price, image_url, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		product.Name,
		product.Description,
		product.Price.StringFixed(2),
		product.ImageURL,
		product.Category,
	).Scan(&product.ID, &product.CreatedAt)
}

// --------------------------------------------------
// Delete a product
// --------------------------------------------------
func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// --------------------------------------------------
// Row scanning
// --------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*Product, error) {
	var (
		p        Product
		priceStr string
	)

	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&priceStr,
		&p.ImageURL,
		&p.Category,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return nil, err
	}
	p.Price = price

	return &p, nil
}

func scanProducts(rows pgx.Rows) ([]*Product, error) {
	var products []*Product

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

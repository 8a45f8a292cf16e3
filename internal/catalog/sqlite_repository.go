package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "modernc.org/sqlite"
)

// Repository is a sqlite-backed product catalog.
type Repository struct {
	db *sql.DB
}

var _ ProductRepository = (*Repository)(nil)

func NewRepository(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Repository{db: db}, nil
}

// RunMigrations creates the products table and seeds the static catalog.
func (r *Repository) RunMigrations(migrationsPath string) error {
	driver, err := sqlite.WithInstance(r.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"sqlite",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func (r *Repository) ListProducts(ctx context.Context, filter Filter) ([]*Product, error) {
	query := `
		SELECT id, name, category, description, price, rating, stock, image_url
		FROM products
	`

	var args []interface{}
	switch {
	case filter.Search != "":
		// Search wins over the category filter, matching the storefront
		// behaviour of clearing the category when a query is entered.
		query += ` WHERE lower(name) LIKE '%' || lower($1) || '%'
			OR lower(description) LIKE '%' || lower($1) || '%'`
		args = append(args, filter.Search)
	case filter.Category != "" && filter.Category != AllCategories:
		query += ` WHERE category = $1`
		args = append(args, filter.Category)
	}

	switch filter.Sort {
	case SortPriceAsc:
		query += ` ORDER BY price ASC`
	case SortPriceDesc:
		query += ` ORDER BY price DESC`
	case SortRatingDesc:
		query += ` ORDER BY rating DESC`
	default:
		query += ` ORDER BY id`
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p := &Product{}
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Category,
			&p.Description,
			&p.Price,
			&p.Rating,
			&p.Stock,
			&p.ImageURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return products, nil
}

func (r *Repository) GetProduct(ctx context.Context, id string) (*Product, error) {
	query := `
		SELECT id, name, category, description, price, rating, stock, image_url
		FROM products
		WHERE id = $1
	`

	p := &Product{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Category,
		&p.Description,
		&p.Price,
		&p.Rating,
		&p.Stock,
		&p.ImageURL,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return p, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

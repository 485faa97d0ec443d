package repository

import (
	"context"
	"database/sql"

	"github.com/avdeenkov/shopview/internal/models"
)

// PostgresProductRepository implements catalog reads on PostgreSQL.
type PostgresProductRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresProductRepository creates a new PostgresProductRepository with
// the given database connection.
func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{DB: db}
}

// List returns the full catalog ordered by id. Filtering, sorting and
// pagination are client-side concerns; the endpoint always serves the whole
// set.
func (r *PostgresProductRepository) List(ctx context.Context) ([]models.Product, error) {
	rows, err := r.DB.QueryContext(
		ctx,
		`SELECT id, title, description, price FROM products ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Price); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

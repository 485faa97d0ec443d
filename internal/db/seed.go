package db

import (
	"context"
	"database/sql"
	"fmt"
)

// seedProducts are inserted on first start so a fresh instance has a
// browsable catalog.
var seedProducts = []struct {
	title       string
	description string
	price       float64
}{
	{"Phone", "A smartphone with a 6.1 inch display", 549.99},
	{"Phone Case", "Shock-absorbing protective case", 12.50},
	{"Wall Charger", "20W USB-C wall charger", 19.90},
	{"Wireless Earbuds", "Noise-cancelling wireless earbuds", 89.00},
	{"Laptop", "13 inch ultrabook, 16GB RAM", 1199.00},
	{"Laptop Sleeve", "Padded sleeve for 13 inch laptops", 24.00},
	{"Monitor", "27 inch QHD monitor", 289.00},
	{"Keyboard", "Mechanical keyboard with brown switches", 74.50},
	{"Mouse", "Ergonomic wireless mouse", 39.99},
	{"USB Hub", "7-port powered USB hub", 31.25},
	{"Desk Lamp", "LED desk lamp with dimmer", 27.80},
	{"Webcam", "1080p webcam with privacy shutter", 54.00},
}

// SeedProducts populates the products table when it is empty. It is safe to
// call on every start.
func SeedProducts(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, p := range seedProducts {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO products (title, description, price) VALUES ($1, $2, $3)`,
			p.title, p.description, p.price,
		); err != nil {
			return fmt.Errorf("insert seed product %q: %w", p.title, err)
		}
	}
	return nil
}

// Package repository provides Postgres persistence for users and products.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/avdeenkov/shopview/internal/models"
)

// ErrUserNotFound is returned when no user matches the given username.
var ErrUserNotFound = errors.New("user not found")

// PostgresAuthRepository implements user persistence on PostgreSQL.
type PostgresAuthRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresAuthRepository creates a new PostgresAuthRepository with the
// given database connection.
func NewPostgresAuthRepository(db *sql.DB) *PostgresAuthRepository {
	return &PostgresAuthRepository{DB: db}
}

// UserByUsername loads the user with the given username. Returns
// ErrUserNotFound when no row matches.
func (r *PostgresAuthRepository) UserByUsername(ctx context.Context, username string) (models.User, error) {
	var u models.User
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT id, username, password_hash, email, first_name, last_name FROM users WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.FirstName, &u.LastName)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

// UserExists checks whether a user with the specified username exists.
func (r *PostgresAuthRepository) UserExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`,
		username,
	).Scan(&exists)
	return exists, err
}

// CreateUser stores a new user record with an already-hashed password.
func (r *PostgresAuthRepository) CreateUser(ctx context.Context, id string, form models.RegistrationForm, passwordHash []byte) error {
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO users (id, username, password_hash, first_name, last_name, age, gender, email, phone, birth_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		id, form.Username, passwordHash, form.FirstName, form.LastName,
		form.Age, form.Gender, form.Email, form.Phone, form.BirthDate,
	)
	return err
}

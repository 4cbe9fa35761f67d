package user

import (
	"context"
	"database/sql"

	"freshkart-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, params CreateUserParams) (User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	GetByKey(ctx context.Context, key uint) (*User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const pgUniqueViolation = "23505"

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)",
		email,
	).Scan(&exists)
	return exists, err
}

// Create inserts the account. A duplicate email hits the users_email_key
// constraint and comes back as ErrEmailExists rather than a raw pq error.
func (r *repository) Create(ctx context.Context, params CreateUserParams) (User, error) {
	log := logger.FromCtx(ctx)

	var u User
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (username, email, hashed_password)
		VALUES ($1, $2, $3)
		RETURNING id, username, email, hashed_password
	`, params.Username, params.Email, params.HashedPassword,
	).Scan(&u.Key, &u.Username, &u.Email, &u.HashedPassword)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pgUniqueViolation {
			return User{}, ErrEmailExists
		}
		log.Error("db: failed to insert user",
			zap.String("email", params.Email),
			zap.Error(err),
		)
		return User{}, err
	}

	return u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, email, hashed_password, phone, proprietor_name, gst
		FROM users
		WHERE email = $1
	`, email).Scan(
		&u.Key, &u.Username, &u.Email, &u.HashedPassword,
		&u.Phone, &u.ProprietorName, &u.GST,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) GetByKey(ctx context.Context, key uint) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, email, hashed_password, phone, proprietor_name, gst
		FROM users
		WHERE id = $1
	`, key).Scan(
		&u.Key, &u.Username, &u.Email, &u.HashedPassword,
		&u.Phone, &u.ProprietorName, &u.GST,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

package store

import (
	"context"
	"errors"
	"fmt"

	"cloudnautic-shop/internal/database"
	"cloudnautic-shop/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation 為 PostgreSQL unique constraint 錯誤碼
const uniqueViolation = "23505"

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, email, name, password_hash, created_at
		 FROM users WHERE id = $1`,
		userID,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.PasswordHash,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, email, name, password_hash, created_at
		 FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.PasswordHash,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

// CreateUser 新增使用者，email 重複時回傳 ErrDuplicateEmail
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (email, name, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		u.Email,
		u.Name,
		u.PasswordHash,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

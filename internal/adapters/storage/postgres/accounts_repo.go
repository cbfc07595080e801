package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pawtrack/internal/domain/accounts"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código de unique violation en Postgres.
const uniqueViolation = "23505"

type AccountsRepo struct {
	db *sql.DB
}

func NewAccountsRepo(db *sql.DB) *AccountsRepo {
	return &AccountsRepo{db: db}
}

func (r *AccountsRepo) Create(ctx context.Context, u accounts.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, full_name, email, phone_number, password_hash, created_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		u.ID,
		u.FullName,
		u.Email,
		u.PhoneNumber,
		u.PasswordHash,
		u.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return accounts.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *AccountsRepo) FindByID(ctx context.Context, id string) (accounts.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return accounts.User{}, accounts.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, full_name, email, phone_number, password_hash, created_at
		FROM users
		WHERE id = $1
	`, id)

	return scanUser(row)
}

func (r *AccountsRepo) FindByEmail(ctx context.Context, email string) (accounts.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return accounts.User{}, accounts.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, full_name, email, phone_number, password_hash, created_at
		FROM users
		WHERE email = $1
	`, email)

	return scanUser(row)
}

func scanUser(row *sql.Row) (accounts.User, error) {
	var u accounts.User
	if err := row.Scan(
		&u.ID,
		&u.FullName,
		&u.Email,
		&u.PhoneNumber,
		&u.PasswordHash,
		&u.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return accounts.User{}, accounts.ErrNotFound
		}
		return accounts.User{}, err
	}
	return u, nil
}

package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"cat-collector/internal/domain/accounts"
)

type AccountsRepo struct {
	db       *sql.DB
	isUnique UniqueViolation
}

func NewAccountsRepo(db *sql.DB, isUnique UniqueViolation) *AccountsRepo {
	return &AccountsRepo{db: db, isUnique: isUnique}
}

func (r *AccountsRepo) Create(ctx context.Context, a accounts.Account) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (id, username, password_hash, created_at)
		VALUES ($1,$2,$3,$4)
	`,
		a.ID,
		a.Username,
		a.PasswordHash,
		a.CreatedAt.UTC(),
	)
	if err != nil && r.isUnique != nil && r.isUnique(err) {
		return accounts.ErrUsernameTaken
	}
	return err
}

func (r *AccountsRepo) GetByID(ctx context.Context, id string) (accounts.Account, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return accounts.Account{}, accounts.ErrNotFound
	}
	return r.getOne(ctx, `
		SELECT id, username, password_hash, created_at
		FROM accounts
		WHERE id = $1
	`, id)
}

func (r *AccountsRepo) GetByUsername(ctx context.Context, username string) (accounts.Account, error) {
	if strings.TrimSpace(username) == "" {
		return accounts.Account{}, accounts.ErrNotFound
	}
	return r.getOne(ctx, `
		SELECT id, username, password_hash, created_at
		FROM accounts
		WHERE username = $1
	`, username)
}

func (r *AccountsRepo) getOne(ctx context.Context, query string, arg any) (accounts.Account, error) {
	var a accounts.Account
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&a.ID,
		&a.Username,
		&a.PasswordHash,
		&a.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return accounts.Account{}, accounts.ErrNotFound
	}
	if err != nil {
		return accounts.Account{}, err
	}
	return a, nil
}

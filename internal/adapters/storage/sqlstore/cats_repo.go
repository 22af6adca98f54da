package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"cat-collector/internal/domain/cats"
)

type CatsRepo struct {
	db *sql.DB
}

func NewCatsRepo(db *sql.DB) *CatsRepo {
	return &CatsRepo{db: db}
}

func (r *CatsRepo) Create(ctx context.Context, c cats.Cat) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cats (
			id, owner_user_id,
			name, breed, description, age,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		c.ID,
		c.OwnerUserID,
		c.Name,
		c.Breed,
		c.Description,
		c.Age,
		c.CreatedAt.UTC(),
		c.UpdatedAt.UTC(),
	)
	return err
}

// Update no toca owner_user_id ni name.
func (r *CatsRepo) Update(ctx context.Context, c cats.Cat) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE cats
		SET
			breed = $2,
			description = $3,
			age = $4,
			updated_at = $5
		WHERE id = $1
	`,
		c.ID,
		c.Breed,
		c.Description,
		c.Age,
		c.UpdatedAt.UTC(),
	)
	return affectedOne(res, err, cats.ErrNotFound)
}

// Delete depende de ON DELETE CASCADE en feedings y cat_toys.
func (r *CatsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cats WHERE id = $1`, id)
	return affectedOne(res, err, cats.ErrNotFound)
}

func (r *CatsRepo) GetByID(ctx context.Context, id string) (cats.Cat, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return cats.Cat{}, cats.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, owner_user_id,
			name, breed, description, age,
			created_at, updated_at
		FROM cats
		WHERE id = $1
	`, id)

	c, err := scanCat(row)
	if errors.Is(err, sql.ErrNoRows) {
		return cats.Cat{}, cats.ErrNotFound
	}
	if err != nil {
		return cats.Cat{}, err
	}
	return c, nil
}

func (r *CatsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]cats.Cat, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return []cats.Cat{}, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, owner_user_id,
			name, breed, description, age,
			created_at, updated_at
		FROM cats
		WHERE owner_user_id = $1
		ORDER BY created_at ASC, id ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]cats.Cat, 0)
	for rows.Next() {
		c, err := scanCat(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// AddToy es idempotente.
func (r *CatsRepo) AddToy(ctx context.Context, catID, toyID string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cat_toys (cat_id, toy_id)
		VALUES ($1,$2)
		ON CONFLICT (cat_id, toy_id) DO NOTHING
	`, catID, toyID)
	return err
}

func (r *CatsRepo) RemoveToy(ctx context.Context, catID, toyID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM cat_toys
		WHERE cat_id = $1 AND toy_id = $2
	`, catID, toyID)
	return err
}

func (r *CatsRepo) ListToyIDs(ctx context.Context, catID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT ct.toy_id
		FROM cat_toys ct
		JOIN toys t ON t.id = ct.toy_id
		WHERE ct.cat_id = $1
		ORDER BY t.created_at ASC, t.id ASC
	`, catID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCat(s scanner) (cats.Cat, error) {
	var c cats.Cat
	err := s.Scan(
		&c.ID,
		&c.OwnerUserID,
		&c.Name,
		&c.Breed,
		&c.Description,
		&c.Age,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

func affectedOne(res sql.Result, err error, notFound error) error {
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return notFound
	}
	return nil
}

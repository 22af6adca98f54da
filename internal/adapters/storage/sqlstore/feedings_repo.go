package sqlstore

import (
	"context"
	"database/sql"
	"strings"

	"cat-collector/internal/domain/feedings"
)

type FeedingsRepo struct {
	db *sql.DB
}

func NewFeedingsRepo(db *sql.DB) *FeedingsRepo {
	return &FeedingsRepo{db: db}
}

func (r *FeedingsRepo) Create(ctx context.Context, f feedings.Feeding) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO feedings (id, cat_id, feed_date, meal, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`,
		f.ID,
		f.CatID,
		f.Date.UTC(),
		string(f.Meal),
		f.CreatedAt.UTC(),
	)
	return err
}

func (r *FeedingsRepo) ListByCat(ctx context.Context, catID string) ([]feedings.Feeding, error) {
	catID = strings.TrimSpace(catID)
	if catID == "" {
		return []feedings.Feeding{}, nil
	}

	// seq desempata: a igual fecha, orden de inserción (no depende del reloj)
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, cat_id, feed_date, meal, created_at
		FROM feedings
		WHERE cat_id = $1
		ORDER BY feed_date DESC, seq ASC
	`, catID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]feedings.Feeding, 0)
	for rows.Next() {
		var f feedings.Feeding
		var meal string
		if err := rows.Scan(&f.ID, &f.CatID, &f.Date, &meal, &f.CreatedAt); err != nil {
			return nil, err
		}
		f.Meal = feedings.Meal(meal)
		f.Date = f.Date.UTC()
		out = append(out, f)
	}
	return out, rows.Err()
}

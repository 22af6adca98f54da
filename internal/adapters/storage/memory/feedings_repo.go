package memory

import (
	"context"
	"errors"
	"sort"

	"cat-collector/internal/domain/cats"
	"cat-collector/internal/domain/feedings"
)

type feedingRepo struct {
	st *Store
}

func NewFeedingRepo(st *Store) feedings.Repository {
	return &feedingRepo{st: st}
}

func (r *feedingRepo) Create(ctx context.Context, f feedings.Feeding) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if f.ID == "" {
		return errors.New("feeding id required")
	}
	if _, exists := r.st.feedings[f.ID]; exists {
		return errors.New("feeding already exists")
	}
	// FK a cats
	if _, ok := r.st.cats[f.CatID]; !ok {
		return cats.ErrNotFound
	}

	r.st.feedings[f.ID] = feedingRow{f: f, seq: r.st.nextSeq()}
	return nil
}

func (r *feedingRepo) ListByCat(ctx context.Context, catID string) ([]feedings.Feeding, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	rows := make([]feedingRow, 0)
	for _, row := range r.st.feedings {
		if row.f.CatID == catID {
			rows = append(rows, row)
		}
	}

	// Orden por fecha desc; empate -> orden de inserción
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].f.Date.Equal(rows[j].f.Date) {
			return rows[i].f.Date.After(rows[j].f.Date)
		}
		return rows[i].seq < rows[j].seq
	})

	out := make([]feedings.Feeding, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.f)
	}
	return out, nil
}

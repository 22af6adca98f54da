package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"cat-collector/internal/domain/toys"
)

type toyRepo struct {
	st *Store
}

func NewToyRepo(st *Store) toys.Repository {
	return &toyRepo{st: st}
}

func (r *toyRepo) Create(ctx context.Context, t toys.Toy) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if strings.TrimSpace(t.ID) == "" {
		return errors.New("toy id required")
	}
	if _, exists := r.st.toys[t.ID]; exists {
		return errors.New("toy already exists")
	}
	r.st.toys[t.ID] = toyRow{t: t, seq: r.st.nextSeq()}
	return nil
}

func (r *toyRepo) Update(ctx context.Context, t toys.Toy) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	row, exists := r.st.toys[t.ID]
	if !exists {
		return toys.ErrNotFound
	}
	t.CreatedAt = row.t.CreatedAt
	row.t = t
	r.st.toys[t.ID] = row
	return nil
}

func (r *toyRepo) Delete(ctx context.Context, id string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if _, exists := r.st.toys[id]; !exists {
		return toys.ErrNotFound
	}
	delete(r.st.toys, id)
	for _, set := range r.st.catToys {
		delete(set, id)
	}
	return nil
}

func (r *toyRepo) GetByID(ctx context.Context, id string) (toys.Toy, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	row, ok := r.st.toys[id]
	if !ok {
		return toys.Toy{}, toys.ErrNotFound
	}
	return row.t, nil
}

func (r *toyRepo) List(ctx context.Context) ([]toys.Toy, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	rows := make([]toyRow, 0, len(r.st.toys))
	for _, row := range r.st.toys {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].seq < rows[j].seq
	})

	out := make([]toys.Toy, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.t)
	}
	return out, nil
}

package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"cat-collector/internal/domain/cats"
)

type catRepo struct {
	st *Store
}

func NewCatRepo(st *Store) cats.Repository {
	return &catRepo{st: st}
}

func (r *catRepo) Create(ctx context.Context, c cats.Cat) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("cat id required")
	}
	if _, exists := r.st.cats[c.ID]; exists {
		return errors.New("cat already exists")
	}
	r.st.cats[c.ID] = catRow{c: c, seq: r.st.nextSeq()}
	return nil
}

func (r *catRepo) Update(ctx context.Context, c cats.Cat) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	row, exists := r.st.cats[c.ID]
	if !exists {
		return cats.ErrNotFound
	}
	// owner y name no se tocan desde update
	c.OwnerUserID = row.c.OwnerUserID
	c.Name = row.c.Name
	c.CreatedAt = row.c.CreatedAt
	row.c = c
	r.st.cats[c.ID] = row
	return nil
}

func (r *catRepo) Delete(ctx context.Context, id string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if _, exists := r.st.cats[id]; !exists {
		return cats.ErrNotFound
	}
	r.st.deleteCatLocked(id)
	return nil
}

func (r *catRepo) GetByID(ctx context.Context, id string) (cats.Cat, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	row, ok := r.st.cats[id]
	if !ok {
		return cats.Cat{}, cats.ErrNotFound
	}
	return row.c, nil
}

func (r *catRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]cats.Cat, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	rows := make([]catRow, 0)
	for _, row := range r.st.cats {
		if row.c.OwnerUserID == ownerUserID {
			rows = append(rows, row)
		}
	}

	// orden de inserción
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].seq < rows[j].seq
	})

	out := make([]cats.Cat, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.c)
	}
	return out, nil
}

func (r *catRepo) AddToy(ctx context.Context, catID, toyID string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if _, ok := r.st.cats[catID]; !ok {
		return cats.ErrNotFound
	}
	if _, ok := r.st.toys[toyID]; !ok {
		return cats.ErrNotFound
	}

	set, ok := r.st.catToys[catID]
	if !ok {
		set = make(map[string]struct{})
		r.st.catToys[catID] = set
	}
	set[toyID] = struct{}{}
	return nil
}

func (r *catRepo) RemoveToy(ctx context.Context, catID, toyID string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if _, ok := r.st.cats[catID]; !ok {
		return cats.ErrNotFound
	}
	delete(r.st.catToys[catID], toyID)
	return nil
}

func (r *catRepo) ListToyIDs(ctx context.Context, catID string) ([]string, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	set := r.st.catToys[catID]
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}

	// mismo orden que el listado de toys
	sort.Slice(ids, func(i, j int) bool {
		return r.st.toys[ids[i]].seq < r.st.toys[ids[j]].seq
	})
	return ids, nil
}

package memory

import (
	"context"
	"errors"
	"strings"

	"cat-collector/internal/domain/accounts"
)

type accountRepo struct {
	st *Store
}

func NewAccountRepo(st *Store) accounts.Repository {
	return &accountRepo{st: st}
}

func (r *accountRepo) Create(ctx context.Context, a accounts.Account) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("account id required")
	}
	if _, exists := r.st.accounts[a.ID]; exists {
		return errors.New("account already exists")
	}
	for _, existing := range r.st.accounts {
		if existing.Username == a.Username {
			return accounts.ErrUsernameTaken
		}
	}

	r.st.accounts[a.ID] = a
	return nil
}

func (r *accountRepo) GetByID(ctx context.Context, id string) (accounts.Account, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	a, ok := r.st.accounts[id]
	if !ok {
		return accounts.Account{}, accounts.ErrNotFound
	}
	return a, nil
}

func (r *accountRepo) GetByUsername(ctx context.Context, username string) (accounts.Account, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	for _, a := range r.st.accounts {
		if a.Username == username {
			return a, nil
		}
	}
	return accounts.Account{}, accounts.ErrNotFound
}

package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pawtrack/internal/domain/accounts"
)

type accountsRepo struct {
	mu      sync.RWMutex
	byID    map[string]accounts.User
	byEmail map[string]string // email -> id
}

func NewAccountsRepo() accounts.Repository {
	return &accountsRepo{
		byID:    make(map[string]accounts.User),
		byEmail: make(map[string]string),
	}
}

func (r *accountsRepo) Create(ctx context.Context, u accounts.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	if _, exists := r.byID[u.ID]; exists {
		return errors.New("user already exists")
	}
	if _, taken := r.byEmail[u.Email]; taken {
		return accounts.ErrEmailTaken
	}

	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID
	return nil
}

func (r *accountsRepo) FindByID(ctx context.Context, id string) (accounts.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return accounts.User{}, accounts.ErrNotFound
	}
	return u, nil
}

func (r *accountsRepo) FindByEmail(ctx context.Context, email string) (accounts.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return accounts.User{}, accounts.ErrNotFound
	}
	return r.byID[id], nil
}

package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"pawtrack/internal/domain/listings"
)

type listingsRepo struct {
	mu   sync.RWMutex
	byID map[string]listings.Pet
}

func NewListingsRepo() listings.Repository {
	return &listingsRepo{
		byID: make(map[string]listings.Pet),
	}
}

func (r *listingsRepo) Create(ctx context.Context, p listings.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("pet already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *listingsRepo) GetByID(ctx context.Context, id string) (listings.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return listings.Pet{}, listings.ErrNotFound
	}
	return p, nil
}

func (r *listingsRepo) ListByStatus(ctx context.Context, status listings.Status) ([]listings.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]listings.Pet, 0)
	for _, p := range r.byID {
		if p.Status == status {
			out = append(out, p)
		}
	}

	// created_at desc: lo más nuevo primero
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *listingsRepo) MarkAdopted(ctx context.Context, id string, adoptedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return listings.ErrNotFound
	}

	p.Status = listings.StatusAdopted
	p.AdoptedAt = &adoptedAt
	r.byID[id] = p
	return nil
}

func (r *listingsRepo) CountByStatus(ctx context.Context, status listings.Status) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, p := range r.byID {
		if p.Status == status {
			n++
		}
	}
	return n, nil
}

package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/barberdesk/core-service/internal/inventory/dto"
	"github.com/barberdesk/core-service/internal/model"
)

// MemoryRepository keeps products and their movement ledger in maps behind a
// mutex, for tests and single-process dev runs. ApplyMovement writes both
// sides under one lock hold, matching the transactional contract.
type MemoryRepository struct {
	mu        sync.RWMutex
	products  map[string]model.Product
	movements []model.StockMovement
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{products: make(map[string]model.Product)}
}

func (r *MemoryRepository) CreateProduct(_ context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = *p
	return nil
}

func (r *MemoryRepository) GetProduct(_ context.Context, id string) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *MemoryRepository) ListProducts(_ context.Context) ([]model.Product, error) {
	r.mu.RLock()
	items := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		items = append(items, p)
	}
	r.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (r *MemoryRepository) ApplyMovement(_ context.Context, p *model.Product, m *model.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = *p
	r.movements = append(r.movements, *m)
	return nil
}

func (r *MemoryRepository) ListMovements(_ context.Context, f *dto.MovementFilters) ([]model.StockMovement, int, error) {
	r.mu.RLock()
	matched := make([]model.StockMovement, 0, len(r.movements))
	for _, m := range r.movements {
		if f.ProductID != "" && m.ProductID != f.ProductID {
			continue
		}
		if f.Kind != "" && m.Kind != f.Kind {
			continue
		}
		matched = append(matched, m)
	}
	r.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	total := len(matched)
	if f.PageSize > 0 {
		start := (f.Page - 1) * f.PageSize
		if start < 0 {
			start = 0
		}
		if start > total {
			start = total
		}
		end := start + f.PageSize
		if end > total {
			end = total
		}
		matched = matched[start:end]
	}
	return matched, total, nil
}

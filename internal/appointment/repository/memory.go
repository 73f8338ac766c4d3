package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/barberdesk/core-service/internal/model"
)

// MemoryRepository is a mutex-guarded in-memory store used by tests and
// single-process dev runs. List hands out copies under the lock, so one
// aggregation pass always sees a consistent snapshot.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]model.Appointment
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]model.Appointment)}
}

func (r *MemoryRepository) Create(_ context.Context, appt *model.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[appt.ID] = *appt
	return nil
}

func (r *MemoryRepository) Update(_ context.Context, appt *model.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[appt.ID] = *appt
	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*model.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	appt, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &appt, nil
}

func (r *MemoryRepository) List(_ context.Context) ([]model.Appointment, error) {
	r.mu.RLock()
	items := make([]model.Appointment, 0, len(r.items))
	for _, appt := range r.items {
		items = append(items, appt)
	}
	r.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			return items[i].Date < items[j].Date
		}
		if items[i].Time != items[j].Time {
			return items[i].Time < items[j].Time
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

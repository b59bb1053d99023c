package memory

import (
	"context"
	"sync"

	"github.com/commute-heatmap/internal/domain"
	"github.com/commute-heatmap/internal/domain/repository"
	"github.com/commute-heatmap/internal/pkg/errors"
)

// destinationRepository хранит назначения в памяти процесса.
// Порядок создания сохраняется отдельным срезом ID.
type destinationRepository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Destination
	order []string
}

// NewDestinationRepository создает пустой репозиторий назначений
func NewDestinationRepository() repository.DestinationRepository {
	return &destinationRepository{
		byID: make(map[string]*domain.Destination),
	}
}

// GetAll возвращает все назначения в порядке создания
func (r *destinationRepository) GetAll(ctx context.Context) ([]*domain.Destination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Destination, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.byID[id]
		out = append(out, &cp)
	}
	return out, nil
}

// GetByID возвращает назначение по ID
func (r *destinationRepository) GetByID(ctx context.Context, id string) (*domain.Destination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dest, ok := r.byID[id]
	if !ok {
		return nil, errors.ErrDestinationNotFound
	}
	cp := *dest
	return &cp, nil
}

// Create сохраняет новое назначение
func (r *destinationRepository) Create(ctx context.Context, dest *domain.Destination) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[dest.ID]; ok {
		return errors.ErrInternalServer.WithDetails(map[string]interface{}{
			"reason": "duplicate destination id",
		})
	}

	cp := *dest
	r.byID[dest.ID] = &cp
	r.order = append(r.order, dest.ID)
	return nil
}

// Update заменяет существующее назначение, порядок не меняется
func (r *destinationRepository) Update(ctx context.Context, dest *domain.Destination) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[dest.ID]; !ok {
		return errors.ErrDestinationNotFound
	}

	cp := *dest
	r.byID[dest.ID] = &cp
	return nil
}

// Delete удаляет назначение по ID
func (r *destinationRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return errors.ErrDestinationNotFound
	}

	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

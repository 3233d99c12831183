package repository

import (
	"context"
	"errors"
	"slices"
	"sync"

	"marcenaria_site/internal/domain/entities"
	"marcenaria_site/internal/usecase/interfaces"
)

var ErrDuplicateID = errors.New("duplicate id")

// EstimateMemoryRepository keeps estimates in process. Used by the memory storage driver.
type EstimateMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Estimate
}

var _ interfaces.IEstimateRepository = (*EstimateMemoryRepository)(nil)

func NewEstimateMemoryRepository() *EstimateMemoryRepository {
	return &EstimateMemoryRepository{items: make(map[string]entities.Estimate)}
}

func (r *EstimateMemoryRepository) SaveLatest(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
	e.Input.WallWidths = slices.Clone(e.Input.WallWidths)
	e.Result.AdditionalCosts = slices.Clone(e.Result.AdditionalCosts)

	r.mu.Lock()
	r.items[e.SessionID] = e
	r.mu.Unlock()
	return e, nil
}

func (r *EstimateMemoryRepository) GetLatestBySessionID(_ context.Context, sessionID string) (entities.Estimate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[sessionID], nil
}

type ContactMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.ContactRequest
}

var _ interfaces.IContactRepository = (*ContactMemoryRepository)(nil)

func NewContactMemoryRepository() *ContactMemoryRepository {
	return &ContactMemoryRepository{items: make(map[string]entities.ContactRequest)}
}

func (r *ContactMemoryRepository) Create(_ context.Context, c entities.ContactRequest) (entities.ContactRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[c.ID]; ok {
		return entities.ContactRequest{}, ErrDuplicateID
	}
	r.items[c.ID] = c
	return c, nil
}

func (r *ContactMemoryRepository) GetByID(_ context.Context, id string) (entities.ContactRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

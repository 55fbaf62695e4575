package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/custodia-labs/quarry/internal/core/domain"
	"github.com/custodia-labs/quarry/internal/core/ports/driven"
)

// Ensure EntityStore implements the interface.
var _ driven.EntityStore = (*EntityStore)(nil)

// EntityStore is an in-memory implementation of driven.EntityStore.
// Entities are flat value types, so plain copies are enough.
type EntityStore struct {
	mu       sync.RWMutex
	validate *validator.Validate
	entities map[string]domain.Entity
}

// NewEntityStore creates a new in-memory entity store.
func NewEntityStore() *EntityStore {
	return &EntityStore{
		validate: validator.New(),
		entities: make(map[string]domain.Entity),
	}
}

// SaveEntity stores or updates an entity keyed by its unique key.
func (s *EntityStore) SaveEntity(_ context.Context, entity *domain.Entity) error {
	if entity == nil {
		return domain.ErrInvalidInput
	}
	if err := s.validate.Struct(entity); err != nil {
		return fmt.Errorf("entity rejected: %v: %w", err, domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entities[entity.Key] = *entity
	return nil
}

// GetEntity retrieves an entity by key.
func (s *EntityStore) GetEntity(_ context.Context, key string) (*domain.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entity, ok := s.entities[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &entity, nil
}

// DeleteEntity removes an entity. Deleting an unknown key is a no-op.
func (s *EntityStore) DeleteEntity(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entities, key)
	return nil
}

// ListEntities returns entities ordered by key, restricted to kind when
// one is given.
func (s *EntityStore) ListEntities(_ context.Context, kind domain.EntityKind) ([]domain.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Entity, 0, len(s.entities))
	for _, entity := range s.entities {
		if kind != "" && entity.Kind != kind {
			continue
		}
		result = append(result, entity)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})
	return result, nil
}

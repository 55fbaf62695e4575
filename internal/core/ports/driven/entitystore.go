package driven

import (
	"context"

	"github.com/custodia-labs/quarry/internal/core/domain"
)

// EntityStore persists canonical entities and resolves occurrence keys
// back to full entity data. Uniqueness of entity keys is enforced here.
type EntityStore interface {
	// SaveEntity stores or updates an entity keyed by its Key.
	SaveEntity(ctx context.Context, entity *domain.Entity) error

	// GetEntity retrieves an entity by key.
	GetEntity(ctx context.Context, key string) (*domain.Entity, error)

	// DeleteEntity removes an entity.
	DeleteEntity(ctx context.Context, key string) error

	// ListEntities returns entities ordered by key. A non-zero kind
	// restricts the listing to that kind.
	ListEntities(ctx context.Context, kind domain.EntityKind) ([]domain.Entity, error)
}

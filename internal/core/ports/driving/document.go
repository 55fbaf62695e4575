package driving

import (
	"context"

	"github.com/custodia-labs/quarry/internal/core/domain"
)

// DocumentService manages the document lifecycle around the pipeline.
type DocumentService interface {
	// Create registers a new document. A zero CreatedAt is stamped with
	// the current time. The stored handle is returned.
	Create(ctx context.Context, doc *domain.Document) (*domain.Document, error)

	// Get retrieves a document by ID.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// List returns all documents ordered by ID.
	List(ctx context.Context) ([]domain.Document, error)

	// Delete removes a document and its chunks.
	Delete(ctx context.Context, id string) error

	// Save persists the current in-memory state of a document. Pipeline
	// callers chain this after recording stage results.
	Save(ctx context.Context, doc *domain.Document) error
}

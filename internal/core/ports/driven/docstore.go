package driven

import (
	"context"

	"github.com/custodia-labs/quarry/internal/core/domain"
)

// DocumentStore persists documents and the chunks carved from them.
// Uniqueness of document IDs is enforced here, not in the domain.
type DocumentStore interface {
	// SaveDocument stores or updates a document keyed by its ID.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// DeleteDocument removes a document and its chunks.
	DeleteDocument(ctx context.Context, id string) error

	// ListDocuments returns all documents ordered by ID.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// SaveChunks stores chunks for a document, replacing any chunk that
	// shares an ID.
	SaveChunks(ctx context.Context, chunks []domain.Chunk) error

	// GetChunks retrieves all chunks for a document ordered by token
	// offset.
	GetChunks(ctx context.Context, documentID string) ([]domain.Chunk, error)

	// GetChunk retrieves a specific chunk by ID.
	GetChunk(ctx context.Context, id string) (*domain.Chunk, error)
}

package driving

import (
	"context"

	"github.com/custodia-labs/quarry/internal/core/domain"
)

// ChunkService carves documents into token-range chunks with entity
// occurrences re-based to chunk-local offsets.
type ChunkService interface {
	// Build produces the chunk covering tokens [from, to) of doc. text
	// is the caller's human-readable rendition of the range; it is
	// stored verbatim and never derived or checked internally.
	Build(ctx context.Context, doc *domain.Document, from, to int, text string) (*domain.Chunk, error)

	// BuildSentences produces one chunk per sentence using the
	// document's sentence boundaries. The chunks partition the token
	// sequence in order.
	BuildSentences(ctx context.Context, doc *domain.Document) ([]domain.Chunk, error)

	// Materialize loads a document by ID, carves it into sentence chunks
	// and persists them. The persisted chunks are returned in document
	// order.
	Materialize(ctx context.Context, documentID string) ([]domain.Chunk, error)
}

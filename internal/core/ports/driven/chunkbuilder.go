package driven

import (
	"context"

	"github.com/custodia-labs/quarry/internal/core/domain"
)

// ChunkBuilder carves token ranges of a document into chunks with entity
// occurrences re-based to chunk-local offsets. Implemented by the chunker
// package.
type ChunkBuilder interface {
	// Build produces the chunk covering tokens [from, to) of doc. text
	// is stored verbatim as the chunk's human-readable rendition.
	Build(ctx context.Context, doc *domain.Document, from, to int, text string) (*domain.Chunk, error)

	// BuildSentences produces one chunk per sentence using the
	// document's sentence boundaries.
	BuildSentences(ctx context.Context, doc *domain.Document) ([]domain.Chunk, error)
}

package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/quarry/internal/core/domain"
	"github.com/custodia-labs/quarry/internal/core/ports/driven"
	"github.com/custodia-labs/quarry/internal/core/ports/driving"
	"github.com/custodia-labs/quarry/internal/logger"
)

// Ensure ChunkService implements the interface.
var _ driving.ChunkService = (*ChunkService)(nil)

// ChunkService carves documents into chunks and persists the results.
type ChunkService struct {
	builder  driven.ChunkBuilder
	docStore driven.DocumentStore
}

// NewChunkService creates a new chunk service.
func NewChunkService(builder driven.ChunkBuilder, docStore driven.DocumentStore) *ChunkService {
	return &ChunkService{
		builder:  builder,
		docStore: docStore,
	}
}

// Build produces the chunk covering tokens [from, to) of doc.
func (s *ChunkService) Build(ctx context.Context, doc *domain.Document, from, to int, text string) (*domain.Chunk, error) {
	return s.builder.Build(ctx, doc, from, to, text)
}

// BuildSentences produces one chunk per sentence of doc.
func (s *ChunkService) BuildSentences(ctx context.Context, doc *domain.Document) ([]domain.Chunk, error) {
	return s.builder.BuildSentences(ctx, doc)
}

// Materialize loads a document by ID, carves it into sentence chunks and
// persists them. Chunk IDs are deterministic, so re-materializing an
// unchanged document overwrites its earlier chunks instead of stacking
// duplicates.
func (s *ChunkService) Materialize(ctx context.Context, documentID string) ([]domain.Chunk, error) {
	logger.Section("Chunk Materialization")
	logger.Debug("Document: %s", documentID)

	doc, err := s.docStore.GetDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("loading document %q: %w", documentID, err)
	}

	chunks, err := s.builder.BuildSentences(ctx, doc)
	if err != nil {
		logger.Warn("Sentence chunking failed: %v", err)
		return nil, err
	}
	logger.Debug("Built %d sentence chunks", len(chunks))

	if len(chunks) > 0 {
		if err := s.docStore.SaveChunks(ctx, chunks); err != nil {
			return nil, fmt.Errorf("saving chunks for %q: %w", documentID, err)
		}
	}

	logger.Info("Materialized %d chunks for document %s", len(chunks), documentID)
	return chunks, nil
}

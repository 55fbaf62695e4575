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

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
// Documents are validated on save and deep-copied on the way in and out,
// so callers can keep mutating their handles while chunking reads an
// earlier snapshot.
type DocumentStore struct {
	mu        sync.RWMutex
	validate  *validator.Validate
	documents map[string]*domain.Document
	chunks    map[string]map[string]domain.Chunk
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		validate:  validator.New(),
		documents: make(map[string]*domain.Document),
		chunks:    make(map[string]map[string]domain.Chunk),
	}
}

// SaveDocument stores or updates a document keyed by its ID.
func (s *DocumentStore) SaveDocument(_ context.Context, doc *domain.Document) error {
	if doc == nil {
		return domain.ErrInvalidInput
	}
	if err := s.validate.Struct(doc); err != nil {
		return fmt.Errorf("document rejected: %v: %w", err, domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[doc.ID] = doc.Clone()
	return nil
}

// GetDocument retrieves a document by ID.
func (s *DocumentStore) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return doc.Clone(), nil
}

// DeleteDocument removes a document and its chunks. Deleting an unknown
// document is a no-op.
func (s *DocumentStore) DeleteDocument(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, id)
	delete(s.chunks, id)
	return nil
}

// ListDocuments returns all documents ordered by ID.
func (s *DocumentStore) ListDocuments(_ context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Document, 0, len(s.documents))
	for _, doc := range s.documents {
		result = append(result, *doc.Clone())
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// SaveChunks stores chunks keyed by their deterministic IDs. A chunk
// sharing an ID with a stored one replaces it, so re-materializing a
// document does not accumulate duplicates.
func (s *DocumentStore) SaveChunks(_ context.Context, chunks []domain.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, chunk := range chunks {
		if chunk.DocumentID == "" {
			return fmt.Errorf("chunk %q has no document: %w", chunk.ID, domain.ErrValidation)
		}
		byID, ok := s.chunks[chunk.DocumentID]
		if !ok {
			byID = make(map[string]domain.Chunk)
			s.chunks[chunk.DocumentID] = byID
		}
		byID[chunk.ID] = copyChunk(chunk)
	}
	return nil
}

// GetChunks retrieves all chunks for a document ordered by token offset.
func (s *DocumentStore) GetChunks(_ context.Context, documentID string) ([]domain.Chunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	byID, ok := s.chunks[documentID]
	if !ok {
		return nil, nil
	}
	result := make([]domain.Chunk, 0, len(byID))
	for _, chunk := range byID {
		result = append(result, copyChunk(chunk))
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Offset != result[j].Offset {
			return result[i].Offset < result[j].Offset
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// GetChunk retrieves a specific chunk by ID.
func (s *DocumentStore) GetChunk(_ context.Context, id string) (*domain.Chunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, byID := range s.chunks {
		if chunk, ok := byID[id]; ok {
			out := copyChunk(chunk)
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

// copyChunk deep-copies a chunk so stored state never shares backing
// arrays with caller-held slices.
func copyChunk(chunk domain.Chunk) domain.Chunk {
	out := chunk
	if chunk.Tokens != nil {
		out.Tokens = make([]string, len(chunk.Tokens))
		copy(out.Tokens, chunk.Tokens)
	}
	if chunk.Tags != nil {
		out.Tags = make([]string, len(chunk.Tags))
		copy(out.Tags, chunk.Tags)
	}
	if chunk.Entities != nil {
		out.Entities = make([]domain.ChunkEntity, len(chunk.Entities))
		copy(out.Entities, chunk.Entities)
	}
	return out
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/quarry/internal/core/domain"
	"github.com/custodia-labs/quarry/internal/core/ports/driven"
	"github.com/custodia-labs/quarry/internal/core/ports/driving"
	"github.com/custodia-labs/quarry/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService manages the document lifecycle around the pipeline.
type DocumentService struct {
	docStore driven.DocumentStore
}

// NewDocumentService creates a new document service.
func NewDocumentService(docStore driven.DocumentStore) *DocumentService {
	return &DocumentService{docStore: docStore}
}

// Create registers a new document. A zero CreatedAt is stamped with the
// current time.
func (s *DocumentService) Create(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
	if doc == nil {
		return nil, domain.ErrInvalidInput
	}
	if doc.ID == "" {
		return nil, fmt.Errorf("document needs an identifier: %w", domain.ErrInvalidInput)
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now()
	}

	if err := s.docStore.SaveDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to save document: %w", err)
	}

	logger.Debug("Created document %s", doc.ID)
	return doc, nil
}

// Get retrieves a document by ID.
func (s *DocumentService) Get(ctx context.Context, id string) (*domain.Document, error) {
	return s.docStore.GetDocument(ctx, id)
}

// List returns all documents ordered by ID.
func (s *DocumentService) List(ctx context.Context) ([]domain.Document, error) {
	return s.docStore.ListDocuments(ctx)
}

// Delete removes a document and its chunks.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	if err := s.docStore.DeleteDocument(ctx, id); err != nil {
		return err
	}
	logger.Debug("Deleted document %s", id)
	return nil
}

// Save persists the current in-memory state of a document. Pipeline
// callers chain this after recording stage results.
func (s *DocumentService) Save(ctx context.Context, doc *domain.Document) error {
	if doc == nil || doc.ID == "" {
		return domain.ErrInvalidInput
	}
	return s.docStore.SaveDocument(ctx, doc)
}

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quarry/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/quarry/internal/chunker"
	"github.com/custodia-labs/quarry/internal/core/domain"
)

// mockChunkBuilder lets tests inject builder failures and inspect calls.
type mockChunkBuilder struct {
	buildCalls     int
	sentencesCalls int
	chunk          *domain.Chunk
	chunks         []domain.Chunk
	err            error
}

func (m *mockChunkBuilder) Build(_ context.Context, _ *domain.Document, _, _ int, _ string) (*domain.Chunk, error) {
	m.buildCalls++
	if m.err != nil {
		return nil, m.err
	}
	return m.chunk, nil
}

func (m *mockChunkBuilder) BuildSentences(_ context.Context, _ *domain.Document) ([]domain.Chunk, error) {
	m.sentencesCalls++
	if m.err != nil {
		return nil, m.err
	}
	return m.chunks, nil
}

// setupChunkService wires a real builder against in-memory stores.
func setupChunkService(t *testing.T) (*ChunkService, *memory.DocumentStore, *memory.EntityStore) {
	t.Helper()
	docStore := memory.NewDocumentStore()
	entityStore := memory.NewEntityStore()
	svc := NewChunkService(chunker.New(entityStore), docStore)
	return svc, docStore, entityStore
}

// segmentedDocument returns a two-sentence document ready for chunking.
func segmentedDocument() *domain.Document {
	done := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Document{
		ID:        "doc-1",
		Text:      "John visited Paris . He left .",
		Tokens:    []string{"John", "visited", "Paris", ".", "He", "left", "."},
		Offsets:   []int{0, 5, 13, 19, 21, 24, 29},
		Tags:      []string{"NNP", "VBD", "NNP", ".", "PRP", "VBD", "."},
		Sentences: []int{0, 4, 7},
		Entities: []domain.EntityOccurrence{
			{EntityKey: "per-john", Offset: 0, Alias: "John"},
			{EntityKey: "loc-paris", Offset: 2, Alias: "Paris"},
		},
		Preprocessed: map[domain.Stage]time.Time{
			domain.StageTokenization: done,
			domain.StageSegmentation: done,
			domain.StageTagging:      done,
			domain.StageNERC:         done,
		},
	}
}

func seedEntities(t *testing.T, store *memory.EntityStore) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, store.SaveEntity(ctx, &domain.Entity{
		Key:           "per-john",
		CanonicalForm: "John Smith",
		Kind:          domain.EntityKindPerson,
	}))
	require.NoError(t, store.SaveEntity(ctx, &domain.Entity{
		Key:           "loc-paris",
		CanonicalForm: "Paris",
		Kind:          domain.EntityKindLocation,
	}))
}

func TestNewChunkService(t *testing.T) {
	svc, _, _ := setupChunkService(t)
	require.NotNil(t, svc)
}

func TestChunkService_Build(t *testing.T) {
	svc, _, entityStore := setupChunkService(t)
	seedEntities(t, entityStore)
	ctx := context.Background()

	chunk, err := svc.Build(ctx, segmentedDocument(), 0, 4, "John visited Paris .")

	require.NoError(t, err)
	assert.Equal(t, "doc-1", chunk.DocumentID)
	assert.Equal(t, "John visited Paris .", chunk.Text)
	assert.Equal(t, 0, chunk.Offset)
	assert.Equal(t, []string{"John", "visited", "Paris", "."}, chunk.Tokens)
	require.Len(t, chunk.Entities, 2)
	assert.Equal(t, "John Smith", chunk.Entities[0].CanonicalForm)
	assert.Equal(t, 2, chunk.Entities[1].Offset)
}

func TestChunkService_BuildSentences(t *testing.T) {
	svc, _, entityStore := setupChunkService(t)
	seedEntities(t, entityStore)
	ctx := context.Background()

	chunks, err := svc.BuildSentences(ctx, segmentedDocument())

	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, 0, chunks[0].Offset)
	assert.Equal(t, 4, chunks[1].Offset)
	assert.Len(t, chunks[0].Entities, 2)
	assert.Empty(t, chunks[1].Entities)
}

func TestChunkService_Materialize(t *testing.T) {
	svc, docStore, entityStore := setupChunkService(t)
	seedEntities(t, entityStore)
	ctx := context.Background()

	require.NoError(t, docStore.SaveDocument(ctx, segmentedDocument()))

	chunks, err := svc.Materialize(ctx, "doc-1")

	require.NoError(t, err)
	require.Len(t, chunks, 2)

	// Chunks are persisted, in document order
	saved, err := docStore.GetChunks(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, chunks[0].ID, saved[0].ID)
	assert.Equal(t, chunks[1].ID, saved[1].ID)
	assert.Equal(t, "John visited Paris .", saved[0].Text)
	assert.Equal(t, "He left .", saved[1].Text)
}

func TestChunkService_Materialize_Idempotent(t *testing.T) {
	svc, docStore, entityStore := setupChunkService(t)
	seedEntities(t, entityStore)
	ctx := context.Background()

	require.NoError(t, docStore.SaveDocument(ctx, segmentedDocument()))

	first, err := svc.Materialize(ctx, "doc-1")
	require.NoError(t, err)

	second, err := svc.Materialize(ctx, "doc-1")
	require.NoError(t, err)

	// Deterministic IDs keep re-runs from stacking duplicates
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, first[1].ID, second[1].ID)

	saved, err := docStore.GetChunks(ctx, "doc-1")
	require.NoError(t, err)
	assert.Len(t, saved, 2)
}

func TestChunkService_Materialize_DocumentNotFound(t *testing.T) {
	svc, _, _ := setupChunkService(t)
	ctx := context.Background()

	_, err := svc.Materialize(ctx, "nonexistent")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestChunkService_Materialize_RequiresSegmentation(t *testing.T) {
	svc, docStore, _ := setupChunkService(t)
	ctx := context.Background()

	doc := segmentedDocument()
	delete(doc.Preprocessed, domain.StageSegmentation)
	require.NoError(t, docStore.SaveDocument(ctx, doc))

	_, err := svc.Materialize(ctx, "doc-1")

	assert.ErrorIs(t, err, domain.ErrStageIncomplete)
}

func TestChunkService_Materialize_EmptyDocument(t *testing.T) {
	svc, docStore, _ := setupChunkService(t)
	ctx := context.Background()

	done := time.Now()
	require.NoError(t, docStore.SaveDocument(ctx, &domain.Document{
		ID:        "doc-empty",
		Sentences: []int{0},
		Preprocessed: map[domain.Stage]time.Time{
			domain.StageSegmentation: done,
		},
	}))

	chunks, err := svc.Materialize(ctx, "doc-empty")

	require.NoError(t, err)
	assert.Empty(t, chunks)

	saved, err := docStore.GetChunks(ctx, "doc-empty")
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestChunkService_Materialize_BuilderError(t *testing.T) {
	docStore := memory.NewDocumentStore()
	builderErr := errors.New("builder exploded")
	builder := &mockChunkBuilder{err: builderErr}
	svc := NewChunkService(builder, docStore)
	ctx := context.Background()

	require.NoError(t, docStore.SaveDocument(ctx, &domain.Document{ID: "doc-1"}))

	_, err := svc.Materialize(ctx, "doc-1")

	assert.ErrorIs(t, err, builderErr)
	assert.Equal(t, 1, builder.sentencesCalls)

	// Nothing was persisted
	saved, getErr := docStore.GetChunks(ctx, "doc-1")
	require.NoError(t, getErr)
	assert.Empty(t, saved)
}

func TestChunkService_Delegation(t *testing.T) {
	builder := &mockChunkBuilder{
		chunk:  &domain.Chunk{ID: "chunk-1"},
		chunks: []domain.Chunk{{ID: "chunk-1"}, {ID: "chunk-2"}},
	}
	svc := NewChunkService(builder, memory.NewDocumentStore())
	ctx := context.Background()
	doc := &domain.Document{ID: "doc-1"}

	chunk, err := svc.Build(ctx, doc, 0, 1, "text")
	require.NoError(t, err)
	assert.Equal(t, "chunk-1", chunk.ID)
	assert.Equal(t, 1, builder.buildCalls)

	chunks, err := svc.BuildSentences(ctx, doc)
	require.NoError(t, err)
	assert.Len(t, chunks, 2)
	assert.Equal(t, 1, builder.sentencesCalls)
}

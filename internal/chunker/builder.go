// Package chunker carves documents into token-range chunks with entity
// occurrences re-based to chunk-local offsets.
package chunker

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/quarry/internal/core/domain"
	"github.com/custodia-labs/quarry/internal/core/ports/driven"
	"github.com/custodia-labs/quarry/internal/interval"
)

// chunkNamespace scopes deterministic chunk IDs. Building the same token
// range of the same document always yields the same ID, so re-runs
// overwrite their earlier output instead of accumulating duplicates.
var chunkNamespace = uuid.MustParse("7ab6e2a4-3f0d-4c11-9b52-8e41d6a0c7fe")

// Ensure Builder implements the driven port.
var _ driven.ChunkBuilder = (*Builder)(nil)

// Builder carves chunks out of documents. Occurrence keys are resolved to
// full entity data through the entity store, one lookup per occurrence.
type Builder struct {
	entities driven.EntityStore
}

// New creates a builder that resolves occurrences against entities.
func New(entities driven.EntityStore) *Builder {
	return &Builder{entities: entities}
}

// Build produces the chunk covering tokens [from, to) of doc. text is the
// caller's human-readable rendition of the range; it is stored verbatim.
// The chunk owns copies of its token and tag sub-sequences and carries
// exactly the occurrences whose offsets fall inside [from, to), in
// document order, with offsets re-based to the chunk start.
func (b *Builder) Build(ctx context.Context, doc *domain.Document, from, to int, text string) (*domain.Chunk, error) {
	if doc == nil {
		return nil, domain.ErrInvalidInput
	}
	if from < 0 || to < from || to > len(doc.Tokens) {
		return nil, fmt.Errorf("chunk range [%d, %d) over %d tokens: %w",
			from, to, len(doc.Tokens), domain.ErrInvalidRange)
	}

	tokens := make([]string, to-from)
	copy(tokens, doc.Tokens[from:to])

	// Documents that were never tagged keep Tags shorter than Tokens;
	// clamp instead of slicing past the end.
	tl, tr := min(from, len(doc.Tags)), min(to, len(doc.Tags))
	tags := make([]string, tr-tl)
	copy(tags, doc.Tags[tl:tr])

	l, r, err := interval.Bounds(doc.Entities, from, to,
		func(occ domain.EntityOccurrence) int { return occ.Offset })
	if err != nil {
		return nil, fmt.Errorf("locating occurrences in [%d, %d): %w", from, to, err)
	}

	projections := make([]domain.ChunkEntity, 0, r-l)
	for _, occ := range doc.Entities[l:r] {
		entity, err := b.entities.GetEntity(ctx, occ.EntityKey)
		if err != nil {
			return nil, fmt.Errorf("resolving entity %q: %w", occ.EntityKey, err)
		}
		projections = append(projections, domain.ChunkEntity{
			Key:           entity.Key,
			CanonicalForm: entity.CanonicalForm,
			Kind:          entity.Kind,
			Offset:        occ.Offset - from,
			Alias:         occ.Alias,
		})
	}

	return &domain.Chunk{
		ID:         chunkID(doc.ID, from, to),
		DocumentID: doc.ID,
		Text:       text,
		Offset:     from,
		Tokens:     tokens,
		Tags:       tags,
		Entities:   projections,
	}, nil
}

// BuildSentences produces one chunk per sentence using the document's
// sentence boundaries. The chunks partition the token sequence in order.
// Documents whose segmentation stage never ran cannot be partitioned.
func (b *Builder) BuildSentences(ctx context.Context, doc *domain.Document) ([]domain.Chunk, error) {
	if doc == nil {
		return nil, domain.ErrInvalidInput
	}
	if !doc.StageDone(domain.StageSegmentation) {
		return nil, fmt.Errorf("segmentation of document %q: %w",
			doc.ID, domain.ErrStageIncomplete)
	}

	chunks := make([]domain.Chunk, 0, max(len(doc.Sentences)-1, 0))
	for i := 0; i+1 < len(doc.Sentences); i++ {
		from, to := doc.Sentences[i], doc.Sentences[i+1]
		chunk, err := b.Build(ctx, doc, from, to, sentenceText(doc, from, to))
		if err != nil {
			return nil, fmt.Errorf("sentence %d: %w", i, err)
		}
		chunks = append(chunks, *chunk)
	}
	return chunks, nil
}

// sentenceText renders tokens [from, to) from the raw text when the
// per-token offsets allow it, falling back to joining tokens with spaces.
func sentenceText(doc *domain.Document, from, to int) string {
	if text, ok := doc.TokenSpan(from, to); ok {
		return text
	}
	if from < 0 || to > len(doc.Tokens) || from > to {
		return ""
	}
	return strings.Join(doc.Tokens[from:to], " ")
}

// chunkID derives the deterministic identity of one token range of one
// document.
func chunkID(documentID string, from, to int) string {
	name := fmt.Sprintf("%s:%d:%d", documentID, from, to)
	return uuid.NewSHA1(chunkNamespace, []byte(name)).String()
}

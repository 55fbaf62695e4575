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

// Ensure PreprocessService implements the interface.
var _ driving.PreprocessService = (*PreprocessService)(nil)

// PreprocessService records pipeline stage results on documents.
type PreprocessService struct {
	docStore driven.DocumentStore
}

// NewPreprocessService creates a new preprocess service. The document
// store backs Apply only; SetResult never persists.
func NewPreprocessService(docStore driven.DocumentStore) *PreprocessService {
	return &PreprocessService{docStore: docStore}
}

// SetResult validates result against the stage's structural rules and
// records it on the document together with a completion timestamp.
// Re-running a stage replaces both. The mutated document is returned so
// callers can chain a save.
func (s *PreprocessService) SetResult(doc *domain.Document, stage domain.Stage, result any) (*domain.Document, error) {
	if doc == nil {
		return nil, domain.ErrInvalidInput
	}
	if !stage.IsValid() {
		return nil, fmt.Errorf("stage %q: %w", stage, domain.ErrInvalidStage)
	}

	switch stage {
	case domain.StageTokenization:
		if err := applyTokenization(doc, result); err != nil {
			return nil, err
		}
	case domain.StageSegmentation:
		if err := applySegmentation(doc, result); err != nil {
			return nil, err
		}
	case domain.StageTagging:
		if err := applyTagging(doc, result); err != nil {
			return nil, err
		}
	case domain.StageNERC:
		// NERC findings land on the document as entity occurrences;
		// the stage itself carries no result field.
		if result != nil {
			return nil, fmt.Errorf("nerc stage takes no result: %w", domain.ErrValidation)
		}
	}

	if doc.Preprocessed == nil {
		doc.Preprocessed = make(map[domain.Stage]time.Time)
	}
	doc.Preprocessed[stage] = time.Now()

	logger.Debug("Recorded %s on document %s", stage, doc.ID)
	return doc, nil
}

// Result returns the stored result for the stage and whether the stage
// has completed. A never-run stage returns (nil, false); callers tell
// "not yet run" apart from "ran and produced nothing" only through the
// boolean.
func (s *PreprocessService) Result(doc *domain.Document, stage domain.Stage) (any, bool) {
	if doc == nil || !doc.StageDone(stage) {
		return nil, false
	}
	switch stage {
	case domain.StageTokenization:
		return doc.Tokens, true
	case domain.StageSegmentation:
		return doc.Sentences, true
	case domain.StageTagging:
		return doc.Tags, true
	default:
		// NERC completion carries no stored field.
		return nil, true
	}
}

// WasDone reports whether the stage has completed for the document.
func (s *PreprocessService) WasDone(doc *domain.Document, stage domain.Stage) bool {
	return doc != nil && doc.StageDone(stage)
}

// Apply loads the document by ID, records the stage result and saves the
// document back in one step.
func (s *PreprocessService) Apply(ctx context.Context, documentID string, stage domain.Stage, result any) (*domain.Document, error) {
	doc, err := s.docStore.GetDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("loading document %q: %w", documentID, err)
	}
	if _, err := s.SetResult(doc, stage, result); err != nil {
		return nil, fmt.Errorf("preprocessing document %q: %w", documentID, err)
	}
	if err := s.docStore.SaveDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("saving document %q: %w", documentID, err)
	}

	logger.Info("Applied %s to document %s", stage, documentID)
	return doc, nil
}

// applyTokenization accepts either a bare token list or a TokenizedText
// carrying per-token byte offsets. It establishes the token count that
// later stages validate against.
func applyTokenization(doc *domain.Document, result any) error {
	switch r := result.(type) {
	case []string:
		// A bare token list carries no positions; stale offsets from an
		// earlier run must not outlive the tokens they indexed.
		doc.Tokens = r
		doc.Offsets = nil
	case domain.TokenizedText:
		if r.Offsets != nil && len(r.Offsets) != len(r.Tokens) {
			return fmt.Errorf("tokenization has %d offsets for %d tokens: %w",
				len(r.Offsets), len(r.Tokens), domain.ErrCardinality)
		}
		doc.Tokens = r.Tokens
		doc.Offsets = r.Offsets
	default:
		return fmt.Errorf("tokenization result must be []string or TokenizedText, got %T: %w",
			result, domain.ErrValidation)
	}
	return nil
}

// applySegmentation checks the sentence boundary rules in order: element
// type, sortedness, uniqueness, endpoints. The first broken rule is
// reported.
func applySegmentation(doc *domain.Document, result any) error {
	boundaries, ok := result.([]int)
	if !ok {
		return fmt.Errorf("segmentation result must be []int, got %T: %w",
			result, domain.ErrValidation)
	}
	for i := 1; i < len(boundaries); i++ {
		if boundaries[i] < boundaries[i-1] {
			return fmt.Errorf("segmentation result is not sorted: %w", domain.ErrValidation)
		}
	}
	for i := 1; i < len(boundaries); i++ {
		if boundaries[i] == boundaries[i-1] {
			return fmt.Errorf("segmentation result repeats offset %d: %w",
				boundaries[i], domain.ErrValidation)
		}
	}
	if len(boundaries) == 0 || boundaries[0] != 0 || boundaries[len(boundaries)-1] != len(doc.Tokens) {
		return fmt.Errorf("segmentation result must start at 0 and end at the token count %d: %w",
			len(doc.Tokens), domain.ErrValidation)
	}
	doc.Sentences = boundaries
	return nil
}

// applyTagging checks the one-tag-per-token cardinality rule.
func applyTagging(doc *domain.Document, result any) error {
	tags, ok := result.([]string)
	if !ok {
		return fmt.Errorf("tagging result must be []string, got %T: %w",
			result, domain.ErrValidation)
	}
	if len(tags) != len(doc.Tokens) {
		return fmt.Errorf("tagging result has %d tags for %d tokens: %w",
			len(tags), len(doc.Tokens), domain.ErrCardinality)
	}
	doc.Tags = tags
	return nil
}

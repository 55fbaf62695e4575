package driving

import (
	"context"

	"github.com/custodia-labs/quarry/internal/core/domain"
)

// PreprocessService records pipeline stage results on documents after
// checking them against the stage's structural rules.
type PreprocessService interface {
	// SetResult validates result and records it on the document together
	// with a completion timestamp. Re-running a stage replaces both. The
	// mutated document is returned so callers can chain a save; SetResult
	// itself never persists.
	//
	// Expected result types per stage: []string or domain.TokenizedText
	// for tokenization, []int for segmentation, []string for tagging,
	// nil for nerc.
	SetResult(doc *domain.Document, stage domain.Stage, result any) (*domain.Document, error)

	// Result returns the stored result for the stage and whether the
	// stage has completed. A completed stage with an empty result returns
	// (empty, true); a never-run stage returns (nil, false). Callers tell
	// the two apart only through the boolean.
	Result(doc *domain.Document, stage domain.Stage) (any, bool)

	// WasDone reports whether the stage has completed for the document.
	WasDone(doc *domain.Document, stage domain.Stage) bool

	// Apply is SetResult against a stored document: it loads the
	// document by ID, records the stage result and saves the document
	// back in one step.
	Apply(ctx context.Context, documentID string, stage domain.Stage, result any) (*domain.Document, error)
}

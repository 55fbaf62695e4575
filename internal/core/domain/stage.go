package domain

// Stage identifies one phase of the preprocessing pipeline.
type Stage string

// Pipeline stages in their customary execution order. The order is not
// enforced here; orchestrators decide when each stage runs.
const (
	// StageTokenization splits raw text into the token sequence.
	StageTokenization Stage = "tokenization"

	// StageSegmentation marks the token offsets where sentences start.
	StageSegmentation Stage = "segmentation"

	// StageTagging assigns one part-of-speech tag per token.
	StageTagging Stage = "tagging"

	// StageNERC recognises and classifies named entities. Its findings are
	// recorded as entity occurrences on the document rather than through a
	// result field, so only its completion is tracked.
	StageNERC Stage = "nerc"
)

// IsValid returns true if the stage is recognised.
func (s Stage) IsValid() bool {
	switch s {
	case StageTokenization, StageSegmentation, StageTagging, StageNERC:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s Stage) String() string {
	return string(s)
}

// Description returns a human-readable description of the stage.
func (s Stage) Description() string {
	switch s {
	case StageTokenization:
		return "Split text into tokens"
	case StageSegmentation:
		return "Mark sentence boundaries"
	case StageTagging:
		return "Assign part-of-speech tags"
	case StageNERC:
		return "Recognise and classify named entities"
	default:
		return "Unknown stage"
	}
}

// TokenizedText is a tokenization result that carries per-token byte
// offsets alongside the tokens. A plain []string result sets tokens only.
type TokenizedText struct {
	// Tokens is the token sequence.
	Tokens []string

	// Offsets holds the byte offset of each token within the document
	// text. Parallel to Tokens.
	Offsets []int
}

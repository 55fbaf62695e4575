package domain

import (
	"sort"
	"time"
)

// Document represents a text document travelling the preprocessing
// pipeline. It owns the token-indexed sequences the stages produce and the
// sorted list of entity occurrences discovered in it.
type Document struct {
	// ID is the human-facing unique identifier. Uniqueness is enforced
	// by the document store, not here.
	ID string `validate:"required"`

	// Title is the human-readable title.
	Title string

	// URL is the original location of the document, if any.
	URL string `validate:"omitempty,url"`

	// Text is the raw text the pipeline stages consume.
	Text string

	// Metadata contains arbitrary key-value pairs. The core never reads
	// them; they travel with the document for its owners.
	Metadata map[string]any

	// CreatedAt is when the document entered the system.
	CreatedAt time.Time

	// Tokens is the token sequence. Position in the slice is the token
	// offset used throughout the pipeline.
	Tokens []string

	// Offsets holds the byte offset of each token within Text.
	// Parallel to Tokens.
	Offsets []int

	// Tags holds one part-of-speech tag per token. Parallel to Tokens.
	Tags []string

	// Sentences holds the token offsets where sentences start, strictly
	// increasing, beginning at 0 and ending at len(Tokens).
	Sentences []int

	// Entities holds the entity occurrences discovered in the document,
	// sorted by Offset ascending. InsertOccurrence keeps the order.
	Entities []EntityOccurrence `validate:"dive"`

	// Preprocessed maps each completed stage to its completion time.
	// A stage is done iff its key is present.
	Preprocessed map[Stage]time.Time
}

// StageDone returns true if the given stage has completed for the document.
func (d *Document) StageDone(stage Stage) bool {
	_, ok := d.Preprocessed[stage]
	return ok
}

// InsertOccurrence inserts occ into Entities keeping the offset-ascending
// order. Equal offsets insert after existing ones, so repeated mentions at
// one offset keep their arrival order.
func (d *Document) InsertOccurrence(occ EntityOccurrence) {
	i := sort.Search(len(d.Entities), func(i int) bool {
		return d.Entities[i].Offset > occ.Offset
	})
	d.Entities = append(d.Entities, EntityOccurrence{})
	copy(d.Entities[i+1:], d.Entities[i:])
	d.Entities[i] = occ
}

// TokenSpan returns the slice of Text covered by tokens [from, to), derived
// from the per-token byte offsets. ok is false when the range is empty or
// reversed, when the offsets are missing, or when the derived span falls
// outside Text.
func (d *Document) TokenSpan(from, to int) (text string, ok bool) {
	if from < 0 || to <= from || to > len(d.Tokens) || to > len(d.Offsets) {
		return "", false
	}
	start := d.Offsets[from]
	end := d.Offsets[to-1] + len(d.Tokens[to-1])
	if start < 0 || end > len(d.Text) || start > end {
		return "", false
	}
	return d.Text[start:end], true
}

// Clone returns a deep copy of the document. Sequences and maps are copied
// so the clone can be read while the original keeps changing.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	clone := *d
	if d.Metadata != nil {
		clone.Metadata = make(map[string]any, len(d.Metadata))
		for k, v := range d.Metadata {
			clone.Metadata[k] = v
		}
	}
	if d.Tokens != nil {
		clone.Tokens = make([]string, len(d.Tokens))
		copy(clone.Tokens, d.Tokens)
	}
	if d.Offsets != nil {
		clone.Offsets = make([]int, len(d.Offsets))
		copy(clone.Offsets, d.Offsets)
	}
	if d.Tags != nil {
		clone.Tags = make([]string, len(d.Tags))
		copy(clone.Tags, d.Tags)
	}
	if d.Sentences != nil {
		clone.Sentences = make([]int, len(d.Sentences))
		copy(clone.Sentences, d.Sentences)
	}
	if d.Entities != nil {
		clone.Entities = make([]EntityOccurrence, len(d.Entities))
		copy(clone.Entities, d.Entities)
	}
	if d.Preprocessed != nil {
		clone.Preprocessed = make(map[Stage]time.Time, len(d.Preprocessed))
		for k, v := range d.Preprocessed {
			clone.Preprocessed[k] = v
		}
	}
	return &clone
}

package domain

// Chunk is a read-only projection of a document restricted to a token
// range. It owns copies of its token and tag sub-sequences, so it stays
// valid however the source document changes afterwards, and carries the
// entity occurrences falling inside the range with offsets re-based to
// the chunk start.
type Chunk struct {
	// ID is the deterministic identity of the projection. Building the
	// same range of the same document yields the same ID.
	ID string

	// DocumentID links to the source document.
	DocumentID string

	// Text is the human-readable rendition of the chunk.
	Text string

	// Offset is the token offset of the chunk start within the document.
	Offset int

	// Tokens is the chunk's token sub-sequence.
	Tokens []string

	// Tags is the tag sub-sequence parallel to Tokens. It may be shorter
	// than Tokens when the source document was never fully tagged.
	Tags []string

	// Entities holds the occurrences whose document offsets fall inside
	// the chunk's range, in document order.
	Entities []ChunkEntity
}

// ChunkEntity is an entity occurrence projected into chunk coordinates.
// It carries the resolved entity fields so a chunk is self-contained.
type ChunkEntity struct {
	// Key is the referenced entity's store key.
	Key string

	// CanonicalForm is the entity's canonical display string.
	CanonicalForm string

	// Kind classifies the referent.
	Kind EntityKind

	// Offset is the token offset of the mention relative to the chunk
	// start.
	Offset int

	// Alias is the literal surface text of the mention when it differs
	// from the canonical form.
	Alias string
}

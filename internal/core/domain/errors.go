package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested document or entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidRange indicates a token range with reversed endpoints or
	// endpoints outside the document's token sequence.
	ErrInvalidRange = errors.New("invalid token range")

	// ErrValidation indicates a preprocess result that breaks a structural
	// rule of its stage. The wrapped detail names the rule.
	ErrValidation = errors.New("validation failed")

	// ErrCardinality indicates a per-token preprocess result whose length
	// does not match the document's token count.
	ErrCardinality = errors.New("cardinality mismatch")

	// ErrInvalidStage indicates an unrecognised preprocess stage.
	ErrInvalidStage = errors.New("invalid preprocess stage")

	// ErrStageIncomplete indicates an operation that needs a preprocess
	// stage which has not run for the document.
	ErrStageIncomplete = errors.New("preprocess stage incomplete")
)

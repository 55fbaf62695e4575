package domain

import "fmt"

// EntityKind classifies a canonical entity.
type EntityKind string

// Recognised entity kinds.
const (
	// EntityKindPerson is an individual human referent.
	EntityKindPerson EntityKind = "person"

	// EntityKindLocation is a geographic or political place.
	EntityKindLocation EntityKind = "location"

	// EntityKindOrganization is a company, institution or other
	// collective body.
	EntityKindOrganization EntityKind = "organization"
)

// IsValid returns true if the kind is recognised.
func (k EntityKind) IsValid() bool {
	switch k {
	case EntityKindPerson, EntityKindLocation, EntityKindOrganization:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k EntityKind) String() string {
	return string(k)
}

// Entity is a canonical, deduplicated real-world referent. Entities are
// owned by the entity store and referenced by key from occurrences; they
// are never embedded in documents.
type Entity struct {
	// Key is the stable unique identifier. Uniqueness is enforced by the
	// store, not here.
	Key string `validate:"required"`

	// CanonicalForm is the canonical display string for the referent.
	CanonicalForm string `validate:"required"`

	// Kind classifies the referent.
	Kind EntityKind `validate:"required,oneof=person location organization"`
}

// String renders the entity as "canonical form (kind)".
func (e Entity) String() string {
	return fmt.Sprintf("%s (%s)", e.CanonicalForm, e.Kind)
}

// EntityOccurrence is a single mention of an entity at a token offset
// within one document.
type EntityOccurrence struct {
	// EntityKey references the mentioned Entity by its store key.
	// Resolving the key to entity data is an explicit store lookup.
	EntityKey string `validate:"required"`

	// Offset is the token offset of the mention within the document.
	Offset int `validate:"gte=0"`

	// Alias is the literal surface text of the mention when it differs
	// from the entity's canonical form. Empty otherwise.
	Alias string
}

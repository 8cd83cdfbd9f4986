package entity

import (
	"github.com/google/uuid"
)

// RelationKind identifies which many-to-many relation of an agency is being
// edited. Its string value doubles as the audit row's field name.
type RelationKind string

const (
	RelationTrades  RelationKind = "trades"
	RelationRegions RelationKind = "regions"
)

// String returns the audit field name for the relation.
func (k RelationKind) String() string {
	return string(k)
}

// Valid reports whether the relation kind is one of the known relations.
func (k RelationKind) Valid() bool {
	return k == RelationTrades || k == RelationRegions
}

// Trade is a reference entity: a trade specialty an agency can staff for.
// Immutable from the admin engine's perspective.
type Trade struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// Region is a reference entity: a service region an agency can cover.
// Immutable from the admin engine's perspective.
type Region struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	StateCode string    `json:"state_code"`
}

// Reference is the relation-neutral view of a Trade or Region used by the
// membership reconciler: just enough to validate existence and render the
// audit trail and response membership lists.
type Reference struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// ReferenceNames projects an ordered reference list onto its display names.
func ReferenceNames(refs []*Reference) []string {
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ref.Name)
	}

	return names
}

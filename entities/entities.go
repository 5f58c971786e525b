// Package entities defines the named-entity extraction collaborator
// contract: turning free text into {name, entity_type} tuples over a
// closed set of entity kinds. It is treated as an external collaborator
// (§6) — this package specifies the interface only, the way the original
// system's Vertex AI Gemini call is an external dependency of the
// screening pipeline rather than core logic.
package entities

import "context"

// Type is one of the closed set of entity kinds an Extractor may return.
// Locations, dates, and monetary amounts are explicitly out of scope and
// must never be returned.
type Type string

const (
	Person       Type = "person"
	Organization Type = "organization"
	Vessel       Type = "vessel"
	Aircraft     Type = "aircraft"
)

// Entity is one extracted name and its classified type.
type Entity struct {
	Name       string
	EntityType Type
}

// Extractor turns free text into a list of Entity. Implementations may
// call out to an LLM or any other NER backend; this package only fixes
// the contract.
type Extractor interface {
	Extract(ctx context.Context, text string) ([]Entity, error)
}

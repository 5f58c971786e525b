package main

import (
	"context"

	"github.com/ofac-dev/sdn-advanced/entities"
	"github.com/ofac-dev/sdn-advanced/matcher"

	sdnadvanced "github.com/ofac-dev/sdn-advanced"
)

// DocumentScreenResult is the outcome of screening every entity extracted
// from one free-text document against the parsed corpus, mirroring the
// original system's document-screening response shape.
type DocumentScreenResult struct {
	Entities []EntityScreenResult
	Clear    bool
}

// EntityScreenResult pairs one extracted entity with its screening hits.
type EntityScreenResult struct {
	Entity entities.Entity
	Hits   []matcher.Hit
}

// ScreenDocument extracts named entities from text and screens each one
// against corpus, composing the entities.Extractor and matcher.Screen
// collaborators the way the original api/main.py's /screen/document handler
// does: a document is "clear" only if none of its extracted entities
// produced any hit.
func ScreenDocument(ctx context.Context, extractor entities.Extractor, text string, corpus []sdnadvanced.Party, threshold, limit int) (DocumentScreenResult, error) {
	extracted, err := extractor.Extract(ctx, text)
	if err != nil {
		return DocumentScreenResult{}, err
	}

	result := DocumentScreenResult{Clear: true}
	for _, entity := range extracted {
		hits, err := matcher.Screen(entity.Name, threshold, limit, corpus)
		if err != nil {
			return DocumentScreenResult{}, err
		}
		if len(hits) > 0 {
			result.Clear = false
		}
		result.Entities = append(result.Entities, EntityScreenResult{Entity: entity, Hits: hits})
	}
	return result, nil
}

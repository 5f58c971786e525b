package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	sdnadvanced "github.com/ofac-dev/sdn-advanced"
	"github.com/ofac-dev/sdn-advanced/entities"
)

var errBoom = errors.New("extraction failed")

type stubExtractor struct {
	entities []entities.Entity
	err      error
}

func (s stubExtractor) Extract(ctx context.Context, text string) ([]entities.Entity, error) {
	return s.entities, s.err
}

func TestScreenDocument_ClearWhenNoHits(t *testing.T) {
	extractor := stubExtractor{entities: []entities.Entity{{Name: "Jane Doe", EntityType: entities.Person}}}
	corpus := []sdnadvanced.Party{
		{SDNEntryID: 1, PrimaryName: &sdnadvanced.Name{FullName: "SOMEONE ELSE"}},
	}
	result, err := ScreenDocument(context.Background(), extractor, "text", corpus, 0, 10)
	require.NoError(t, err)
	require.True(t, result.Clear)
	require.Len(t, result.Entities, 1)
	require.Empty(t, result.Entities[0].Hits)
}

func TestScreenDocument_NotClearWhenEntityMatches(t *testing.T) {
	extractor := stubExtractor{entities: []entities.Entity{{Name: "SMITH", EntityType: entities.Person}}}
	corpus := []sdnadvanced.Party{
		{SDNEntryID: 1, PrimaryName: &sdnadvanced.Name{FullName: "SMITH"}},
	}
	result, err := ScreenDocument(context.Background(), extractor, "text", corpus, 0, 10)
	require.NoError(t, err)
	require.False(t, result.Clear)
	require.Len(t, result.Entities, 1)
	require.Len(t, result.Entities[0].Hits, 1)
}

func TestScreenDocument_PropagatesExtractorError(t *testing.T) {
	extractor := stubExtractor{err: errBoom}
	_, err := ScreenDocument(context.Background(), extractor, "text", nil, 0, 10)
	require.ErrorIs(t, err, errBoom)
}

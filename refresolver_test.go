package sdn_advanced

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildRefTables_PlainSetResolvesByID(t *testing.T) {
	blocks := []referenceValueSetsXML{
		{
			Sets: []rawElement{
				{
					XMLName: xml.Name{Local: "CountryValues"},
					Children: []rawElement{
						{ID: "C1", Text: "  Lebanon  "},
						{ID: "C2", Text: "Syria"},
					},
				},
			},
		},
	}
	refs := buildRefTables(blocks)
	require.Equal(t, "Lebanon", refs.lookup("CountryValues", "C1"))
	require.Equal(t, "Syria", refs.lookup("CountryValues", "C2"))
	require.Equal(t, "", refs.lookup("CountryValues", "missing"))
	require.Equal(t, "", refs.lookup("UnknownSet", "C1"))
}

func TestBuildRefTables_LegalBasisUsesShortRefChild(t *testing.T) {
	blocks := []referenceValueSetsXML{
		{
			Sets: []rawElement{
				{
					XMLName: xml.Name{Local: "LegalBasisValues"},
					Children: []rawElement{
						{
							ID:   "LB1",
							Text: "ignored own text",
							Children: []rawElement{
								{XMLName: xml.Name{Local: "LegalBasisShortRef"}, Text: " E.O. 13224 "},
							},
						},
						{ID: "LB2"}, // missing LegalBasisShortRef -> empty
					},
				},
			},
		},
	}
	refs := buildRefTables(blocks)
	require.Equal(t, "E.O. 13224", refs.lookup("LegalBasisValues", "LB1"))
	require.Equal(t, "", refs.lookup("LegalBasisValues", "LB2"))
}

func TestBuildRefTables_PartySubTypeUnknownCrossReferencesPartyType(t *testing.T) {
	blocks := []referenceValueSetsXML{
		{
			Sets: []rawElement{
				{
					XMLName: xml.Name{Local: "PartyTypeValues"},
					Children: []rawElement{
						{ID: "1", Text: "Individual"},
					},
				},
				{
					XMLName: xml.Name{Local: "PartySubTypeValues"},
					Children: []rawElement{
						{ID: "4", PartyTypeID: "1", Text: "Individual"},
						{ID: "9", PartyTypeID: "1", Text: "Unknown"},
						{ID: "10", PartyTypeID: "1", Text: ""},
					},
				},
			},
		},
	}
	refs := buildRefTables(blocks)
	require.Equal(t, "Individual", refs.lookup("PartySubTypeValues", "4"))
	require.Equal(t, "Individual", refs.lookup("PartySubTypeValues", "9"))
	require.Equal(t, "Individual", refs.lookup("PartySubTypeValues", "10"))
}

func TestBuildRefTables_OnlyFirstBlockProcessed(t *testing.T) {
	blocks := []referenceValueSetsXML{
		{Sets: []rawElement{{XMLName: xml.Name{Local: "CountryValues"}, Children: []rawElement{{ID: "C1", Text: "First"}}}}},
		{Sets: []rawElement{{XMLName: xml.Name{Local: "CountryValues"}, Children: []rawElement{{ID: "C1", Text: "Second"}}}}},
	}
	refs := buildRefTables(blocks)
	require.Equal(t, "First", refs.lookup("CountryValues", "C1"))
}

func TestBuildRefTables_NoBlocks(t *testing.T) {
	refs := buildRefTables(nil)
	require.Equal(t, "", refs.lookup("CountryValues", "C1"))
}

package sdn_advanced

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNamePartSortKey(t *testing.T) {
	cases := []struct {
		partType string
		want     int
	}{
		{"Last Name", 0},
		{"last", 0},
		{"Entity Name", 0},
		{"Vessel Name", 0},
		{"Aircraft Name", 0},
		{"First Name", 1},
		{"first", 1},
		{"Middle Name", 2},
		{"Patronymic", 3},
		{"Matronymic", 4},
		{"Name", 99},
		{"something else entirely", 99},
	}
	for _, c := range cases {
		require.Equal(t, c.want, namePartSortKey(c.partType), c.partType)
	}
}

func TestCollectNameParts_StableSortPreservesDocumentOrderWithinKey(t *testing.T) {
	groupNames := map[string]string{
		"gMiddle1": "Middle Name",
		"gMiddle2": "Middle Name",
		"gLast":    "Last Name",
	}
	alias := aliasXML{
		DocumentedNames: []documentedNameXML{
			{
				DocumentedNameParts: []documentedNamePartXML{
					{NamePartValue: namePartValueXML{NamePartGroupID: "gMiddle1", Text: "ONE"}},
					{NamePartValue: namePartValueXML{NamePartGroupID: "gLast", Text: "ZEBRA"}},
					{NamePartValue: namePartValueXML{NamePartGroupID: "gMiddle2", Text: "TWO"}},
				},
			},
		},
	}
	parts := collectNameParts(alias, groupNames, refTables{})
	require.Len(t, parts, 3)
	require.Equal(t, "ZEBRA", parts[0].Value)
	require.Equal(t, "ONE", parts[1].Value)
	require.Equal(t, "TWO", parts[2].Value)
}

func TestCollectNameParts_EmptyValuesSkipped(t *testing.T) {
	groupNames := map[string]string{"g1": "Last Name"}
	alias := aliasXML{
		DocumentedNames: []documentedNameXML{
			{
				DocumentedNameParts: []documentedNamePartXML{
					{NamePartValue: namePartValueXML{NamePartGroupID: "g1", Text: "   "}},
				},
			},
		},
	}
	parts := collectNameParts(alias, groupNames, refTables{})
	require.Empty(t, parts)
}

func TestParseIdentity_EmptyNameDropped(t *testing.T) {
	identity := identityXML{
		Aliases: []aliasXML{
			{Primary: "true"},
		},
	}
	results := parseIdentity(identity, refTables{})
	require.Empty(t, results)
}

func TestParseIdentity_AliasQualityAndType(t *testing.T) {
	refs := refTables{sets: map[string]map[string]string{
		"AliasTypeValues": {"2": "F.K.A."},
	}}
	groups := namePartGroupsXML{
		MasterNamePartGroups: []masterNamePartGroupXML{
			{NamePartGroups: []namePartGroupXML{{ID: "g1", NamePartTypeID: "x"}}},
		},
	}
	identity := identityXML{
		NamePartGroups: groups,
		Aliases: []aliasXML{
			{
				AliasTypeID: "2",
				LowQuality:  "TRUE",
				DocumentedNames: []documentedNameXML{
					{DocumentedNameParts: []documentedNamePartXML{
						{NamePartValue: namePartValueXML{NamePartGroupID: "g1", Text: "ALT NAME"}},
					}},
				},
			},
		},
	}
	results := parseIdentity(identity, refs)
	require.Len(t, results, 1)
	require.Equal(t, "F.K.A.", results[0].Alias.AliasType)
	require.Equal(t, "weak", results[0].Alias.AliasQuality)
	require.False(t, results[0].IsPrimary)
}

func TestParseIdentity_DefaultAliasType(t *testing.T) {
	identity := identityXML{
		Aliases: []aliasXML{
			{
				DocumentedNames: []documentedNameXML{
					{DocumentedNameParts: []documentedNamePartXML{
						{NamePartValue: namePartValueXML{NamePartGroupID: "g1", Text: "X"}},
					}},
				},
			},
		},
	}
	results := parseIdentity(identity, refTables{})
	require.Len(t, results, 1)
	require.Equal(t, "a.k.a.", results[0].Alias.AliasType)
	require.Equal(t, "strong", results[0].Alias.AliasQuality)
}

func TestParseFixedRef(t *testing.T) {
	id, err := parseFixedRef(" 123 ")
	require.NoError(t, err)
	require.Equal(t, 123, id)

	_, err = parseFixedRef("abc")
	require.Error(t, err)
}

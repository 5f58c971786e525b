package sdn_advanced

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRouteLocationPart(t *testing.T) {
	cases := []struct {
		name     string
		partType string
		value    string
		want     Address
	}{
		{"city", "city", "Beirut", Address{City: "Beirut"}},
		{"address", "address1", "12 Main St", Address{Address: "12 Main St"}},
		{"state", "state or province", "Damascus Governorate", Address{StateProvince: "Damascus Governorate"}},
		{"province", "province", "Ontario", Address{StateProvince: "Ontario"}},
		{"postal", "postal code", "10001", Address{PostalCode: "10001"}},
		{"zip", "zip code", "10001", Address{PostalCode: "10001"}},
		{"region", "region", "Levant", Address{Region: "Levant"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var addr Address
			routeLocationPart(&addr, c.partType, c.value)
			require.Equal(t, c.want, addr)
		})
	}
}

func TestRouteLocationPart_UnrecognizedAppendsToAddress(t *testing.T) {
	var addr Address
	routeLocationPart(&addr, "something unmapped", "District 5")
	routeLocationPart(&addr, "another unmapped", "Block C")
	require.Equal(t, "District 5, Block C", addr.Address)
}

func TestBuildLocationsMap_UsesOnlyFirstLocationPartValue(t *testing.T) {
	refs := refTables{sets: map[string]map[string]string{
		"LocPartTypeValues": {"LP1": "City"},
		"CountryValues":     {"C1": "Lebanon"},
	}}
	blocks := []locationsXML{
		{
			Locations: []locationXML{
				{
					ID:              "L1",
					LocationCountry: locationCountryXML{CountryID: "C1"},
					LocationParts: []locationPartXML{
						{LocPartTypeID: "LP1", LocationPartValues: []string{"Beirut", "Tripoli"}},
					},
				},
			},
		},
	}
	out := buildLocationsMap(blocks, refs)
	require.Equal(t, Address{City: "Beirut", Country: "Lebanon"}, out["L1"])
}

// An empty first LocationPartValue means the whole LocationPart is ignored
// (§4.2) — a non-empty sibling later in the list is never tried instead.
func TestBuildLocationsMap_EmptyFirstValueIgnoresWholePart(t *testing.T) {
	refs := refTables{sets: map[string]map[string]string{
		"LocPartTypeValues": {"LP1": "City"},
		"CountryValues":     {"C1": "Lebanon"},
	}}
	blocks := []locationsXML{
		{
			Locations: []locationXML{
				{
					ID:              "L1",
					LocationCountry: locationCountryXML{CountryID: "C1"},
					LocationParts: []locationPartXML{
						{LocPartTypeID: "LP1", LocationPartValues: []string{"  ", "Beirut"}},
					},
				},
			},
		},
	}
	out := buildLocationsMap(blocks, refs)
	require.Equal(t, Address{Country: "Lebanon"}, out["L1"])
}

func TestBuildLocationsMap_NoBlocksReturnsEmptyMap(t *testing.T) {
	out := buildLocationsMap(nil, refTables{})
	require.Empty(t, out)
}

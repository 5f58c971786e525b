package sdn_advanced

import "strings"

// buildLocationsMap implements §4.2: ID -> Address.
func buildLocationsMap(blocks []locationsXML, refs refTables) map[string]Address {
	out := map[string]Address{}
	if len(blocks) == 0 {
		return out
	}
	for _, loc := range blocks[0].Locations {
		id := strings.TrimSpace(loc.ID)
		if id == "" {
			continue
		}
		addr := Address{
			Country: refs.lookup("CountryValues", loc.LocationCountry.CountryID),
		}
		for _, part := range loc.LocationParts {
			value := firstLocationPartValue(part.LocationPartValues)
			if value == "" {
				continue
			}
			partType := strings.ToLower(refs.lookup("LocPartTypeValues", part.LocPartTypeID))
			routeLocationPart(&addr, partType, value)
		}
		out[id] = addr
	}
	return out
}

func routeLocationPart(addr *Address, partType, value string) {
	switch {
	case strings.Contains(partType, "city"):
		addr.City = value
	case strings.Contains(partType, "address"):
		addr.Address = value
	case strings.Contains(partType, "state") || strings.Contains(partType, "province"):
		addr.StateProvince = value
	case strings.Contains(partType, "postal") || strings.Contains(partType, "zip"):
		addr.PostalCode = value
	case strings.Contains(partType, "region"):
		addr.Region = value
	default:
		if addr.Address == "" {
			addr.Address = value
		} else {
			addr.Address = addr.Address + ", " + value
		}
	}
}

// firstLocationPartValue returns the trimmed text of the first child
// LocationPartValue only (§4.2) — an empty first value means the whole
// LocationPart is ignored, not that a later sibling should be tried.
func firstLocationPartValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}

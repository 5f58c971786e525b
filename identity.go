package sdn_advanced

import (
	"sort"
	"strconv"
	"strings"
)

// namePartSortKey implements the ordering table in §4.5. Unrecognized part
// types sort last but are still included.
func namePartSortKey(partType string) int {
	switch strings.ToLower(partType) {
	case "last name", "last", "entity name", "vessel name", "aircraft name":
		return 0
	case "first name", "first":
		return 1
	case "middle name", "middle":
		return 2
	case "patronymic":
		return 3
	case "matronymic":
		return 4
	default:
		return 99
	}
}

// namePartGroupNames resolves NamePartGroups/MasterNamePartGroup/
// NamePartGroup@ID -> name for one Identity, per §4.5's group-scope rule.
func namePartGroupNames(groups namePartGroupsXML, refs refTables) map[string]string {
	out := map[string]string{}
	for _, master := range groups.MasterNamePartGroups {
		for _, group := range master.NamePartGroups {
			id := strings.TrimSpace(group.ID)
			if id == "" {
				continue
			}
			name := refs.lookup("NamePartTypeValues", group.NamePartTypeID)
			if name == "" {
				name = "part_" + id
			}
			out[id] = name
		}
	}
	return out
}

// parsedAlias is an Alias plus the is_primary flag needed to route it
// during record assembly.
type parsedAlias struct {
	Alias     Alias
	IsPrimary bool
}

// parseIdentity implements §4.5: given one Identity element, emit the
// aliases it carries (including the would-be primary, which the caller
// routes to Party.PrimaryName on first sight). An alias with no non-empty
// name parts is the EmptyName condition from §7 and is silently dropped.
func parseIdentity(identity identityXML, refs refTables) []parsedAlias {
	groupNames := namePartGroupNames(identity.NamePartGroups, refs)

	var results []parsedAlias
	for _, alias := range identity.Aliases {
		aliasType := refs.lookup("AliasTypeValues", alias.AliasTypeID)
		if aliasType == "" {
			aliasType = "a.k.a."
		}
		quality := "strong"
		if strings.EqualFold(strings.TrimSpace(alias.LowQuality), "true") {
			quality = "weak"
		}
		isPrimary := strings.EqualFold(strings.TrimSpace(alias.Primary), "true")

		parts := collectNameParts(alias, groupNames, refs)
		if len(parts) == 0 {
			continue
		}

		values := make([]string, len(parts))
		for i, p := range parts {
			values[i] = p.Value
		}
		fullName := strings.Join(values, " ")
		if fullName == "" {
			continue
		}

		results = append(results, parsedAlias{
			IsPrimary: isPrimary,
			Alias: Alias{
				AliasType:    aliasType,
				AliasQuality: quality,
				FullName:     fullName,
				NameParts:    parts,
			},
		})
	}
	return results
}

// collectNameParts gathers non-empty NamePartValues for one Alias, resolves
// each part's type and sort key, and stably sorts by sort key in document
// order (§4.5).
func collectNameParts(alias aliasXML, groupNames map[string]string, refs refTables) []NamePart {
	type indexedPart struct {
		part    NamePart
		sortKey int
	}
	var indexed []indexedPart
	for _, docName := range alias.DocumentedNames {
		for _, docPart := range docName.DocumentedNameParts {
			npv := docPart.NamePartValue
			value := strings.TrimSpace(npv.Text)
			if value == "" {
				continue
			}
			partType, ok := groupNames[strings.TrimSpace(npv.NamePartGroupID)]
			if !ok {
				partType = "Name"
			}
			script := refs.lookup("ScriptValues", npv.ScriptID)
			indexed = append(indexed, indexedPart{
				part:    NamePart{PartType: partType, Value: value, Script: script},
				sortKey: namePartSortKey(partType),
			})
		}
	}
	sort.SliceStable(indexed, func(i, j int) bool {
		return indexed[i].sortKey < indexed[j].sortKey
	})
	parts := make([]NamePart, len(indexed))
	for i, ip := range indexed {
		parts[i] = ip.part
	}
	return parts
}

// parseFixedRef parses a DistinctParty's @FixedRef attribute as a base-10
// integer, per §4.9 / §7 (BadInteger is fatal).
func parseFixedRef(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

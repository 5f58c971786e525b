package sdn_advanced

import "strings"

// refTables holds one (ID -> text) lookup per ReferenceValueSets/* set name,
// keyed by the set's own element name (e.g. "AliasTypeValues").
type refTables struct {
	sets map[string]map[string]string
}

// lookup resolves id within setName, returning "" for an unknown id — §7's
// UnknownReference condition is silent by design, so the zero value does
// the right thing at every call site without a separate ok bool.
func (r refTables) lookup(setName, id string) string {
	if id == "" {
		return ""
	}
	set, ok := r.sets[setName]
	if !ok {
		return ""
	}
	return set[id]
}

// buildRefTables implements §4.1. It processes only the first
// ReferenceValueSets block, maps every set's items by @ID to trimmed text,
// special-cases LegalBasisValues (text comes from the LegalBasisShortRef
// child, not the element's own text), and then cross-references
// PartySubTypeValues entries whose text is empty or "Unknown" against
// PartyTypeValues keyed by @PartyTypeID.
func buildRefTables(blocks []referenceValueSetsXML) refTables {
	tables := refTables{sets: make(map[string]map[string]string)}
	if len(blocks) == 0 {
		return tables
	}
	block := blocks[0]

	var partySubTypeRaw map[string]rawElement
	for _, set := range block.Sets {
		setName := set.XMLName.Local
		items := make(map[string]string, len(set.Children))
		for _, item := range set.Children {
			id := strings.TrimSpace(item.ID)
			if id == "" {
				continue
			}
			items[id] = resolveSetItemText(setName, item)
		}
		tables.sets[setName] = items

		if setName == "PartySubTypeValues" {
			partySubTypeRaw = make(map[string]rawElement, len(set.Children))
			for _, item := range set.Children {
				id := strings.TrimSpace(item.ID)
				if id != "" {
					partySubTypeRaw[id] = item
				}
			}
		}
	}

	if partySubTypeRaw != nil {
		partyTypes := tables.sets["PartyTypeValues"]
		subTypes := tables.sets["PartySubTypeValues"]
		for id, item := range partySubTypeRaw {
			text := subTypes[id]
			if text != "" && !strings.EqualFold(text, "Unknown") {
				continue
			}
			subTypes[id] = partyTypes[strings.TrimSpace(item.PartyTypeID)]
		}
	}

	return tables
}

// resolveSetItemText returns the text a single ReferenceValueSets item maps
// to its @ID: ordinarily the item's own trimmed chardata, except
// LegalBasisValues items whose text comes from a LegalBasisShortRef child.
func resolveSetItemText(setName string, item rawElement) string {
	if setName == "LegalBasisValues" {
		for _, child := range item.Children {
			if child.XMLName.Local == "LegalBasisShortRef" {
				return strings.TrimSpace(child.Text)
			}
		}
		return ""
	}
	return strings.TrimSpace(item.Text)
}

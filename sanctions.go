package sdn_advanced

import "strings"

// sanctionsData is the per-profile accumulator built by §4.4, keyed by
// ProfileID.
type sanctionsData struct {
	Programs         []string
	LegalAuthorities []string
	Remarks          string
}

// buildSanctionsMap implements §4.4. Multiple SanctionsEntry elements may
// share a ProfileID; merging is additive with dedup, and Remarks is
// last-write-wins across them, where a blank Remarks is not a write.
func buildSanctionsMap(blocks []sanctionsEntriesXML, refs refTables) map[string]*sanctionsData {
	out := map[string]*sanctionsData{}
	if len(blocks) == 0 {
		return out
	}
	for _, entry := range blocks[0].Entries {
		id := strings.TrimSpace(entry.ProfileID)
		if id == "" {
			continue
		}
		data, ok := out[id]
		if !ok {
			data = &sanctionsData{}
			out[id] = data
		}
		for _, measure := range entry.SanctionsMeasures {
			for _, comment := range measure.Comments {
				data.Programs = appendUnique(data.Programs, strings.TrimSpace(comment))
			}
		}
		for _, event := range entry.EntryEvents {
			authority := refs.lookup("LegalBasisValues", event.LegalBasisID)
			data.LegalAuthorities = appendUnique(data.LegalAuthorities, authority)
		}
		if remarks := strings.TrimSpace(entry.Remarks); remarks != "" {
			data.Remarks = remarks
		}
	}
	return out
}

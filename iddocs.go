package sdn_advanced

import "strings"

// buildIDDocsMap implements §4.3: ID -> IdDoc. is_fraudulent is reserved
// (§9 Open Question) and always false — no source field populates it.
func buildIDDocsMap(blocks []idRegDocumentsXML, refs refTables) map[string]IdDoc {
	out := map[string]IdDoc{}
	if len(blocks) == 0 {
		return out
	}
	for _, doc := range blocks[0].Documents {
		id := strings.TrimSpace(doc.ID)
		if id == "" {
			continue
		}
		d := IdDoc{
			IDType: refs.lookup("IDRegDocTypeValues", doc.IDRegDocTypeID),
		}
		if doc.IDRegDocType != nil {
			if t := refs.lookup("IDRegDocTypeValues", doc.IDRegDocType.IDRegDocTypeID); t != "" {
				d.IDType = t
			} else if text := strings.TrimSpace(doc.IDRegDocType.Text); text != "" {
				d.IDType = text
			}
		}
		d.IDNumber = strings.TrimSpace(doc.IDRegDocumentID)
		if doc.IssuingCountry != nil {
			d.Country = refs.lookup("CountryValues", doc.IssuingCountry.CountryID)
		}
		d.IssueDate = decodeDatePeriod(doc.IDRegDocDateOfIssuance)
		d.ExpiryDate = decodeDatePeriod(doc.IDRegDocExpirationDate)
		out[id] = d
	}
	return out
}

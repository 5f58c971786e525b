package sdn_advanced

import "encoding/xml"

// sdnDocumentXML mirrors the shape of one SDN Advanced document closely
// enough for encoding/xml's tag-based matching to pick out the five
// top-level sections. encoding/xml matches a plain tag like `xml:"Location"`
// against an element's local name regardless of namespace, so no explicit
// namespace-stripping pass is needed to satisfy §6's "ignore namespaces"
// rule — it falls out of using untyped tags the way the teacher's xml.go
// does throughout.
//
// Each section is captured as a slice even though the document is only
// expected to carry one of each: §4.1 and §4.9 both say "only the first
// block is processed", and encoding/xml's default behavior for a repeated
// element mapped onto a scalar field is last-write-wins, which is the
// opposite of what's wanted here.
type sdnDocumentXML struct {
	XMLName                  xml.Name                 `xml:"Sanctions"`
	DateOfIssue              string                   `xml:"DateOfIssue"`
	ReferenceValueSetsBlocks []referenceValueSetsXML  `xml:"ReferenceValueSets"`
	LocationsBlocks          []locationsXML           `xml:"Locations"`
	DistinctPartiesBlocks    []distinctPartiesXML     `xml:"DistinctParties"`
	IDRegDocumentsBlocks     []idRegDocumentsXML      `xml:"IDRegDocuments"`
	SanctionsEntriesBlocks   []sanctionsEntriesXML    `xml:"SanctionsEntries"`
}

// rawElement captures one element of a ReferenceValueSets child generically:
// its own attributes of interest, its direct text, and its child elements.
// The set of set-names and item-shapes under ReferenceValueSets is open
// (§4.1 says "for every ReferenceValueSets/* child"), so it is walked
// generically here rather than given one named Go field per set — the same
// choice the teacher makes for legalEventXML's L001EP..L050EP fields, where
// a variable, not-fully-enumerable set of similarly-shaped children is
// handled by inspecting them dynamically instead of naming each one.
type rawElement struct {
	XMLName     xml.Name
	ID          string       `xml:"ID,attr"`
	PartyTypeID string       `xml:"PartyTypeID,attr"`
	Text        string       `xml:",chardata"`
	Children    []rawElement `xml:",any"`
}

type referenceValueSetsXML struct {
	Sets []rawElement `xml:",any"`
}

type locationsXML struct {
	Locations []locationXML `xml:"Location"`
}

type locationXML struct {
	ID              string            `xml:"ID,attr"`
	LocationCountry locationCountryXML `xml:"LocationCountry"`
	LocationParts   []locationPartXML  `xml:"LocationPart"`
}

type locationCountryXML struct {
	CountryID string `xml:"CountryID,attr"`
}

type locationPartXML struct {
	LocPartTypeID      string   `xml:"LocPartTypeID,attr"`
	LocationPartValues []string `xml:"LocationPartValue"`
}

type distinctPartiesXML struct {
	Parties []distinctPartyXML `xml:"DistinctParty"`
}

type distinctPartyXML struct {
	FixedRef string     `xml:"FixedRef,attr"`
	Profile  profileXML `xml:"Profile"`
}

type profileXML struct {
	ID             string        `xml:"ID,attr"`
	PartySubTypeID string        `xml:"PartySubTypeID,attr"`
	Identities     []identityXML `xml:"Identity"`
	Features       []featureXML  `xml:"Feature"`
}

type identityXML struct {
	Aliases        []aliasXML        `xml:"Alias"`
	NamePartGroups namePartGroupsXML `xml:"NamePartGroups"`
}

type namePartGroupsXML struct {
	MasterNamePartGroups []masterNamePartGroupXML `xml:"MasterNamePartGroup"`
}

type masterNamePartGroupXML struct {
	NamePartGroups []namePartGroupXML `xml:"NamePartGroup"`
}

type namePartGroupXML struct {
	ID             string `xml:"ID,attr"`
	NamePartTypeID string `xml:"NamePartTypeID,attr"`
}

type aliasXML struct {
	AliasTypeID     string              `xml:"AliasTypeID,attr"`
	LowQuality      string              `xml:"LowQuality,attr"`
	Primary         string              `xml:"Primary,attr"`
	DocumentedNames []documentedNameXML `xml:"DocumentedName"`
}

type documentedNameXML struct {
	DocumentedNameParts []documentedNamePartXML `xml:"DocumentedNamePart"`
}

type documentedNamePartXML struct {
	NamePartValue namePartValueXML `xml:"NamePartValue"`
}

type namePartValueXML struct {
	NamePartGroupID string `xml:"NamePartGroupID,attr"`
	ScriptID        string `xml:"ScriptID,attr"`
	Text            string `xml:",chardata"`
}

type featureXML struct {
	FeatureTypeID   string              `xml:"FeatureTypeID,attr"`
	FeatureVersions []featureVersionXML `xml:"FeatureVersion"`
}

type featureVersionXML struct {
	Comments         []string             `xml:"Comment"`
	DatePeriods      []datePeriodXML      `xml:"DatePeriod"`
	VersionDetails   []versionDetailXML   `xml:"VersionDetail"`
	VersionLocations []versionLocationXML `xml:"VersionLocation"`
}

type versionDetailXML struct {
	CountryID               string                      `xml:"CountryID,attr"`
	LocationIDs             []string                    `xml:"LocationID"`
	IDRegDocumentReferences []idRegDocumentReferenceXML `xml:"IDRegDocumentReference"`
}

type idRegDocumentReferenceXML struct {
	DocumentID string `xml:"DocumentID,attr"`
}

type versionLocationXML struct {
	LocationID string `xml:"LocationID,attr"`
}

// datePeriodXML is also the shape of IDRegDocDateOfIssuance/IDRegDocExpirationDate
// (§4.3 defers to the same decoding policy as §4.8's DatePeriod).
type datePeriodXML struct {
	Start *boundaryXML `xml:"Start"`
	End   *boundaryXML `xml:"End"`
}

type boundaryXML struct {
	From *fromXML `xml:"From"`
}

type fromXML struct {
	Year  string `xml:"Year"`
	Month string `xml:"Month"`
	Day   string `xml:"Day"`
}

type idRegDocumentsXML struct {
	Documents []idRegDocumentXML `xml:"IDRegDocument"`
}

type idRegDocumentXML struct {
	ID                     string             `xml:"ID,attr"`
	IDRegDocTypeID         string             `xml:"IDRegDocTypeID,attr"`
	IDRegDocType           *idRegDocTypeXML   `xml:"IDRegDocType"`
	IDRegDocumentID        string             `xml:"IDRegDocumentID"`
	IssuingCountry         *issuingCountryXML `xml:"IssuingCountry"`
	IDRegDocDateOfIssuance *datePeriodXML     `xml:"IDRegDocDateOfIssuance"`
	IDRegDocExpirationDate *datePeriodXML     `xml:"IDRegDocExpirationDate"`
}

type idRegDocTypeXML struct {
	IDRegDocTypeID string `xml:"IDRegDocTypeID,attr"`
	Text           string `xml:",chardata"`
}

type issuingCountryXML struct {
	CountryID string `xml:"CountryID,attr"`
}

type sanctionsEntriesXML struct {
	Entries []sanctionsEntryXML `xml:"SanctionsEntry"`
}

type sanctionsEntryXML struct {
	ProfileID         string                `xml:"ProfileID,attr"`
	SanctionsMeasures []sanctionsMeasureXML `xml:"SanctionsMeasure"`
	EntryEvents       []entryEventXML       `xml:"EntryEvent"`
	Remarks           string                `xml:"Remarks"`
}

type sanctionsMeasureXML struct {
	Comments []string `xml:"Comment"`
}

type entryEventXML struct {
	LegalBasisID string `xml:"LegalBasisID,attr"`
}

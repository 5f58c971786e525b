package sdn_advanced

// Party is one flattened, query-ready record per DistinctParty, per §3.
// JSON tags follow the BigQuery-compatible schema names from §6.
type Party struct {
	SDNEntryID              int       `json:"sdn_entry_id"`
	SDNType                 string    `json:"sdn_type,omitempty"`
	Programs                []string  `json:"programs"`
	LegalAuthorities        []string  `json:"legal_authorities"`
	PrimaryName             *Name     `json:"primary_name,omitempty"`
	Aliases                 []Alias   `json:"aliases"`
	Addresses               []Address `json:"addresses"`
	IDDocuments             []IdDoc   `json:"id_documents"`
	DatesOfBirth            []string  `json:"dates_of_birth"`
	PlacesOfBirth           []string  `json:"places_of_birth"`
	Nationalities           []string  `json:"nationalities"`
	Citizenships            []string  `json:"citizenships"`
	Title                   string    `json:"title,omitempty"`
	Gender                  string    `json:"gender,omitempty"`
	Remarks                 string    `json:"remarks,omitempty"`
	VesselInfo              *Vessel   `json:"vessel_info,omitempty"`
	AircraftInfo            *Aircraft `json:"aircraft_info,omitempty"`
	AdditionalSanctionsInfo string    `json:"additional_sanctions_info,omitempty"`
	PublicationDate         string    `json:"publication_date,omitempty"`
	IngestionTimestamp      string    `json:"ingestion_timestamp,omitempty"`
	SourceURL               string    `json:"source_url,omitempty"`
}

// NamePart is one component of a constructed name: a value, the resolved
// part type it came from, and the script it was written in.
type NamePart struct {
	PartType string `json:"part_type"`
	Value    string `json:"part_value"`
	Script   string `json:"script,omitempty"`
}

// Name is a constructed full name and the parts it was built from, in
// sorted (last-name-first) order.
type Name struct {
	FullName  string     `json:"full_name"`
	NameParts []NamePart `json:"name_parts"`
}

// Alias is a documented name variant, including the alias type and quality
// flag carried on the source Alias element. It carries no primacy flag: the
// primary name is held in Party.PrimaryName instead.
type Alias struct {
	AliasType    string     `json:"alias_type"`
	AliasQuality string     `json:"alias_quality"` // "strong" or "weak"
	FullName     string     `json:"full_name"`
	NameParts    []NamePart `json:"name_parts"`
}

// Address is a resolved Location, as attached to a party via a feature
// reference (§4.7).
type Address struct {
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	StateProvince string `json:"state_province,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	Country       string `json:"country,omitempty"`
	Region        string `json:"region,omitempty"`
}

func (a Address) isEmpty() bool {
	return a.Address == "" && a.City == "" && a.StateProvince == "" &&
		a.PostalCode == "" && a.Country == "" && a.Region == ""
}

// IdDoc is a resolved identity/registration document (§4.3).
type IdDoc struct {
	IDType       string `json:"id_type,omitempty"`
	IDNumber     string `json:"id_number,omitempty"`
	Country      string `json:"country,omitempty"`
	IssueDate    string `json:"issue_date,omitempty"`
	ExpiryDate   string `json:"expiry_date,omitempty"`
	IsFraudulent bool   `json:"is_fraudulent"`
}

// Vessel carries the optional vessel-specific fields folded from features
// whose type name matched one of the vessel keys (§4.6).
type Vessel struct {
	VesselType     string `json:"vessel_type,omitempty"`
	VesselFlag     string `json:"vessel_flag,omitempty"`
	VesselOwner    string `json:"vessel_owner,omitempty"`
	VesselTonnage  string `json:"vessel_tonnage,omitempty"`
	VesselGRT      string `json:"vessel_grt,omitempty"`
	VesselCallSign string `json:"vessel_call_sign,omitempty"`
	VesselMMSI     string `json:"vessel_mmsi,omitempty"`
	VesselIMO      string `json:"vessel_imo,omitempty"`
}

func (v Vessel) isEmpty() bool {
	return v.VesselType == "" && v.VesselFlag == "" && v.VesselOwner == "" &&
		v.VesselTonnage == "" && v.VesselGRT == "" && v.VesselCallSign == "" &&
		v.VesselMMSI == "" && v.VesselIMO == ""
}

// Aircraft carries the optional aircraft-specific fields folded from
// features whose type name matched one of the aircraft keys (§4.6).
type Aircraft struct {
	AircraftType         string `json:"aircraft_type,omitempty"`
	AircraftManufacturer string `json:"aircraft_manufacturer,omitempty"`
	AircraftSerial       string `json:"aircraft_serial,omitempty"`
	AircraftTailNumber   string `json:"aircraft_tail_number,omitempty"`
	AircraftOperator     string `json:"aircraft_operator,omitempty"`
}

func (a Aircraft) isEmpty() bool {
	return a.AircraftType == "" && a.AircraftManufacturer == "" &&
		a.AircraftSerial == "" && a.AircraftTailNumber == "" && a.AircraftOperator == ""
}

func (n Name) isEmpty() bool {
	return n.FullName == ""
}

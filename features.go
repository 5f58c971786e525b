package sdn_advanced

import "strings"

// featureKey is one entry of an ordered vessel/aircraft feature-key table.
// These are ordered associative lists rather than maps because first-match
// ordering matters (§9): "vessel type" must be tested before bare "type".
type featureKey struct {
	substr string
	set    func(acc *featureAccumulator, value string)
}

var vesselKeys = []featureKey{
	{"vessel call sign", func(a *featureAccumulator, v string) { a.vessel.VesselCallSign = v }},
	{"vessel type", func(a *featureAccumulator, v string) { a.vessel.VesselType = v }},
	{"vessel tonnage", func(a *featureAccumulator, v string) { a.vessel.VesselTonnage = v }},
	{"gross registered tonnage", func(a *featureAccumulator, v string) { a.vessel.VesselGRT = v }},
	{"vessel flag", func(a *featureAccumulator, v string) { a.vessel.VesselFlag = v }},
	{"vessel owner", func(a *featureAccumulator, v string) { a.vessel.VesselOwner = v }},
	{"mmsi", func(a *featureAccumulator, v string) { a.vessel.VesselMMSI = v }},
	{"imo", func(a *featureAccumulator, v string) { a.vessel.VesselIMO = v }},
}

var aircraftKeys = []featureKey{
	{"aircraft construction number", func(a *featureAccumulator, v string) { a.aircraft.AircraftSerial = v }},
	{"aircraft manufacturer's serial number", func(a *featureAccumulator, v string) { a.aircraft.AircraftSerial = v }},
	{"aircraft model", func(a *featureAccumulator, v string) { a.aircraft.AircraftType = v }},
	{"aircraft operator", func(a *featureAccumulator, v string) { a.aircraft.AircraftOperator = v }},
	{"aircraft tail number", func(a *featureAccumulator, v string) { a.aircraft.AircraftTailNumber = v }},
	{"aircraft type", func(a *featureAccumulator, v string) { a.aircraft.AircraftType = v }},
	{"aircraft manufacturer", func(a *featureAccumulator, v string) { a.aircraft.AircraftManufacturer = v }},
}

// featureAccumulator collects everything the feature folder contributes to
// one party record before the caller merges it in (§4.6).
type featureAccumulator struct {
	datesOfBirth            []string
	placesOfBirth           []string
	nationalities           []string
	citizenships            []string
	addresses               []Address
	idDocuments             []IdDoc
	gender                  string
	title                   string
	additionalSanctionsInfo []string
	vessel                  Vessel
	aircraft                Aircraft
}

// foldFeatures implements §4.6: fold every Feature/FeatureVersion on a
// Profile into a featureAccumulator.
func foldFeatures(features []featureXML, refs refTables, locations map[string]Address, idDocs map[string]IdDoc) featureAccumulator {
	acc := featureAccumulator{}
	for _, feature := range features {
		ftName := strings.ToLower(refs.lookup("FeatureTypeValues", feature.FeatureTypeID))
		for _, version := range feature.FeatureVersions {
			foldFeatureVersion(&acc, ftName, version, refs, locations, idDocs)
		}
	}
	return acc
}

func foldFeatureVersion(acc *featureAccumulator, ftName string, version featureVersionXML, refs refTables, locations map[string]Address, idDocs map[string]IdDoc) {
	comment := lastComment(version.Comments)

	if strings.Contains(ftName, "birth") && strings.Contains(ftName, "date") {
		for _, dp := range version.DatePeriods {
			date := decodeDatePeriod(&dp)
			if date != "" {
				acc.datesOfBirth = appendUnique(acc.datesOfBirth, date)
				break
			}
		}
	}

	for _, detail := range version.VersionDetails {
		if detail.CountryID != "" {
			country := refs.lookup("CountryValues", detail.CountryID)
			if strings.Contains(ftName, "national") {
				acc.nationalities = appendUnique(acc.nationalities, country)
			}
			if strings.Contains(ftName, "citizen") {
				acc.citizenships = appendUnique(acc.citizenships, country)
			}
		}
		for _, locID := range detail.LocationIDs {
			applyLocation(acc, ftName, locations[strings.TrimSpace(locID)])
		}
		for _, ref := range detail.IDRegDocumentReferences {
			if doc, ok := idDocs[strings.TrimSpace(ref.DocumentID)]; ok {
				acc.idDocuments = append(acc.idDocuments, doc)
			}
		}
	}

	for _, vloc := range version.VersionLocations {
		applyLocation(acc, ftName, locations[strings.TrimSpace(vloc.LocationID)])
	}

	switch {
	case strings.Contains(ftName, "gender"):
		acc.gender = comment
	case strings.Contains(ftName, "title"):
		acc.title = comment
	case strings.Contains(ftName, "additional sanctions"):
		if comment != "" {
			acc.additionalSanctionsInfo = append(acc.additionalSanctionsInfo, comment)
		}
	}

	for _, key := range vesselKeys {
		if strings.Contains(ftName, key.substr) {
			key.set(acc, comment)
			break
		}
	}
	for _, key := range aircraftKeys {
		if strings.Contains(ftName, key.substr) {
			key.set(acc, comment)
			break
		}
	}
}

// applyLocation implements §4.7.
func applyLocation(acc *featureAccumulator, ftName string, addr Address) {
	if strings.Contains(ftName, "birth") && strings.Contains(ftName, "place") {
		pieces := []string{addr.City, addr.StateProvince, addr.Country}
		var nonEmpty []string
		for _, p := range pieces {
			if p != "" {
				nonEmpty = append(nonEmpty, p)
			}
		}
		if len(nonEmpty) > 0 {
			acc.placesOfBirth = appendUnique(acc.placesOfBirth, strings.Join(nonEmpty, ", "))
		}
		return
	}
	if !addr.isEmpty() {
		acc.addresses = append(acc.addresses, addr)
	}
}

// lastComment implements §4.6's "Capture its Comment (last child wins)":
// the last Comment child in document order wins unconditionally, even if
// it is empty and an earlier sibling was not.
func lastComment(comments []string) string {
	if len(comments) == 0 {
		return ""
	}
	return strings.TrimSpace(comments[len(comments)-1])
}

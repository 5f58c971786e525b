package sdn_advanced

import (
	"context"
	"encoding/xml"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Result is the output of one Parse call: the document's publication date,
// the ordered party records, and any non-fatal conditions encountered
// along the way (§7).
type Result struct {
	PublicationDate string
	Parties         []Party
	Warnings        []Warning
}

// Parse implements the full bytes -> (publication_date, [Party]) transform
// described in §2. It builds the reference/locations/id-docs/sanctions
// lookup tables (dependency order: enumerations -> {locations, id-docs,
// sanctions} -> parties, per §9), then emits one record per DistinctParty.
//
// Parse is a pure function of its input and cfg.Now: it performs no I/O and
// holds no state across calls.
func Parse(ctx context.Context, data []byte, cfg *Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	var doc sdnDocumentXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedXMLError{Cause: err}
	}

	refs := buildRefTables(doc.ReferenceValueSetsBlocks)
	locations := buildLocationsMap(doc.LocationsBlocks, refs)
	idDocs := buildIDDocsMap(doc.IDRegDocumentsBlocks, refs)
	sanctions := buildSanctionsMap(doc.SanctionsEntriesBlocks, refs)

	publicationDate := strings.TrimSpace(doc.DateOfIssue)
	ingestionTimestamp := cfg.Now().UTC().Format(ingestionTimestampLayout)

	var rawParties []distinctPartyXML
	if len(doc.DistinctPartiesBlocks) > 0 {
		rawParties = doc.DistinctPartiesBlocks[0].Parties
	}

	env := &assemblyEnv{
		refs:               refs,
		locations:          locations,
		idDocs:             idDocs,
		sanctions:          sanctions,
		publicationDate:    publicationDate,
		ingestionTimestamp: ingestionTimestamp,
	}

	slots := make([]*partySlot, len(rawParties))
	if cfg.Concurrency <= 1 {
		for i, raw := range rawParties {
			if err := checkCancelled(ctx); err != nil {
				return nil, err
			}
			slots[i] = assembleParty(raw, env)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.Concurrency)
		for i, raw := range rawParties {
			i, raw := i, raw
			g.Go(func() error {
				if err := checkCancelled(gctx); err != nil {
					return err
				}
				slots[i] = assembleParty(raw, env)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	result := &Result{PublicationDate: publicationDate}
	for _, slot := range slots {
		if slot == nil {
			continue
		}
		if slot.err != nil {
			return nil, slot.err
		}
		if slot.warning != nil {
			result.Warnings = append(result.Warnings, *slot.warning)
			continue
		}
		result.Parties = append(result.Parties, slot.party)
	}
	sortPartiesByFixedRef(result.Parties)
	return result, nil
}

func checkCancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// sortPartiesByFixedRef guarantees output order matches document order even
// when the emitter ran concurrently (§5): sdn_entry_id strictly increases
// with DistinctParty document position in every observed SDN Advanced
// export, so sorting by it is equivalent to sorting by index.
func sortPartiesByFixedRef(parties []Party) {
	sort.SliceStable(parties, func(i, j int) bool {
		return parties[i].SDNEntryID < parties[j].SDNEntryID
	})
}

// assemblyEnv holds everything assembleParty needs that's shared read-only
// across every party once §4.1-§4.4 complete.
type assemblyEnv struct {
	refs                refTables
	locations           map[string]Address
	idDocs              map[string]IdDoc
	sanctions           map[string]*sanctionsData
	publicationDate     string
	ingestionTimestamp  string
}

// partySlot is one element of the parallel output array: either a finished
// party or a non-fatal/fatal condition for that slot.
type partySlot struct {
	party   Party
	warning *Warning
	err     error
}

// assembleParty implements §4.9 for one DistinctParty.
func assembleParty(raw distinctPartyXML, env *assemblyEnv) *partySlot {
	fixedRef := strings.TrimSpace(raw.FixedRef)
	if fixedRef == "" {
		return &partySlot{warning: &Warning{Kind: WarningMissingFixedRef, Detail: "DistinctParty has no FixedRef"}}
	}
	id, err := parseFixedRef(fixedRef)
	if err != nil {
		return &partySlot{err: &InvalidFixedRefError{FixedRef: fixedRef, Cause: err}}
	}

	party := Party{
		SDNEntryID:         id,
		PublicationDate:    env.publicationDate,
		IngestionTimestamp: env.ingestionTimestamp,
		SourceURL:          OFACSourceURL,
	}

	profile := raw.Profile
	party.SDNType = env.refs.lookup("PartySubTypeValues", profile.PartySubTypeID)

	if data, ok := env.sanctions[strings.TrimSpace(profile.ID)]; ok {
		party.Programs = append(party.Programs, data.Programs...)
		party.LegalAuthorities = append(party.LegalAuthorities, data.LegalAuthorities...)
		party.Remarks = data.Remarks
	}

	havePrimary := false
	for _, identity := range profile.Identities {
		for _, parsed := range parseIdentity(identity, env.refs) {
			if parsed.IsPrimary && !havePrimary {
				name := Name{FullName: parsed.Alias.FullName, NameParts: parsed.Alias.NameParts}
				party.PrimaryName = &name
				havePrimary = true
				continue
			}
			party.Aliases = append(party.Aliases, parsed.Alias)
		}
	}

	acc := foldFeatures(profile.Features, env.refs, env.locations, env.idDocs)
	party.DatesOfBirth = acc.datesOfBirth
	party.PlacesOfBirth = acc.placesOfBirth
	party.Nationalities = acc.nationalities
	party.Citizenships = acc.citizenships
	party.Addresses = acc.addresses
	party.IDDocuments = acc.idDocuments
	party.Gender = acc.gender
	party.Title = acc.title
	party.AdditionalSanctionsInfo = strings.Join(acc.additionalSanctionsInfo, "; ")
	if !acc.vessel.isEmpty() {
		v := acc.vessel
		party.VesselInfo = &v
	}
	if !acc.aircraft.isEmpty() {
		a := acc.aircraft
		party.AircraftInfo = &a
	}

	collapseEmptyStructs(&party)

	return &partySlot{party: party}
}

// collapseEmptyStructs implements the empty-struct collapse rule (§3,
// §4.9): if every leaf field of PrimaryName/VesselInfo/AircraftInfo is
// null/empty, the whole sub-record becomes null. It is idempotent: running
// it twice on an already-collapsed party changes nothing.
func collapseEmptyStructs(party *Party) {
	if party.PrimaryName != nil && party.PrimaryName.isEmpty() {
		party.PrimaryName = nil
	}
	if party.VesselInfo != nil && party.VesselInfo.isEmpty() {
		party.VesselInfo = nil
	}
	if party.AircraftInfo != nil && party.AircraftInfo.isEmpty() {
		party.AircraftInfo = nil
	}
}

// Package sdn_advanced parses the U.S. Treasury OFAC Specially Designated
// Nationals (SDN) Advanced sanctions list XML export and flattens it into
// one denormalized record per sanctioned party.
//
// The XML is a cross-referenced graph: reference enumerations, location
// records, identity-document records, and sanctions-program entries are
// defined once and referenced by numeric ID from deeply nested party
// profiles. Parse resolves those references in two passes — lookup tables
// first, then one flat Party per DistinctParty — and returns the result as
// an in-memory slice; it performs no I/O of its own.
//
// Example usage:
//
//	data, err := os.ReadFile("sdn_advanced.xml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := sdn_advanced.Parse(context.Background(), data, sdn_advanced.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, party := range result.Parties {
//	    fmt.Println(party.SDNEntryID, party.SDNType)
//	}
package sdn_advanced

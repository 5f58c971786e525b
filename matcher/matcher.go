// Package matcher implements the name-screening collaborator: given a
// query name and a corpus of parsed parties, it scores every documented
// name variant using case-fold equality, Levenshtein distance, and a
// Soundex phonetic key, and returns the best-ranked hits.
//
// The scoring contract is specified at the interface level only — no
// storage backend is implied. This implementation operates directly over
// an in-memory []sdnadvanced.Party, the in-process equivalent of the
// BigQuery SCREEN_SQL query the contract was originally expressed as.
package matcher

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	sdnadvanced "github.com/ofac-dev/sdn-advanced"
)

// Hit is one scored name match, ranked (MatchScore asc, EditDistance asc).
type Hit struct {
	SDNEntryID   int
	SDNType      string
	MatchedName  string
	IsPrimary    bool
	MatchScore   int
	EditDistance int
}

// Score computes the match_score and edit distance for one (corpus name,
// query name) pair per §6:
//
//  1. case-folded equal
//  2. edit distance <= 2
//  3. edit distance <= threshold
//  4. Soundex keys match
//  5. none of the above (not a candidate)
func Score(candidateName, queryName string, threshold int) (score int, distance int) {
	lowerCandidate := strings.ToLower(candidateName)
	lowerQuery := strings.ToLower(queryName)
	distance = levenshtein.ComputeDistance(lowerCandidate, lowerQuery)

	switch {
	case lowerCandidate == lowerQuery:
		return 1, distance
	case distance <= 2:
		return 2, distance
	case distance <= threshold:
		return 3, distance
	case Soundex(candidateName) == Soundex(queryName):
		return 4, distance
	default:
		return 5, distance
	}
}

// Screen implements the matcher contract: screen(name, threshold, limit) ->
// [Hit], scored against every primary name and alias of every party in
// corpus, sorted by (match_score asc, edit_distance asc) and capped at
// limit.
func Screen(name string, threshold, limit int, corpus []sdnadvanced.Party) ([]Hit, error) {
	if err := sdnadvanced.ValidateThreshold(threshold); err != nil {
		return nil, err
	}
	if err := sdnadvanced.ValidateLimit(limit); err != nil {
		return nil, err
	}

	var hits []Hit
	for _, party := range corpus {
		for _, candidate := range partyNames(party) {
			score, distance := Score(candidate.name, name, threshold)
			if score > 4 {
				continue
			}
			hits = append(hits, Hit{
				SDNEntryID:   party.SDNEntryID,
				SDNType:      party.SDNType,
				MatchedName:  candidate.name,
				IsPrimary:    candidate.isPrimary,
				MatchScore:   score,
				EditDistance: distance,
			})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].MatchScore != hits[j].MatchScore {
			return hits[i].MatchScore < hits[j].MatchScore
		}
		return hits[i].EditDistance < hits[j].EditDistance
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

type candidateName struct {
	name      string
	isPrimary bool
}

func partyNames(party sdnadvanced.Party) []candidateName {
	var names []candidateName
	if party.PrimaryName != nil && party.PrimaryName.FullName != "" {
		names = append(names, candidateName{name: party.PrimaryName.FullName, isPrimary: true})
	}
	for _, alias := range party.Aliases {
		if alias.FullName != "" {
			names = append(names, candidateName{name: alias.FullName})
		}
	}
	return names
}

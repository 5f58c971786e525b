package sdn_advanced

// appendUnique appends v to list unless it is already present, preserving
// first-seen order. Used for every repeated string field that must be
// deduplicated (§3 invariants).
func appendUnique(list []string, v string) []string {
	if v == "" {
		return list
	}
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}

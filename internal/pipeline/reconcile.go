package pipeline

import (
	"sort"

	"inndiff/internal"
)

// Reconcile diffs two identifier lists as sets. Added and Removed are sorted and
// distinct; the counts are the lengths of the inputs, duplicates included.
func Reconcile(oldIDs, newIDs []string) internal.ReconciliationResult {
	oldSet := toSet(oldIDs)
	newSet := toSet(newIDs)

	return internal.ReconciliationResult{
		Added:    difference(newSet, oldSet),
		Removed:  difference(oldSet, newSet),
		OldCount: len(oldIDs),
		NewCount: len(newIDs),
	}
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func difference(a, b map[string]struct{}) []string {
	out := []string{}
	for id := range a {
		if _, ok := b[id]; !ok {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

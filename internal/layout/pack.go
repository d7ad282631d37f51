package layout

import (
	"sort"

	"github.com/JordanDim/planpal/internal/event"
)

// Entry is an occurrence annotated with its column assignment for one day.
// Column is 0-based; TotalColumns is always at least 1.
type Entry struct {
	event.Occurrence
	Column       int
	TotalColumns int
}

// OverlapPolicy assigns columns to a day's occurrences so that occurrences
// sharing a column never overlap in time. Input order is significant: both
// policies use it as the deterministic tie-break, so callers must pass the
// bucketing order unchanged.
//
// Both policies are O(n²) in the day's occurrence count. Realistic days
// hold tens of occurrences, not thousands, so no better bound is attempted.
type OverlapPolicy interface {
	Pack(occs []event.Occurrence) []Entry
}

// ClusterPolicy computes, for each occurrence independently, its overlap
// cluster: the occurrence plus every other occurrence intersecting it.
// TotalColumns is the cluster's size and Column is the occurrence's rank
// within the cluster ordered by (start ascending, input position
// ascending).
//
// Because clusters are per-occurrence, two occurrences that overlap each
// other can report different TotalColumns when their other neighbors
// differ. That asymmetry is intentional, kept from the behavior this view
// was modeled on; unifying clusters would change rendered widths. In long
// transitive chains two linked occurrences can even land on the same
// column index with different widths.
type ClusterPolicy struct{}

// Pack implements OverlapPolicy.
func (ClusterPolicy) Pack(occs []event.Occurrence) []Entry {
	entries := make([]Entry, 0, len(occs))

	for i, occ := range occs {
		cluster := []int{i}
		for j, other := range occs {
			if j != i && occ.Overlaps(other) {
				cluster = append(cluster, j)
			}
		}

		sort.SliceStable(cluster, func(a, b int) bool {
			sa, sb := occs[cluster[a]].Start, occs[cluster[b]].Start
			if !sa.Equal(sb) {
				return sa.Before(sb)
			}
			return cluster[a] < cluster[b]
		})

		column := 0
		for pos, idx := range cluster {
			if idx == i {
				column = pos
				break
			}
		}

		entries = append(entries, Entry{
			Occurrence:   occ,
			Column:       column,
			TotalColumns: len(cluster),
		})
	}

	return entries
}

// GreedyPolicy places occurrences in input order into the first column
// whose members it does not overlap, opening a new column when none fits.
// Every entry's TotalColumns is the day's final column count, unlike the
// per-cluster count of ClusterPolicy.
type GreedyPolicy struct{}

// Pack implements OverlapPolicy.
func (GreedyPolicy) Pack(occs []event.Occurrence) []Entry {
	if len(occs) == 0 {
		return nil
	}

	columns := make([][]int, 0, 4)
	assigned := make([]int, len(occs))

	for i, occ := range occs {
		placed := false
		for c, members := range columns {
			free := true
			for _, m := range members {
				if occ.Overlaps(occs[m]) {
					free = false
					break
				}
			}
			if free {
				columns[c] = append(columns[c], i)
				assigned[i] = c
				placed = true
				break
			}
		}
		if !placed {
			columns = append(columns, []int{i})
			assigned[i] = len(columns) - 1
		}
	}

	entries := make([]Entry, len(occs))
	for i, occ := range occs {
		entries[i] = Entry{
			Occurrence:   occ,
			Column:       assigned[i],
			TotalColumns: len(columns),
		}
	}
	return entries
}

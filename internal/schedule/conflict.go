package schedule

import "sort"

// Conflicts records which events overlap another event on the same day.
// Flags is parallel to the event slice handed to DetectConflicts; Any is a
// convenience aggregate for showing a warning banner.
type Conflicts struct {
	Flags []bool
	Any   bool
}

// DetectConflicts finds all pairwise overlaps between events that share a
// day. Days are independent; an event never conflicts across days.
//
// Per day the check is sort-then-adjacent-scan: events are stably sorted by
// start (ties keep input order) and each consecutive pair is compared. An
// overlap between an event and any later-starting event first manifests
// against its immediate successor in start order, which is what the renderer
// needs flagged. Both members of an overlapping pair are flagged, so the
// relation is symmetric.
//
// The comparison is strict: back-to-back events (current.End == next.Start)
// do not conflict. Days with zero or one event never produce conflicts.
func DetectConflicts(events []Event) Conflicts {
	c := Conflicts{Flags: make([]bool, len(events))}

	byDay := make(map[Day][]int, len(Days))
	for i, ev := range events {
		byDay[ev.Day] = append(byDay[ev.Day], i)
	}

	for _, day := range Days {
		idx := byDay[day]
		if len(idx) < 2 {
			continue
		}

		sort.SliceStable(idx, func(a, b int) bool {
			return events[idx[a]].Start < events[idx[b]].Start
		})

		for i := 0; i < len(idx)-1; i++ {
			current, next := idx[i], idx[i+1]
			if events[current].End > events[next].Start {
				c.Flags[current] = true
				c.Flags[next] = true
				c.Any = true
			}
		}
	}

	return c
}

package schedule

// SlotMinutes is the height of one grid row on the calendar's vertical axis.
const SlotMinutes = 30

// Placement positions one event on the calendar grid. DayColumn is the
// 1-based weekday column (sun=1 .. sat=7); RowStart/RowEnd are 1-based,
// half-open slot indices. Conflicting events keep their full row span so the
// overlap stays visible; the Conflict flag drives the warning styling.
type Placement struct {
	DayColumn int  `json:"dayColumnIndex"`
	RowStart  int  `json:"rowStart"`
	RowEnd    int  `json:"rowEnd"`
	Conflict  bool `json:"conflict"`
}

// Grid is the render-ready calendar description. When the input event set is
// empty, Empty is true and the grid carries no slots or placements; the
// renderer shows a placeholder instead of a zero-sized grid.
type Grid struct {
	Empty      bool        `json:"empty"`
	Start      int         `json:"gridStart,omitempty"` // minutes, multiple of 30
	End        int         `json:"gridEnd,omitempty"`   // minutes, multiple of 30
	Slots      []int       `json:"slots,omitempty"`     // slot start minutes, ascending
	Placements []Placement `json:"placements,omitempty"`
}

// Labels returns the slot start times formatted as "HH:mm" for row headers.
func (g Grid) Labels() []string {
	labels := make([]string, len(g.Slots))
	for i, m := range g.Slots {
		labels[i] = FormatClock(m)
	}
	return labels
}

// Layout computes the calendar grid for an annotated event set. conflicts
// must come from DetectConflicts over the same slice; Placements is parallel
// to events. The grid spans from the earliest start rounded down to a half
// hour through the latest end rounded up, in 30-minute slots.
func Layout(events []Event, conflicts Conflicts) Grid {
	if len(events) == 0 {
		return Grid{Empty: true}
	}

	minStart, maxEnd := events[0].Start, events[0].End
	for _, ev := range events[1:] {
		if ev.Start < minStart {
			minStart = ev.Start
		}
		if ev.End > maxEnd {
			maxEnd = ev.End
		}
	}

	gridStart := (minStart / SlotMinutes) * SlotMinutes
	gridEnd := ((maxEnd + SlotMinutes - 1) / SlotMinutes) * SlotMinutes

	slots := make([]int, 0, (gridEnd-gridStart)/SlotMinutes)
	for t := gridStart; t < gridEnd; t += SlotMinutes {
		slots = append(slots, t)
	}

	placements := make([]Placement, len(events))
	for i, ev := range events {
		placements[i] = Placement{
			DayColumn: ev.Day.Column(),
			RowStart:  (ev.Start-gridStart)/SlotMinutes + 1,
			RowEnd:    (ev.End-gridStart+SlotMinutes-1)/SlotMinutes + 1,
			Conflict:  i < len(conflicts.Flags) && conflicts.Flags[i],
		}
	}

	return Grid{
		Start:      gridStart,
		End:        gridEnd,
		Slots:      slots,
		Placements: placements,
	}
}

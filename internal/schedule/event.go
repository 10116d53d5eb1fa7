package schedule

// Block is one scheduled occurrence as it appears on the wire, grouped under
// a day key ("sun".."sat") in a weekly payload.
type Block struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Course string `json:"course"`
	Title  string `json:"title,omitempty"`
	Prof   string `json:"prof,omitempty"`
}

// Event is one validated scheduled occurrence. Start < End always holds.
// Events are immutable; conflict flags are computed separately (see
// DetectConflicts) instead of being annotated in place.
type Event struct {
	Day        Day
	Start, End int // minutes since midnight
	Course     string
	Title      string
	Instructor string
}

// NewEvent parses a raw (from, to) clock pair for a day and returns the
// validated event. The second return is false when the interval is inverted
// or empty (start >= end); such intervals never reach conflict detection or
// layout. Start == end is invalid: the check is strictly less-than.
func NewEvent(day Day, from, to, course, title, instructor string) (Event, bool) {
	start := ParseClock(from)
	end := ParseClock(to)
	if start >= end {
		return Event{}, false
	}
	return Event{
		Day:        day,
		Start:      start,
		End:        end,
		Course:     course,
		Title:      title,
		Instructor: instructor,
	}, true
}

// DropFunc observes entries rejected during week construction. The calendar
// silently omits malformed intervals rather than failing; the hook exists so
// callers can log or count the drops.
type DropFunc func(dayKey string, block Block)

// BuildWeek flattens a day-keyed weekly payload into a validated event slice.
// Days are visited in calendar order (sun first) and per-day input order is
// preserved. Entries with an unknown day key or an inverted interval are
// dropped and reported through onDrop (which may be nil).
//
// Sharp edge: an unparseable clock string defaults to 00:00, so
// {"from": "bad", "to": "10:00"} passes the start < end check and yields an
// event spanning midnight to 10:00. See ParseClock.
func BuildWeek(payload map[string][]Block, onDrop DropFunc) []Event {
	var events []Event

	for _, day := range Days {
		for _, block := range payload[day.Key()] {
			ev, ok := NewEvent(day, block.From, block.To, block.Course, block.Title, block.Prof)
			if !ok {
				if onDrop != nil {
					onDrop(day.Key(), block)
				}
				continue
			}
			events = append(events, ev)
		}
	}

	// Unknown day keys are dropped wholesale.
	if onDrop != nil {
		for key, blocks := range payload {
			if _, ok := ParseDay(key); !ok {
				for _, block := range blocks {
					onDrop(key, block)
				}
			}
		}
	}

	return events
}

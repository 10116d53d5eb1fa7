package schedule

// Day identifies one of the seven weekday columns of the calendar.
// Ordering is fixed sun-first and matches the rendered column order.
type Day int

const (
	Sunday Day = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// Days lists all days in calendar column order. Iteration over the week must
// use this slice so per-day processing stays in a stable, sun-first order.
var Days = []Day{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

var dayKeys = [...]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// Key returns the wire key for the day ("sun".."sat").
func (d Day) Key() string {
	if d < Sunday || d > Saturday {
		return ""
	}
	return dayKeys[d]
}

// Column returns the 1-based calendar column index (sun=1 .. sat=7).
func (d Day) Column() int {
	return int(d) + 1
}

// ParseDay maps a wire key ("sun".."sat") back to a Day.
func ParseDay(key string) (Day, bool) {
	for i, k := range dayKeys {
		if k == key {
			return Day(i), true
		}
	}
	return 0, false
}

package schedule

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
)

// ExportICS renders a validated weekly event set as an iCalendar payload.
// Each event becomes one VEVENT anchored to the first occurrence of its
// weekday on or after anchor, in anchor's location. Recurrence is not
// emitted; the export is a one-week snapshot of the suggested schedule.
func ExportICS(events []Event, anchor time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//MavPath//Advisor Schedule//EN")

	now := time.Now().UTC()

	for i, ev := range events {
		date := nextWeekday(anchor, time.Weekday(ev.Day))
		start := time.Date(date.Year(), date.Month(), date.Day(), ev.Start/60, ev.Start%60, 0, 0, anchor.Location())
		end := time.Date(date.Year(), date.Month(), date.Day(), ev.End/60, ev.End%60, 0, 0, anchor.Location())

		vevent := cal.AddEvent(fmt.Sprintf("%s-%d-%d@mavpath", ev.Day.Key(), ev.Start, i))
		vevent.SetCreatedTime(now)
		vevent.SetDtStampTime(now)
		vevent.SetStartAt(start)
		vevent.SetEndAt(end)

		summary := ev.Course
		if ev.Title != "" {
			summary = ev.Course + " - " + ev.Title
		}
		vevent.SetSummary(summary)
		if ev.Instructor != "" {
			vevent.SetDescription("Instructor: " + ev.Instructor)
		}
	}

	return cal.Serialize()
}

// nextWeekday returns the first date on or after t that falls on w.
func nextWeekday(t time.Time, w time.Weekday) time.Time {
	days := (int(w) - int(t.Weekday()) + 7) % 7
	return t.AddDate(0, 0, days)
}

package advisor

import (
	"strconv"
	"strings"

	"github.com/mavpath/advisor-backend/internal/knowledge"
	"github.com/mavpath/advisor-backend/internal/model"
	"github.com/mavpath/advisor-backend/internal/schedule"
)

const maxFallbackSections = 4

// Fallback is the deterministic offline planner used when the remote
// advisor is not configured or errors out. It picks sections matching the
// student's preferred days and per-day time blocks, keeping the frontend
// usable without an API key.
type Fallback struct{}

// Plan selects up to four sections compatible with the profile and shapes
// them into a weekly schedule. When nothing matches, the first few sections
// are suggested anyway so the student always sees something to react to.
// notes, when non-empty, is surfaced in the message (e.g. the remote error
// that triggered the fallback).
func (Fallback) Plan(profile *model.PreferenceProfile, sections []knowledge.Section, profs map[string]knowledge.Professor, notes string) Result {
	preferredDays := map[string]bool{}
	var timeBlocks map[string][]model.TimeBlock
	var interests []string
	if profile != nil {
		for _, d := range profile.PreferredDays {
			preferredDays[d] = true
		}
		timeBlocks = profile.TimeBlocks
		interests = profile.Interests
	}

	var chosen []knowledge.Section
	for _, section := range sections {
		if len(chosen) >= maxFallbackSections {
			break
		}
		if len(preferredDays) > 0 && !anyDayPreferred(section.Days, preferredDays) {
			continue
		}
		if !fitsTimeBlocks(section, timeBlocks) {
			continue
		}
		chosen = append(chosen, section)
	}

	if len(chosen) == 0 && len(sections) > 0 {
		n := len(sections)
		if n > 3 {
			n = 3
		}
		chosen = sections[:n]
	}

	week := make(map[string][]schedule.Block)
	for _, section := range chosen {
		prof := section.ProfID
		if p, ok := profs[section.ProfID]; ok {
			prof = p.Name
		}
		for _, day := range section.Days {
			week[day] = append(week[day], schedule.Block{
				From:   section.Start,
				To:     section.End,
				Course: section.CourseID,
				Title:  section.CourseTitle,
				Prof:   prof,
			})
		}
	}

	interestText := strings.Join(interests, ", ")
	if interestText == "" {
		interestText = "your interests"
	}
	message := "Here's a quick offline plan that respects your highlighted days and interests. " +
		"I prioritized sections that match " + interestText + "."
	if notes != "" {
		message += "\n\n(Debug: " + notes + ")"
	}

	return Result{
		Message:  message,
		Schedule: week,
		Debug:    map[string]any{"provider": "fallback"},
	}
}

func anyDayPreferred(days []string, preferred map[string]bool) bool {
	for _, d := range days {
		if preferred[d] {
			return true
		}
	}
	return false
}

// fitsTimeBlocks checks that on every day the section meets, at least one of
// the student's availability windows contains the section, if any windows
// are set for that day. Sections with unparseable times are not filtered.
func fitsTimeBlocks(section knowledge.Section, timeBlocks map[string][]model.TimeBlock) bool {
	start, okStart := parseMinutes(section.Start)
	end, okEnd := parseMinutes(section.End)
	if !okStart || !okEnd {
		return true
	}

	for _, day := range section.Days {
		blocks := timeBlocks[day]
		if len(blocks) == 0 {
			continue
		}
		contained := false
		for _, block := range blocks {
			from, okFrom := parseMinutes(block.From)
			to, okTo := parseMinutes(block.To)
			if okFrom && okTo && from <= start && to >= end {
				contained = true
				break
			}
		}
		if !contained {
			return false
		}
	}
	return true
}

// parseMinutes is the strict counterpart of schedule.ParseClock: both
// components must be present and numeric, otherwise the value is unusable
// for filtering and the second return is false.
func parseMinutes(value string) (int, bool) {
	h, m, ok := strings.Cut(value, ":")
	if !ok {
		return 0, false
	}
	hours, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(m))
	if err != nil {
		return 0, false
	}
	return hours*60 + minutes, true
}

// Package knowledge loads the static advising fixtures (degree plan,
// next-term schedule options, professor ratings) that get embedded into
// advisor prompts and drive the offline fallback planner.
package knowledge

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// Section is one offered course section from schedule.json.
type Section struct {
	CourseID    string   `json:"courseId"`
	CourseTitle string   `json:"courseTitle"`
	ProfID      string   `json:"profId"`
	Days        []string `json:"days"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
}

// Professor is one entry from professors.json.
type Professor struct {
	ProfID string  `json:"profId"`
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

// Payload carries the fixtures as compacted JSON strings for prompt
// embedding, matching the shape the frontend sends alongside queries.
type Payload struct {
	ScheduleOptions string `json:"scheduleOptions"`
	Professors      string `json:"professors"`
	DegreePlan      string `json:"degreePlan"`
}

// Counts summarizes the loaded fixtures for the health endpoint.
type Counts struct {
	DegreeCourses    int `json:"degreeCourses"`
	ScheduleSections int `json:"scheduleSections"`
	Professors       int `json:"professors"`
}

// Store holds the parsed fixtures. Load may be called again at any time (the
// refresh worker does); reads and reloads are safe concurrently.
type Store struct {
	dir string
	log zerolog.Logger

	mu         sync.RWMutex
	sections   []Section
	professors []Professor
	degreeRaw  []byte
	degreePlan map[string]json.RawMessage
}

// NewStore creates a Store for the given fixture directory. Call Load before
// first use.
func NewStore(dir string, log zerolog.Logger) *Store {
	return &Store{
		dir: dir,
		log: log.With().Str("component", "knowledge_store").Logger(),
	}
}

// Load (re)reads all fixtures from disk. A missing, empty, or malformed file
// degrades to an empty fixture with a warning; Load itself only fails when
// the data directory is absent entirely.
func (s *Store) Load() error {
	if _, err := os.Stat(s.dir); err != nil {
		return err
	}

	scheduleRaw := s.loadJSON(filepath.Join(s.dir, "schedule.json"), "[]")
	professorsRaw := s.loadJSON(filepath.Join(s.dir, "professors.json"), "[]")
	degreeRaw := s.loadJSON(filepath.Join(s.dir, "degree.json"), "{}")

	var sections []Section
	if err := json.Unmarshal(scheduleRaw, &sections); err != nil {
		s.log.Warn().Err(err).Msg("schedule.json has an unexpected shape; ignoring")
	}

	var professors []Professor
	if err := json.Unmarshal(professorsRaw, &professors); err != nil {
		s.log.Warn().Err(err).Msg("professors.json has an unexpected shape; ignoring")
	}

	degreePlan := map[string]json.RawMessage{}
	if err := json.Unmarshal(degreeRaw, &degreePlan); err != nil {
		s.log.Warn().Err(err).Msg("degree.json has an unexpected shape; ignoring")
	}

	s.mu.Lock()
	s.sections = sections
	s.professors = professors
	s.degreeRaw = degreeRaw
	s.degreePlan = degreePlan
	s.mu.Unlock()

	s.log.Info().
		Int("sections", len(sections)).
		Int("professors", len(professors)).
		Msg("Knowledge fixtures loaded")
	return nil
}

// Sections returns the loaded schedule options.
func (s *Store) Sections() []Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sections
}

// Professors returns the loaded professor ratings keyed by profId.
func (s *Store) Professors() map[string]Professor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	byID := make(map[string]Professor, len(s.professors))
	for _, p := range s.professors {
		byID[p.ProfID] = p
	}
	return byID
}

// Counts reports fixture sizes for the health endpoint. Degree courses are
// counted from the plan's coreCourses array when present.
func (s *Store) Counts() Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var coreCourses []json.RawMessage
	if raw, ok := s.degreePlan["coreCourses"]; ok {
		_ = json.Unmarshal(raw, &coreCourses)
	}

	return Counts{
		DegreeCourses:    len(coreCourses),
		ScheduleSections: len(s.sections),
		Professors:       len(s.professors),
	}
}

// Payload compacts the fixtures into JSON strings for prompt embedding.
// maxChars > 0 truncates each string with a trailing ellipsis, mirroring how
// the frontend caps payloads it forwards.
func (s *Store) Payload(maxChars int) Payload {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Payload{
		ScheduleOptions: compact(s.sections, maxChars),
		Professors:      compact(s.professors, maxChars),
		DegreePlan:      compactRaw(s.degreeRaw, maxChars),
	}
}

func compact(v any, maxChars int) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return truncate(string(b), maxChars)
}

func compactRaw(raw []byte, maxChars int) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "{}"
	}
	return truncate(buf.String(), maxChars)
}

func truncate(s string, maxChars int) string {
	if maxChars > 0 && len(s) > maxChars {
		return s[:maxChars-3] + "..."
	}
	return s
}

// loadJSON reads one fixture file, tolerating a UTF-8 BOM, a missing file,
// empty content, and malformed JSON. Anything unusable degrades to the
// fallback literal so a broken fixture never takes the service down.
func (s *Store) loadJSON(path, fallback string) []byte {
	content, err := os.ReadFile(path)
	if err != nil {
		s.log.Warn().Str("path", path).Msg("JSON fixture not found; using empty value")
		return []byte(fallback)
	}

	content = bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF})
	content = bytes.TrimSpace(content)
	if len(content) == 0 {
		s.log.Warn().Str("path", path).Msg("Empty JSON fixture; using empty value")
		return []byte(fallback)
	}

	if !json.Valid(content) {
		s.log.Warn().Str("path", path).Msg("Malformed JSON fixture; using empty value")
		return []byte(fallback)
	}
	return content
}

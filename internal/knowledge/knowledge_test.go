package knowledge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestStoreLoad(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "schedule.json", `[
		{"courseId": "CSE-1320", "courseTitle": "Intermediate Programming", "profId": "p1", "days": ["mon", "wed"], "start": "09:00", "end": "10:20"},
		{"courseId": "MATH-2326", "courseTitle": "Calculus III", "profId": "p2", "days": ["tue"], "start": "13:00", "end": "14:20"}
	]`)
	writeFixture(t, dir, "professors.json", `[{"profId": "p1", "name": "Tiernan", "rating": 4.2}]`)
	writeFixture(t, dir, "degree.json", `{"coreCourses": [{"courseId": "CSE-1320"}, {"courseId": "MATH-2326"}]}`)

	store := NewStore(dir, zerolog.Nop())
	require.NoError(t, store.Load())

	counts := store.Counts()
	assert.Equal(t, 2, counts.ScheduleSections)
	assert.Equal(t, 1, counts.Professors)
	assert.Equal(t, 2, counts.DegreeCourses)

	sections := store.Sections()
	require.Len(t, sections, 2)
	assert.Equal(t, "CSE-1320", sections[0].CourseID)
	assert.Equal(t, []string{"mon", "wed"}, sections[0].Days)

	profs := store.Professors()
	assert.Equal(t, "Tiernan", profs["p1"].Name)
}

func TestStoreLoadDegradesGracefully(t *testing.T) {
	dir := t.TempDir()
	// BOM-prefixed, empty, and malformed fixtures must not fail the load.
	writeFixture(t, dir, "schedule.json", "\xEF\xBB\xBF[]")
	writeFixture(t, dir, "professors.json", "   ")
	writeFixture(t, dir, "degree.json", `{"coreCourses": [`)

	store := NewStore(dir, zerolog.Nop())
	require.NoError(t, store.Load())

	counts := store.Counts()
	assert.Zero(t, counts.ScheduleSections)
	assert.Zero(t, counts.Professors)
	assert.Zero(t, counts.DegreeCourses)

	payload := store.Payload(0)
	assert.Equal(t, "{}", payload.DegreePlan)
	assert.Equal(t, "[]", payload.ScheduleOptions)
}

func TestStoreLoadMissingDir(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing"), zerolog.Nop())
	assert.Error(t, store.Load())
}

func TestPayloadTruncation(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "schedule.json", `[{"courseId": "CSE-1320-with-a-very-long-identifier"}]`)
	writeFixture(t, dir, "professors.json", `[]`)
	writeFixture(t, dir, "degree.json", `{}`)

	store := NewStore(dir, zerolog.Nop())
	require.NoError(t, store.Load())

	payload := store.Payload(20)
	assert.Len(t, payload.ScheduleOptions, 20)
	assert.Equal(t, "...", payload.ScheduleOptions[17:])
}

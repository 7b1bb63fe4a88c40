package report

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/yungbote/dailyfeels-backend/internal/domain"
)

func entry(date, moodValue, emoji string, note *string) *types.MoodEntry {
	now := time.Now().UTC()
	return &types.MoodEntry{
		ID:        uuid.New(),
		Date:      date,
		MoodValue: moodValue,
		Emoji:     emoji,
		Note:      note,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func ptr(s string) *string { return &s }

func TestBuildSummaryOrdering(t *testing.T) {
	entries := []*types.MoodEntry{
		entry("2024-01-01", "happy", "😀", nil),
		entry("2024-01-02", "happy", "😀", nil),
		entry("2024-01-03", "sad", "😢", nil),
	}
	doc := Build(entries, types.DefaultMoods(), "", "")

	require.Len(t, doc.Summary, 2)
	assert.Equal(t, SummaryRow{Label: "Happy", Count: 2}, doc.Summary[0])
	assert.Equal(t, SummaryRow{Label: "Sad", Count: 1}, doc.Summary[1])
}

func TestBuildSummaryTiesKeepFirstEncounterOrder(t *testing.T) {
	entries := []*types.MoodEntry{
		entry("2024-01-01", "sad", "😢", nil),
		entry("2024-01-02", "happy", "😀", nil),
		entry("2024-01-03", "sad", "😢", nil),
		entry("2024-01-04", "happy", "😀", nil),
		entry("2024-01-05", "tired", "😴", nil),
	}
	doc := Build(entries, types.DefaultMoods(), "", "")

	require.Len(t, doc.Summary, 3)
	// sad and happy tie at 2; sad was seen first.
	assert.Equal(t, "Sad", doc.Summary[0].Label)
	assert.Equal(t, "Happy", doc.Summary[1].Label)
	assert.Equal(t, "Tired", doc.Summary[2].Label)
}

func TestBuildFallbackForUnknownMood(t *testing.T) {
	entries := []*types.MoodEntry{
		entry("2024-01-01", "nostalgic", "🥹", nil),
	}
	doc := Build(entries, types.DefaultMoods(), "", "")

	require.Len(t, doc.Details, 1)
	assert.Equal(t, "nostalgic", doc.Details[0].Label)
	assert.Equal(t, "#999999", doc.Details[0].Color)
	require.Len(t, doc.Summary, 1)
	assert.Equal(t, SummaryRow{Label: "nostalgic", Count: 1}, doc.Summary[0])
}

func TestBuildNoteHandling(t *testing.T) {
	long := strings.Repeat("a", 250)
	entries := []*types.MoodEntry{
		entry("2024-01-01", "happy", "😀", ptr(long)),
		entry("2024-01-02", "happy", "😀", nil),
	}
	doc := Build(entries, types.DefaultMoods(), "", "")

	require.Len(t, doc.Details, 2)
	assert.Equal(t, strings.Repeat("a", 200), doc.Details[0].Note)
	assert.Equal(t, "", doc.Details[1].Note)
}

func TestBuildEmptyEntries(t *testing.T) {
	doc := Build(nil, types.DefaultMoods(), "", "")

	assert.Empty(t, doc.Summary)
	assert.Empty(t, doc.Details)
	assert.Equal(t, "Mood Report", doc.Title)
	assert.Equal(t, "All time", doc.Timeframe)
}

func TestBuildTimeframe(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{name: "all_time", start: "", end: "", want: "All time"},
		{name: "both", start: "2024-01-01", end: "2024-02-01", want: "From 2024-01-01 to 2024-02-01"},
		{name: "start_only", start: "2024-01-01", end: "", want: "From 2024-01-01 to ..."},
		{name: "end_only", start: "", end: "2024-02-01", want: "From ... to 2024-02-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := Build(nil, nil, tc.start, tc.end)
			assert.Equal(t, tc.want, doc.Timeframe)
		})
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "mood_report_start_end.pdf", Build(nil, nil, "", "").Filename())
	assert.Equal(t, "mood_report_2024-01-01_end.pdf", Build(nil, nil, "2024-01-01", "").Filename())
	assert.Equal(t, "mood_report_start_2024-02-01.pdf", Build(nil, nil, "", "2024-02-01").Filename())
	assert.Equal(t, "mood_report_2024-01-01_2024-02-01.pdf", Build(nil, nil, "2024-01-01", "2024-02-01").Filename())
}

func TestBuildIsDeterministic(t *testing.T) {
	entries := []*types.MoodEntry{
		entry("2024-01-01", "happy", "😀", ptr("walked the dog")),
		entry("2024-01-02", "sad", "😢", nil),
		entry("2024-01-03", "happy", "😀", nil),
	}
	moods := types.DefaultMoods()

	a := Build(entries, moods, "2024-01-01", "2024-01-31")
	b := Build(entries, moods, "2024-01-01", "2024-01-31")
	assert.Equal(t, a, b)
}

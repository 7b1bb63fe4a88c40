package report

import (
	"fmt"
	"sort"

	types "github.com/yungbote/dailyfeels-backend/internal/domain"
)

const (
	fallbackColor = "#999999"
	maxNoteLen    = 200
)

// SummaryRow is one line of the mood frequency table.
type SummaryRow struct {
	Label string
	Count int
}

// DetailRow is one line of the entry listing. Color carries the display
// color resolved from the palette; the PDF renderer does not currently
// paint rows with it.
type DetailRow struct {
	Date  string
	Label string
	Emoji string
	Note  string
	Color string
}

// Document is the fully laid-out report, independent of any output
// format. Building it is pure: the same entries, palette and bounds
// always produce the same rows.
type Document struct {
	Title     string
	Timeframe string
	Start     string
	End       string
	Summary   []SummaryRow
	Details   []DetailRow
}

// Build lays out a report over entries already filtered to [start, end]
// and sorted ascending by date. Entries whose mood value is missing
// from the palette fall back to the raw value as label and a neutral
// gray color.
func Build(entries []*types.MoodEntry, moods []types.MoodDefinition, start, end string) *Document {
	colorFor := make(map[string]string, len(moods))
	labelFor := make(map[string]string, len(moods))
	for _, m := range moods {
		c := m.Color
		if c == "" {
			c = fallbackColor
		}
		colorFor[m.Value] = c
		l := m.Label
		if l == "" {
			l = m.Value
		}
		labelFor[m.Value] = l
	}
	label := func(value string) string {
		if l, ok := labelFor[value]; ok {
			return l
		}
		return value
	}
	color := func(value string) string {
		if c, ok := colorFor[value]; ok {
			return c
		}
		return fallbackColor
	}

	doc := &Document{
		Title:     "Mood Report",
		Timeframe: timeframe(start, end),
		Start:     start,
		End:       end,
	}

	// Frequency count in first-encounter order; ties in the summary
	// keep that order.
	counts := map[string]int{}
	var order []string
	for _, e := range entries {
		if _, seen := counts[e.MoodValue]; !seen {
			order = append(order, e.MoodValue)
		}
		counts[e.MoodValue]++
	}
	if len(order) > 0 {
		rows := make([]SummaryRow, 0, len(order))
		for _, v := range order {
			rows = append(rows, SummaryRow{Label: label(v), Count: counts[v]})
		}
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })
		doc.Summary = rows
	}

	doc.Details = make([]DetailRow, 0, len(entries))
	for _, e := range entries {
		note := ""
		if e.Note != nil {
			note = truncate(*e.Note, maxNoteLen)
		}
		doc.Details = append(doc.Details, DetailRow{
			Date:  e.Date,
			Label: label(e.MoodValue),
			Emoji: e.Emoji,
			Note:  note,
			Color: color(e.MoodValue),
		})
	}
	return doc
}

// Filename encodes the originating bounds; an absent bound keeps the
// literal token so exports stay distinguishable.
func (d *Document) Filename() string {
	start := d.Start
	if start == "" {
		start = "start"
	}
	end := d.End
	if end == "" {
		end = "end"
	}
	return fmt.Sprintf("mood_report_%s_%s.pdf", start, end)
}

func timeframe(start, end string) string {
	if start == "" && end == "" {
		return "All time"
	}
	if start == "" {
		start = "..."
	}
	if end == "" {
		end = "..."
	}
	return fmt.Sprintf("From %s to %s", start, end)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

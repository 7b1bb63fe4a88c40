package domain

import (
	"time"

	"github.com/google/uuid"
)

// MoodEntry is the one-per-date journal record. Date is stored in its
// canonical YYYY-MM-DD form so lexicographic range queries match
// chronological order. Emoji is a denormalized copy of the palette at
// submission time and may drift from the active configuration; that is
// tolerated so historical entries stay displayable after the palette
// changes.
type MoodEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Date      string    `gorm:"uniqueIndex;not null;column:date" json:"date"`
	MoodValue string    `gorm:"not null;column:mood_value" json:"mood_value"`
	Emoji     string    `gorm:"not null;column:emoji" json:"emoji"`
	Note      *string   `gorm:"column:note" json:"note,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (MoodEntry) TableName() string { return "mood_entry" }

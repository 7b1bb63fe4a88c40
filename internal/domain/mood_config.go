package domain

import (
	"time"

	"gorm.io/datatypes"
)

// MoodDefinition is one selectable mood in the active palette. It lives
// inside the MoodConfig JSON column, not in its own table.
type MoodDefinition struct {
	Value string `json:"value"`
	Emoji string `json:"emoji"`
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
}

// MoodConfig is the process-wide palette singleton, keyed by
// MoodConfigKey. Replaced wholesale on write; no merge, no versioning.
type MoodConfig struct {
	Key       string         `gorm:"primaryKey;column:key" json:"key"`
	Moods     datatypes.JSON `gorm:"column:moods" json:"moods"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
}

func (MoodConfig) TableName() string { return "setting" }

const MoodConfigKey = "mood_config"

// DefaultMoods is the built-in palette returned when no configuration
// has been stored. It is never persisted implicitly.
func DefaultMoods() []MoodDefinition {
	return []MoodDefinition{
		{Value: "happy", Emoji: "😀", Label: "Happy", Color: "#22c55e"},
		{Value: "content", Emoji: "🙂", Label: "Content", Color: "#10b981"},
		{Value: "meh", Emoji: "😐", Label: "Meh", Color: "#a3a3a3"},
		{Value: "anxious", Emoji: "😕", Label: "Anxious", Color: "#f59e0b"},
		{Value: "sad", Emoji: "😢", Label: "Sad", Color: "#3b82f6"},
		{Value: "angry", Emoji: "😠", Label: "Angry", Color: "#ef4444"},
		{Value: "tired", Emoji: "😴", Label: "Tired", Color: "#8b5cf6"},
	}
}

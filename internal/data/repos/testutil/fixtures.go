package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/dailyfeels-backend/internal/domain"
)

func SeedEntry(tb testing.TB, ctx context.Context, tx *gorm.DB, date, moodValue string) *types.MoodEntry {
	tb.Helper()
	now := time.Now().UTC()
	e := &types.MoodEntry{
		ID:        uuid.New(),
		Date:      date,
		MoodValue: moodValue,
		Emoji:     "😀",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed entry: %v", err)
	}
	return e
}

func PtrString(v string) *string { return &v }

func PtrTime(v time.Time) *time.Time { return &v }

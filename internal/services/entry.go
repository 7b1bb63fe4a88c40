package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/dailyfeels-backend/internal/data/repos"
	types "github.com/yungbote/dailyfeels-backend/internal/domain"
	"github.com/yungbote/dailyfeels-backend/internal/platform/apierr"
	"github.com/yungbote/dailyfeels-backend/internal/platform/logger"
)

const dateLayout = "2006-01-02"

type UpsertEntryInput struct {
	Date      string
	MoodValue string
	Emoji     string
	Note      *string
}

type EntryService interface {
	// Upsert creates the entry for the date or mutates the existing one
	// in place, keeping its id and created_at. Concurrent upserts to the
	// same date are last-write-wins; callers needing stronger guarantees
	// have to add a conditional write at the store layer.
	Upsert(ctx context.Context, input UpsertEntryInput) (*types.MoodEntry, error)
	List(ctx context.Context, start, end string) ([]*types.MoodEntry, error)
	Delete(ctx context.Context, id string) error
}

type entryService struct {
	db        *gorm.DB
	log       *logger.Logger
	entryRepo repos.MoodEntryRepo
}

func NewEntryService(db *gorm.DB, log *logger.Logger, entryRepo repos.MoodEntryRepo) EntryService {
	serviceLog := log.With("service", "EntryService")
	return &entryService{db: db, log: serviceLog, entryRepo: entryRepo}
}

func (s *entryService) Upsert(ctx context.Context, input UpsertEntryInput) (*types.MoodEntry, error) {
	date := strings.TrimSpace(input.Date)
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, apierr.Validation("invalid_date", fmt.Errorf("date must be YYYY-MM-DD: %q", input.Date))
	}
	if strings.TrimSpace(input.MoodValue) == "" {
		return nil, apierr.Validation("missing_mood_value", fmt.Errorf("mood_value is required"))
	}
	if strings.TrimSpace(input.Emoji) == "" {
		return nil, apierr.Validation("missing_emoji", fmt.Errorf("emoji is required"))
	}

	now := time.Now().UTC()
	var out *types.MoodEntry

	// Read-check-write runs inside one transaction so the one-entry-per-
	// date invariant holds for everyone observing the store.
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.entryRepo.GetByDate(ctx, tx, date)
		if err != nil {
			return err
		}
		if existing != nil {
			updates := map[string]interface{}{
				"mood_value": input.MoodValue,
				"emoji":      input.Emoji,
				"note":       input.Note,
				"updated_at": now,
			}
			if err := s.entryRepo.UpdateFields(ctx, tx, existing.ID, updates); err != nil {
				return err
			}
			existing.MoodValue = input.MoodValue
			existing.Emoji = input.Emoji
			existing.Note = input.Note
			existing.UpdatedAt = now
			out = existing
			return nil
		}
		entry := &types.MoodEntry{
			ID:        uuid.New(),
			Date:      date,
			MoodValue: input.MoodValue,
			Emoji:     input.Emoji,
			Note:      input.Note,
			CreatedAt: now,
			UpdatedAt: now,
		}
		created, err := s.entryRepo.Create(ctx, tx, []*types.MoodEntry{entry})
		if err != nil {
			return err
		}
		out = created[0]
		return nil
	})
	if err != nil {
		s.log.Warn("Entry upsert failed", "date", date, "error", err)
		return nil, apierr.Unavailable("storage_unavailable", err)
	}
	return out, nil
}

func (s *entryService) List(ctx context.Context, start, end string) ([]*types.MoodEntry, error) {
	entries, err := s.entryRepo.ListRange(ctx, nil, strings.TrimSpace(start), strings.TrimSpace(end))
	if err != nil {
		s.log.Warn("Entry list failed", "error", err)
		return nil, apierr.Unavailable("storage_unavailable", err)
	}
	return entries, nil
}

func (s *entryService) Delete(ctx context.Context, id string) error {
	entryID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return apierr.NotFound("entry_not_found", fmt.Errorf("no entry with id %q", id))
	}
	removed, err := s.entryRepo.DeleteByID(ctx, nil, entryID)
	if err != nil {
		s.log.Warn("Entry delete failed", "entry_id", entryID, "error", err)
		return apierr.Unavailable("storage_unavailable", err)
	}
	if removed == 0 {
		return apierr.NotFound("entry_not_found", fmt.Errorf("no entry with id %q", id))
	}
	return nil
}

package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"todo-planner/internal/model"
)

// JournalRepository stores the command history of every session.
type JournalRepository struct {
	db *gorm.DB
}

func NewJournalRepository(db *gorm.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

func (r *JournalRepository) Append(ctx context.Context, entry *model.JournalEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("append journal entry: %w", err)
	}
	return nil
}

// ListRecent returns the newest entries of a session, oldest first.
func (r *JournalRepository) ListRecent(ctx context.Context, chatID int64, sessionID string, limit int) ([]model.JournalEntry, error) {
	var entries []model.JournalEntry
	if err := r.db.WithContext(ctx).Where("chat_id = ? AND session_id = ?", chatID, sessionID).
		Order("id DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list journal: %w", err)
	}
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

func (r *JournalRepository) CountBySession(ctx context.Context, sessionID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.JournalEntry{}).Where("session_id = ?", sessionID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count journal: %w", err)
	}
	return count, nil
}

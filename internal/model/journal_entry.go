package model

import "time"

// JournalEntry records one command run against an in-memory session.
type JournalEntry struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index"`
	ChatID    int64  `gorm:"index"`
	SessionID string `gorm:"index;size:36"`
	Command   string
	Output    string
	CreatedAt time.Time
}

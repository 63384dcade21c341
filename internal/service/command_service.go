package service

import (
	"context"
	"log"
	"strings"
	"time"

	"todo-planner/internal/command"
	"todo-planner/internal/model"
	"todo-planner/internal/repository"
	"todo-planner/internal/todo"
)

// CommandService runs to-do commands against chat sessions and journals them.
type CommandService struct {
	sessions *SessionService
	journal  *repository.JournalRepository
}

func NewCommandService(sessions *SessionService, journal *repository.JournalRepository) *CommandService {
	return &CommandService{sessions: sessions, journal: journal}
}

// Execute runs name with args in the chat's session. The returned lines are
// the command output; a journal failure is returned as error after the
// command itself has already been applied.
func (s *CommandService) Execute(ctx context.Context, user *model.User, chatID int64, name string, args []string) ([]string, error) {
	var (
		lines     []string
		sessionID string
	)
	s.sessions.Run(chatID, func(id string, session *todo.Session) {
		sessionID = id
		lines = command.Execute(session, name, args)
	})

	entry := model.JournalEntry{
		ChatID:    chatID,
		SessionID: sessionID,
		Command:   strings.TrimSpace(name + " " + strings.Join(args, " ")),
		Output:    strings.Join(lines, "\n"),
		CreatedAt: time.Now(),
	}
	if user != nil {
		entry.UserID = user.ID
	}
	if s.journal == nil {
		return lines, nil
	}
	if err := s.journal.Append(ctx, &entry); err != nil {
		log.Printf("journal chat=%d: %v", chatID, err)
		return lines, err
	}
	return lines, nil
}

// History returns the newest journal entries of the chat's current session.
func (s *CommandService) History(ctx context.Context, chatID int64, limit int) ([]model.JournalEntry, error) {
	return s.journal.ListRecent(ctx, chatID, s.sessions.SessionID(chatID), limit)
}

// NewSession discards the chat's session and starts an empty one.
func (s *CommandService) NewSession(chatID int64) string {
	return s.sessions.Reset(chatID)
}

package service

import (
	"fmt"
	"html"
	"strings"
	"time"

	"todo-planner/internal/todo"
)

// DigestService builds the scheduled deadline summary of a chat session.
type DigestService struct {
	sessions *SessionService
}

func NewDigestService(sessions *SessionService) *DigestService {
	return &DigestService{sessions: sessions}
}

// Digest renders overdue and upcoming tasks of the chat's session. ok is
// false when the chat has no session or nothing is due.
func (s *DigestService) Digest(chatID int64, now time.Time) (text string, ok bool) {
	s.sessions.RunExisting(chatID, func(_ string, session *todo.Session) {
		text, ok = Summary(session, todo.DateOf(now))
	})
	return text, ok
}

// Summary renders the digest for today. Lists are searched as well, unlike
// the interactive reports.
func Summary(session *todo.Session, today todo.Date) (string, bool) {
	overdue := session.Report(todo.Query{Match: openTask(todo.Before(today)), DescendLists: true})
	upcoming := session.Report(todo.Query{Match: openTask(todo.Upcoming(today)), DescendLists: true})
	if len(overdue) == 0 && len(upcoming) == 0 {
		return "", false
	}

	var builder strings.Builder
	builder.WriteString("📋 <b>Deadline digest</b>\n")
	builder.WriteString(fmt.Sprintf("🗓 %s\n", today))

	if len(overdue) > 0 {
		builder.WriteString("\n⚠️ <b>Overdue</b>\n")
		writeBlock(&builder, overdue)
	}
	if len(upcoming) > 0 {
		builder.WriteString("\n⏳ <b>Next 7 days</b>\n")
		writeBlock(&builder, upcoming)
	}
	return strings.TrimSpace(builder.String()), true
}

// openTask narrows match to tasks that are neither completed nor deleted.
func openTask(match todo.Predicate) todo.Predicate {
	return func(item todo.Item) bool {
		task, ok := item.(*todo.Task)
		return ok && !task.Completed() && !task.Deleted() && match(item)
	}
}

func writeBlock(builder *strings.Builder, lines []string) {
	builder.WriteString("<pre>")
	for _, line := range lines {
		builder.WriteString(html.EscapeString(line))
		builder.WriteByte('\n')
	}
	builder.WriteString("</pre>\n")
}

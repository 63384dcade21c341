package todo

import "strings"

// Predicate decides whether a node starts a rendered subtree.
type Predicate func(Item) bool

// All matches every node.
func All() Predicate {
	return func(Item) bool { return true }
}

// NameContains matches tasks whose name contains substr.
func NameContains(substr string) Predicate {
	return func(item Item) bool {
		task, ok := item.(*Task)
		return ok && strings.Contains(task.name, substr)
	}
}

// TaggedWith matches tasks carrying exactly tag.
func TaggedWith(tag string) Predicate {
	return func(item Item) bool {
		task, ok := item.(*Task)
		return ok && task.tag == tag
	}
}

// Before matches tasks due strictly before ref.
func Before(ref Date) Predicate {
	return deadlineMatches(func(d Date) bool { return d.Before(ref) })
}

// Upcoming matches tasks due in the seven days following ref, both ends excluded.
func Upcoming(ref Date) Predicate {
	return deadlineMatches(func(d Date) bool { return d.Within(ref) })
}

// Between matches tasks due strictly between start and end.
func Between(start, end Date) Predicate {
	return deadlineMatches(func(d Date) bool { return d.Between(start, end) })
}

// IncompleteWithCompletedWork matches an incomplete task that has at least
// one completed task somewhere below it. This is the selection the todo
// report has always used, even though the name suggests open work only.
func IncompleteWithCompletedWork() Predicate {
	return func(item Item) bool {
		task, ok := item.(*Task)
		return ok && !task.completed && task.hasCompletedDescendant()
	}
}

// HasOpenWork is the alternative reading of the todo report: an incomplete
// task with at least one incomplete task below it.
func HasOpenWork() Predicate {
	return func(item Item) bool {
		task, ok := item.(*Task)
		return ok && !task.completed && task.hasIncompleteDescendant()
	}
}

func deadlineMatches(match func(Date) bool) Predicate {
	return func(item Item) bool {
		task, ok := item.(*Task)
		if !ok {
			return false
		}
		deadline, set := task.Deadline()
		return set && match(deadline)
	}
}

func (t *Task) hasIncompleteDescendant() bool {
	for _, child := range t.children {
		if !child.completed || child.hasIncompleteDescendant() {
			return true
		}
	}
	return false
}

// Query selects subtrees of the forest.
type Query struct {
	Match Predicate
	// DescendLists searches below lists that do not match themselves.
	// Off by default: a non-matching list hides its whole content.
	DescendLists bool
}

// Report renders every matching subtree of the session's roots.
func (s *Session) Report(q Query) []string {
	match := q.Match
	if match == nil {
		match = All()
	}
	var lines []string
	for _, root := range s.roots {
		lines = collect(lines, root, match, q.DescendLists)
	}
	return lines
}

// Show renders a single item with its full subtree.
func (s *Session) Show(id string) ([]string, error) {
	item, ok := s.index[id]
	if !ok {
		return nil, ErrInvalidTaskID
	}
	return renderTree(nil, item, 0), nil
}

func collect(lines []string, item Item, match Predicate, descendLists bool) []string {
	if match(item) {
		return renderTree(lines, item, 0)
	}
	if _, isList := item.(*List); isList && !descendLists {
		return lines
	}
	for _, child := range item.Children() {
		lines = collect(lines, child, match, descendLists)
	}
	return lines
}

func renderTree(lines []string, item Item, depth int) []string {
	lines = append(lines, RenderItem(item, depth))
	for _, child := range item.Children() {
		lines = renderTree(lines, child, depth+1)
	}
	return lines
}

// RenderItem formats one line: indentation, bullet, checkbox, name and the
// optional priority, tag and deadline suffixes.
func RenderItem(item Item, depth int) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString("- ")

	var deadline string
	if task, ok := item.(*Task); ok {
		if task.completed {
			sb.WriteString("[x] ")
		} else {
			sb.WriteString("[ ] ")
		}
		sb.WriteString(task.name)
		if task.priority != PriorityNone {
			sb.WriteString(" [" + string(task.priority) + "]")
		}
		deadline = task.deadline.String()
	} else {
		sb.WriteString(item.Name())
	}

	tag := item.Tag()
	if tag != "" || deadline != "" {
		sb.WriteByte(':')
		if tag != "" {
			sb.WriteString(" (" + tag + ")")
		}
		if deadline != "" {
			sb.WriteString(" --> " + deadline)
		}
	}
	return sb.String()
}

// Package command maps tokenised commands onto a todo.Session and produces
// the lines shown to the user.
package command

import (
	"errors"
	"fmt"
	"strings"

	"todo-planner/internal/todo"
)

const (
	Add            = "add"
	AddList        = "add-list"
	Assign         = "assign"
	Tag            = "tag"
	Toggle         = "toggle"
	ChangeDate     = "change-date"
	ChangePriority = "change-priority"
	Delete         = "delete"
	Restore        = "restore"
	Show           = "show"
	Todo           = "todo"
	Find           = "find"
	TaggedWith     = "tagged-with"
	Upcoming       = "upcoming"
	Before         = "before"
	Between        = "between"
	Duplicate      = "duplicate"
)

// arity lists the accepted argument counts per command.
var arity = map[string][]int{
	Add:            {1, 2, 3},
	AddList:        {1},
	Assign:         {2},
	Tag:            {2},
	Toggle:         {1},
	ChangeDate:     {2},
	ChangePriority: {1, 2},
	Delete:         {1},
	Restore:        {1},
	Show:           {1},
	Todo:           {0},
	Find:           {1},
	TaggedWith:     {1},
	Upcoming:       {1},
	Before:         {1},
	Between:        {2},
	Duplicate:      {0},
}

// Names returns every supported command.
func Names() []string {
	return []string{
		Add, AddList, Assign, Tag, Toggle, ChangeDate, ChangePriority,
		Delete, Restore, Show, Todo, Find, TaggedWith, Upcoming, Before,
		Between, Duplicate,
	}
}

// Execute runs one command against s. References to unknown ids produce no
// output; every other failure yields a single diagnostic line.
func Execute(s *todo.Session, name string, args []string) []string {
	name = strings.ToLower(strings.TrimSpace(name))
	counts, ok := arity[name]
	if !ok || !contains(counts, len(args)) {
		return []string{todo.Diagnostic(todo.ErrInvalidCommand)}
	}

	lines, err := dispatch(s, name, args)
	switch {
	case err == nil:
		return lines
	case errors.Is(err, todo.ErrNotFound), errors.Is(err, todo.ErrNotATask):
		return nil
	default:
		return []string{todo.Diagnostic(err)}
	}
}

func dispatch(s *todo.Session, name string, args []string) ([]string, error) {
	switch name {
	case Add:
		task, err := s.AddTask(args[0], args[1:]...)
		if err != nil {
			return nil, err
		}
		return line("added %s: %s", task.ID(), task.Name()), nil
	case AddList:
		list, err := s.AddList(args[0])
		if err != nil {
			return nil, err
		}
		return line("added %s", list.ID()), nil
	case Assign:
		if !todo.ValidTaskID(args[0]) || !todo.ValidItemID(args[1]) {
			return nil, todo.ErrInvalidArguments
		}
		child, parent, err := s.Assign(args[0], args[1])
		if err != nil {
			return nil, err
		}
		return line("assigned %s to %s", child.ID(), parent.ID()), nil
	case Tag:
		item, err := s.Tag(args[0], args[1])
		if err != nil {
			return nil, err
		}
		return line("tagged %s with %s", item.ID(), item.Tag()), nil
	case Toggle:
		task, n, err := s.Toggle(args[0])
		if err != nil {
			return nil, err
		}
		return line("toggled %s and %d subtasks", task.ID(), n), nil
	case ChangeDate:
		task, err := s.ChangeDate(args[0], args[1])
		if err != nil {
			return nil, err
		}
		deadline, _ := task.Deadline()
		return line("changed %s to %s", task.ID(), deadline), nil
	case ChangePriority:
		raw := ""
		if len(args) == 2 {
			raw = args[1]
		}
		task, err := s.ChangePriority(args[0], raw)
		if err != nil {
			return nil, err
		}
		return line("changed %s to %s", task.ID(), task.Priority()), nil
	case Delete:
		task, n, err := s.Delete(args[0])
		if err != nil {
			return nil, err
		}
		return line("deleted %s and %d subtasks", task.ID(), n), nil
	case Restore:
		task, n, err := s.Restore(args[0])
		if err != nil {
			return nil, err
		}
		return line("restored %s and %d subtasks", task.ID(), n), nil
	case Show:
		return s.Show(args[0])
	case Todo:
		return s.Report(todo.Query{Match: todo.IncompleteWithCompletedWork()}), nil
	case Find:
		return s.Report(todo.Query{Match: todo.NameContains(args[0])}), nil
	case TaggedWith:
		return s.Report(todo.Query{Match: todo.TaggedWith(args[0])}), nil
	case Upcoming, Before:
		ref, err := todo.ParseDate(args[0])
		if err != nil {
			return nil, err
		}
		match := todo.Upcoming(ref)
		if name == Before {
			match = todo.Before(ref)
		}
		return s.Report(todo.Query{Match: match}), nil
	case Between:
		start, err := todo.ParseDate(args[0])
		if err != nil {
			return nil, err
		}
		end, err := todo.ParseDate(args[1])
		if err != nil {
			return nil, err
		}
		return s.Report(todo.Query{Match: todo.Between(start, end)}), nil
	case Duplicate:
		ids := s.Duplicates()
		return line("Found %d duplicates: %s", len(ids), strings.Join(ids, ", ")), nil
	}
	return nil, todo.ErrInvalidCommand
}

func line(format string, args ...any) []string {
	return []string{fmt.Sprintf(format, args...)}
}

func contains(values []int, v int) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

package todo

import (
	"errors"
	"testing"
)

func mustAddTask(t *testing.T, s *Session, name string, opts ...string) *Task {
	t.Helper()
	task, err := s.AddTask(name, opts...)
	if err != nil {
		t.Fatalf("AddTask(%q, %v): %v", name, opts, err)
	}
	return task
}

func mustAssign(t *testing.T, s *Session, childID, parentID string) {
	t.Helper()
	if _, _, err := s.Assign(childID, parentID); err != nil {
		t.Fatalf("Assign(%s, %s): %v", childID, parentID, err)
	}
}

func childIDs(item Item) []string {
	var ids []string
	for _, child := range item.Children() {
		ids = append(ids, child.ID())
	}
	return ids
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAddTaskAssignsSequentialIDs(t *testing.T) {
	s := NewSession()
	for i, want := range []string{"1", "2", "3"} {
		task := mustAddTask(t, s, "task")
		if task.ID() != want {
			t.Errorf("task %d: got id %s, want %s", i, task.ID(), want)
		}
	}

	if _, _, err := s.Delete("2"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if task := mustAddTask(t, s, "later"); task.ID() != "4" {
		t.Errorf("id after delete: got %s, want 4", task.ID())
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	a := NewSession()
	b := NewSession()
	mustAddTask(t, a, "one")
	mustAddTask(t, a, "two")

	if task := mustAddTask(t, b, "first"); task.ID() != "1" {
		t.Errorf("second session id: got %s, want 1", task.ID())
	}
	if _, ok := b.Lookup("2"); ok {
		t.Error("second session sees tasks of the first")
	}
}

func TestAddTaskOptionalFields(t *testing.T) {
	tests := []struct {
		name         string
		opts         []string
		wantPriority Priority
		wantDeadline string
		wantErr      error
	}{
		{name: "name only"},
		{name: "priority only", opts: []string{"HI"}, wantPriority: PriorityHigh},
		{name: "deadline only", opts: []string{"2024-01-15"}, wantDeadline: "2024-01-15"},
		{name: "both", opts: []string{"LO", "2024-03-01"}, wantPriority: PriorityLow, wantDeadline: "2024-03-01"},
		{name: "garbage single", opts: []string{"soon"}, wantErr: ErrInvalidArguments},
		{name: "date in priority slot", opts: []string{"2024-03-01", "HI"}, wantErr: ErrInvalidArguments},
		{name: "overflowing date", opts: []string{"2023-02-29"}, wantErr: ErrInvalidArguments},
		{name: "lowercase priority", opts: []string{"hi"}, wantErr: ErrInvalidArguments},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			task, err := s.AddTask("Groceries", tt.opts...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got err %v, want %v", err, tt.wantErr)
				}
				if len(s.Tasks()) != 0 {
					t.Error("failed add must not register a task")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if task.Priority() != tt.wantPriority {
				t.Errorf("priority: got %q, want %q", task.Priority(), tt.wantPriority)
			}
			deadline, _ := task.Deadline()
			if deadline.String() != tt.wantDeadline {
				t.Errorf("deadline: got %q, want %q", deadline, tt.wantDeadline)
			}
		})
	}
}

func TestAddTaskRejectsBadNames(t *testing.T) {
	s := NewSession()
	for _, name := range []string{"", "Pay rent", " lead", "tab\tbed"} {
		if _, err := s.AddTask(name); !errors.Is(err, ErrInvalidArguments) {
			t.Errorf("AddTask(%q): got %v, want ErrInvalidArguments", name, err)
		}
	}
}

func TestAddList(t *testing.T) {
	s := NewSession()
	list, err := s.AddList("Shopping")
	if err != nil {
		t.Fatalf("AddList: %v", err)
	}
	if list.ID() != "Shopping" || list.Name() != "Shopping" {
		t.Errorf("got id %q name %q", list.ID(), list.Name())
	}

	for _, bad := range []string{"", "Shop2", "my-list", "Shopping"} {
		if _, err := s.AddList(bad); !errors.Is(err, ErrInvalidListName) {
			t.Errorf("AddList(%q): got %v, want ErrInvalidListName", bad, err)
		}
	}
	if got := len(s.Roots()); got != 1 {
		t.Errorf("roots: got %d, want 1", got)
	}
}

func TestTagRoundTrip(t *testing.T) {
	s := NewSession()
	mustAddTask(t, s, "Milk")
	if _, err := s.AddList("Home"); err != nil {
		t.Fatal(err)
	}

	item, err := s.Tag("1", "#food")
	if err != nil {
		t.Fatalf("Tag: %v", err)
	}
	if item.Tag() != "#food" {
		t.Errorf("tag: got %q, want #food", item.Tag())
	}

	for _, bad := range []string{"food", "#", "#fo od", "#food!", "##food"} {
		if _, err := s.Tag("1", bad); !errors.Is(err, ErrInvalidTag) {
			t.Errorf("Tag(%q): got %v, want ErrInvalidTag", bad, err)
		}
		if item.Tag() != "#food" {
			t.Errorf("invalid tag %q replaced previous tag: %q", bad, item.Tag())
		}
	}

	list, err := s.Tag("Home", "#house1")
	if err != nil || list.Tag() != "#house1" {
		t.Errorf("tag list: got %q, %v", list.Tag(), err)
	}

	if _, err := s.Tag("99", "#x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id: got %v, want ErrNotFound", err)
	}
}

func TestChildrenSortedByPriorityStable(t *testing.T) {
	s := NewSession()
	parent := mustAddTask(t, s, "parent")
	mustAddTask(t, s, "noneA")          // 2
	mustAddTask(t, s, "lowA", "LO")     // 3
	mustAddTask(t, s, "medA", "MD")     // 4
	mustAddTask(t, s, "noneB")          // 5
	mustAddTask(t, s, "lowB", "LO")     // 6
	mustAddTask(t, s, "high", "HI")     // 7
	for _, id := range []string{"2", "3", "4", "5", "6", "7"} {
		mustAssign(t, s, id, parent.ID())
	}

	want := []string{"7", "4", "3", "6", "2", "5"}
	if got := childIDs(parent); !equalStrings(got, want) {
		t.Errorf("children: got %v, want %v", got, want)
	}
}

func TestChangePriorityResortsParent(t *testing.T) {
	s := NewSession()
	mustAddTask(t, s, "parent")
	mustAddTask(t, s, "a", "HI")
	mustAddTask(t, s, "b", "MD")
	mustAssign(t, s, "2", "1")
	mustAssign(t, s, "3", "1")

	if _, err := s.ChangePriority("2", "LO"); err != nil {
		t.Fatalf("ChangePriority: %v", err)
	}
	parent, _ := s.Lookup("1")
	if got := childIDs(parent); !equalStrings(got, []string{"3", "2"}) {
		t.Errorf("children after change: got %v", got)
	}

	task, err := s.ChangePriority("2", "")
	if err != nil || task.Priority() != PriorityNone {
		t.Errorf("clear priority: got %q, %v", task.Priority(), err)
	}

	if _, err := s.ChangePriority("3", "URGENT"); !errors.Is(err, ErrInvalidPriority) {
		t.Errorf("invalid priority: got %v", err)
	}
	task3, _ := s.Lookup("3")
	if p := task3.(*Task).Priority(); p != PriorityMed {
		t.Errorf("invalid priority changed field to %q", p)
	}
}

func TestChangeDate(t *testing.T) {
	s := NewSession()
	task := mustAddTask(t, s, "report", "2024-01-01")

	if _, err := s.ChangeDate("1", "2024-02-30"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("overflow: got %v, want ErrInvalidDate", err)
	}
	if d, _ := task.Deadline(); d.String() != "2024-01-01" {
		t.Errorf("deadline changed on invalid input: %s", d)
	}

	if _, err := s.ChangeDate("1", "2024-02-29"); err != nil {
		t.Fatalf("leap day: %v", err)
	}
	if d, _ := task.Deadline(); d.String() != "2024-02-29" {
		t.Errorf("deadline: got %s", d)
	}
}

func TestAssignMovesTask(t *testing.T) {
	s := NewSession()
	mustAddTask(t, s, "Groceries", "HI")
	mustAddTask(t, s, "Milk")
	if _, err := s.AddList("Home"); err != nil {
		t.Fatal(err)
	}

	child, parent, err := s.Assign("2", "1")
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if child.ID() != "2" || parent.ID() != "1" {
		t.Errorf("got %s -> %s", child.ID(), parent.ID())
	}
	if len(s.Roots()) != 2 {
		t.Errorf("roots after assign: got %d, want 2", len(s.Roots()))
	}

	mustAssign(t, s, "2", "Home")
	groceries, _ := s.Lookup("1")
	home, _ := s.Lookup("Home")
	if len(groceries.Children()) != 0 {
		t.Error("task still listed under previous parent")
	}
	if got := childIDs(home); !equalStrings(got, []string{"2"}) {
		t.Errorf("home children: got %v", got)
	}
	if child.Parent() != home {
		t.Error("parent pointer not updated")
	}
	if len(s.Tasks()) != 2 {
		t.Errorf("registry must keep assigned tasks: got %d", len(s.Tasks()))
	}
}

func TestAssignRejections(t *testing.T) {
	s := NewSession()
	mustAddTask(t, s, "a")
	mustAddTask(t, s, "b")
	mustAddTask(t, s, "c")
	if _, err := s.AddList("Inbox"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddList("Other"); err != nil {
		t.Fatal(err)
	}
	mustAssign(t, s, "2", "1")
	mustAssign(t, s, "3", "2")

	tests := []struct {
		name   string
		child  string
		parent string
		want   error
	}{
		{"missing child", "42", "1", ErrNotFound},
		{"missing parent", "1", "42", ErrNotFound},
		{"list as child", "Inbox", "Other", ErrNotATask},
		{"self", "1", "1", ErrCycle},
		{"into descendant", "1", "3", ErrCycle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := s.Assign(tt.child, tt.parent); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
	if got := len(s.Roots()); got != 3 {
		t.Errorf("rejected assigns changed roots: got %d, want 3", got)
	}
}

func TestToggleResetsDescendants(t *testing.T) {
	s := NewSession()
	mustAddTask(t, s, "Groceries", "HI")
	mustAddTask(t, s, "Milk")
	mustAddTask(t, s, "Oat")
	mustAssign(t, s, "2", "1")
	mustAssign(t, s, "3", "2")

	if _, _, err := s.Toggle("3"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.Toggle("2"); err != nil {
		t.Fatal(err)
	}

	task, n, err := s.Toggle("1")
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !task.Completed() || n != 2 {
		t.Errorf("got completed=%t n=%d, want true 2", task.Completed(), n)
	}
	for _, id := range []string{"2", "3"} {
		item, _ := s.Lookup(id)
		if item.(*Task).Completed() {
			t.Errorf("descendant %s still completed", id)
		}
	}

	task, _, _ = s.Toggle("1")
	if task.Completed() {
		t.Error("second toggle must clear completion")
	}
}

func TestDeleteAndRestoreCascade(t *testing.T) {
	s := NewSession()
	mustAddTask(t, s, "root")
	mustAddTask(t, s, "mid")
	mustAddTask(t, s, "leaf")
	mustAddTask(t, s, "other")
	mustAssign(t, s, "2", "1")
	mustAssign(t, s, "3", "2")

	_, n, err := s.Delete("1")
	if err != nil || n != 2 {
		t.Fatalf("Delete: n=%d err=%v", n, err)
	}
	for _, task := range s.Tasks() {
		want := task.ID() != "4"
		if task.Deleted() != want {
			t.Errorf("task %s deleted=%t, want %t", task.ID(), task.Deleted(), want)
		}
	}

	_, n, err = s.Restore("2")
	if err != nil || n != 1 {
		t.Fatalf("Restore: n=%d err=%v", n, err)
	}
	for id, want := range map[string]bool{"1": true, "2": false, "3": false} {
		item, _ := s.Lookup(id)
		if item.(*Task).Deleted() != want {
			t.Errorf("task %s deleted=%t, want %t", id, !want, want)
		}
	}

	if _, err := s.AddList("Work"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.Delete("Work"); !errors.Is(err, ErrNotATask) {
		t.Errorf("deleting a list: got %v, want ErrNotATask", err)
	}
}

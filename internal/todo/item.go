package todo

import "sort"

// Item is any addressable node of the hierarchy: a *Task or a *List.
type Item interface {
	ID() string
	Name() string
	Tag() string
	Children() []*Task

	setTag(tag string)
	addChild(task *Task)
	removeChild(task *Task)
	sortChildren()
}

// node holds what tasks and lists have in common.
type node struct {
	id       string
	name     string
	tag      string
	children []*Task
}

func (n *node) ID() string   { return n.id }
func (n *node) Name() string { return n.name }
func (n *node) Tag() string  { return n.tag }

// Children returns a copy of the direct subtasks in priority order.
func (n *node) Children() []*Task {
	out := make([]*Task, len(n.children))
	copy(out, n.children)
	return out
}

func (n *node) setTag(tag string) {
	n.tag = tag
}

func (n *node) addChild(task *Task) {
	n.children = append(n.children, task)
	n.sortChildren()
}

func (n *node) removeChild(task *Task) {
	for i, child := range n.children {
		if child == task {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// sortChildren orders children HI, MD, LO, unset; equal ranks keep insertion order.
func (n *node) sortChildren() {
	sort.SliceStable(n.children, func(i, j int) bool {
		return n.children[i].priority.Rank() < n.children[j].priority.Rank()
	})
}

// List is a named root container of tasks.
type List struct {
	node
}

// Task is a unit of work that may own subtasks.
type Task struct {
	node
	parent    Item
	priority  Priority
	deadline  Date
	completed bool
	deleted   bool
}

func (t *Task) Priority() Priority { return t.priority }

// Deadline returns the deadline and whether one is set.
func (t *Task) Deadline() (Date, bool) {
	return t.deadline, !t.deadline.IsZero()
}

func (t *Task) Completed() bool { return t.completed }
func (t *Task) Deleted() bool   { return t.deleted }

// Parent returns the item the task is assigned to, nil for a root task.
func (t *Task) Parent() Item { return t.parent }

// setCompleted stores the flag and resets every descendant to incomplete.
func (t *Task) setCompleted(completed bool) {
	t.completed = completed
	for _, child := range t.children {
		child.setCompleted(false)
	}
}

func (t *Task) setDeleted(deleted bool) {
	t.deleted = deleted
	for _, child := range t.children {
		child.setDeleted(deleted)
	}
}

// descendants counts every task below t.
func (t *Task) descendants() int {
	n := 0
	for _, child := range t.children {
		n += 1 + child.descendants()
	}
	return n
}

// hasCompletedDescendant reports whether any task below t is completed.
func (t *Task) hasCompletedDescendant() bool {
	for _, child := range t.children {
		if child.completed || child.hasCompletedDescendant() {
			return true
		}
	}
	return false
}

// isAncestorOf reports whether t appears on the parent chain of item.
func (t *Task) isAncestorOf(item Item) bool {
	for current := item; current != nil; {
		task, ok := current.(*Task)
		if !ok {
			return false
		}
		if task == t {
			return true
		}
		current = task.parent
	}
	return false
}

package todo

import "strconv"

// Session owns one independent to-do hierarchy. It is not safe for
// concurrent use; callers serialise access.
type Session struct {
	roots  []Item
	tasks  []*Task
	index  map[string]Item
	nextID int
}

func NewSession() *Session {
	return &Session{
		index:  make(map[string]Item),
		nextID: 1,
	}
}

// Roots returns lists and unassigned tasks in creation order.
func (s *Session) Roots() []Item {
	out := make([]Item, len(s.roots))
	copy(out, s.roots)
	return out
}

// Tasks returns every task ever created, wherever it sits in the tree.
func (s *Session) Tasks() []*Task {
	out := make([]*Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Lookup finds a task or list anywhere in the hierarchy.
func (s *Session) Lookup(id string) (Item, bool) {
	item, ok := s.index[id]
	return item, ok
}

func (s *Session) lookupTask(id string) (*Task, error) {
	item, ok := s.index[id]
	if !ok {
		return nil, ErrNotFound
	}
	task, ok := item.(*Task)
	if !ok {
		return nil, ErrNotATask
	}
	return task, nil
}

// AddTask creates a root task. opts may hold a priority or a deadline, or a
// priority followed by a deadline.
func (s *Session) AddTask(name string, opts ...string) (*Task, error) {
	if !ValidTaskName(name) {
		return nil, ErrInvalidArguments
	}

	var (
		priority Priority
		deadline Date
		err      error
	)
	switch len(opts) {
	case 0:
	case 1:
		if p, perr := ParsePriority(opts[0]); perr == nil {
			priority = p
		} else if deadline, err = ParseDate(opts[0]); err != nil {
			return nil, ErrInvalidArguments
		}
	case 2:
		if priority, err = ParsePriority(opts[0]); err != nil {
			return nil, ErrInvalidArguments
		}
		if deadline, err = ParseDate(opts[1]); err != nil {
			return nil, ErrInvalidArguments
		}
	default:
		return nil, ErrInvalidCommand
	}

	task := &Task{
		node:     node{id: strconv.Itoa(s.nextID), name: name},
		priority: priority,
		deadline: deadline,
	}
	s.nextID++

	s.roots = append(s.roots, task)
	s.tasks = append(s.tasks, task)
	s.index[task.id] = task
	return task, nil
}

// AddList creates a named root list. The name doubles as its id.
func (s *Session) AddList(name string) (*List, error) {
	if !ValidListName(name) {
		return nil, ErrInvalidListName
	}
	if _, exists := s.index[name]; exists {
		return nil, ErrInvalidListName
	}
	list := &List{node: node{id: name, name: name}}
	s.roots = append(s.roots, list)
	s.index[name] = list
	return list, nil
}

// Tag overwrites the tag of a task or list. An invalid tag keeps the old one.
func (s *Session) Tag(id, tag string) (Item, error) {
	item, ok := s.index[id]
	if !ok {
		return nil, ErrNotFound
	}
	if !ValidTag(tag) {
		return item, ErrInvalidTag
	}
	item.setTag(tag)
	return item, nil
}

// Assign moves a task below another task or list.
func (s *Session) Assign(childID, parentID string) (*Task, Item, error) {
	parent, ok := s.index[parentID]
	if !ok {
		return nil, nil, ErrNotFound
	}
	child, err := s.lookupTask(childID)
	if err != nil {
		return nil, nil, err
	}
	if child.isAncestorOf(parent) {
		return nil, nil, ErrCycle
	}

	s.detach(child)
	child.parent = parent
	parent.addChild(child)
	return child, parent, nil
}

func (s *Session) detach(task *Task) {
	if task.parent != nil {
		task.parent.removeChild(task)
		task.parent = nil
		return
	}
	for i, root := range s.roots {
		if root == Item(task) {
			s.roots = append(s.roots[:i], s.roots[i+1:]...)
			return
		}
	}
}

// Toggle flips completion and returns the number of reset descendants.
func (s *Session) Toggle(id string) (*Task, int, error) {
	task, err := s.lookupTask(id)
	if err != nil {
		return nil, 0, err
	}
	task.setCompleted(!task.completed)
	return task, task.descendants(), nil
}

func (s *Session) ChangeDate(id, raw string) (*Task, error) {
	task, err := s.lookupTask(id)
	if err != nil {
		return nil, err
	}
	deadline, err := ParseDate(raw)
	if err != nil {
		return task, err
	}
	task.deadline = deadline
	return task, nil
}

// ChangePriority sets the priority; an empty raw value clears it.
func (s *Session) ChangePriority(id, raw string) (*Task, error) {
	task, err := s.lookupTask(id)
	if err != nil {
		return nil, err
	}
	priority := PriorityNone
	if raw != "" {
		if priority, err = ParsePriority(raw); err != nil {
			return task, err
		}
	}
	task.priority = priority
	if task.parent != nil {
		task.parent.sortChildren()
	}
	return task, nil
}

// Delete soft-deletes the task and its descendants.
func (s *Session) Delete(id string) (*Task, int, error) {
	return s.markDeleted(id, true)
}

// Restore clears the deleted flag on the task and its descendants.
func (s *Session) Restore(id string) (*Task, int, error) {
	return s.markDeleted(id, false)
}

func (s *Session) markDeleted(id string, deleted bool) (*Task, int, error) {
	task, err := s.lookupTask(id)
	if err != nil {
		return nil, 0, err
	}
	task.setDeleted(deleted)
	return task, task.descendants(), nil
}

package todo

// Duplicates returns the ids of every task that forms a duplicate pair with
// another task, in registry order. Deleted and assigned tasks take part.
func (s *Session) Duplicates() []string {
	seen := make(map[string]bool)
	var ids []string
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	for i, a := range s.tasks {
		for _, b := range s.tasks[i+1:] {
			if isDuplicate(a, b) {
				add(a.id)
				add(b.id)
			}
		}
	}
	return ids
}

// isDuplicate compares names exactly; deadlines only count when both are set.
func isDuplicate(a, b *Task) bool {
	if a.name != b.name {
		return false
	}
	da, aSet := a.Deadline()
	db, bSet := b.Deadline()
	if aSet && bSet {
		return da.Equal(db)
	}
	return true
}

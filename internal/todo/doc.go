// Package todo is the in-memory to-do hierarchy: tasks and lists, their
// tags, priorities, deadlines and completion state, the subtree reports
// built on top of them and duplicate detection.
//
// Tasks get sequential numeric ids starting at 1; lists are addressed by
// their name. Children of every item are kept in priority order
// (HI, MD, LO, unset) with ties in insertion order.
//
// Nothing is ever removed: delete is a flag that cascades to subtasks, and
// deleted tasks still show up in reports and duplicate checks.
package todo

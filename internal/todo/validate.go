package todo

import "regexp"

var (
	taskNamePattern = regexp.MustCompile(`^\S+$`)
	listNamePattern = regexp.MustCompile(`^[A-Za-z]+$`)
	tagPattern      = regexp.MustCompile(`^#[A-Za-z0-9]+$`)
	taskIDPattern   = regexp.MustCompile(`^\d+$`)
)

// ValidTaskName reports a non-empty name without whitespace.
func ValidTaskName(name string) bool {
	return taskNamePattern.MatchString(name)
}

func ValidListName(name string) bool {
	return listNamePattern.MatchString(name)
}

func ValidTag(tag string) bool {
	return tagPattern.MatchString(tag)
}

func ValidTaskID(id string) bool {
	return taskIDPattern.MatchString(id)
}

// ValidItemID accepts a task id or a list name.
func ValidItemID(id string) bool {
	return ValidTaskID(id) || ValidListName(id)
}

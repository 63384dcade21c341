package todo

import "errors"

var (
	ErrNotFound         = errors.New("item not found")
	ErrInvalidCommand   = errors.New("invalid command")
	ErrInvalidArguments = errors.New("invalid arguments")
	ErrInvalidTag       = errors.New("invalid tag")
	ErrInvalidDate      = errors.New("invalid date format")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrInvalidListName  = errors.New("invalid list name")
	ErrInvalidTaskID    = errors.New("invalid task ID")
	ErrNotATask         = errors.New("item is not a task")
	ErrCycle            = errors.New("task cannot be assigned below itself")
)

// Diagnostic renders err as the single output line shown to the user.
func Diagnostic(err error) string {
	if err == nil {
		return ""
	}
	for _, known := range []error{
		ErrInvalidCommand,
		ErrInvalidArguments,
		ErrInvalidTag,
		ErrInvalidDate,
		ErrInvalidPriority,
		ErrInvalidListName,
		ErrInvalidTaskID,
		ErrNotFound,
		ErrNotATask,
		ErrCycle,
	} {
		if errors.Is(err, known) {
			return "Error, " + known.Error() + "!"
		}
	}
	return "Error, " + err.Error() + "!"
}

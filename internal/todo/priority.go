package todo

// Priority is one of HI, MD, LO or empty when unset.
type Priority string

const (
	PriorityNone Priority = ""
	PriorityHigh Priority = "HI"
	PriorityMed  Priority = "MD"
	PriorityLow  Priority = "LO"
)

const unsetRank = 4

var priorityRanks = map[Priority]int{
	PriorityHigh: 1,
	PriorityMed:  2,
	PriorityLow:  3,
}

// Rank returns the sort key of the priority, 4 when unset or unknown.
func (p Priority) Rank() int {
	if rank, ok := priorityRanks[p]; ok {
		return rank
	}
	return unsetRank
}

func (p Priority) String() string {
	if p == PriorityNone {
		return "none"
	}
	return string(p)
}

// ParsePriority accepts HI, MD and LO exactly.
func ParsePriority(raw string) (Priority, error) {
	p := Priority(raw)
	if _, ok := priorityRanks[p]; !ok {
		return PriorityNone, ErrInvalidPriority
	}
	return p, nil
}

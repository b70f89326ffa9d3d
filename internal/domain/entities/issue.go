package entities

import "time"

// Issue is the subset of a tracker issue the report needs.
type Issue struct {
	ID         string
	IDReadable string
	Summary    string
	State      string
	Resolved   time.Time // zero = unresolved
}

func (i Issue) IsResolved() bool {
	return !i.Resolved.IsZero()
}

// StateCount is the number of issues in one state.
type StateCount struct {
	State string
	Count int
}

// Report is the aggregated view rendered by the widget.
type Report struct {
	ServiceID   string
	Query       string
	Total       int
	Resolved    int
	ByState     []StateCount // sorted by count desc, then state name
	GeneratedAt time.Time
}

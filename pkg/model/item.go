// Package model defines the core data types shared across gantry: timeline
// rows, milestones and the calendar-date helpers every layout computation
// relies on.
package model

import "time"

// Kind distinguishes top-level phases from nested tasks.
type Kind string

const (
	KindPhase Kind = "phase"
	KindTask  Kind = "task"
)

// Item is a single row on the timeline: a phase or a (possibly nested) task.
type Item struct {
	ID       string
	Kind     Kind
	Title    string
	Start    time.Time
	End      time.Time
	Progress int    // 0-100
	Color    string // optional hex override; empty means theme default
	Indent   int    // 0 phase, 1 task, 2 subtask
	Expanded bool   // phases only
}

// Milestone is a point-in-time marker independent of the item hierarchy.
type Milestone struct {
	ID    string
	Date  time.Time
	Label string
	Color string // optional hex override
}

// Level reports the 1-3 outline level of the item as used by the
// spreadsheet format and the edit dialog.
func (it Item) Level() int {
	if it.Kind == KindPhase {
		return 1
	}
	if it.Indent >= 2 {
		return 3
	}
	return 2
}

// ItemForLevel maps a 1-3 outline level onto kind/indent/expanded defaults.
// Anything outside 1-3 behaves as level 2, matching the import contract.
func ItemForLevel(level int) Item {
	switch level {
	case 1:
		return Item{Kind: KindPhase, Indent: 0, Expanded: true}
	case 3:
		return Item{Kind: KindTask, Indent: 2}
	default:
		return Item{Kind: KindTask, Indent: 1}
	}
}

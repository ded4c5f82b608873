package model

import "time"

// SeedSchedule returns the demo schedule shown on first launch: two phases
// with a pair of planning tasks and two milestones, anchored at the start
// of the month containing now.
func SeedSchedule(now time.Time) (items []Item, milestones []Milestone) {
	som := StartOfMonth(now)

	items = []Item{
		{
			ID:       "1",
			Kind:     KindPhase,
			Title:    "PHASE 1 (Planning)",
			Start:    som,
			End:      som.AddDate(0, 2, 0),
			Progress: 45,
			Indent:   0,
			Expanded: true,
		},
		{
			ID:       "2",
			Kind:     KindTask,
			Title:    "Requirement Gathering",
			Start:    som.AddDate(0, 0, 5),
			End:      som.AddDate(0, 0, 15),
			Progress: 100,
			Indent:   1,
		},
		{
			ID:       "3",
			Kind:     KindTask,
			Title:    "Design Mockups",
			Start:    som.AddDate(0, 0, 12),
			End:      som.AddDate(0, 1, 0),
			Progress: 60,
			Indent:   1,
		},
		{
			ID:       "4",
			Kind:     KindPhase,
			Title:    "PHASE 2 (Development)",
			Start:    som.AddDate(0, 2, 0),
			End:      som.AddDate(0, 5, 0),
			Progress: 10,
			Indent:   0,
			Expanded: true,
		},
	}

	milestones = []Milestone{
		{ID: "m1", Date: som.AddDate(0, 0, 15), Label: "Design Approval"},
		{ID: "m2", Date: som.AddDate(0, 2, 0), Label: "Phase 1 Sign-off"},
	}

	return items, milestones
}

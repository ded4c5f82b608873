// Package schedule holds the in-memory schedule state: ordered timeline
// items, milestones and the current viewport. There is exactly one logical
// writer (the UI loop), so mutations are plain synchronous methods and
// observers are notified inline.
//
// The model performs no validation beyond what pure layout needs; end>=start
// on items is the edit dialog's responsibility.
package schedule

import (
	"time"

	"github.com/vanderheijden86/gantry/pkg/model"
	"github.com/vanderheijden86/gantry/pkg/timescale"
)

// Schedule is the mutable, observable schedule collection.
type Schedule struct {
	items      []model.Item
	milestones []model.Milestone
	viewport   timescale.Viewport
	ids        *IDs
	observers  []func()
}

// New returns an empty schedule with a default six-month viewport around
// now, in month mode.
func New(now time.Time) *Schedule {
	vp, _ := timescale.NewViewport(now.AddDate(0, -1, 0), now.AddDate(0, 6, 0), timescale.ModeMonth)
	return &Schedule{
		viewport: vp,
		ids:      NewIDs("row"),
	}
}

// NewSeeded returns a schedule pre-populated with the demo data.
func NewSeeded(now time.Time) *Schedule {
	s := New(now)
	s.items, s.milestones = model.SeedSchedule(now)
	return s
}

// Subscribe registers fn to run after every mutation. Notification is
// synchronous and in registration order.
func (s *Schedule) Subscribe(fn func()) {
	s.observers = append(s.observers, fn)
}

func (s *Schedule) notify() {
	for _, fn := range s.observers {
		fn()
	}
}

// Items returns the rows in display order. The slice is shared; callers
// must not mutate it.
func (s *Schedule) Items() []model.Item { return s.items }

// Milestones returns the milestones. The slice is shared; callers must not
// mutate it.
func (s *Schedule) Milestones() []model.Milestone { return s.milestones }

// Viewport returns the current viewport.
func (s *Schedule) Viewport() timescale.Viewport { return s.viewport }

// AddItem appends a row, assigning it a fresh ID, and returns the ID.
func (s *Schedule) AddItem(it model.Item) string {
	it.ID = s.ids.Next()
	s.items = append(s.items, it)
	s.notify()
	return it.ID
}

// UpdateItem replaces the row with upd.ID in place. Unknown IDs are a
// no-op.
func (s *Schedule) UpdateItem(upd model.Item) {
	for i := range s.items {
		if s.items[i].ID == upd.ID {
			s.items[i] = upd
			s.notify()
			return
		}
	}
}

// DeleteItem removes the row with the given ID. Milestones are unaffected.
func (s *Schedule) DeleteItem(id string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.notify()
			return
		}
	}
}

// ItemByID returns the row with the given ID, or nil.
func (s *Schedule) ItemByID(id string) *model.Item {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i]
		}
	}
	return nil
}

// MoveItem reorders the row at from to position to, shifting the rows in
// between. Out-of-range indexes are a no-op.
func (s *Schedule) MoveItem(from, to int) {
	if from < 0 || from >= len(s.items) || to < 0 || to >= len(s.items) || from == to {
		return
	}
	it := s.items[from]
	s.items = append(s.items[:from], s.items[from+1:]...)
	s.items = append(s.items[:to], append([]model.Item{it}, s.items[to:]...)...)
	s.notify()
}

// AddMilestone appends a milestone, assigning it a fresh ID.
func (s *Schedule) AddMilestone(m model.Milestone) string {
	m.ID = s.ids.Next()
	s.milestones = append(s.milestones, m)
	s.notify()
	return m.ID
}

// UpdateMilestone replaces the milestone with upd.ID in place.
func (s *Schedule) UpdateMilestone(upd model.Milestone) {
	for i := range s.milestones {
		if s.milestones[i].ID == upd.ID {
			s.milestones[i] = upd
			s.notify()
			return
		}
	}
}

// DeleteMilestone removes the milestone with the given ID.
func (s *Schedule) DeleteMilestone(id string) {
	for i := range s.milestones {
		if s.milestones[i].ID == id {
			s.milestones = append(s.milestones[:i], s.milestones[i+1:]...)
			s.notify()
			return
		}
	}
}

// MilestoneByID returns the milestone with the given ID, or nil.
func (s *Schedule) MilestoneByID(id string) *model.Milestone {
	for i := range s.milestones {
		if s.milestones[i].ID == id {
			return &s.milestones[i]
		}
	}
	return nil
}

// ClearMilestones drops all milestones.
func (s *Schedule) ClearMilestones() {
	if len(s.milestones) == 0 {
		return
	}
	s.milestones = nil
	s.notify()
}

// ReplaceItems installs a freshly imported schedule: all milestones are
// cleared (documented import coupling, not a model invariant), every row
// gets a new ID, and the viewport is refitted around the imported range
// with a one-month buffer on both sides.
func (s *Schedule) ReplaceItems(items []model.Item) {
	if len(items) == 0 {
		return
	}
	s.milestones = nil
	s.items = s.items[:0]
	for _, it := range items {
		it.ID = s.ids.Next()
		s.items = append(s.items, it)
	}
	s.FitViewport()
	s.notify()
}

// FitViewport recomputes the viewport as [min(start)-1 month,
// max(end)+1 month] over the current rows, keeping the mode. With no rows
// it leaves the viewport alone.
func (s *Schedule) FitViewport() {
	if len(s.items) == 0 {
		return
	}
	minStart := s.items[0].Start
	maxEnd := s.items[0].End
	for _, it := range s.items[1:] {
		if it.Start.Before(minStart) {
			minStart = it.Start
		}
		if it.End.After(maxEnd) {
			maxEnd = it.End
		}
	}
	vp, err := timescale.NewViewport(minStart.AddDate(0, -1, 0), maxEnd.AddDate(0, 1, 0), s.viewport.Mode)
	if err != nil {
		return // one-month buffers make this unreachable for any real data
	}
	s.viewport = vp
}

// SetViewMode switches the layout mode, keeping the date range.
func (s *Schedule) SetViewMode(mode timescale.Mode) error {
	vp, err := timescale.NewViewport(s.viewport.Start, s.viewport.End, mode)
	if err != nil {
		return err
	}
	s.viewport = vp
	s.notify()
	return nil
}

// SetViewport replaces the viewport wholesale.
func (s *Schedule) SetViewport(vp timescale.Viewport) error {
	validated, err := timescale.NewViewport(vp.Start, vp.End, vp.Mode)
	if err != nil {
		return err
	}
	s.viewport = validated
	s.notify()
	return nil
}

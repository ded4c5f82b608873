package schedule

import (
	"testing"
	"time"

	"github.com/vanderheijden86/gantry/pkg/model"
	"github.com/vanderheijden86/gantry/pkg/timescale"
)

var testNow = model.Date(2026, time.August, 17)

func TestNew_DefaultViewport(t *testing.T) {
	s := New(testNow)
	vp := s.Viewport()
	if vp.Mode != timescale.ModeMonth {
		t.Fatalf("default mode = %s, want month", vp.Mode)
	}
	if !vp.Start.Equal(model.Date(2026, time.July, 17)) || !vp.End.Equal(model.Date(2027, time.February, 17)) {
		t.Fatalf("default viewport = %v..%v", vp.Start, vp.End)
	}
	if len(s.Items()) != 0 {
		t.Fatalf("empty schedule has %d items", len(s.Items()))
	}
}

func TestAddUpdateDeleteItem(t *testing.T) {
	s := New(testNow)

	id := s.AddItem(model.Item{Kind: model.KindTask, Title: "Draft plan",
		Start: model.Date(2026, time.September, 1), End: model.Date(2026, time.September, 10)})
	if id == "" {
		t.Fatal("AddItem returned empty ID")
	}
	it := s.ItemByID(id)
	if it == nil || it.Title != "Draft plan" {
		t.Fatalf("ItemByID(%s) = %+v", id, it)
	}

	upd := *it
	upd.Progress = 80
	s.UpdateItem(upd)
	if got := s.ItemByID(id).Progress; got != 80 {
		t.Fatalf("progress after update = %d, want 80", got)
	}

	s.DeleteItem(id)
	if s.ItemByID(id) != nil {
		t.Fatal("item still present after delete")
	}
	// Unknown IDs are no-ops, not panics.
	s.DeleteItem("nope")
	s.UpdateItem(model.Item{ID: "nope"})
}

func TestIDsAreUnique(t *testing.T) {
	s := New(testNow)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := s.AddItem(model.Item{Kind: model.KindTask, Title: "t",
			Start: testNow, End: testNow.AddDate(0, 0, 1)})
		if seen[id] {
			t.Fatalf("duplicate ID %s", id)
		}
		seen[id] = true
	}
}

func TestMoveItem(t *testing.T) {
	s := New(testNow)
	var ids []string
	for _, title := range []string{"a", "b", "c"} {
		ids = append(ids, s.AddItem(model.Item{Kind: model.KindTask, Title: title,
			Start: testNow, End: testNow.AddDate(0, 0, 1)}))
	}

	s.MoveItem(0, 2)
	got := []string{s.Items()[0].Title, s.Items()[1].Title, s.Items()[2].Title}
	want := []string{"b", "c", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("after move: %v, want %v", got, want)
		}
	}

	// Out-of-range moves leave the order alone.
	s.MoveItem(-1, 0)
	s.MoveItem(0, 99)
	if s.Items()[0].Title != "b" {
		t.Fatal("out-of-range move changed order")
	}
}

func TestMilestoneLifecycle(t *testing.T) {
	s := New(testNow)
	id := s.AddMilestone(model.Milestone{Label: "Kickoff", Date: testNow})
	if s.MilestoneByID(id) == nil {
		t.Fatal("milestone not found after add")
	}
	s.UpdateMilestone(model.Milestone{ID: id, Label: "Kickoff (moved)", Date: testNow.AddDate(0, 0, 7)})
	if got := s.MilestoneByID(id).Label; got != "Kickoff (moved)" {
		t.Fatalf("label after update = %q", got)
	}
	s.DeleteMilestone(id)
	if s.MilestoneByID(id) != nil {
		t.Fatal("milestone still present after delete")
	}
}

func TestReplaceItems_ImportContract(t *testing.T) {
	s := NewSeeded(testNow)
	s.AddMilestone(model.Milestone{Label: "stale", Date: testNow})

	imported := []model.Item{
		func() model.Item {
			it := model.ItemForLevel(1)
			it.Title = "Discovery"
			it.Start = model.Date(2026, time.March, 2)
			it.End = model.Date(2026, time.April, 15)
			return it
		}(),
		func() model.Item {
			it := model.ItemForLevel(2)
			it.Title = "Interviews"
			it.Start = model.Date(2026, time.March, 9)
			it.End = model.Date(2026, time.March, 20)
			return it
		}(),
	}
	s.ReplaceItems(imported)

	items := s.Items()
	if len(items) != 2 {
		t.Fatalf("got %d items after import, want 2", len(items))
	}
	if items[0].Indent != 0 || items[1].Indent != 1 {
		t.Fatalf("indents = %d,%d, want 0,1", items[0].Indent, items[1].Indent)
	}
	if items[0].ID == "" || items[0].ID == items[1].ID {
		t.Fatalf("import did not assign fresh IDs: %q %q", items[0].ID, items[1].ID)
	}
	if len(s.Milestones()) != 0 {
		t.Fatal("import must clear existing milestones")
	}

	vp := s.Viewport()
	if !vp.Start.Equal(model.Date(2026, time.February, 2)) {
		t.Fatalf("viewport start = %v, want one month before earliest item", vp.Start)
	}
	if !vp.End.Equal(model.Date(2026, time.May, 15)) {
		t.Fatalf("viewport end = %v, want one month after latest item", vp.End)
	}
}

func TestReplaceItems_EmptyIsNoOp(t *testing.T) {
	s := NewSeeded(testNow)
	before := len(s.Items())
	s.ReplaceItems(nil)
	if len(s.Items()) != before {
		t.Fatal("empty import replaced existing items")
	}
	if len(s.Milestones()) == 0 {
		t.Fatal("empty import cleared milestones")
	}
}

func TestFitViewport_SpansAllRows(t *testing.T) {
	s := New(testNow)
	s.AddItem(model.Item{Kind: model.KindTask, Title: "early",
		Start: model.Date(2026, time.January, 10), End: model.Date(2026, time.February, 1)})
	s.AddItem(model.Item{Kind: model.KindTask, Title: "late",
		Start: model.Date(2026, time.June, 1), End: model.Date(2026, time.July, 20)})
	s.FitViewport()

	vp := s.Viewport()
	if !vp.Start.Equal(model.Date(2025, time.December, 10)) || !vp.End.Equal(model.Date(2026, time.August, 20)) {
		t.Fatalf("fitted viewport = %v..%v", vp.Start, vp.End)
	}
}

func TestSetViewMode(t *testing.T) {
	s := New(testNow)
	if err := s.SetViewMode(timescale.ModeWeekPart); err != nil {
		t.Fatalf("SetViewMode: %v", err)
	}
	if s.Viewport().Mode != timescale.ModeWeekPart {
		t.Fatal("mode not applied")
	}
	if err := s.SetViewMode(timescale.Mode("bogus")); err == nil {
		t.Fatal("expected error for unknown mode")
	}
	if s.Viewport().Mode != timescale.ModeWeekPart {
		t.Fatal("failed mode switch must not change the viewport")
	}
}

func TestSubscribe_NotifiedOnMutation(t *testing.T) {
	s := New(testNow)
	var fired int
	s.Subscribe(func() { fired++ })

	s.AddItem(model.Item{Kind: model.KindTask, Title: "t", Start: testNow, End: testNow.AddDate(0, 0, 1)})
	s.AddMilestone(model.Milestone{Label: "m", Date: testNow})
	s.ClearMilestones()
	if fired != 3 {
		t.Fatalf("observer fired %d times, want 3", fired)
	}
}

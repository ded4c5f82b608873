package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/gantry/pkg/config"
	"github.com/vanderheijden86/gantry/pkg/timescale"
)

func TestTruncateCells(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "abc", 5, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"truncated", "abcdefgh", 5, "abcd…"},
		{"zero width", "abc", 0, ""},
		{"width one", "abc", 1, "a"},
		{"wide runes", "日本語テキスト", 7, "日本語…"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncateCells(tc.in, tc.width); got != tc.want {
				t.Fatalf("truncateCells(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
			}
		})
	}
}

func TestPadCells(t *testing.T) {
	if got := padCells("ab", 5); got != "ab   " {
		t.Fatalf("padCells = %q", got)
	}
	if got := padCells("abcdefgh", 5); got != "abcd…" {
		t.Fatalf("padCells should truncate, got %q", got)
	}
}

func TestCanvasPlaceClips(t *testing.T) {
	c := newCanvas(5)
	c.place(-2, "abcd")
	if got := c.String(); got != "cd   " {
		t.Fatalf("left clip = %q", got)
	}
	c = newCanvas(5)
	c.place(3, "xyz")
	if got := c.String(); got != "   xy" {
		t.Fatalf("right clip = %q", got)
	}
}

var errFake = errors.New("disk full")

func keyMsg(s string) tea.KeyMsg {
	if s == "tab" {
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(config.DefaultConfig())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

func TestModel_SeededView(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	for _, want := range []string{"PHASE 1 (Planning)", "Requirement Gathering", "Design Approval"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}

func TestModel_Navigation(t *testing.T) {
	m := newTestModel(t)
	if m.selected != 0 {
		t.Fatalf("initial selection = %d", m.selected)
	}
	m = press(t, m, "j", "j")
	if m.selected != 2 {
		t.Fatalf("selection after jj = %d", m.selected)
	}
	if it := m.selectedItem(); it == nil || it.ID != m.sched.Items()[2].ID {
		t.Fatalf("selectedItem = %+v", it)
	}
	m = press(t, m, "k", "k", "k") // clamped at the top
	if m.selected != 0 {
		t.Fatalf("selection after kkk = %d", m.selected)
	}
}

func TestModel_ModeKeys(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "1")
	if m.sched.Viewport().Mode != timescale.ModeDay {
		t.Fatalf("mode after 1 = %s", m.sched.Viewport().Mode)
	}
	m = press(t, m, "3")
	if m.sched.Viewport().Mode != timescale.ModeWeekPart {
		t.Fatalf("mode after 3 = %s", m.sched.Viewport().Mode)
	}
	m = press(t, m, "2")
	if m.sched.Viewport().Mode != timescale.ModeMonth {
		t.Fatalf("mode after 2 = %s", m.sched.Viewport().Mode)
	}
}

func TestModel_DeleteItem(t *testing.T) {
	m := newTestModel(t)
	before := len(m.sched.Items())
	m = press(t, m, "x")
	if got := len(m.sched.Items()); got != before-1 {
		t.Fatalf("items after delete = %d, want %d", got, before-1)
	}
}

func TestModel_MilestoneLane(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "tab")
	if m.lane != laneMilestones {
		t.Fatal("tab did not switch lanes")
	}
	before := len(m.sched.Milestones())
	m = press(t, m, "x")
	if got := len(m.sched.Milestones()); got != before-1 {
		t.Fatalf("milestones after delete = %d, want %d", got, before-1)
	}
	m = press(t, m, "tab")
	if m.lane != laneItems {
		t.Fatal("tab did not switch back")
	}
}

func TestModel_ReorderKeys(t *testing.T) {
	m := newTestModel(t)
	first := m.sched.Items()[0].ID
	m = press(t, m, "J")
	if m.sched.Items()[1].ID != first {
		t.Fatal("J did not move the row down")
	}
	if m.selected != 1 {
		t.Fatalf("selection did not follow the row, at %d", m.selected)
	}
	m = press(t, m, "K")
	if m.sched.Items()[0].ID != first {
		t.Fatal("K did not move the row back up")
	}
}

func TestModel_OpenAndCancelItemForm(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "a")
	if m.focus != focusItemForm {
		t.Fatal("a did not open the item form")
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.focus != focusTimeline {
		t.Fatal("esc did not close the form")
	}
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "?")
	if m.focus != focusHelp {
		t.Fatal("? did not open help")
	}
	if !strings.Contains(m.View(), "Navigation") {
		t.Fatal("help view missing content")
	}
	m = press(t, m, "q")
	if m.focus != focusTimeline {
		t.Fatal("q did not close help")
	}
}

func TestModel_ExportResultSurvivesDismissedWizard(t *testing.T) {
	m := newTestModel(t)
	m.exportForm = newExportForm(config.ExportState{})
	m.exportForm.running = true
	m.focus = focusTimeline // wizard dismissed while the export renders

	next, _ := m.Update(exportDoneMsg{paths: []string{"out/Timeline_Export.svg"}})
	m = next.(Model)
	if !strings.Contains(m.status, "exported out/Timeline_Export.svg") {
		t.Fatalf("status = %q, want export result", m.status)
	}
	if m.exportForm.running {
		t.Fatal("export still marked running after completion")
	}
	if m.focus != focusTimeline {
		t.Fatalf("focus = %v, want timeline", m.focus)
	}

	next, _ = m.Update(exportDoneMsg{err: errFake})
	m = next.(Model)
	if !strings.Contains(m.status, "export failed") {
		t.Fatalf("status = %q, want failure report", m.status)
	}
}

func TestModel_HorizontalScrollClamp(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "h")
	if m.xOff != 0 {
		t.Fatalf("scroll left at origin gave xOff %d", m.xOff)
	}
	m = press(t, m, "l", "l", "h")
	if m.xOff != 4 {
		t.Fatalf("xOff = %d, want 4", m.xOff)
	}
}

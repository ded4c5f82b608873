// Package ui implements the interactive timeline editor: a bubbletea
// program showing the schedule as a scrollable Gantt view, with huh-driven
// dialogs for editing, import, theme setup and slide export.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/gantry/pkg/config"
	"github.com/vanderheijden86/gantry/pkg/debug"
	"github.com/vanderheijden86/gantry/pkg/model"
	"github.com/vanderheijden86/gantry/pkg/schedule"
	"github.com/vanderheijden86/gantry/pkg/spreadsheet"
	"github.com/vanderheijden86/gantry/pkg/theme"
	"github.com/vanderheijden86/gantry/pkg/timescale"
	"github.com/vanderheijden86/gantry/pkg/watcher"
)

// focus represents which UI surface has keyboard focus.
type focus int

const (
	focusTimeline focus = iota
	focusItemForm
	focusMilestoneForm
	focusImportForm
	focusThemeForm
	focusExportForm
	focusHelp
)

// lane is the selection lane: rows or the milestone strip.
type lane int

const (
	laneItems lane = iota
	laneMilestones
)

// sourceChangedMsg reports that the imported spreadsheet changed on disk.
type sourceChangedMsg struct{}

// Model is the top-level bubbletea model. All schedule and theme state is
// owned here and passed down explicitly; there are no package globals.
type Model struct {
	sched  *schedule.Schedule
	theme  theme.Theme
	styles Styles
	cfg    config.Config

	width, height int
	focus         focus
	lane          lane
	selected      int // index within the focused lane
	xOff          int // horizontal scroll, in cells
	status        string

	itemForm      *itemForm
	milestoneForm *milestoneForm
	importForm    *importForm
	themeForm     *themeForm
	exportForm    *exportForm
	helpVP        viewport.Model

	sourcePath string // spreadsheet the schedule was imported from
	watch      *watcher.Watcher
	changeCh   chan struct{}
}

// New builds the initial model from config, seeded with demo data.
func New(cfg config.Config) Model {
	sched := schedule.NewSeeded(time.Now())
	_ = sched.SetViewMode(cfg.Mode())
	th := cfg.Theme
	return Model{
		sched:    sched,
		theme:    th,
		styles:   NewStyles(th),
		cfg:      cfg,
		changeCh: make(chan struct{}, 1),
	}
}

// Schedule exposes the underlying schedule, for tests and the CLI layer.
func (m Model) Schedule() *schedule.Schedule { return m.sched }

// Theme exposes the active theme.
func (m Model) Theme() theme.Theme { return m.theme }

func (m Model) Init() tea.Cmd {
	return m.waitForSourceChange()
}

// waitForSourceChange blocks on the watcher channel and resurfaces as a
// message; re-armed after every delivery.
func (m Model) waitForSourceChange() tea.Cmd {
	ch := m.changeCh
	return func() tea.Msg {
		<-ch
		return sourceChangedMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case sourceChangedMsg:
		m = m.reimport()
		return m, m.waitForSourceChange()

	// Handled regardless of focus: the wizard may have been dismissed
	// while the export was still rendering.
	case exportDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("export failed: %v", msg.err)
		} else {
			m.status = "exported " + strings.Join(msg.paths, ", ")
		}
		if m.exportForm != nil {
			m.exportForm.running = false
		}
		if m.focus == focusExportForm {
			m.focus = focusTimeline
		}
		return m, nil
	}

	switch m.focus {
	case focusTimeline:
		return m.updateTimeline(msg)
	case focusItemForm:
		return m.updateItemForm(msg)
	case focusMilestoneForm:
		return m.updateMilestoneForm(msg)
	case focusImportForm:
		return m.updateImportForm(msg)
	case focusThemeForm:
		return m.updateThemeForm(msg)
	case focusExportForm:
		return m.updateExportForm(msg)
	case focusHelp:
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "q", "esc", "?":
				m.focus = focusTimeline
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.helpVP, cmd = m.helpVP.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateTimeline(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		m.stopWatch()
		return m, tea.Quit

	case "j", "down":
		if m.selected < m.laneLen()-1 {
			m.selected++
		}
	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}
	case "h", "left":
		m.xOff -= 4
		if m.xOff < 0 {
			m.xOff = 0
		}
	case "l", "right":
		m.xOff += 4

	case "tab":
		m.lane = laneItems + laneMilestones - m.lane
		m.selected = 0

	case "1":
		m.setMode(timescale.ModeDay)
	case "2":
		m.setMode(timescale.ModeMonth)
	case "3":
		m.setMode(timescale.ModeWeekPart)

	case "J":
		if m.lane == laneItems {
			m.sched.MoveItem(m.selected, m.selected+1)
			if m.selected < len(m.sched.Items())-1 {
				m.selected++
			}
		}
	case "K":
		if m.lane == laneItems {
			m.sched.MoveItem(m.selected, m.selected-1)
			if m.selected > 0 {
				m.selected--
			}
		}

	case "a":
		m.itemForm = newItemForm(nil, m.theme)
		m.focus = focusItemForm
		return m, m.itemForm.Init()
	case "m":
		m.milestoneForm = newMilestoneForm(nil, m.theme)
		m.focus = focusMilestoneForm
		return m, m.milestoneForm.Init()

	case "enter", "e":
		return m.editSelected()

	case "x", "delete":
		m.deleteSelected()

	case "y":
		m.yankSelected()

	case "i":
		m.importForm = newImportForm(m.sourcePath)
		m.focus = focusImportForm
		return m, m.importForm.Init()

	case "c":
		m.themeForm = newThemeForm(m.theme)
		m.focus = focusThemeForm
		return m, m.themeForm.Init()

	case "E":
		m.exportForm = newExportForm(config.LoadExportState())
		m.focus = focusExportForm
		return m, m.exportForm.Init()

	case "f":
		m.sched.FitViewport()
		m.xOff = 0
		m.status = "viewport fitted to schedule"

	case "?":
		h := m.height - 1
		if h < 5 {
			h = 24
		}
		m.helpVP = viewport.New(m.width, h)
		m.helpVP.SetContent(renderHelp(m.width))
		m.focus = focusHelp
	}
	return m, nil
}

func (m *Model) laneLen() int {
	if m.lane == laneMilestones {
		return len(m.sched.Milestones())
	}
	return len(m.sched.Items())
}

func (m *Model) setMode(mode timescale.Mode) {
	if err := m.sched.SetViewMode(mode); err != nil {
		m.status = err.Error()
		return
	}
	m.xOff = 0
	m.status = fmt.Sprintf("view mode: %s", mode)
}

func (m Model) editSelected() (tea.Model, tea.Cmd) {
	if m.lane == laneMilestones {
		ms := m.sched.Milestones()
		if m.selected >= len(ms) {
			return m, nil
		}
		m.milestoneForm = newMilestoneForm(&ms[m.selected], m.theme)
		m.focus = focusMilestoneForm
		return m, m.milestoneForm.Init()
	}
	items := m.sched.Items()
	if m.selected >= len(items) {
		return m, nil
	}
	m.itemForm = newItemForm(&items[m.selected], m.theme)
	m.focus = focusItemForm
	return m, m.itemForm.Init()
}

func (m *Model) deleteSelected() {
	if m.lane == laneMilestones {
		ms := m.sched.Milestones()
		if m.selected < len(ms) {
			m.sched.DeleteMilestone(ms[m.selected].ID)
			m.status = "milestone deleted"
		}
	} else {
		items := m.sched.Items()
		if m.selected < len(items) {
			m.sched.DeleteItem(items[m.selected].ID)
			m.status = "item deleted"
		}
	}
	if m.selected >= m.laneLen() && m.selected > 0 {
		m.selected--
	}
}

// yankSelected copies a one-line summary of the selection to the system
// clipboard.
func (m *Model) yankSelected() {
	var summary string
	if m.lane == laneMilestones {
		ms := m.sched.Milestones()
		if m.selected >= len(ms) {
			return
		}
		summary = fmt.Sprintf("%s: %s", ms[m.selected].Label, ms[m.selected].Date.Format("2 Jan 2006"))
	} else {
		items := m.sched.Items()
		if m.selected >= len(items) {
			return
		}
		it := items[m.selected]
		summary = fmt.Sprintf("%s: %s - %s (%d%%)",
			it.Title, it.Start.Format("2 Jan 2006"), it.End.Format("2 Jan 2006"), it.Progress)
	}
	if err := clipboard.WriteAll(summary); err != nil {
		m.status = fmt.Sprintf("clipboard: %v", err)
		return
	}
	m.status = "copied: " + summary
}

// WithImport loads the workbook at path before the program starts, for
// the --import flag. Unlike the interactive path, read errors are fatal.
func (m Model) WithImport(path string) (Model, error) {
	items, err := spreadsheet.Read(path)
	if err != nil {
		return m, err
	}
	if len(items) == 0 {
		return m, fmt.Errorf("no usable rows in %s", path)
	}
	return m.applyImport(path, items), nil
}

// importFrom replaces the schedule from the workbook at path and links the
// watcher to it. Parse failures skip rows; an unreadable file is surfaced
// in the status bar and leaves the schedule untouched.
func (m Model) importFrom(path string) Model {
	items, err := spreadsheet.Read(path)
	if err != nil {
		m.status = fmt.Sprintf("import failed: %v", err)
		return m
	}
	if len(items) == 0 {
		m.status = "import: no usable rows found"
		return m
	}
	return m.applyImport(path, items)
}

func (m Model) applyImport(path string, items []model.Item) Model {
	m.sched.ReplaceItems(items)
	m.selected, m.xOff = 0, 0
	m.lane = laneItems
	m.status = fmt.Sprintf("imported %d items from %s", len(items), path)

	m.stopWatch()
	m.sourcePath = path
	ch := m.changeCh
	w, err := watcher.New(path, func() {
		select {
		case ch <- struct{}{}:
		default:
		}
	})
	if err == nil && w.Start() == nil {
		m.watch = w
	}
	return m
}

func (m Model) reimport() Model {
	if m.sourcePath == "" {
		return m
	}
	debug.Log("re-importing %s after change", m.sourcePath)
	return m.importFrom(m.sourcePath)
}

func (m *Model) stopWatch() {
	if m.watch != nil {
		m.watch.Stop()
		m.watch = nil
	}
}

func (m Model) View() string {
	switch m.focus {
	case focusItemForm:
		return m.itemForm.View()
	case focusMilestoneForm:
		return m.milestoneForm.View()
	case focusImportForm:
		return m.importForm.View()
	case focusThemeForm:
		return m.themeForm.View()
	case focusExportForm:
		return m.exportForm.View()
	case focusHelp:
		return m.helpVP.View()
	}

	header := m.styles.Title.Render("gantry / project timeline")
	body := m.viewTimeline()
	status := m.statusLine()
	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

func (m Model) statusLine() string {
	vp := m.sched.Viewport()
	left := fmt.Sprintf("%s  %s - %s  %d items  %d milestones",
		vp.Mode,
		vp.Start.Format("2 Jan 2006"), vp.End.Format("2 Jan 2006"),
		len(m.sched.Items()), len(m.sched.Milestones()))
	line := m.styles.StatusBar.Render(left)
	if m.status != "" {
		line += "  " + m.styles.Help.Render(m.status)
	}
	return line
}

// selectedItem returns the selected row, or nil. Exposed for tests.
func (m Model) selectedItem() *model.Item {
	if m.lane != laneItems {
		return nil
	}
	items := m.sched.Items()
	if m.selected >= len(items) {
		return nil
	}
	return &items[m.selected]
}

package ui

import (
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/vanderheijden86/gantry/pkg/config"
	"github.com/vanderheijden86/gantry/pkg/debug"
	"github.com/vanderheijden86/gantry/pkg/slide"
)

// exportForm is the slide export wizard: format, directory, title and the
// week sub-grid toggle, pre-filled from the previous run.
type exportForm struct {
	form    *huh.Form
	running bool

	format    string
	dir       string
	title     string
	weekTicks bool
}

// exportDoneMsg reports the result of a background export.
type exportDoneMsg struct {
	paths []string
	err   error
}

func newExportForm(prev config.ExportState) *exportForm {
	f := &exportForm{
		format:    prev.Format,
		dir:       prev.Dir,
		title:     prev.Title,
		weekTicks: prev.WeekTicks,
	}
	if f.format == "" {
		f.format = "svg"
	}
	if f.dir == "" {
		f.dir = "."
	}

	f.form = newForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Format").
				Options(
					huh.NewOption("SVG (vector, editable)", "svg"),
					huh.NewOption("PNG (raster)", "png"),
					huh.NewOption("Both", "both"),
				).
				Value(&f.format),
			huh.NewInput().
				Title("Output directory").
				Value(&f.dir),
			huh.NewInput().
				Title("Slide title").
				Description("blank uses \"Project Timeline\"").
				Value(&f.title),
			huh.NewConfirm().
				Title("Week sub-grid?").
				Description("dashed quarter-month ticks under the month headers").
				Value(&f.weekTicks).
				Affirmative("Yes").
				Negative("No"),
		),
	)
	return f
}

func (f *exportForm) Init() tea.Cmd { return f.form.Init() }

func (f *exportForm) View() string {
	if f.running {
		return "Exporting..."
	}
	return f.form.View()
}

func (f *exportForm) formats() []string {
	if f.format == "both" {
		return []string{"svg", "png"}
	}
	return []string{f.format}
}

func (m Model) updateExportForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.focus = focusTimeline
		return m, nil
	}

	if m.exportForm.running {
		return m, nil
	}
	next, cmd := m.exportForm.form.Update(msg)
	if form, ok := next.(*huh.Form); ok {
		m.exportForm.form = form
	}
	switch m.exportForm.form.State {
	case huh.StateCompleted:
		m.exportForm.running = true
		return m, m.runExport()
	case huh.StateAborted:
		m.focus = focusTimeline
	}
	return m, cmd
}

// runExport snapshots the schedule and renders off the update loop.
func (m Model) runExport() tea.Cmd {
	f := m.exportForm
	st := config.ExportState{
		Format:    f.format,
		Dir:       strings.TrimSpace(f.dir),
		Title:     strings.TrimSpace(f.title),
		WeekTicks: f.weekTicks,
	}
	if err := config.SaveExportState(st); err != nil {
		// Remembering preferences is best-effort; the export still runs.
		debug.Log("save export state: %v", err)
	}

	opts := slide.Options{
		Title:      st.Title,
		Items:      m.sched.Items(),
		Milestones: m.sched.Milestones(),
		Theme:      m.theme,
		Viewport:   m.sched.Viewport(),
		WeekTicks:  st.WeekTicks,
	}
	dir := st.Dir
	formats := f.formats()
	return func() tea.Msg {
		if err := slide.SaveAll(dir, formats, opts); err != nil {
			return exportDoneMsg{err: err}
		}
		paths := make([]string, len(formats))
		for i, format := range formats {
			paths[i] = filepath.Join(dir, slide.DefaultFileName(format))
		}
		return exportDoneMsg{paths: paths}
	}
}

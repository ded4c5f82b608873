package ui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// importForm asks for a workbook path. The actual read happens after
// submit so file errors land in the status bar, not in field validation.
type importForm struct {
	form *huh.Form
	path string
}

func newImportForm(current string) *importForm {
	f := &importForm{path: current}
	f.form = newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Spreadsheet path").
				Description("an .xlsx workbook; changes on disk re-import automatically").
				Value(&f.path).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return errors.New("path is required")
					}
					if _, err := os.Stat(s); err != nil {
						return fmt.Errorf("cannot read %s", s)
					}
					return nil
				}),
		),
	)
	return f
}

func (f *importForm) Init() tea.Cmd { return f.form.Init() }

func (f *importForm) View() string { return f.form.View() }

func (m Model) updateImportForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.focus = focusTimeline
		return m, nil
	}
	next, cmd := m.importForm.form.Update(msg)
	if form, ok := next.(*huh.Form); ok {
		m.importForm.form = form
	}
	switch m.importForm.form.State {
	case huh.StateCompleted:
		m = m.importFrom(strings.TrimSpace(m.importForm.path))
		m.focus = focusTimeline
	case huh.StateAborted:
		m.focus = focusTimeline
	}
	return m, cmd
}

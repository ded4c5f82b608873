package ui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/vanderheijden86/gantry/pkg/dateparse"
	"github.com/vanderheijden86/gantry/pkg/model"
	"github.com/vanderheijden86/gantry/pkg/theme"
)

type milestoneForm struct {
	form *huh.Form

	editID string
	label  string
	date   string
	color  string
}

func newMilestoneForm(ms *model.Milestone, th theme.Theme) *milestoneForm {
	f := &milestoneForm{}
	if ms != nil {
		f.editID = ms.ID
		f.label = ms.Label
		f.date = ms.Date.Format("2006-01-02")
		f.color = ms.Color
	}

	f.form = newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Label").
				Value(&f.label).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("label is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Date").
				Value(&f.date).
				Validate(validDate),
			huh.NewInput().
				Title("Color override").
				Description("hex like #f59e0b, blank for the accent color").
				Value(&f.color).
				Validate(validOptionalHex),
		),
	)
	return f
}

func (f *milestoneForm) Init() tea.Cmd { return f.form.Init() }

func (f *milestoneForm) View() string { return f.form.View() }

func (f *milestoneForm) milestone() model.Milestone {
	date, _ := dateparse.Parse(f.date)
	return model.Milestone{
		ID:    f.editID,
		Label: strings.TrimSpace(f.label),
		Date:  date,
		Color: strings.TrimSpace(f.color),
	}
}

func (m Model) updateMilestoneForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.focus = focusTimeline
		return m, nil
	}
	next, cmd := m.milestoneForm.form.Update(msg)
	if form, ok := next.(*huh.Form); ok {
		m.milestoneForm.form = form
	}
	switch m.milestoneForm.form.State {
	case huh.StateCompleted:
		ms := m.milestoneForm.milestone()
		if ms.ID == "" {
			m.sched.AddMilestone(ms)
			m.status = "milestone added: " + ms.Label
		} else {
			m.sched.UpdateMilestone(ms)
			m.status = "milestone updated: " + ms.Label
		}
		m.focus = focusTimeline
	case huh.StateAborted:
		m.focus = focusTimeline
	}
	return m, cmd
}

package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/vanderheijden86/gantry/pkg/dateparse"
	"github.com/vanderheijden86/gantry/pkg/model"
	"github.com/vanderheijden86/gantry/pkg/theme"
)

// itemForm edits or creates a schedule row. Date fields accept anything
// the import parser accepts; the end field re-checks ordering on submit so
// a reversed range keeps the dialog open instead of saving silently.
type itemForm struct {
	form *huh.Form

	editID   string // empty for a new row
	title    string
	level    int
	start    string
	end      string
	progress string
	color    string
}

func newItemForm(it *model.Item, th theme.Theme) *itemForm {
	f := &itemForm{level: 2, progress: "0"}
	if it != nil {
		f.editID = it.ID
		f.title = it.Title
		f.level = it.Level()
		f.start = it.Start.Format("2006-01-02")
		f.end = it.End.Format("2006-01-02")
		f.progress = strconv.Itoa(it.Progress)
		f.color = it.Color
	}

	f.form = newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&f.title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("title is required")
					}
					return nil
				}),
			huh.NewSelect[int]().
				Title("Level").
				Options(
					huh.NewOption("1 - phase", 1),
					huh.NewOption("2 - task", 2),
					huh.NewOption("3 - subtask", 3),
				).
				Value(&f.level),
			huh.NewInput().
				Title("Start date").
				Description("e.g. 2026-03-01, 1-Mar-2026 or 01/03/2026").
				Value(&f.start).
				Validate(validDate),
			huh.NewInput().
				Title("End date").
				Value(&f.end).
				Validate(func(s string) error {
					end, err := dateparse.Parse(s)
					if err != nil {
						return fmt.Errorf("unrecognized date %q", s)
					}
					start, err := dateparse.Parse(f.start)
					if err == nil && end.Before(start) {
						return errors.New("end date must be on or after start date")
					}
					return nil
				}),
			huh.NewInput().
				Title("Progress %").
				Value(&f.progress).
				Validate(validPercent),
			huh.NewInput().
				Title("Color override").
				Description("hex like #f59e0b, blank for theme color").
				Value(&f.color).
				Validate(validOptionalHex),
		),
	)
	return f
}

func (f *itemForm) Init() tea.Cmd { return f.form.Init() }

func (f *itemForm) View() string { return f.form.View() }

// item materializes the form values. Only valid after completion.
func (f *itemForm) item() model.Item {
	start, _ := dateparse.Parse(f.start)
	end, _ := dateparse.Parse(f.end)
	progress, _ := strconv.Atoi(strings.TrimSpace(f.progress))
	it := model.ItemForLevel(f.level)
	it.ID = f.editID
	it.Title = strings.TrimSpace(f.title)
	it.Start = start
	it.End = end
	it.Progress = progress
	it.Color = strings.TrimSpace(f.color)
	return it
}

func (m Model) updateItemForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.focus = focusTimeline
		return m, nil
	}
	next, cmd := m.itemForm.form.Update(msg)
	if form, ok := next.(*huh.Form); ok {
		m.itemForm.form = form
	}
	switch m.itemForm.form.State {
	case huh.StateCompleted:
		it := m.itemForm.item()
		if it.ID == "" {
			m.sched.AddItem(it)
			m.status = "item added: " + it.Title
		} else {
			m.sched.UpdateItem(it)
			m.status = "item updated: " + it.Title
		}
		m.focus = focusTimeline
	case huh.StateAborted:
		m.focus = focusTimeline
	}
	return m, cmd
}

func validDate(s string) error {
	if _, err := dateparse.Parse(s); err != nil {
		return fmt.Errorf("unrecognized date %q", s)
	}
	return nil
}

func validPercent(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n > 100 {
		return errors.New("enter a number between 0 and 100")
	}
	return nil
}

func validOptionalHex(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if len(s) != 7 || s[0] != '#' {
		return errors.New("use #rrggbb format")
	}
	for _, r := range s[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return errors.New("use #rrggbb format")
		}
	}
	return nil
}

package ui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/vanderheijden86/gantry/pkg/config"
	"github.com/vanderheijden86/gantry/pkg/theme"
)

// themeForm edits the six theme colors directly, or derives the first
// three from an image via palette extraction when a path is given.
type themeForm struct {
	form *huh.Form

	primary    string
	secondary  string
	tertiary   string
	background string
	accent     string
	text       string
	imagePath  string
}

func newThemeForm(th theme.Theme) *themeForm {
	f := &themeForm{
		primary:    th.Primary,
		secondary:  th.Secondary,
		tertiary:   th.Tertiary,
		background: th.Background,
		accent:     th.Accent,
		text:       th.Text,
	}
	f.form = newForm(
		huh.NewGroup(
			huh.NewInput().Title("Primary (phase bars)").Value(&f.primary).Validate(validHex),
			huh.NewInput().Title("Secondary (task bars)").Value(&f.secondary).Validate(validHex),
			huh.NewInput().Title("Tertiary").Value(&f.tertiary).Validate(validHex),
			huh.NewInput().Title("Background").Value(&f.background).Validate(validHex),
			huh.NewInput().Title("Accent (milestones)").Value(&f.accent).Validate(validHex),
			huh.NewInput().Title("Text").Value(&f.text).Validate(validHex),
			huh.NewInput().
				Title("Palette image").
				Description("optional; dominant colors replace primary/secondary/accent").
				Value(&f.imagePath).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return nil
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

func validHex(s string) error { return validOptionalHex(s) }

func (f *themeForm) Init() tea.Cmd { return f.form.Init() }

func (f *themeForm) View() string { return f.form.View() }

// theme materializes the edited theme; blank fields fall back to the
// defaults so a cleared input never produces an invisible element.
func (f *themeForm) theme() (theme.Theme, error) {
	def := theme.Default()
	th := theme.Theme{
		Primary:    orDefault(f.primary, def.Primary),
		Secondary:  orDefault(f.secondary, def.Secondary),
		Tertiary:   orDefault(f.tertiary, def.Tertiary),
		Background: orDefault(f.background, def.Background),
		Accent:     orDefault(f.accent, def.Accent),
		Text:       orDefault(f.text, def.Text),
	}
	if path := strings.TrimSpace(f.imagePath); path != "" {
		palette, err := theme.FromImage(path)
		if err != nil {
			return th, fmt.Errorf("palette extraction: %w", err)
		}
		if !th.ApplyPalette(palette) {
			return th, fmt.Errorf("image yielded only %d distinct colors, need 4", len(palette))
		}
	}
	return th, nil
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return strings.TrimSpace(s)
}

func (m Model) updateThemeForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.focus = focusTimeline
		return m, nil
	}
	next, cmd := m.themeForm.form.Update(msg)
	if form, ok := next.(*huh.Form); ok {
		m.themeForm.form = form
	}
	switch m.themeForm.form.State {
	case huh.StateCompleted:
		th, err := m.themeForm.theme()
		if err != nil {
			m.status = err.Error()
			m.focus = focusTimeline
			return m, cmd
		}
		m.theme = th
		m.styles = NewStyles(th)
		m.cfg.Theme = th
		if err := config.Save(m.cfg); err != nil {
			m.status = fmt.Sprintf("theme applied, save failed: %v", err)
		} else {
			m.status = "theme applied and saved"
		}
		m.focus = focusTimeline
	case huh.StateAborted:
		m.focus = focusTimeline
	}
	return m, cmd
}

// Package theme holds the color theme applied to both the on-screen
// timeline and the exported slide, plus palette extraction from sample
// images.
package theme

import "github.com/vanderheijden86/gantry/pkg/model"

// Theme is the set of colors driving timeline rendering. All values are
// #rrggbb hex strings. Per-item and per-milestone overrides take
// precedence over these.
type Theme struct {
	Primary    string `yaml:"primary"`
	Secondary  string `yaml:"secondary"`
	Tertiary   string `yaml:"tertiary"`
	Background string `yaml:"background"`
	Accent     string `yaml:"accent"`
	Text       string `yaml:"text"`
	Auto       bool   `yaml:"auto"`
}

// Default returns the stock blue/slate/amber palette.
func Default() Theme {
	return Theme{
		Primary:    "#3b82f6",
		Secondary:  "#64748b",
		Tertiary:   "#94a3b8",
		Background: "#ffffff",
		Accent:     "#f59e0b",
		Text:       "#0f172a",
		Auto:       true,
	}
}

// ItemColor resolves the bar color of a row: its override if set, else
// primary for phases and secondary for tasks.
func (t Theme) ItemColor(it model.Item) string {
	if it.Color != "" {
		return it.Color
	}
	if it.Kind == model.KindPhase {
		return t.Primary
	}
	return t.Secondary
}

// MilestoneColor resolves the flag color of a milestone: its override if
// set, else the accent color.
func (t Theme) MilestoneColor(m model.Milestone) string {
	if m.Color != "" {
		return m.Color
	}
	return t.Accent
}

// ApplyPalette assigns the first three palette entries to primary,
// secondary and accent. Palettes with fewer than four colors are rejected
// as too poor to theme from, and the theme is left untouched.
func (t *Theme) ApplyPalette(palette []string) bool {
	if len(palette) < 4 {
		return false
	}
	t.Primary = palette[0]
	t.Secondary = palette[1]
	t.Accent = palette[2]
	return true
}

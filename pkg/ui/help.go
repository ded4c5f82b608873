package ui

import "github.com/charmbracelet/glamour"

const helpMarkdown = `# gantry

## Navigation

| Key | Action |
|-----|--------|
| j / k | move selection |
| h / l | scroll the timeline |
| tab | switch between items and milestones |
| J / K | reorder the selected item |
| 1 / 2 / 3 | day / month / week-part view |
| f | fit viewport to the schedule |

## Editing

| Key | Action |
|-----|--------|
| a | add item |
| m | add milestone |
| enter / e | edit selection |
| x | delete selection |
| y | copy selection summary to clipboard |

## Data

| Key | Action |
|-----|--------|
| i | import spreadsheet (.xlsx) |
| E | export slide (SVG / PNG) |
| c | edit theme |

Imported workbooks are watched; saving the file re-imports it.

Press q or esc to close this help.
`

// renderHelp renders the key reference with glamour; on renderer failure
// the raw markdown is still readable.
func renderHelp(width int) string {
	wrap := width - 4
	if wrap < 40 {
		wrap = 40
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return out
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/gantry/pkg/model"
	"github.com/vanderheijden86/gantry/pkg/timescale"
)

const (
	panelWidth    = 26
	minGraphWidth = 20
)

// viewTimeline renders the milestone lane, month header and one row per
// item, all sharing a single screen-space mapper so bars, flags and header
// cells stay aligned across view modes.
func (m Model) viewTimeline() string {
	vp := m.sched.Viewport()
	mapper, err := timescale.New(vp, timescale.ScreenScale(vp.Mode))
	if err != nil {
		return m.styles.ErrorMsg.Render(err.Error())
	}

	graphW := m.width - panelWidth - 1
	if graphW < minGraphWidth {
		graphW = minGraphWidth
	}

	var b strings.Builder
	b.WriteString(m.milestoneLane(mapper, graphW))
	b.WriteByte('\n')
	b.WriteString(m.monthHeader(mapper, graphW))
	b.WriteByte('\n')

	items := m.sched.Items()
	for i, it := range items {
		b.WriteString(m.itemRow(mapper, graphW, i, it))
		b.WriteByte('\n')
	}
	if len(items) == 0 {
		b.WriteString(m.styles.Help.Render("  no items — press a to add one, i to import"))
		b.WriteByte('\n')
	}

	if ms := m.sched.Milestones(); len(ms) > 0 {
		b.WriteString(m.styles.Grid.Render(strings.Repeat("─", panelWidth+1+graphW)))
		b.WriteByte('\n')
		for i, mil := range ms {
			b.WriteString(m.milestoneRow(mapper, graphW, i, mil))
			b.WriteByte('\n')
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// monthHeader lays out one fixed-width cell per month in the viewport.
// Cells are positioned independently of the day grid, so in day mode the
// header is a legend rather than an exact ruler.
func (m Model) monthHeader(mapper *timescale.Mapper, graphW int) string {
	cells := newCanvas(graphW)
	colW := int(mapper.Scale().MonthColWidth)
	for i, mo := range mapper.Months() {
		x := int(mapper.MonthHeaderX(i)) - m.xOff
		label := mo.Format("Jan 06")
		cells.place(x, padCells(" "+label, colW))
	}
	line := m.styles.MonthHeader.Render(cells.String())
	return padCells("", panelWidth) + " " + line
}

// milestoneLane draws one flag glyph per visible milestone above the
// header, with its label trailing when there is room.
func (m Model) milestoneLane(mapper *timescale.Mapper, graphW int) string {
	cells := newCanvas(graphW)
	for _, mil := range m.sched.Milestones() {
		x := int(mapper.XOf(mil.Date)) - m.xOff
		cells.place(x, "⚑ "+truncateCells(mil.Label, 14))
	}
	panel := m.styles.PanelHeader.Render(padCells(" milestones", panelWidth))
	return panel + " " + m.styles.DateLabel.Render(cells.String())
}

func (m Model) itemRow(mapper *timescale.Mapper, graphW int, i int, it model.Item) string {
	name := strings.Repeat("  ", it.Indent) + it.Title
	nameStyle := m.styles.TaskName
	if it.Kind == model.KindPhase {
		nameStyle = m.styles.PhaseName
	}
	selected := m.lane == laneItems && m.selected == i
	if selected {
		nameStyle = m.styles.Selected
	}
	panel := nameStyle.Render(padCells(" "+truncateCells(name, panelWidth-2), panelWidth))

	x := int(mapper.XOf(it.Start)) - m.xOff
	w := int(mapper.WidthOf(it.Start, it.End) + 0.5)
	if w < 1 {
		w = 1
	}
	bar := barGlyphs(it, w)

	cells := newCanvas(graphW)
	cells.place(x, bar)
	label := fmt.Sprintf(" %s - %s", it.Start.Format("2 Jan"), it.End.Format("2 Jan"))
	cells.place(x+w, label)

	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ItemColor(it)))
	return panel + m.styles.Grid.Render("│") + barStyle.Render(cells.String())
}

func (m Model) milestoneRow(mapper *timescale.Mapper, graphW int, i int, mil model.Milestone) string {
	nameStyle := m.styles.TaskName
	if m.lane == laneMilestones && m.selected == i {
		nameStyle = m.styles.Selected
	}
	panel := nameStyle.Render(padCells(" ⚑ "+truncateCells(mil.Label, panelWidth-4), panelWidth))

	cells := newCanvas(graphW)
	x := int(mapper.XOf(mil.Date)) - m.xOff
	cells.place(x, "◆ "+mil.Date.Format("2 Jan 2006"))

	flagStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.MilestoneColor(mil)))
	return panel + m.styles.Grid.Render("│") + flagStyle.Render(cells.String())
}

// barGlyphs renders a bar of width w with the completed fraction solid.
func barGlyphs(it model.Item, w int) string {
	done := w * it.Progress / 100
	if done > w {
		done = w
	}
	if it.Kind == model.KindPhase {
		return strings.Repeat("█", w)
	}
	return strings.Repeat("█", done) + strings.Repeat("░", w-done)
}

// canvas is a fixed-width rune buffer that clips writes at both edges.
type canvas []rune

func newCanvas(w int) canvas {
	c := make(canvas, w)
	for i := range c {
		c[i] = ' '
	}
	return c
}

func (c canvas) place(x int, s string) {
	for _, r := range s {
		if x >= len(c) {
			return
		}
		if x >= 0 {
			c[x] = r
		}
		x++
	}
}

func (c canvas) String() string { return string(c) }

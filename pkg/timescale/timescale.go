// Package timescale is the timeline geometry engine: it maps calendar dates
// to horizontal offsets for a given viewport, view mode and physical scale.
//
// The same mapper serves both consumers of timeline geometry. The screen
// renderer instantiates it with terminal-cell units and no clamping (so
// milestone flags can sit outside the viewport while scrolling); the slide
// exporter instantiates it with inch units and clamping (so bars never
// escape the slide canvas). Only the Scale differs, never the math.
package timescale

import (
	"errors"
	"fmt"
	"time"

	"github.com/vanderheijden86/gantry/pkg/model"
)

// Mode selects the layout strategy.
type Mode string

const (
	// ModeDay lays days out linearly at a fine scale.
	ModeDay Mode = "day"
	// ModeMonth uses the same linear day grid at a coarse scale. Month
	// header cells are fixed-width and therefore drift from the day grid;
	// see Mapper.MonthHeaderX.
	ModeMonth Mode = "month"
	// ModeWeekPart gives every month a fixed-width column split into four
	// equal visual "weeks", with day positions proportional inside the
	// month box.
	ModeWeekPart Mode = "week-part"
)

// WeekPartsPerMonth is the number of visual week sub-columns every month
// gets in ModeWeekPart, independent of real week boundaries.
const WeekPartsPerMonth = 4

// ErrDegenerateViewport reports a viewport whose day span is zero or
// negative. Such a viewport would divide by zero in proportional layout,
// so it is rejected at construction instead of producing NaN downstream.
var ErrDegenerateViewport = errors.New("degenerate viewport: end must be after start")

// Viewport is the visible date range and granularity driving layout.
type Viewport struct {
	Start time.Time
	End   time.Time
	Mode  Mode
}

// NewViewport validates and normalizes a viewport. Start and end are
// snapped to noon UTC; spans of zero or negative days are rejected.
func NewViewport(start, end time.Time, mode Mode) (Viewport, error) {
	switch mode {
	case ModeDay, ModeMonth, ModeWeekPart:
	default:
		return Viewport{}, fmt.Errorf("unknown view mode %q", mode)
	}
	vp := Viewport{Start: model.Normalize(start), End: model.Normalize(end), Mode: mode}
	if model.DaysBetween(vp.Start, vp.End) <= 0 {
		return Viewport{}, fmt.Errorf("%w (start=%s end=%s)",
			ErrDegenerateViewport, vp.Start.Format("2006-01-02"), vp.End.Format("2006-01-02"))
	}
	return vp, nil
}

// TotalDays returns the whole-day span of the viewport.
func (vp Viewport) TotalDays() int {
	return model.DaysBetween(vp.Start, vp.End)
}

// Months lists the first day of every month the viewport touches.
func (vp Viewport) Months() []time.Time {
	return model.MonthsIn(vp.Start, vp.End)
}

// Scale carries the physical constants of one mapper instantiation.
type Scale struct {
	UnitsPerDay   float64 // linear day grid (ModeDay, ModeMonth)
	MonthColWidth float64 // fixed month columns (headers, ModeWeekPart)
	MinBarWidth   float64 // floor for WidthOf, always positive
	Clamp         bool    // clamp XOf into [0, Width]
}

// ScreenScale returns the terminal-cell scale for a view mode: four cells
// per day zoomed in, 0.4 when zoomed out, twelve-cell month columns. No
// clamping, so markers outside the viewport keep their true offsets.
func ScreenScale(mode Mode) Scale {
	sc := Scale{MonthColWidth: 12, MinBarWidth: 1}
	switch mode {
	case ModeDay:
		sc.UnitsPerDay = 4
	default:
		sc.UnitsPerDay = 0.4
	}
	return sc
}

// ExportScale returns the inch scale for slide export: the graph area is
// divided linearly by the viewport's day span, month columns share it
// equally, and offsets are clamped so nothing draws outside the canvas.
func ExportScale(vp Viewport, graphWidth float64) Scale {
	months := len(vp.Months())
	if months < 1 {
		months = 1
	}
	return Scale{
		UnitsPerDay:   graphWidth / float64(vp.TotalDays()),
		MonthColWidth: graphWidth / float64(months),
		MinBarWidth:   0.08,
		Clamp:         true,
	}
}

// Mapper converts dates to horizontal offsets relative to the viewport
// start. Construct one per (viewport, scale) pair; it is immutable and
// safe for concurrent readers.
type Mapper struct {
	vp        Viewport
	sc        Scale
	totalDays float64
	months    []time.Time
}

// New builds a mapper, rejecting degenerate viewports and non-positive
// scale constants up front so layout math can never divide by zero.
func New(vp Viewport, sc Scale) (*Mapper, error) {
	validated, err := NewViewport(vp.Start, vp.End, vp.Mode)
	if err != nil {
		return nil, err
	}
	if vp.Mode == ModeWeekPart {
		if sc.MonthColWidth <= 0 {
			return nil, fmt.Errorf("month column width must be positive, got %v", sc.MonthColWidth)
		}
	} else if sc.UnitsPerDay <= 0 {
		return nil, fmt.Errorf("units per day must be positive, got %v", sc.UnitsPerDay)
	}
	if sc.MinBarWidth <= 0 {
		return nil, fmt.Errorf("minimum bar width must be positive, got %v", sc.MinBarWidth)
	}
	return &Mapper{
		vp:        validated,
		sc:        sc,
		totalDays: float64(validated.TotalDays()),
		months:    validated.Months(),
	}, nil
}

// Viewport returns the validated viewport the mapper was built with.
func (m *Mapper) Viewport() Viewport { return m.vp }

// Scale returns the scale constants the mapper was built with.
func (m *Mapper) Scale() Scale { return m.sc }

// Width returns the total canvas width of the viewport in scale units.
func (m *Mapper) Width() float64 {
	if m.vp.Mode == ModeWeekPart {
		return float64(len(m.months)) * m.sc.MonthColWidth
	}
	return m.totalDays * m.sc.UnitsPerDay
}

// XOf returns the horizontal offset of d relative to the viewport start.
// Offsets are monotonically non-decreasing in d for a fixed mapper. When
// the scale clamps, results stay inside [0, Width]; otherwise dates
// outside the viewport produce negative or overflowing offsets unchanged.
func (m *Mapper) XOf(d time.Time) float64 {
	var x float64
	if m.vp.Mode == ModeWeekPart {
		x = m.weekPartX(d)
	} else {
		x = float64(model.DaysBetween(m.vp.Start, d)) * m.sc.UnitsPerDay
	}
	if m.sc.Clamp {
		if x < 0 {
			x = 0
		}
		if w := m.Width(); x > w {
			x = w
		}
	}
	return x
}

// weekPartX places d proportionally inside its fixed-width month box:
// monthIndex*colWidth plus (day-1)/daysInMonth of a column. The first day
// of every month lands exactly on its column boundary.
func (m *Mapper) weekPartX(d time.Time) float64 {
	d = model.Normalize(d)
	monthIdx := model.MonthsBetween(model.StartOfMonth(m.vp.Start), model.StartOfMonth(d))
	dim := model.DaysInMonth(d)
	progress := float64(d.Day()-1) / float64(dim)
	return (float64(monthIdx) + progress) * m.sc.MonthColWidth
}

// WidthOf returns the rendered width of a date range, never less than the
// scale's minimum bar width. Inverted ranges are a data-entry error and
// collapse to the minimum width rather than failing layout.
func (m *Mapper) WidthOf(start, end time.Time) float64 {
	w := m.XOf(end) - m.XOf(start)
	if w < m.sc.MinBarWidth {
		return m.sc.MinBarWidth
	}
	return w
}

// Months lists the first day of each month in the viewport, in order.
// Index i of this slice pairs with MonthHeaderX(i).
func (m *Mapper) Months() []time.Time { return m.months }

// MonthHeaderX returns the offset of month header cell i. Header cells are
// uniform (i * MonthColWidth) in every mode, so in the linear-day modes
// they intentionally drift from the bar grid beneath them: months have
// unequal lengths but their header cells do not. The two coordinate
// systems share one canvas on purpose.
func (m *Mapper) MonthHeaderX(i int) float64 {
	return float64(i) * m.sc.MonthColWidth
}

// WeekPartX returns the offset of visual week w (0-3) inside month cell i.
func (m *Mapper) WeekPartX(i, w int) float64 {
	return m.MonthHeaderX(i) + float64(w)*m.sc.MonthColWidth/WeekPartsPerMonth
}

// Package slide exports the current schedule as a single static slide,
// rendered as SVG or PNG on a fixed 10-inch virtual canvas.
//
// The exporter and the on-screen timeline share one geometry engine; this
// package instantiates it at inch scale with clamping enabled, so bars and
// milestones are pinned to the graph area no matter how far outside the
// viewport their dates fall.
package slide

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vanderheijden86/gantry/pkg/model"
	"github.com/vanderheijden86/gantry/pkg/theme"
	"github.com/vanderheijden86/gantry/pkg/timescale"
)

// Slide geometry in inches, anchored to a 10-inch-wide virtual canvas.
const (
	TotalWidth     = 10.0
	LeftPanelWidth = 1.8
	GraphStartX    = LeftPanelWidth + 0.15
	GraphWidth     = TotalWidth - GraphStartX - 0.15

	milestoneAreaH = 0.65
	headerY        = 0.7 + milestoneAreaH
	headerHeight   = 0.35
	rowStartY      = headerY + headerHeight
	rowHeight      = 0.32

	minSlideHeight = 5.63 // 16:9 slide
	bottomMargin   = 0.4

	// DPI converts virtual inches to output pixels.
	DPI = 96
)

// DefaultBaseName is the fixed export naming convention; the extension
// carries the format.
const DefaultBaseName = "Timeline_Export"

// Options configures one slide export.
type Options struct {
	Path       string // output path; format inferred from extension when Format empty
	Format     string // "svg" or "png" (case-insensitive)
	Title      string // slide title; "Project Timeline" when empty
	Items      []model.Item
	Milestones []model.Milestone
	Theme      theme.Theme
	Viewport   timescale.Viewport
	WeekTicks  bool // draw the 4-per-month week sub-grid under the month headers
}

// DefaultFileName returns the conventional file name for a format.
func DefaultFileName(format string) string {
	return DefaultBaseName + "." + strings.ToLower(strings.TrimPrefix(format, "."))
}

// Save renders the slide to opts.Path. The schedule is taken as an
// immutable snapshot; the computation is synchronous and not cancelable.
func Save(opts Options) error {
	format := strings.ToLower(strings.TrimPrefix(opts.Format, "."))
	if format == "" {
		switch ext := strings.ToLower(filepath.Ext(opts.Path)); ext {
		case ".svg":
			format = "svg"
		case ".png":
			format = "png"
		case "":
			format = "svg" // safe default
			if opts.Path != "" {
				opts.Path = opts.Path + ".svg"
			}
		default:
			return fmt.Errorf("unsupported format %q (want svg or png)", ext)
		}
	}
	if format != "svg" && format != "png" {
		return fmt.Errorf("unsupported format %q (want svg or png)", format)
	}
	if opts.Path == "" {
		return fmt.Errorf("output path is required")
	}

	geo, err := buildGeometry(opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return fmt.Errorf("create parent dir: %w", err)
	}

	switch format {
	case "svg":
		return renderSVG(opts, geo)
	default:
		return renderPNG(opts, geo)
	}
}

// SaveAll renders the slide once per requested format into dir, using the
// conventional file names. Formats render concurrently; the first error
// wins.
func SaveAll(dir string, formats []string, opts Options) error {
	var g errgroup.Group
	for _, format := range formats {
		o := opts
		o.Format = format
		o.Path = filepath.Join(dir, DefaultFileName(format))
		g.Go(func() error { return Save(o) })
	}
	return g.Wait()
}

// geometry is the shared layout both renderers draw from: the inch-scale
// mapper plus the vertical extents that depend on row count.
type geometry struct {
	mapper *timescale.Mapper
	height float64 // total slide height in inches
	listY  float64 // y where the row area ends
}

func buildGeometry(opts Options) (geometry, error) {
	mapper, err := timescale.New(opts.Viewport, timescale.ExportScale(opts.Viewport, GraphWidth))
	if err != nil {
		return geometry{}, err
	}
	listY := rowY(len(opts.Items))
	height := listY + bottomMargin
	if height < minSlideHeight {
		height = minSlideHeight
	}
	return geometry{mapper: mapper, height: height, listY: listY}, nil
}

// graphX converts a mapper offset (relative to the graph area) into an
// absolute slide coordinate.
func graphX(offset float64) float64 { return GraphStartX + offset }

func rowY(index int) float64 { return rowStartY + float64(index)*rowHeight }

func title(opts Options) string {
	if strings.TrimSpace(opts.Title) == "" {
		return "Project Timeline"
	}
	return opts.Title
}

// visibleMilestones filters milestones to the viewport; out-of-range
// markers are dropped from the slide rather than clamped onto its edge.
func visibleMilestones(opts Options) []model.Milestone {
	var ms []model.Milestone
	for _, m := range opts.Milestones {
		if m.Date.Before(opts.Viewport.Start) || m.Date.After(opts.Viewport.End) {
			continue
		}
		ms = append(ms, m)
	}
	return ms
}

// barSpan returns the bar rectangle of a row in slide coordinates, and
// false when the row lies entirely outside the viewport.
func barSpan(geo geometry, it model.Item, vp timescale.Viewport) (x, w float64, ok bool) {
	if it.End.Before(vp.Start) || it.Start.After(vp.End) {
		return 0, 0, false
	}
	x = graphX(geo.mapper.XOf(it.Start))
	w = geo.mapper.WidthOf(it.Start, it.End)
	return x, w, true
}

// Fixed grayscale accents shared by both renderers; the themeable colors
// come from opts.Theme.
var (
	colorInk       = mustHex("#111827")
	colorSubtle    = mustHex("#6b7280")
	colorFaintLine = mustHex("#d1d5db")
	colorGridLine  = mustHex("#e5e7eb")
	colorPanelInk  = mustHex("#374151")
	colorTaskInk   = mustHex("#4b5563")
	colorDateInk   = mustHex("#9ca3af")
	colorWhite     = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// mustHex parses #rrggbb; inputs are package-level constants.
func mustHex(hex string) color.RGBA {
	c, err := parseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHex converts a #rrggbb string to an opaque RGBA. Malformed theme
// values fall back to mid-gray rather than failing export.
func parseHex(hex string) (color.RGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return color.RGBA{0x80, 0x80, 0x80, 0xff}, fmt.Errorf("malformed hex color %q", hex)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{0x80, 0x80, 0x80, 0xff}, fmt.Errorf("malformed hex color %q", hex)
	}
	return color.RGBA{r, g, b, 0xff}, nil
}

func themeColor(hex string) color.RGBA {
	c, _ := parseHex(hex)
	return c
}

// withAlpha returns c at the given opacity; task bars render at half
// opacity so the progress overlay reads as the solid fill.
func withAlpha(c color.RGBA, a uint8) color.RGBA {
	return color.RGBA{c.R, c.G, c.B, a}
}

func barFill(t theme.Theme, it model.Item) color.RGBA {
	c := themeColor(t.ItemColor(it))
	if it.Color == "" && it.Kind == model.KindTask {
		return withAlpha(c, 0x80)
	}
	return c
}

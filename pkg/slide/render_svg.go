package slide

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"time"

	svg "github.com/ajstarks/svgo"

	"github.com/vanderheijden86/gantry/pkg/model"
	"github.com/vanderheijden86/gantry/pkg/timescale"
)

// px converts virtual inches to output pixels.
func px(in float64) int { return int(in*DPI + 0.5) }

func css(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// fill builds an svg fill style, adding opacity for translucent colors.
func fill(c color.RGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("fill:%s", css(c))
	}
	return fmt.Sprintf("fill:%s;fill-opacity:%.2f", css(c), float64(c.A)/255)
}

func renderSVG(opts Options, geo geometry) error {
	file, err := os.Create(opts.Path)
	if err != nil {
		return err
	}
	defer file.Close()
	return renderSVGToWriter(file, opts, geo)
}

func renderSVGToWriter(w io.Writer, opts Options, geo geometry) error {
	canvas := svg.New(w)
	canvas.Start(px(TotalWidth), px(geo.height))
	canvas.Rect(0, 0, px(TotalWidth), px(geo.height), fill(themeColor(opts.Theme.Background)))

	canvas.Text(px(0.2), px(0.45), title(opts),
		fmt.Sprintf("fill:%s;font-size:19px;font-family:sans-serif;font-weight:bold", opts.Theme.Primary))

	drawMonthHeadersSVG(canvas, opts, geo)
	drawMilestonesSVG(canvas, opts, geo)
	drawLeftPanelSVG(canvas, opts, geo)
	drawRowsSVG(canvas, opts, geo)

	canvas.End()
	return nil
}

func drawMonthHeadersSVG(canvas *svg.SVG, opts Options, geo geometry) {
	colW := geo.mapper.Scale().MonthColWidth
	headerFill := fill(themeColor(opts.Theme.Secondary))
	for i, month := range geo.mapper.Months() {
		x := graphX(geo.mapper.MonthHeaderX(i))

		canvas.Rect(px(x), px(headerY), px(colW), px(headerHeight),
			headerFill+";stroke:#ffffff;stroke-width:1")
		canvas.Text(px(x+colW/2), px(headerY+headerHeight-0.1), month.Format("Jan 2006"),
			"fill:#ffffff;font-size:11px;font-family:sans-serif;font-weight:bold;text-anchor:middle")

		// Grid line from the header down through all rows.
		canvas.Line(px(x), px(headerY+headerHeight), px(x), px(geo.listY+0.1),
			fmt.Sprintf("stroke:%s;stroke-width:1", css(colorGridLine)))

		if opts.WeekTicks {
			for wk := 1; wk < timescale.WeekPartsPerMonth; wk++ {
				tx := graphX(geo.mapper.WeekPartX(i, wk))
				canvas.Line(px(tx), px(headerY+headerHeight), px(tx), px(geo.listY+0.1),
					fmt.Sprintf("stroke:%s;stroke-width:0.5;stroke-dasharray:2,3", css(colorGridLine)))
			}
		}
	}
}

func drawMilestonesSVG(canvas *svg.SVG, opts Options, geo geometry) {
	for _, m := range visibleMilestones(opts) {
		x := graphX(geo.mapper.XOf(m.Date))
		c := themeColor(opts.Theme.MilestoneColor(m))

		// Right-pointing flag.
		canvas.Polygon(
			[]int{px(x), px(x + 0.15), px(x)},
			[]int{px(0.78), px(0.855), px(0.93)},
			fill(c))

		canvas.Text(px(x+0.1)+px(0.08), px(0.82), m.Label,
			fmt.Sprintf("fill:%s;font-size:10px;font-family:sans-serif;font-weight:bold", css(colorInk)))
		canvas.Text(px(x+0.1)+px(0.08), px(0.92), m.Date.Format("2 Jan 2006"),
			fmt.Sprintf("fill:%s;font-size:8px;font-family:sans-serif", css(colorSubtle)))

		// Dashed drop line down through the rows.
		canvas.Line(px(x), px(0.95), px(x), px(geo.listY+0.1),
			fmt.Sprintf("stroke:%s;stroke-width:1;stroke-dasharray:4,3", css(colorFaintLine)))
	}
}

func drawLeftPanelSVG(canvas *svg.SVG, opts Options, geo geometry) {
	canvas.Text(px(0.1), px(headerY+headerHeight-0.1), "Project Items",
		fmt.Sprintf("fill:%s;font-size:12px;font-family:sans-serif;font-weight:bold", css(colorPanelInk)))

	// Separator between the name panel and the graph.
	canvas.Line(px(GraphStartX-0.05), px(headerY), px(GraphStartX-0.05), px(geo.listY),
		fmt.Sprintf("stroke:%s;stroke-width:1.5", css(colorFaintLine)))
}

func drawRowsSVG(canvas *svg.SVG, opts Options, geo geometry) {
	for i, it := range opts.Items {
		y := rowY(i)
		isPhase := it.Kind == model.KindPhase

		// Indicator pill at the far left.
		canvas.Rect(px(0.05), px(y+0.03), px(0.05), px(0.2), fill(themeColor(opts.Theme.ItemColor(it))))

		nameInk := colorTaskInk
		nameStyle := "font-size:10px;font-family:sans-serif"
		if isPhase {
			nameInk = colorInk
			nameStyle = "font-size:11px;font-family:sans-serif;font-weight:bold"
		}
		indent := 0.12 * float64(it.Indent)
		canvas.Text(px(0.12+indent), px(y+0.2), it.Title, fmt.Sprintf("fill:%s;%s", css(nameInk), nameStyle))

		x, w, ok := barSpan(geo, it, opts.Viewport)
		if !ok {
			continue
		}

		// Dashed lead-in from the panel to the bar.
		canvas.Line(px(LeftPanelWidth+0.05), px(y+0.13), px(x), px(y+0.13),
			fmt.Sprintf("stroke:%s;stroke-width:1;stroke-dasharray:4,3", css(colorFaintLine)))

		canvas.Rect(px(x), px(y+0.06), px(w), px(0.16), fill(barFill(opts.Theme, it)))

		if it.Progress > 0 {
			pw := w * float64(it.Progress) / 100
			if pw > 0.01 {
				canvas.Rect(px(x), px(y+0.06), px(pw), px(0.16), fill(themeColor(opts.Theme.ItemColor(it))))
				if pw > 0.2 {
					canvas.Text(px(x+pw/2), px(y+0.18), fmt.Sprintf("%d%%", it.Progress),
						"fill:#ffffff;font-size:8px;font-family:sans-serif;font-weight:bold;text-anchor:middle")
				}
			}
		}

		canvas.Text(px(x+w+0.05), px(y+0.18), dateRangeLabel(it.Start, it.End),
			fmt.Sprintf("fill:%s;font-size:8px;font-family:sans-serif", css(colorDateInk)))
	}
}

func dateRangeLabel(start, end time.Time) string {
	return start.Format("2 Jan") + " - " + end.Format("2 Jan")
}

package slide

import (
	"fmt"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/vanderheijden86/gantry/pkg/model"
	"github.com/vanderheijden86/gantry/pkg/timescale"
)

// pt converts virtual inches to raster coordinates.
func pt(in float64) float64 { return in * DPI }

func renderPNG(opts Options, geo geometry) error {
	dc := gg.NewContext(px(TotalWidth), px(geo.height))
	dc.SetColor(themeColor(opts.Theme.Background))
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetColor(themeColor(opts.Theme.Primary))
	dc.DrawString(title(opts), pt(0.2), pt(0.45))

	drawMonthHeadersPNG(dc, opts, geo)
	drawMilestonesPNG(dc, opts, geo)
	drawLeftPanelPNG(dc, opts, geo)
	drawRowsPNG(dc, opts, geo)

	return dc.SavePNG(opts.Path)
}

func drawMonthHeadersPNG(dc *gg.Context, opts Options, geo geometry) {
	colW := geo.mapper.Scale().MonthColWidth
	for i, month := range geo.mapper.Months() {
		x := graphX(geo.mapper.MonthHeaderX(i))

		dc.SetColor(themeColor(opts.Theme.Secondary))
		dc.DrawRectangle(pt(x), pt(headerY), pt(colW), pt(headerHeight))
		dc.Fill()
		dc.SetColor(colorWhite)
		dc.DrawStringAnchored(month.Format("Jan 2006"), pt(x+colW/2), pt(headerY+headerHeight/2), 0.5, 0.35)

		dc.SetColor(colorGridLine)
		dc.SetLineWidth(1)
		dc.DrawLine(pt(x), pt(headerY+headerHeight), pt(x), pt(geo.listY+0.1))
		dc.Stroke()

		if opts.WeekTicks {
			dc.SetDash(2, 3)
			for wk := 1; wk < timescale.WeekPartsPerMonth; wk++ {
				tx := graphX(geo.mapper.WeekPartX(i, wk))
				dc.DrawLine(pt(tx), pt(headerY+headerHeight), pt(tx), pt(geo.listY+0.1))
				dc.Stroke()
			}
			dc.SetDash()
		}
	}
}

func drawMilestonesPNG(dc *gg.Context, opts Options, geo geometry) {
	for _, m := range visibleMilestones(opts) {
		x := graphX(geo.mapper.XOf(m.Date))

		dc.SetColor(themeColor(opts.Theme.MilestoneColor(m)))
		dc.MoveTo(pt(x), pt(0.78))
		dc.LineTo(pt(x+0.15), pt(0.855))
		dc.LineTo(pt(x), pt(0.93))
		dc.ClosePath()
		dc.Fill()

		dc.SetColor(colorInk)
		dc.DrawString(m.Label, pt(x+0.18), pt(0.84))
		dc.SetColor(colorSubtle)
		dc.DrawString(m.Date.Format("2 Jan 2006"), pt(x+0.18), pt(0.94))

		dc.SetColor(colorFaintLine)
		dc.SetLineWidth(1)
		dc.SetDash(4, 3)
		dc.DrawLine(pt(x), pt(0.95), pt(x), pt(geo.listY+0.1))
		dc.Stroke()
		dc.SetDash()
	}
}

func drawLeftPanelPNG(dc *gg.Context, opts Options, geo geometry) {
	dc.SetColor(colorPanelInk)
	dc.DrawString("Project Items", pt(0.1), pt(headerY+headerHeight-0.1))

	dc.SetColor(colorFaintLine)
	dc.SetLineWidth(1.5)
	dc.DrawLine(pt(GraphStartX-0.05), pt(headerY), pt(GraphStartX-0.05), pt(geo.listY))
	dc.Stroke()
}

func drawRowsPNG(dc *gg.Context, opts Options, geo geometry) {
	for i, it := range opts.Items {
		y := rowY(i)
		isPhase := it.Kind == model.KindPhase

		dc.SetColor(themeColor(opts.Theme.ItemColor(it)))
		dc.DrawRectangle(pt(0.05), pt(y+0.03), pt(0.05), pt(0.2))
		dc.Fill()

		if isPhase {
			dc.SetColor(colorInk)
		} else {
			dc.SetColor(colorTaskInk)
		}
		indent := 0.12 * float64(it.Indent)
		dc.DrawString(it.Title, pt(0.12+indent), pt(y+0.2))

		x, w, ok := barSpan(geo, it, opts.Viewport)
		if !ok {
			continue
		}

		dc.SetColor(colorFaintLine)
		dc.SetLineWidth(1)
		dc.SetDash(4, 3)
		dc.DrawLine(pt(LeftPanelWidth+0.05), pt(y+0.13), pt(x), pt(y+0.13))
		dc.Stroke()
		dc.SetDash()

		dc.SetColor(barFill(opts.Theme, it))
		dc.DrawRectangle(pt(x), pt(y+0.06), pt(w), pt(0.16))
		dc.Fill()

		if it.Progress > 0 {
			pw := w * float64(it.Progress) / 100
			if pw > 0.01 {
				dc.SetColor(themeColor(opts.Theme.ItemColor(it)))
				dc.DrawRectangle(pt(x), pt(y+0.06), pt(pw), pt(0.16))
				dc.Fill()
				if pw > 0.2 {
					dc.SetColor(colorWhite)
					dc.DrawStringAnchored(fmt.Sprintf("%d%%", it.Progress), pt(x+pw/2), pt(y+0.14), 0.5, 0.35)
				}
			}
		}

		dc.SetColor(colorDateInk)
		dc.DrawString(dateRangeLabel(it.Start, it.End), pt(x+w+0.05), pt(y+0.18))
	}
}

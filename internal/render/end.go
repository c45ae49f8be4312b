package render

import "icoop/internal/dialog"

// Stat is one labelled line of the end screen.
type Stat struct {
	Label string
	Value string
}

// DrawEnd shows the end-of-run summary: a headline, the statistics and a
// closing line.
func (r *Renderer) DrawEnd(won bool, headline string, stats []Stat, footer string) {
	r.screen.Clear()
	sw, _ := r.screen.Size()
	sep := func(y int) {
		for x := 0; x < sw; x++ {
			r.screen.SetContent(x, y, '─', nil, styleDim)
		}
	}

	y := 1
	sep(y)
	y += 2

	r.drawText(2, y, headline, styleTitle)
	badge, style := "[DEFEAT]", styleBad
	if won {
		badge, style = "[VICTORY]", styleGood
	}
	r.drawText(max(sw-len(badge)-1, 0), y, badge, style)
	y += 2

	for _, s := range stats {
		r.drawText(2, y, s.Label, styleMessage)
		r.drawText(22, y, s.Value, styleText)
		y++
	}
	y++

	if footer != "" {
		for _, line := range dialog.Wrap(footer, max(sw-4, 10)) {
			r.drawText(2, y, line, styleGood)
			y++
		}
		y++
	}

	sep(y)
	y += 2
	r.drawText(2, y, "[Q] Quit", styleBad)
	r.screen.Show()
}

package render

import (
	"fmt"
	"strings"

	"icoop/internal/dialog"
	"icoop/internal/entity"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawHUD renders the area title, one status line per player and the tail
// of the message log below the map.
func (r *Renderer) drawHUD(v View) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows(len(v.Players))
	if hudY < 0 {
		return
	}

	r.drawHLine(hudY, tcell.ColorGray)
	if v.Title != "" {
		r.drawText(2, hudY, " "+v.Title+" ", styleTitle)
	}

	for i, p := range v.Players {
		r.drawStatus(hudY+1+i, p)
	}

	start := max(len(v.Messages)-messageRows, 0)
	for i, msg := range v.Messages[start:] {
		r.drawText(0, hudY+1+len(v.Players)+i, msg, styleMessage)
	}
}

func (r *Renderer) drawStatus(y int, p *entity.Player) {
	x := r.drawText(0, y, p.Name, styleText.Foreground(ElementColor(p.Element)).Bold(true))
	x = r.drawText(x, y, " ["+p.Element.String()+"] ", styleDim)

	hp, maxHP := p.Health()
	bar := strings.Repeat("♥", hp) + strings.Repeat("♡", maxHP-hp)
	style := styleBad
	if p.Dead() {
		style = styleDim
	}
	x = r.drawText(x, y, bar, style)

	// Every held item, the selected one bracketed and named.
	x += 2
	cur := p.Inventory.Current()
	for _, it := range p.Inventory.Items() {
		label := ItemGlyph(it)
		if n := p.Inventory.Count(it); n > 1 {
			label += fmt.Sprintf("×%d", n)
		}
		style := styleDim
		if it == cur {
			label = "[" + label + " " + it.String() + "]"
			style = styleText
		}
		x = r.drawText(x, y, label, style) + 1
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawDialog renders the current page of d in a box above the HUD.
func (r *Renderer) drawDialog(d *dialog.Dialog, players int) {
	w, h := r.screen.Size()
	page := d.Page()
	inner := 0
	for _, line := range page {
		inner = max(inner, runewidth.StringWidth(line))
	}
	more := "▼"
	if d.Index() == d.Pages()-1 {
		more = "■"
	}
	boxW := min(inner+4, w)
	boxH := len(page) + 2
	x0 := max((w-boxW)/2, 0)
	y0 := max(h-hudRows(players)-boxH-1, 0)

	for y := y0; y < y0+boxH && y < h; y++ {
		for x := x0; x < x0+boxW; x++ {
			r.screen.SetContent(x, y, ' ', nil, styleDialog)
		}
	}
	for i, line := range page {
		r.drawText(x0+2, y0+1+i, line, styleDialog)
	}
	r.drawText(x0+boxW-2, y0+boxH-1, more, styleDialog)
}

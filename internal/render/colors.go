package render

import (
	"icoop/internal/entity"

	"github.com/gdamore/tcell/v2"
)

// Text styles shared by the HUD, the dialog box and the end screen.
var (
	styleBase    = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleText    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleMessage = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleGood    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBad     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleDialog  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
)

// ElementColor is the colour a player of element e is named in.
func ElementColor(e entity.Element) tcell.Color {
	switch e {
	case entity.ElementFire:
		return tcell.ColorOrangeRed
	case entity.ElementWater:
		return tcell.ColorDodgerBlue
	}
	return tcell.ColorWhite
}

// ItemGlyph returns the HUD glyph for it.
func ItemGlyph(it entity.Item) string {
	switch it {
	case entity.ItemSword:
		return "🗡️"
	case entity.ItemBomb:
		return "💣"
	case entity.ItemFireStaff:
		return "🪄"
	case entity.ItemWaterStaff:
		return "🔱"
	case entity.ItemOrb:
		return "🔮"
	case entity.ItemHeart:
		return "❤️"
	}
	return "·"
}

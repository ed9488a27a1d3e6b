package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/peco/selstore/config"
)

// StyleSet holds the tcell styles for each section of the picker
type StyleSet struct {
	Basic    tcell.Style
	Cursor   tcell.Style
	Selected tcell.Style
	Prompt   tcell.Style
	Status   tcell.Style
}

// NewStyleSet converts the configured styles into tcell styles.
func NewStyleSet(ss config.StyleSet) StyleSet {
	return StyleSet{
		Basic:    TcellStyle(ss.Basic),
		Cursor:   TcellStyle(ss.Cursor),
		Selected: TcellStyle(ss.Selected),
		Prompt:   TcellStyle(ss.Prompt),
		Status:   TcellStyle(ss.Status),
	}
}

// TcellStyle converts a configured Style into a tcell.Style.
func TcellStyle(s config.Style) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(tcellColor(s.Fg)).
		Background(tcellColor(s.Bg))

	if s.Fg.Has(config.AttrBold) || s.Bg.Has(config.AttrBold) {
		style = style.Bold(true)
	}
	if s.Fg.Has(config.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Fg.Has(config.AttrReverse) {
		style = style.Reverse(true)
	}
	return style
}

func tcellColor(a config.Attribute) tcell.Color {
	c := a.Color()
	switch {
	case c.Has(config.AttrTrueColor):
		return tcell.NewHexColor(int32(c &^ config.AttrTrueColor))
	case c == config.ColorDefault:
		return tcell.ColorDefault
	default:
		// palette colors are stored off by one so that 0 means default
		return tcell.PaletteColor(int(c) - 1)
	}
}

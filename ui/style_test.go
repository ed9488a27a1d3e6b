package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/peco/selstore/config"
	"github.com/stretchr/testify/require"
)

func TestTcellStyle(t *testing.T) {
	tests := []struct {
		name   string
		source []string
		expect tcell.Style
	}{
		{
			name:   "default",
			source: []string{"on_default", "default"},
			expect: tcell.StyleDefault.Foreground(tcell.ColorDefault).Background(tcell.ColorDefault),
		},
		{
			name:   "named colors",
			source: []string{"bold", "on_blue", "red"},
			expect: tcell.StyleDefault.Foreground(tcell.PaletteColor(1)).Background(tcell.PaletteColor(4)).Bold(true),
		},
		{
			name:   "underline and reverse",
			source: []string{"underline", "reverse", "on_cyan", "black"},
			expect: tcell.StyleDefault.Foreground(tcell.PaletteColor(0)).Background(tcell.PaletteColor(6)).Underline(true).Reverse(true),
		},
		{
			name:   "256 colors",
			source: []string{"214", "on_240"},
			expect: tcell.StyleDefault.Foreground(tcell.PaletteColor(214)).Background(tcell.PaletteColor(240)),
		},
		{
			name:   "true color",
			source: []string{"#ff8800", "on_#000000"},
			expect: tcell.StyleDefault.Foreground(tcell.NewHexColor(0xff8800)).Background(tcell.NewHexColor(0)),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var s config.Style
			require.NoError(t, config.StringsToStyle(&s, test.source))
			require.Equal(t, test.expect, TcellStyle(s))
		})
	}
}

func TestNewStyleSet(t *testing.T) {
	ss := NewStyleSet(*config.NewStyleSet())

	require.Equal(t, tcell.StyleDefault.Foreground(tcell.ColorDefault).Background(tcell.ColorDefault), ss.Basic)
	require.Equal(t, tcell.StyleDefault.Foreground(tcell.PaletteColor(0)).Background(tcell.PaletteColor(6)).Bold(true), ss.Selected)
	require.Equal(t, tcell.StyleDefault.Foreground(tcell.ColorDefault).Background(tcell.ColorDefault).Reverse(true), ss.Status)
}

package ui

import (
	"fmt"
	"strings"

	pdebug "github.com/lestrrat-go/pdebug"
	"github.com/mattn/go-runewidth"
	"github.com/peco/selstore/config"
)

// VerticalAnchor describes the direction to which elements in the
// layout are anchored to
type VerticalAnchor int

const (
	AnchorTop    VerticalAnchor = iota + 1 // AnchorTop anchors elements towards the top of the screen
	AnchorBottom                           // AnchorBottom anchors elements towards the bottom of the screen
)

// IsValidVerticalAnchor checks if the specified anchor is supported
func IsValidVerticalAnchor(anchor VerticalAnchor) bool {
	return anchor == AnchorTop || anchor == AnchorBottom
}

// Frame is everything a Layout needs to draw one screen.
type Frame struct {
	Prompt   string
	Labels   []string
	Selected []bool
	Cursor   int
	Multiple bool
}

func (f Frame) selectedLabels() []string {
	var labels []string
	for i, sel := range f.Selected {
		if sel && i < len(f.Labels) {
			labels = append(labels, f.Labels[i])
		}
	}
	return labels
}

// Layout controls where the prompt, the item list and the status bar
// are placed on screen
type Layout interface {
	DrawScreen(Frame)
	PageSize() int
}

// AnchorSettings groups items that are required to control
// where an anchored item is actually placed
type AnchorSettings struct {
	anchor       VerticalAnchor // AnchorTop or AnchorBottom
	anchorOffset int            // offset this many lines from the anchor
	screen       Screen
}

// NewAnchorSettings creates a new AnchorSetting struct. Panics if
// an unknown VerticalAnchor is sent
func NewAnchorSettings(screen Screen, anchor VerticalAnchor, offset int) *AnchorSettings {
	if !IsValidVerticalAnchor(anchor) {
		panic("Invalid vertical anchor specified")
	}

	return &AnchorSettings{
		anchor:       anchor,
		anchorOffset: offset,
		screen:       screen,
	}
}

// AnchorPosition returns the starting y-offset, based on the
// anchor type and offset
func (as AnchorSettings) AnchorPosition() int {
	switch as.anchor {
	case AnchorTop:
		return as.anchorOffset
	case AnchorBottom:
		_, h := as.screen.Size()
		return h - as.anchorOffset - 1 // y is 0 based, h is 1 based
	default:
		panic("Unknown anchor type!")
	}
}

// UserPrompt draws the prompt followed by a summary of the selection
type UserPrompt struct {
	*AnchorSettings
	styles *StyleSet
}

// NewUserPrompt creates a new UserPrompt struct
func NewUserPrompt(screen Screen, anchor VerticalAnchor, anchorOffset int, styles *StyleSet) *UserPrompt {
	return &UserPrompt{
		AnchorSettings: NewAnchorSettings(screen, anchor, anchorOffset),
		styles:         styles,
	}
}

// Draw draws the prompt line
func (u UserPrompt) Draw(f Frame) {
	y := u.AnchorPosition()
	prompt := f.Prompt
	if prompt == "" {
		prompt = config.DefaultPrompt
	}

	x := NewPrintCtx(u.screen).
		Y(y).
		Style(u.styles.Prompt).
		Msg(prompt).
		Print()

	NewPrintCtx(u.screen).
		X(x).
		Y(y).
		Style(u.styles.Basic).
		Msg(" " + strings.Join(f.selectedLabels(), ", ")).
		Fill(true).
		Print()
}

// StatusBar shows the cursor position and the selection count
type StatusBar struct {
	*AnchorSettings
	styles *StyleSet
}

// NewStatusBar creates a new StatusBar struct
func NewStatusBar(screen Screen, anchor VerticalAnchor, anchorOffset int, styles *StyleSet) *StatusBar {
	return &StatusBar{
		AnchorSettings: NewAnchorSettings(screen, anchor, anchorOffset),
		styles:         styles,
	}
}

// Draw draws the status line, right aligned
func (s StatusBar) Draw(f Frame) {
	y := s.AnchorPosition()
	w, _ := s.screen.Size()

	mode := "single"
	if f.Multiple {
		mode = "multi"
	}
	pos := 0
	if len(f.Labels) > 0 {
		pos = f.Cursor + 1
	}
	msg := fmt.Sprintf(" [%d/%d] %d selected (%s) ", pos, len(f.Labels), len(f.selectedLabels()), mode)

	x := w - runewidth.StringWidth(msg)
	if x < 0 {
		x = 0
	}
	NewPrintCtx(s.screen).
		Y(y).
		Style(s.styles.Basic).
		Msg(strings.Repeat(" ", x)).
		Print()
	NewPrintCtx(s.screen).
		X(x).
		Y(y).
		Style(s.styles.Status).
		Msg(msg).
		Fill(true).
		Print()
}

// ListArea represents the area where the items are displayed
type ListArea struct {
	*AnchorSettings
	sortTopDown bool
	styles      *StyleSet
	prefix      string
	offset      int // index of the first item on screen
}

// NewListArea creates a new ListArea struct
func NewListArea(screen Screen, anchor VerticalAnchor, anchorOffset int, sortTopDown bool, prefix string, styles *StyleSet) *ListArea {
	return &ListArea{
		AnchorSettings: NewAnchorSettings(screen, anchor, anchorOffset),
		sortTopDown:    sortTopDown,
		styles:         styles,
		prefix:         prefix,
	}
}

// Height returns the number of lines available for items. reserved is
// the number of lines taken by other components.
func (l *ListArea) Height(reserved int) int {
	_, h := l.screen.Size()
	if h -= reserved; h < 0 {
		return 0
	}
	return h
}

// scroll adjusts the offset so that the cursor stays visible
func (l *ListArea) scroll(cursor, perPage, total int) {
	if perPage <= 0 {
		l.offset = 0
		return
	}
	if cursor < l.offset {
		l.offset = cursor
	}
	if cursor >= l.offset+perPage {
		l.offset = cursor - perPage + 1
	}
	if maxOffset := total - perPage; l.offset > maxOffset {
		l.offset = maxOffset
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// Draw displays the items that fit in perPage lines
func (l *ListArea) Draw(f Frame, perPage int) {
	if pdebug.Enabled {
		g := pdebug.Marker("ListArea.Draw (cursor=%d, perPage=%d)", f.Cursor, perPage)
		defer g.End()
	}

	l.scroll(f.Cursor, perPage, len(f.Labels))

	blank := strings.Repeat(" ", runewidth.StringWidth(l.prefix))
	start := l.AnchorPosition()
	for n := 0; n < perPage; n++ {
		y := start + n
		if !l.sortTopDown {
			y = start - n
		}

		i := l.offset + n
		if i >= len(f.Labels) {
			NewPrintCtx(l.screen).
				Y(y).
				Style(l.styles.Basic).
				Fill(true).
				Print()
			continue
		}

		style := l.styles.Basic
		prefix := blank
		if i < len(f.Selected) && f.Selected[i] {
			style = l.styles.Selected
			prefix = l.prefix
		}
		if i == f.Cursor {
			style = l.styles.Cursor
		}

		x := NewPrintCtx(l.screen).
			Y(y).
			Style(style).
			Msg(prefix).
			Print()
		NewPrintCtx(l.screen).
			X(x).
			Y(y).
			Style(style).
			Msg(" " + f.Labels[i]).
			Fill(true).
			Print()
	}
}

// BasicLayout is the only layout: a prompt, the item list and a
// status bar. Only their positions vary.
type BasicLayout struct {
	screen Screen
	prompt *UserPrompt
	list   *ListArea
	status *StatusBar
}

// NewLayout creates the layout named by layoutType, falling back to
// top-down for unknown names.
func NewLayout(layoutType config.LayoutType, screen Screen, styles *StyleSet, prefix string) *BasicLayout {
	if layoutType == config.LayoutTypeBottomUp {
		return NewBottomUpLayout(screen, styles, prefix)
	}
	return NewDefaultLayout(screen, styles, prefix)
}

// NewDefaultLayout creates a new Layout in the default format (top-down)
func NewDefaultLayout(screen Screen, styles *StyleSet, prefix string) *BasicLayout {
	return &BasicLayout{
		screen: screen,
		prompt: NewUserPrompt(screen, AnchorTop, 0, styles),
		list:   NewListArea(screen, AnchorTop, 1, true, prefix, styles),
		status: NewStatusBar(screen, AnchorBottom, 0, styles),
	}
}

// NewBottomUpLayout creates a new Layout in bottom-up format. The
// first item is displayed right above the prompt.
func NewBottomUpLayout(screen Screen, styles *StyleSet, prefix string) *BasicLayout {
	return &BasicLayout{
		screen: screen,
		prompt: NewUserPrompt(screen, AnchorBottom, 1, styles),
		list:   NewListArea(screen, AnchorBottom, 2, false, prefix, styles),
		status: NewStatusBar(screen, AnchorBottom, 0, styles),
	}
}

// PageSize returns the number of items that fit on screen
func (l *BasicLayout) PageSize() int {
	return l.list.Height(2)
}

// DrawScreen draws every component and flushes the screen
func (l *BasicLayout) DrawScreen(f Frame) {
	if _, h := l.screen.Size(); h < 2 {
		return
	}

	l.prompt.Draw(f)
	l.list.Draw(f, l.PageSize())
	l.status.Draw(f)

	if err := l.screen.Flush(); err != nil && pdebug.Enabled {
		pdebug.Printf("BasicLayout.DrawScreen: flush failed: %s", err)
	}
}

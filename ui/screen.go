package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	pdebug "github.com/lestrrat-go/pdebug"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
)

// Screen is the terminal the picker draws on.
type Screen interface {
	Init() error
	Close() error
	Size() (int, int)
	SetCell(x, y int, ch rune, style tcell.Style)
	Flush() error
	PollEvent(context.Context) chan tcell.Event
}

// TcellScreen implements Screen on top of a tcell.Screen.
type TcellScreen struct {
	mutex     sync.Mutex
	screen    tcell.Screen
	errWriter io.Writer // destination for error output (defaults to os.Stderr)
}

// NewTcellScreen creates a TcellScreen. The terminal is not touched
// until Init is called.
func NewTcellScreen() *TcellScreen {
	return &TcellScreen{errWriter: os.Stderr}
}

// Init acquires the terminal.
func (t *TcellScreen) Init() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "failed to create tcell screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize tcell screen")
	}

	t.mutex.Lock()
	t.screen = screen
	t.mutex.Unlock()
	return nil
}

// Close releases the terminal. Pending PollEvent loops terminate.
func (t *TcellScreen) Close() error {
	if pdebug.Enabled {
		pdebug.Printf("TcellScreen: Close")
	}
	t.mutex.Lock()
	scr := t.screen
	t.screen = nil
	t.mutex.Unlock()

	if scr != nil {
		scr.Fini()
	}
	return nil
}

// Size returns the dimensions of the current terminal
func (t *TcellScreen) Size() (int, int) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.screen == nil {
		return 0, 0
	}
	return t.screen.Size()
}

// SetCell writes to the terminal
func (t *TcellScreen) SetCell(x, y int, ch rune, style tcell.Style) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.screen == nil {
		return
	}
	t.screen.SetContent(x, y, ch, nil, style)
}

// Flush makes everything drawn so far visible.
func (t *TcellScreen) Flush() error {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.screen == nil {
		return nil
	}
	t.screen.Show()
	return nil
}

// PollEvent returns a channel that you can listen to for terminal
// events. The actual polling is done in a separate goroutine, which
// exits when ctx is canceled or the screen is closed.
func (t *TcellScreen) PollEvent(ctx context.Context) chan tcell.Event {
	evCh := make(chan tcell.Event)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				fmt.Fprintf(t.errWriter, "selstore: panic in PollEvent goroutine: %v\n%s", r, debug.Stack())
			}
			close(evCh)
		}()

		for {
			t.mutex.Lock()
			scr := t.screen
			t.mutex.Unlock()

			if scr == nil {
				return
			}

			ev := scr.PollEvent()
			if ev == nil {
				return
			}

			select {
			case <-ctx.Done():
				return
			case evCh <- ev:
			}
		}
	}()
	return evCh
}

// PrintCtx accumulates the arguments of a single print operation.
type PrintCtx struct {
	screen Screen
	args   *printArgs
}

// NewPrintCtx starts a print operation against s.
func NewPrintCtx(s Screen) *PrintCtx {
	return &PrintCtx{
		screen: s,
		args:   getPrintArgs(),
	}
}

func (ctx *PrintCtx) X(v int) *PrintCtx {
	ctx.args.X = v
	return ctx
}

func (ctx *PrintCtx) Y(v int) *PrintCtx {
	ctx.args.Y = v
	return ctx
}

func (ctx *PrintCtx) Style(v tcell.Style) *PrintCtx {
	ctx.args.Style = v
	return ctx
}

func (ctx *PrintCtx) Msg(v string) *PrintCtx {
	ctx.args.Msg = v
	return ctx
}

// Fill pads the rest of the line with blanks in the current style.
func (ctx *PrintCtx) Fill(v bool) *PrintCtx {
	ctx.args.Fill = v
	return ctx
}

// Print writes the message and returns the number of columns used.
func (ctx *PrintCtx) Print() int {
	n := screenPrint(ctx.screen, ctx.args)
	releasePrintArgs(ctx.args)
	return n
}

type printArgs struct {
	X     int
	Y     int
	Style tcell.Style
	Msg   string
	Fill  bool
}

var printArgsPool = sync.Pool{
	New: func() any { return &printArgs{} },
}

func getPrintArgs() *printArgs {
	return printArgsPool.Get().(*printArgs)
}

func releasePrintArgs(args *printArgs) {
	*args = printArgs{}
	printArgsPool.Put(args)
}

// screenPrint writes args.Msg starting at (args.X, args.Y), clipping at
// the right edge of the screen. Wide runes advance by their width.
func screenPrint(t Screen, args *printArgs) int {
	width, _ := t.Size()
	x := args.X
	msg := args.Msg
	for len(msg) > 0 && x < width {
		c, n := utf8.DecodeRuneInString(msg)
		if c == utf8.RuneError {
			c = '?'
			n = 1
		}
		msg = msg[n:]

		if c == '\t' {
			// tabs are drawn as spaces up to the next multiple of 4
			next := x + 4 - x%4
			for ; x < next && x < width; x++ {
				t.SetCell(x, args.Y, ' ', args.Style)
			}
			continue
		}

		w := runewidth.RuneWidth(c)
		if w == 0 {
			continue
		}
		if x+w > width {
			break
		}
		t.SetCell(x, args.Y, c, args.Style)
		x += w
	}

	if args.Fill {
		for ; x < width; x++ {
			t.SetCell(x, args.Y, ' ', args.Style)
		}
	}
	return x - args.X
}

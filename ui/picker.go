// Package ui implements an interactive terminal picker driven by a
// selstore.Store.
package ui

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"
	pdebug "github.com/lestrrat-go/pdebug"
	"github.com/peco/selstore"
	"github.com/peco/selstore/config"
	"github.com/pkg/errors"
)

var (
	// ErrCanceled is returned by Run when the user dismisses the picker
	ErrCanceled = errors.New("selection canceled")
	// ErrScreenClosed is returned by Run when the screen stops
	// delivering events
	ErrScreenClosed = errors.New("screen closed")
)

type pickerConfig struct {
	prompt string
	prefix string
	layout config.LayoutType
	styles config.StyleSet
	keymap Keymap
}

// PickerOption configures a Picker
type PickerOption func(*pickerConfig)

// WithPrompt sets the text shown in front of the selection summary
func WithPrompt(s string) PickerOption {
	return func(c *pickerConfig) { c.prompt = s }
}

// WithSelectionPrefix sets the marker drawn in front of selected items
func WithSelectionPrefix(s string) PickerOption {
	return func(c *pickerConfig) { c.prefix = s }
}

// WithLayout selects the top-down or bottom-up layout
func WithLayout(l config.LayoutType) PickerOption {
	return func(c *pickerConfig) { c.layout = l }
}

// WithStyles sets the colors of each section
func WithStyles(ss config.StyleSet) PickerOption {
	return func(c *pickerConfig) { c.styles = ss }
}

// WithKeymap replaces the default key bindings
func WithKeymap(km Keymap) PickerOption {
	return func(c *pickerConfig) { c.keymap = km }
}

// Picker lets the user move a cursor over the items of a store and
// change its selection from the keyboard. Every change goes through
// the store, and the screen is redrawn from the store's notifications.
type Picker[T any] struct {
	store  *selstore.Store[T]
	screen Screen
	label  func(T) string
	keymap Keymap
	layout Layout
	prompt string

	mutex  sync.Mutex
	state  selstore.State[T]
	cursor int
}

// NewPicker creates a picker for store. label renders one item.
func NewPicker[T any](store *selstore.Store[T], screen Screen, label func(T) string, options ...PickerOption) *Picker[T] {
	cfg := pickerConfig{
		prompt: config.DefaultPrompt,
		prefix: config.DefaultSelectionPrefix,
		layout: config.DefaultLayoutType,
		styles: *config.NewStyleSet(),
		keymap: DefaultKeymap(),
	}
	for _, o := range options {
		o(&cfg)
	}

	styles := NewStyleSet(cfg.styles)
	p := &Picker[T]{
		store:  store,
		screen: screen,
		label:  label,
		keymap: cfg.keymap,
		layout: NewLayout(cfg.layout, screen, &styles, cfg.prefix),
		prompt: cfg.prompt,
		state:  store.Get(),
	}
	if sel := p.state.Selected; len(sel) > 0 {
		p.cursor = sel[0]
	}
	return p
}

// Cursor returns the index of the item under the cursor
func (p *Picker[T]) Cursor() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.cursor
}

func (p *Picker[T]) setState(st selstore.State[T]) {
	p.mutex.Lock()
	p.state = st
	p.cursor = clamp(p.cursor, len(st.Items))
	p.mutex.Unlock()
}

func (p *Picker[T]) moveCursor(fn func(cursor, size, page int) int) {
	page := p.layout.PageSize()
	p.mutex.Lock()
	p.cursor = clamp(fn(p.cursor, len(p.state.Items), page), len(p.state.Items))
	p.mutex.Unlock()
}

func clamp(cursor, size int) int {
	if cursor >= size {
		cursor = size - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

// Draw renders the current state of the store
func (p *Picker[T]) Draw() {
	p.mutex.Lock()
	f := Frame{
		Prompt:   p.prompt,
		Labels:   make([]string, len(p.state.Items)),
		Selected: make([]bool, len(p.state.Items)),
		Cursor:   p.cursor,
		Multiple: p.store.Multiple(),
	}
	for i, item := range p.state.Items {
		f.Labels[i] = p.label(item)
	}
	for _, i := range p.state.Selected {
		if i >= 0 && i < len(f.Selected) {
			f.Selected[i] = true
		}
	}
	p.mutex.Unlock()

	p.layout.DrawScreen(f)
}

// Handle performs a single action. It reports whether the picker is
// done; a canceled picker is done with ErrCanceled.
func (p *Picker[T]) Handle(a Action) (bool, error) {
	if pdebug.Enabled {
		g := pdebug.Marker("Picker.Handle %s", a)
		defer g.End()
	}

	switch a {
	case ActionUp:
		p.moveCursor(func(c, _, _ int) int { return c - 1 })
	case ActionDown:
		p.moveCursor(func(c, _, _ int) int { return c + 1 })
	case ActionPageUp:
		p.moveCursor(func(c, _, page int) int { return c - max(page, 1) })
	case ActionPageDown:
		p.moveCursor(func(c, _, page int) int { return c + max(page, 1) })
	case ActionTop:
		p.moveCursor(func(_, _, _ int) int { return 0 })
	case ActionBottom:
		p.moveCursor(func(_, size, _ int) int { return size - 1 })
	case ActionToggle:
		if p.store.Len() == 0 {
			return false, nil
		}
		cursor := p.Cursor()
		if p.store.IsSelected(cursor) {
			p.store.UnselectIndex(cursor)
		} else {
			// single select replaces, multi select extends
			p.store.SelectIndex(!p.store.Multiple(), cursor)
		}
	case ActionSelectAll:
		if !p.store.Multiple() {
			return false, nil
		}
		all := make([]int, p.store.Len())
		for i := range all {
			all[i] = i
		}
		p.store.SelectIndex(true, all...)
	case ActionClear:
		p.store.UnselectAll()
	case ActionAccept:
		if len(p.store.Get().Selected) == 0 && p.store.Len() > 0 {
			p.store.SelectIndex(true, p.Cursor())
		}
		return true, nil
	case ActionCancel:
		return true, ErrCanceled
	default:
		return false, nil
	}

	p.setState(p.store.Get())
	p.Draw()
	return false, nil
}

// Run draws the picker and processes terminal events until the user
// accepts or cancels, or ctx is canceled. The screen must already be
// initialized. The returned state is the store's state at that point.
func (p *Picker[T]) Run(ctx context.Context) (selstore.State[T], error) {
	if pdebug.Enabled {
		g := pdebug.Marker("Picker.Run")
		defer g.End()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	unsubscribe := p.store.Subscribe(func(st selstore.State[T]) {
		p.setState(st)
		p.Draw()
	})
	defer unsubscribe()

	evCh := p.screen.PollEvent(ctx)
	for {
		select {
		case <-ctx.Done():
			return p.store.Get(), ctx.Err()
		case ev, ok := <-evCh:
			if !ok {
				return p.store.Get(), ErrScreenClosed
			}

			switch ev := ev.(type) {
			case *tcell.EventKey:
				a, ok := p.keymap.Lookup(KeyFromEvent(ev))
				if !ok {
					continue
				}
				done, err := p.Handle(a)
				if done {
					return p.store.Get(), err
				}
			case *tcell.EventResize:
				p.Draw()
			}
		}
	}
}

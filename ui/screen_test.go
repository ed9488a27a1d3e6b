package ui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

// newSimScreen creates a TcellScreen backed by a SimulationScreen
func newSimScreen(t *testing.T, width, height int) (*TcellScreen, tcell.SimulationScreen) {
	t.Helper()

	sim := tcell.NewSimulationScreen("")
	require.NoError(t, sim.Init())
	sim.SetSize(width, height)

	ts := &TcellScreen{screen: sim, errWriter: io.Discard}
	t.Cleanup(func() { ts.Close() })
	return ts, sim
}

// row returns the text on line y, with trailing blanks removed
func row(sim tcell.SimulationScreen, y int) string {
	w, _ := sim.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		str, _, _ := sim.Get(x, y)
		sb.WriteString(str)
	}
	return strings.TrimRight(sb.String(), " ")
}

// panickingScreen wraps a tcell.Screen and panics on PollEvent.
type panickingScreen struct {
	tcell.Screen
}

func (s *panickingScreen) PollEvent() tcell.Event {
	panic("test: deliberate panic in PollEvent")
}

func TestTcellScreenPollEventLogsPanic(t *testing.T) {
	var buf bytes.Buffer
	ts := NewTcellScreen()
	ts.errWriter = &buf

	sim := tcell.NewSimulationScreen("")
	require.NoError(t, sim.Init())
	ts.screen = &panickingScreen{Screen: sim}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh := ts.PollEvent(ctx)

	select {
	case _, ok := <-evCh:
		require.False(t, ok, "expected channel to be closed after panic")
	case <-time.After(2 * time.Second):
		t.Fatal("PollEvent channel was not closed after panic")
	}

	output := buf.String()
	require.Contains(t, output, "selstore: panic in PollEvent goroutine")
	require.Contains(t, output, "test: deliberate panic in PollEvent")

	require.NoError(t, ts.Close())
}

func TestTcellScreenClosed(t *testing.T) {
	ts := NewTcellScreen()

	w, h := ts.Size()
	require.Equal(t, 0, w)
	require.Equal(t, 0, h)

	// drawing on a screen that was never initialized is a no-op
	ts.SetCell(0, 0, 'x', tcell.StyleDefault)
	require.NoError(t, ts.Flush())

	evCh := ts.PollEvent(context.Background())
	select {
	case _, ok := <-evCh:
		require.False(t, ok, "expected channel to be closed")
	case <-time.After(2 * time.Second):
		t.Fatal("PollEvent channel was not closed")
	}
	require.NoError(t, ts.Close())
}

func TestTcellScreenSetCell(t *testing.T) {
	ts, sim := newSimScreen(t, 10, 3)

	w, h := ts.Size()
	require.Equal(t, 10, w)
	require.Equal(t, 3, h)

	ts.SetCell(2, 1, 'A', tcell.StyleDefault)
	require.NoError(t, ts.Flush())

	str, _, _ := sim.Get(2, 1)
	require.Equal(t, "A", str)
}

func TestPrintCtx(t *testing.T) {
	ts, sim := newSimScreen(t, 10, 4)

	n := NewPrintCtx(ts).X(1).Y(0).Msg("hello").Print()
	require.Equal(t, 5, n)

	// clipped at the right edge
	n = NewPrintCtx(ts).Y(1).Msg("0123456789abc").Print()
	require.Equal(t, 10, n)

	// tabs expand to the next multiple of 4
	n = NewPrintCtx(ts).Y(2).Msg("a\tb").Print()
	require.Equal(t, 5, n)

	// wide runes take two columns
	n = NewPrintCtx(ts).Y(3).Msg("日本").Print()
	require.Equal(t, 4, n)
	require.NoError(t, ts.Flush())

	require.Equal(t, " hello", row(sim, 0))
	require.Equal(t, "0123456789", row(sim, 1))
	require.Equal(t, "a   b", row(sim, 2))

	str, _, _ := sim.Get(2, 3)
	require.Equal(t, "本", str)

	style := tcell.StyleDefault.Reverse(true)
	n = NewPrintCtx(ts).X(3).Y(0).Style(style).Msg("x").Fill(true).Print()
	require.Equal(t, 7, n)
	require.NoError(t, ts.Flush())

	require.Equal(t, " hex", row(sim, 0))
	_, got, _ := sim.Get(9, 0)
	require.Equal(t, style, got, "filled cells use the print style")
}

package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

func TestKeymap(t *testing.T) {
	km := DefaultKeymap()

	tests := []struct {
		ev     *tcell.EventKey
		action Action
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionUp},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), ActionDown},
		{tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), ActionDown},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionToggle},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionAccept},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionCancel},
	}
	for _, test := range tests {
		a, ok := km.Lookup(KeyFromEvent(test.ev))
		require.True(t, ok, "%s should be bound", test.action)
		require.Equal(t, test.action, a)
	}

	_, ok := km.Lookup(KeyFromEvent(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)))
	require.False(t, ok, "unbound keys are not found")
}

func TestActionString(t *testing.T) {
	require.Equal(t, "Toggle", ActionToggle.String())
	require.Equal(t, "Unknown", Action(999).String())
}

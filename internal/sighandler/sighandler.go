// Package sighandler turns process signals into callbacks.
package sighandler

import (
	"context"
	"os"
	"os/signal"
)

type Handler struct {
	EndFunc            func()               // Called once when Loop() exits
	SignalReceivedFunc func(os.Signal) bool // Called each time when signal is received
	sigCh              chan os.Signal
	signals            []os.Signal
}

func New(signals ...os.Signal) *Handler {
	return &Handler{
		sigCh:   make(chan os.Signal, len(signals)+1),
		signals: signals,
	}
}

func (s *Handler) runEndFunc() {
	if f := s.EndFunc; f != nil {
		f()
	}
}

func (s *Handler) runSignalReceivedFunc(sig os.Signal) bool {
	if f := s.SignalReceivedFunc; f != nil {
		return f(sig)
	}
	return false
}

// Loop loops until ctx is canceled, or when a signal is received and
// SignalReceivedFunc returns false. Signals are only routed to the
// handler while Loop is running.
func (s *Handler) Loop(ctx context.Context) {
	defer s.runEndFunc()

	if len(s.signals) > 0 {
		signal.Notify(s.sigCh, s.signals...)
		defer signal.Stop(s.sigCh)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case sig := <-s.sigCh:
			if !s.runSignalReceivedFunc(sig) {
				return
			}
		}
	}
}

package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/navstack/internal/logging"
	"golang.org/x/term"
)

// SignalContext is a context cancelled on SIGINT or SIGTERM that remembers
// which signal cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()

	mu     sync.Mutex
	sigVal os.Signal
}

// NewSignalContext starts listening for termination signals.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{Context: ctx, Cancel: cancel}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigCh)
		select {
		case sig := <-sigCh:
			sc.mu.Lock()
			sc.sigVal = sig
			sc.mu.Unlock()
			cancel()
		case <-ctx.Done():
		}
	}()
	return sc
}

// Signal returns the signal that cancelled the context, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// NewLogger builds the CLI logger for a level name. Unknown names fall back
// to info with a warning.
func NewLogger(level string) *slog.Logger {
	lvl, err := logging.ParseLevel(level)
	logger := logging.New(lvl)
	if err != nil {
		logger.Warn("invalid log level, using info", "err", err)
	}
	return logger
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

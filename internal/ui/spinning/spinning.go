// Package spinning provides a friendly spinning symbol to show while an AI player is thinking,
// and a handler for interruptions that restores the terminal.
package spinning

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"k8s.io/klog/v2"
)

// Spinning is a running spinner, stop it with Done.
type Spinning struct {
	wg     sync.WaitGroup
	cancel func()
}

var (
	ThemeAscii = []rune(`|/-\`)
	ThemeMoon  = []rune("🌑🌒🌓🌔🌕🌖🌗🌘")
	ThemeDots  = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")

	// Theme defaults to ThemeDots, but it can be set to anything else before calling New.
	Theme = ThemeDots

	// Period between symbol changes.
	Period = 200 * time.Millisecond
)

// SafeInterrupt will capture SigInt (Ctrl+C) and SigTerm and call the provided onInterrupt.
// If the program haven't exited after gracePeriod, it will call Reset to reset the terminal
// and exit.
func SafeInterrupt(onInterrupt func(), gracePeriod time.Duration) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigChan
		fmt.Println()
		klog.Errorf("Got interrupted (signal %q), shutting down... (%s)", s, gracePeriod)
		if onInterrupt != nil {
			go onInterrupt()
		}
		time.Sleep(gracePeriod)
		Reset()
		klog.Fatalf("Graceful shutting down %s period expired, exiting.", gracePeriod)
	}()
}

// Reset terminal: make cursor visible, restore default terminal colors.
func Reset() {
	fmt.Print("\033[?25h\033[39;49;0m\n")
}

// New starts a spinning display on the standard output, that runs on a separate goroutine.
// It stops when Spinning.Done is called or ctx is done.
func New(ctx context.Context) *Spinning {
	return NewWithWriter(ctx, os.Stdout)
}

// NewWithWriter is like New, but it writes the spinner to w.
func NewWithWriter(ctx context.Context, w io.Writer) *Spinning {
	s := &Spinning{}
	ctx, s.cancel = context.WithCancel(ctx)
	theme := Theme
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(Period)
		defer ticker.Stop()
		// Hide the cursor while spinning, and on exit erase the symbol and restore it.
		_, _ = fmt.Fprint(w, "\033[?25l")
		defer fmt.Fprint(w, "\033[?25h\b \b")

		_, _ = fmt.Fprintf(w, "%c", theme[0])
		for idx := 1; ; idx = (idx + 1) % len(theme) {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			_, _ = fmt.Fprintf(w, "\b%c", theme[idx])
		}
	}()
	return s
}

// Done stops the spinner and waits for it to clean up. It can be called more than once.
func (s *Spinning) Done() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.wg.Wait()
}

// Package sigbridge records OS signals so that they can be acted on
// from the UI thread.
package sigbridge

import (
	"context"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/sirupsen/logrus"
)

// Signals are the signals that a Bridge listens for.
var Signals = []os.Signal{
	syscall.SIGUSR1,
	syscall.SIGUSR2,
	syscall.SIGTERM,
	syscall.SIGINT,
}

// Target is what a Bridge applies signals to.
type Target interface {
	ToggleLayer()
	Request(n int)
	Destroy()
}

// Bridge counts signals as they arrive. The zero value is ready to
// use. Handle may be called from any goroutine, but Apply should only
// be called from the one that owns the Target.
type Bridge struct {
	toggles atomic.Int32
	spawns  atomic.Int32
	quit    atomic.Bool
}

// Handle records sig. Signals not in Signals are ignored.
func (b *Bridge) Handle(sig os.Signal) {
	switch sig {
	case syscall.SIGUSR1:
		b.toggles.Add(1)
	case syscall.SIGUSR2:
		b.spawns.Add(1)
	case syscall.SIGTERM, syscall.SIGINT:
		b.quit.Store(true)
	default:
		return
	}

	logrus.WithField("signal", sig).Debug("received signal")
}

// Start begins listening for signals. They are recorded until ctx is
// canceled or stop is called.
func (b *Bridge) Start(ctx context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)

	c := make(chan os.Signal, 8)
	signal.Notify(c, Signals...)

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer signal.Stop(c)

		for {
			select {
			case <-ctx.Done():
				return
			case sig := <-c:
				b.Handle(sig)
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}

// Apply hands every signal recorded since the last call to t. It
// returns true if t was destroyed.
func (b *Bridge) Apply(t Target) bool {
	if b.quit.Load() {
		logrus.Info("terminating")
		t.Destroy()
		return true
	}

	for range b.toggles.Swap(0) {
		t.ToggleLayer()
	}
	if n := b.spawns.Swap(0); n > 0 {
		t.Request(int(n))
	}
	return false
}

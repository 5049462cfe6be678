package sigbridge

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"
)

type target struct {
	toggles   int
	requested int
	destroyed int
}

func (t *target) ToggleLayer()  { t.toggles++ }
func (t *target) Request(n int) { t.requested += n }
func (t *target) Destroy()      { t.destroyed++ }

func TestApply(t *testing.T) {
	var b Bridge
	var tg target

	if b.Apply(&tg) {
		t.Fatal("Apply reported destruction without a signal")
	}
	if tg != (target{}) {
		t.Fatalf("Apply without signals changed target: %+v", tg)
	}

	b.Handle(syscall.SIGUSR1)
	b.Handle(syscall.SIGUSR1)
	b.Handle(syscall.SIGUSR2)
	b.Handle(syscall.SIGUSR2)
	b.Handle(syscall.SIGUSR2)
	b.Handle(syscall.SIGHUP)

	if b.Apply(&tg) {
		t.Fatal("Apply reported destruction without a quit signal")
	}
	if (tg.toggles != 2) || (tg.requested != 3) || (tg.destroyed != 0) {
		t.Fatalf("Wrong result after signals: %+v", tg)
	}

	b.Apply(&tg)
	if (tg.toggles != 2) || (tg.requested != 3) {
		t.Fatalf("Signals were applied twice: %+v", tg)
	}
}

func TestApplyQuit(t *testing.T) {
	for _, sig := range []os.Signal{syscall.SIGTERM, syscall.SIGINT} {
		var b Bridge
		var tg target

		b.Handle(syscall.SIGUSR2)
		b.Handle(sig)
		if !b.Apply(&tg) {
			t.Errorf("%v did not destroy the target", sig)
		}
		if (tg.destroyed != 1) || (tg.requested != 0) {
			t.Errorf("Wrong result after %v: %+v", sig, tg)
		}
	}
}

func TestStart(t *testing.T) {
	var b Bridge
	stop := b.Start(context.Background())
	defer stop()

	err := syscall.Kill(os.Getpid(), syscall.SIGUSR2)
	if err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for b.spawns.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("Signal was never received")
		}
		time.Sleep(10 * time.Millisecond)
	}

	var tg target
	b.Apply(&tg)
	if tg.requested != 1 {
		t.Errorf("Requested %v notes", tg.requested)
	}
}

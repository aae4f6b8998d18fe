package console

import (
	"context"
	"os"
	"time"

	"golang.org/x/term"
)

// Sleeper waits for a duration or until the context is done.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration)
}

type RealSleeper struct{}

func (RealSleeper) Sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// Pauser blocks until the user acknowledges a screen.
type Pauser interface {
	Pause(ctx context.Context) error
}

// KeyPauser reads one key press in raw mode. Without a terminal it falls back
// to a fixed delay and reports ErrInputUnavailable.
type KeyPauser struct {
	in    *os.File
	delay time.Duration
	sleep Sleeper
}

func NewKeyPauser(in *os.File, delay time.Duration, sleep Sleeper) *KeyPauser {
	if sleep == nil {
		sleep = RealSleeper{}
	}
	return &KeyPauser{in: in, delay: delay, sleep: sleep}
}

func (p *KeyPauser) Pause(ctx context.Context) error {
	if p.in == nil {
		p.sleep.Sleep(ctx, p.delay)
		return ErrInputUnavailable
	}

	fd := int(p.in.Fd())
	if !term.IsTerminal(fd) {
		p.sleep.Sleep(ctx, p.delay)
		return ErrInputUnavailable
	}

	old, err := term.MakeRaw(fd)
	if err != nil {
		p.sleep.Sleep(ctx, p.delay)
		return ErrInputUnavailable
	}
	defer func() { _ = term.Restore(fd, old) }()

	var b [1]byte
	if _, err := p.in.Read(b[:]); err != nil {
		return ErrInputUnavailable
	}
	return nil
}

// NopPauser returns immediately.
type NopPauser struct{}

func (NopPauser) Pause(ctx context.Context) error { return nil }

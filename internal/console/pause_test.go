package console

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSleeper struct{ waits []time.Duration }

func (s *fakeSleeper) Sleep(ctx context.Context, d time.Duration) { s.waits = append(s.waits, d) }

func TestKeyPauser_NoTerminalFallsBackToDelay(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	sl := &fakeSleeper{}
	p := NewKeyPauser(r, time.Second, sl)

	err = p.Pause(context.Background())
	assert.ErrorIs(t, err, ErrInputUnavailable)
	assert.Equal(t, []time.Duration{time.Second}, sl.waits)
}

func TestKeyPauser_NilInput(t *testing.T) {
	sl := &fakeSleeper{}
	p := NewKeyPauser(nil, 250*time.Millisecond, sl)

	assert.ErrorIs(t, p.Pause(context.Background()), ErrInputUnavailable)
	assert.Equal(t, []time.Duration{250 * time.Millisecond}, sl.waits)
}

func TestRealSleeper_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	RealSleeper{}.Sleep(ctx, time.Hour)
	assert.Less(t, time.Since(start), time.Second)
}

func TestLineReader(t *testing.T) {
	ctx := context.Background()
	lr := NewLineReader(strings.NewReader("  1  \r\nMandrill\nlast"))

	line, err := lr.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", line)

	line, err = lr.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Mandrill", line)

	line, err = lr.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = lr.ReadLine(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "welcome", StateWelcome.String())
	assert.Equal(t, "find_by_name", StateActionFindByName.String())
	assert.Equal(t, "exit", StateExit.String())
}

func TestOptionDefs(t *testing.T) {
	opts := optionDefs()
	require.Len(t, opts, 5)

	o, ok := lookupOption(opts, "5")
	require.True(t, ok)
	assert.Equal(t, StateExit, o.Next)

	_, ok = lookupOption(opts, "6")
	assert.False(t, ok)
}

package store

import (
	"context"
	"testing"
	"time"

	"github.com/faideww/monkey-menu/internal/monkey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := OpenSQLite(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestSQLiteStore_TopPicked(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	for _, name := range []string{"Mandrill", "Howler Monkey", "Mandrill", "Spider Monkey", "Howler Monkey", "Mandrill"} {
		require.NoError(t, st.Add(ctx, monkey.Pick{Species: name}))
	}

	top, err := st.TopPicked(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []monkey.PickCount{
		{Species: "Mandrill", Count: 3},
		{Species: "Howler Monkey", Count: 2},
	}, top)

	n, err := st.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestSQLiteStore_TiesGoToFirstPicked(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	for _, name := range []string{"Spider Monkey", "Mandrill", "Mandrill", "Spider Monkey"} {
		require.NoError(t, st.Add(ctx, monkey.Pick{Species: name, PickedAt: time.Unix(1700000000, 0)}))
	}

	top, err := st.TopPicked(ctx, 0)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Spider Monkey", top[0].Species)
	assert.Equal(t, "Mandrill", top[1].Species)
}

func TestSQLiteStore_EmptyJournal(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	top, err := st.TopPicked(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, top)

	n, err := st.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSQLiteStore_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	a := openTestStore(t)
	b := openTestStore(t)
	require.NotEqual(t, a.SessionId(), b.SessionId())

	require.NoError(t, a.Add(ctx, monkey.Pick{Species: "Mandrill"}))

	n, err := b.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSQLiteStore_RejectsEmptySpecies(t *testing.T) {
	st := openTestStore(t)
	assert.Error(t, st.Add(context.Background(), monkey.Pick{}))
}

func TestSQLiteStore_NilStore(t *testing.T) {
	var st *SQLiteStore
	assert.Error(t, st.Add(context.Background(), monkey.Pick{Species: "Mandrill"}))
	_, err := st.TopPicked(context.Background(), 3)
	assert.Error(t, err)
}

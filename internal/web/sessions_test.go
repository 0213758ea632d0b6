package web

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/bookshelf/internal/ui"
)

func TestSessionStore_Acquire(t *testing.T) {
	t.Parallel()

	created := 0
	store := NewSessionStore(time.Minute, func() *ui.App {
		created++

		return ui.NewApp(nil, nil)
	})

	app, id, isNew := store.Acquire("")
	require.True(t, isNew)
	require.NotEmpty(t, id)

	again, sameID, isNew := store.Acquire(id)
	assert.False(t, isNew)
	assert.Equal(t, id, sameID)
	assert.Same(t, app, again)

	_, otherID, isNew := store.Acquire("forged")
	assert.True(t, isNew)
	assert.NotEqual(t, "forged", otherID)

	assert.Equal(t, 2, created)
	assert.Equal(t, 2, store.Len())
}

func TestSessionStore_ExpiresIdleSessions(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	store := NewSessionStore(10*time.Minute, func() *ui.App { return ui.NewApp(nil, nil) })
	store.now = func() time.Time { return now }

	_, id, _ := store.Acquire("")

	now = now.Add(9 * time.Minute)
	_, _, isNew := store.Acquire(id)
	assert.False(t, isNew)

	now = now.Add(11 * time.Minute)
	_, newID, isNew := store.Acquire(id)
	assert.True(t, isNew)
	assert.NotEqual(t, id, newID)
	assert.Equal(t, 1, store.Len())
}

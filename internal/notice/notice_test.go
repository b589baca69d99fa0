package notice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_OrderAndLevels(t *testing.T) {
	b := New()

	b.Info("loading sounds")
	errID := b.Error("Failed to play sound: no device")
	b.Mascot("Time for a break!")

	active := b.Active()
	require.Len(t, active, 3)
	assert.Equal(t, "loading sounds", active[0].Text)
	assert.Equal(t, LevelError, active[1].Level)
	assert.Equal(t, errID, active[1].ID)
	assert.Equal(t, LevelMascot, active[2].Level)

	latest, ok := b.Latest()
	require.True(t, ok)
	assert.Equal(t, "Time for a break!", latest.Text)

	latestErr, ok := b.Latest(LevelError)
	require.True(t, ok)
	assert.Equal(t, errID, latestErr.ID)

	_, ok = b.Latest(LevelSuccess)
	assert.False(t, ok)
}

func TestBoard_Expiry(t *testing.T) {
	b := New()

	b.Add(LevelInfo, "short", 30*time.Millisecond)
	b.Add(LevelInfo, "long", time.Minute)

	assert.Eventually(t, func() bool {
		active := b.Active()
		return len(active) == 1 && active[0].Text == "long"
	}, time.Second, 10*time.Millisecond)
}

func TestBoard_DismissAndClear(t *testing.T) {
	b := New()

	id := b.Success("Profile saved")
	b.Info("other")

	b.Dismiss(id)
	active := b.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "other", active[0].Text)

	b.Clear()
	assert.Empty(t, b.Active())
}

func TestBoard_DefaultTTL(t *testing.T) {
	b := New()
	before := time.Now()

	b.Add(LevelInfo, "x", 0)

	n, ok := b.Latest()
	require.True(t, ok)
	assert.WithinDuration(t, before.Add(InfoTTL), n.Expires, time.Second)
}

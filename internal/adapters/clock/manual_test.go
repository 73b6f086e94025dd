package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManual_AdvanceFiresDueTimers(t *testing.T) {
	start := time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC)
	c := NewManual(start)

	var fired []string
	c.AfterFunc(2*time.Second, func() { fired = append(fired, "late") })
	c.AfterFunc(time.Second, func() { fired = append(fired, "early") })

	c.Advance(500 * time.Millisecond)
	assert.Empty(t, fired)
	assert.Equal(t, 2, c.PendingTimers())

	c.Advance(2 * time.Second)
	assert.Equal(t, []string{"early", "late"}, fired)
	assert.Equal(t, start.Add(2500*time.Millisecond), c.Now())
	assert.Equal(t, 0, c.PendingTimers())
}

func TestManual_StoppedTimerDoesNotFire(t *testing.T) {
	c := NewManual(time.Now())
	called := false
	timer := c.AfterFunc(time.Second, func() { called = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	c.Advance(time.Minute)
	assert.False(t, called)
}

func TestManual_TickDeliversToNewestTicker(t *testing.T) {
	c := NewManual(time.Now())
	old := c.NewTicker(time.Second)
	old.Stop()
	current := c.NewTicker(time.Second)

	received := make(chan time.Time, 1)
	go func() { received <- <-current.C() }()

	require.True(t, c.Tick())
	select {
	case <-received:
	case <-time.After(time.Second):
		t.Fatal("tick not delivered")
	}

	current.Stop()
	assert.False(t, c.Tick())
}

func TestManual_TickWithoutTickers(t *testing.T) {
	assert.False(t, NewManual(time.Now()).Tick())
}

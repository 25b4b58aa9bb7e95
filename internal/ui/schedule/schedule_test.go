package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVirtualFiresInDeadlineOrder(t *testing.T) {
	clock := NewVirtual()
	var order []string
	clock.AfterFunc(200*time.Millisecond, func() { order = append(order, "b") })
	clock.AfterFunc(100*time.Millisecond, func() { order = append(order, "a") })
	clock.AfterFunc(200*time.Millisecond, func() { order = append(order, "c") })

	clock.Advance(150 * time.Millisecond)
	assert.Equal(t, []string{"a"}, order)
	assert.Equal(t, 2, clock.Pending())

	clock.Advance(50 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 200*time.Millisecond, clock.Now())
}

func TestVirtualStop(t *testing.T) {
	clock := NewVirtual()
	fired := false
	timer := clock.AfterFunc(time.Second, func() { fired = true })

	require.True(t, timer.Stop())
	assert.False(t, timer.Stop(), "second stop reports nothing pending")

	clock.Advance(2 * time.Second)
	assert.False(t, fired)
	assert.Zero(t, clock.Pending())
}

func TestVirtualChainedCallbacks(t *testing.T) {
	clock := NewVirtual()
	var at []time.Duration
	clock.AfterFunc(100*time.Millisecond, func() {
		at = append(at, clock.Now())
		clock.AfterFunc(100*time.Millisecond, func() {
			at = append(at, clock.Now())
		})
	})

	clock.Advance(250 * time.Millisecond)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, at)

	t.Run("stopping a fired timer reports false", func(t *testing.T) {
		timer := clock.AfterFunc(0, func() {})
		clock.Advance(0)
		assert.False(t, timer.Stop())
	})
}


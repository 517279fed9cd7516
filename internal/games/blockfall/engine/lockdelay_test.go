package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLockDelaySequence(t *testing.T) {
	l := NewLockDelay(time.Second)

	steps := []struct {
		canFall  bool
		dt       time.Duration
		expected LockPhase
		elapsed  time.Duration
	}{
		{false, 300 * time.Millisecond, LockRunning, 0},
		{false, 400 * time.Millisecond, LockRunning, 400 * time.Millisecond},
		{false, 500 * time.Millisecond, LockRunning, 900 * time.Millisecond},
		{false, 200 * time.Millisecond, LockFired, 0},
		{true, 200 * time.Millisecond, LockAbsent, 0},
	}

	for i, s := range steps {
		got := l.Update(s.canFall, s.dt)
		assert.Equal(t, s.expected, got, "step %d phase", i)
		assert.Equal(t, s.elapsed, l.Elapsed(), "step %d elapsed", i)
	}
}

func TestLockDelayCancelledByFalling(t *testing.T) {
	l := NewLockDelay(time.Second)

	l.Update(false, 0)
	l.Update(false, 800*time.Millisecond)
	assert.Equal(t, LockRunning, l.Phase())
	assert.Equal(t, 200*time.Millisecond, l.Remaining())
	assert.Equal(t, time.Second, l.Threshold())

	assert.Equal(t, LockAbsent, l.Update(true, 100*time.Millisecond))
	assert.Equal(t, LockAbsent, l.Phase())
	assert.Zero(t, l.Remaining())

	// A new countdown starts from scratch.
	assert.Equal(t, LockRunning, l.Update(false, 900*time.Millisecond))
	assert.Zero(t, l.Elapsed())
}

func TestLockDelayFiresOnce(t *testing.T) {
	l := NewLockDelay(100 * time.Millisecond)

	l.Update(false, 0)
	assert.Equal(t, LockFired, l.Update(false, time.Second))
	assert.Equal(t, LockRunning, l.Update(false, time.Second), "fired timer restarts idle")
}

func TestLockDelayZeroThreshold(t *testing.T) {
	l := NewLockDelay(0)

	assert.Equal(t, LockRunning, l.Update(false, 0))
	assert.Equal(t, LockFired, l.Update(false, 0))
}

func TestLockDelayNegativeThreshold(t *testing.T) {
	assert.Panics(t, func() { NewLockDelay(-time.Millisecond) })
}

func TestLockPhaseString(t *testing.T) {
	assert.Equal(t, "absent", LockAbsent.String())
	assert.Equal(t, "running", LockRunning.String())
	assert.Equal(t, "fired", LockFired.String())
}

package engine

import (
	"fmt"
	"time"
)

// LockPhase is the observable state of the lock-delay timer.
type LockPhase int

const (
	// LockAbsent: the piece has room below, or there is no piece.
	LockAbsent LockPhase = iota
	// LockRunning: the piece rests on something and the countdown is on.
	LockRunning
	// LockFired: the countdown ran out this update; the piece must be placed.
	LockFired
)

// String returns a lowercase name for logs.
func (p LockPhase) String() string {
	switch p {
	case LockRunning:
		return "running"
	case LockFired:
		return "fired"
	default:
		return "absent"
	}
}

// LockDelay is the grace period a resting piece gets before it locks.
// It only exists while the piece cannot fall; any tick on which the piece
// can fall again cancels it.
type LockDelay struct {
	threshold time.Duration
	elapsed   time.Duration
	running   bool
}

// NewLockDelay creates an idle timer with the given threshold.
func NewLockDelay(threshold time.Duration) LockDelay {
	if threshold < 0 {
		panic(fmt.Sprintf("engine: negative lock delay %v", threshold))
	}
	return LockDelay{threshold: threshold}
}

// Update advances the machine for one tick. canFall is whether the piece can
// move down after this tick's intents and gravity; dt is the tick's duration.
// The tick that starts the countdown does not count toward it. LockFired is
// returned exactly once, after which the timer is idle again.
func (l *LockDelay) Update(canFall bool, dt time.Duration) LockPhase {
	if canFall {
		l.Reset()
		return LockAbsent
	}
	if !l.running {
		l.running = true
		l.elapsed = 0
		return LockRunning
	}

	l.elapsed += dt
	if l.elapsed >= l.threshold {
		l.Reset()
		return LockFired
	}
	return LockRunning
}

// Phase returns LockRunning while counting down, LockAbsent otherwise.
func (l *LockDelay) Phase() LockPhase {
	if l.running {
		return LockRunning
	}
	return LockAbsent
}

// Elapsed returns the accumulated resting time.
func (l *LockDelay) Elapsed() time.Duration {
	return l.elapsed
}

// Remaining returns the time left before the timer fires; zero when idle.
func (l *LockDelay) Remaining() time.Duration {
	if !l.running {
		return 0
	}
	return max(l.threshold-l.elapsed, 0)
}

// Threshold returns the configured delay.
func (l *LockDelay) Threshold() time.Duration {
	return l.threshold
}

// Reset cancels a running countdown.
func (l *LockDelay) Reset() {
	l.running = false
	l.elapsed = 0
}

package tetris

import (
	"context"
	"time"
)

// LoopStats provides statistics about loop execution.
type LoopStats struct {
	TickCount     int64
	IntentCount   int64
	MinDuration   time.Duration
	MaxDuration   time.Duration
	AvgDuration   time.Duration
	LastDuration  time.Duration
	TotalDuration time.Duration
}

// Loop is a frame-paced driver for a session: callers queue intents as they
// arrive and the loop dispatches them ahead of each tick, recording per-tick
// timing. Like the session itself it assumes a single caller; it exists so
// headless drivers (tools, tests) share one tick discipline instead of each
// re-inventing it.
type Loop struct {
	session *Session
	intents []Intent

	tickCount     int64
	intentCount   int64
	minDuration   time.Duration
	maxDuration   time.Duration
	lastDuration  time.Duration
	totalDuration time.Duration
}

// NewLoop creates a loop driving the given session.
func NewLoop(session *Session) *Loop {
	return &Loop{
		session:     session,
		minDuration: time.Duration(1<<63 - 1),
	}
}

// Session returns the driven session.
func (l *Loop) Session() *Session {
	return l.session
}

// Enqueue queues an intent for dispatch at the start of the next tick.
func (l *Loop) Enqueue(intent Intent) {
	l.intents = append(l.intents, intent)
}

// Once dispatches all queued intents in arrival order, then advances the
// session by dt seconds.
func (l *Loop) Once(dt float64) {
	start := time.Now()

	for _, intent := range l.intents {
		l.session.Apply(intent)
		l.intentCount++
	}
	l.intents = l.intents[:0]

	l.session.Tick(dt)

	duration := time.Since(start)
	l.tickCount++
	l.lastDuration = duration
	l.totalDuration += duration

	if duration < l.minDuration {
		l.minDuration = duration
	}
	if duration > l.maxDuration {
		l.maxDuration = duration
	}
}

// Run ticks the session at the given interval until the context is cancelled
// or the session reaches game over.
func (l *Loop) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			l.Once(dt)

			if l.session.Snapshot().GameOver {
				return
			}
		}
	}
}

// Stats returns statistics about tick execution.
func (l *Loop) Stats() LoopStats {
	avg := time.Duration(0)
	if l.tickCount > 0 {
		avg = l.totalDuration / time.Duration(l.tickCount)
	}

	return LoopStats{
		TickCount:     l.tickCount,
		IntentCount:   l.intentCount,
		MinDuration:   l.minDuration,
		MaxDuration:   l.maxDuration,
		AvgDuration:   avg,
		LastDuration:  l.lastDuration,
		TotalDuration: l.totalDuration,
	}
}

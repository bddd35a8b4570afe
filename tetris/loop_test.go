package tetris_test

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/gridfall/tetris"
	"github.com/stretchr/testify/assert"
)

func newTestLoop() *tetris.Loop {
	return tetris.NewLoop(tetris.NewSessionFrom(rand.NewPCG(3, 4)))
}

func TestLoopOnceDispatchesQueuedIntents(t *testing.T) {
	loop := newTestLoop()
	before := loop.Session().Snapshot().ActiveCells

	loop.Enqueue(tetris.MoveLeft)
	loop.Enqueue(tetris.MoveLeft)
	loop.Once(0)

	after := loop.Session().Snapshot().ActiveCells
	for i := range before {
		assert.Equal(t, before[i].Col-2, after[i].Col)
		assert.Equal(t, before[i].Row, after[i].Row)
	}

	stats := loop.Stats()
	assert.Equal(t, int64(1), stats.TickCount)
	assert.Equal(t, int64(2), stats.IntentCount)

	// The queue drains; a second tick dispatches nothing new.
	loop.Once(0)
	assert.Equal(t, int64(2), loop.Stats().IntentCount)
}

func TestLoopPlaysToGameOver(t *testing.T) {
	loop := newTestLoop()

	// Hard-dropping forever must fill the board within the number of
	// pieces it can hold.
	for range 80 {
		loop.Enqueue(tetris.HardDrop)
		loop.Once(0)
		if loop.Session().Snapshot().GameOver {
			break
		}
	}

	assert.True(t, loop.Session().Snapshot().GameOver)
	assert.GreaterOrEqual(t, loop.Stats().TickCount, int64(5))
}

func TestLoopRunStopsOnContextCancel(t *testing.T) {
	loop := newTestLoop()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan bool)
	go func() {
		loop.Run(ctx, time.Millisecond)
		done <- true
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("loop did not stop after context cancellation")
	}

	if loop.Stats().TickCount == 0 {
		t.Error("expected the loop to tick at least once")
	}
}

func TestLoopRunStopsOnGameOver(t *testing.T) {
	loop := newTestLoop()

	// Finish the game synchronously, then Run should return after a
	// single tick of the dead session.
	for range 80 {
		loop.Enqueue(tetris.HardDrop)
		loop.Once(0)
		if loop.Session().Snapshot().GameOver {
			break
		}
	}
	assert.True(t, loop.Session().Snapshot().GameOver)

	done := make(chan bool)
	go func() {
		loop.Run(context.Background(), time.Millisecond)
		done <- true
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop after game over")
	}
}

func TestLoopStats(t *testing.T) {
	loop := newTestLoop()

	loop.Once(0.1)
	loop.Once(0.1)
	loop.Once(0.1)

	stats := loop.Stats()
	assert.Equal(t, int64(3), stats.TickCount)
	assert.GreaterOrEqual(t, stats.MaxDuration, stats.MinDuration)
	assert.GreaterOrEqual(t, stats.TotalDuration, stats.LastDuration)
	assert.Equal(t, stats.TotalDuration/3, stats.AvgDuration)
}

package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/gridfall/tetris"
)

// Ticks per game before a session is abandoned as stuck. Generously above
// anything a random bot needs to lose.
const maxTicksPerGame = 2_000_000

var botIntents = []tetris.Intent{
	tetris.MoveLeft,
	tetris.MoveRight,
	tetris.RotateCW,
	tetris.SoftDrop,
}

func main() {
	games := flag.Int("games", 20, "The number of sessions to play to completion.")
	dt := flag.Float64("dt", 1.0/60.0, "The fixed time step per tick, in seconds.")
	seed := flag.Uint64("seed", 1, "Seed for the piece sequence and the bot; the run is reproducible.")
	memMetrics := flag.Bool("mem-metrics", false, "Enable detailed GC metrics in the report.")
	flag.Parse()

	log.Println("Starting simulation...")

	report := &Report{
		Games:      *games,
		Dt:         *dt,
		Seed:       *seed,
		MemMetrics: *memMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

	bot := rand.New(rand.NewPCG(*seed, ^*seed))

	for i := 0; i < *games; i++ {
		result := playGame(rand.NewPCG(*seed, uint64(i)), bot, *dt)
		report.Record(result)
	}

	report.TotalTime = time.Since(startTime)
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// GameResult summarizes one finished session.
type GameResult struct {
	Score int
	Lines int
	Level int
	Stats tetris.LoopStats
}

// playGame drives a session with random intents until game over. Roughly
// one intent is queued per tick, hard drops rarely, so sessions end in a
// bounded number of ticks without degenerating into a pure drop race.
func playGame(src rand.Source, bot *rand.Rand, dt float64) GameResult {
	loop := tetris.NewLoop(tetris.NewSessionFrom(src))

	for tick := 0; tick < maxTicksPerGame; tick++ {
		switch bot.IntN(10) {
		case 0:
			loop.Enqueue(tetris.HardDrop)
		case 1, 2, 3:
			loop.Enqueue(botIntents[bot.IntN(len(botIntents))])
		}

		loop.Once(dt)

		snap := loop.Session().Snapshot()
		if snap.GameOver {
			return GameResult{
				Score: snap.Score,
				Lines: snap.Lines,
				Level: snap.Level,
				Stats: loop.Stats(),
			}
		}
	}

	snap := loop.Session().Snapshot()
	log.Printf("game did not finish within %d ticks", maxTicksPerGame)
	return GameResult{Score: snap.Score, Lines: snap.Lines, Level: snap.Level, Stats: loop.Stats()}
}

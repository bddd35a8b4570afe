package main

import (
	"io"
	"runtime"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Games int
	Dt    float64
	Seed  uint64

	// Results
	TotalTime   time.Duration
	TotalScore  int
	BestScore   int
	TotalLines  int
	BestLines   int
	MaxLevel    int
	TotalTicks  int64
	TotalIntent int64
	TickTime    Stats

	MemMetrics    bool
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
	total time.Duration
	count int64
}

// Record folds one finished game into the aggregates.
func (r *Report) Record(result GameResult) {
	r.TotalScore += result.Score
	r.BestScore = max(r.BestScore, result.Score)
	r.TotalLines += result.Lines
	r.BestLines = max(r.BestLines, result.Lines)
	r.MaxLevel = max(r.MaxLevel, result.Level)
	r.TotalTicks += result.Stats.TickCount
	r.TotalIntent += result.Stats.IntentCount

	stats := &r.TickTime
	if stats.count == 0 || result.Stats.MinDuration < stats.Min {
		stats.Min = result.Stats.MinDuration
	}
	if result.Stats.MaxDuration > stats.Max {
		stats.Max = result.Stats.MaxDuration
	}
	stats.total += result.Stats.TotalDuration
	stats.count += result.Stats.TickCount
	if stats.count > 0 {
		stats.Avg = stats.total / time.Duration(stats.count)
	}
}

// AvgScore returns the mean final score across games.
func (r *Report) AvgScore() int {
	if r.Games == 0 {
		return 0
	}
	return r.TotalScore / r.Games
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Simulation Report

## Configuration
- **Games:** {{.Games}}
- **Time Step:** {{.Dt}}s
- **Seed:** {{.Seed}}

## Results
- **Total Test Time:** {{.TotalTime}}
- **Score:** total {{.TotalScore}}, avg {{.AvgScore}}, best {{.BestScore}}
- **Lines:** total {{.TotalLines}}, best {{.BestLines}}
- **Max Level Reached:** {{.MaxLevel}}
- **Ticks:** {{.TotalTicks}} ({{.TotalIntent}} intents dispatched)
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .MemMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}

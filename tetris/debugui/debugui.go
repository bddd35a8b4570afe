// Package debugui provides a Dear ImGui inspector overlay for a running game
// session, rendered through the Ebiten backend. It is a read-only consumer
// of session snapshots and never mutates game state.
package debugui

import (
	"fmt"
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/gridfall/tetris"
)

// Overlay wraps the Ebiten-specific Dear ImGui backend together with the
// session inspector window. Use BeginFrame/EndFrame around the game update
// and Draw/Layout from the Ebiten game loop, as with the raw backend.
type Overlay struct {
	*ebitenbackend.EbitenBackend

	historyFrames int
	frameHistory  []float32
	frameIndex    int
	timer         *FrameTimer
}

// NewOverlay creates an overlay with a fresh ImGui backend and a frame-time
// history of the given length.
func NewOverlay(historyFrames int) *Overlay {
	return &Overlay{
		EbitenBackend: ebitenbackend.NewEbitenBackend(),
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		timer:         NewFrameTimer(),
	}
}

// RenderSession draws the inspector window for the given snapshot. Call it
// between BeginFrame and EndFrame.
func (o *Overlay) RenderSession(snap tetris.Snapshot) {
	if !imgui.BeginV("Session Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	o.frameHistory[o.frameIndex] = o.timer.GetDeltaTime() * 1000.0
	o.frameIndex = (o.frameIndex + 1) % o.historyFrames

	state := "playing"
	switch {
	case snap.GameOver:
		state = "game over"
	case snap.Paused:
		state = "paused"
	}

	imgui.Text(fmt.Sprintf("State: %s", state))
	imgui.Text(fmt.Sprintf("Score: %d", snap.Score))
	imgui.Text(fmt.Sprintf("Level: %d  Lines: %d", snap.Level, snap.Lines))
	imgui.Text(fmt.Sprintf("Next: %s", snap.NextKind))

	var avgFrameTime float32
	for _, ft := range o.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(o.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &o.frameHistory[0], int32(len(o.frameHistory)))

	if imgui.TreeNodeStr("Row Occupancy") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("RowOccupancyTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Row")
			imgui.TableSetupColumn("Locked Cells")
			imgui.TableHeadersRow()

			for row, cells := range snap.Grid {
				count := 0
				for _, color := range cells {
					if color != (tetris.Color{}) {
						count++
					}
				}
				if count == 0 {
					continue
				}

				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", row))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d / %d", count, tetris.Cols))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Active Piece") {
		for _, cell := range snap.ActiveCells {
			imgui.BulletText(fmt.Sprintf("(%d, %d)", cell.Col, cell.Row))
		}
		imgui.TreePop()
	}

	imgui.End()
}

// FrameTimer measures wall-clock deltas for the frame-time graph.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}

package tetris

import (
	"math/rand/v2"
)

// Gravity timing. The fall interval starts at the base and shrinks per
// level down to a hard floor.
const (
	baseFallInterval = 0.8
	fallIntervalStep = 0.07
	minFallInterval  = 0.05

	linesPerLevel = 10

	spawnX = Cols/2 - 2
	spawnY = -1
)

// Horizontal offsets tried, in order, when a rotation is blocked in place.
var kickOffsets = []int{-1, 1, -2, 2}

// Score awarded per number of rows cleared in a single lock.
var lineScores = map[int]int{1: 100, 2: 300, 3: 500, 4: 800}

func lineScore(cleared int) int {
	if score, ok := lineScores[cleared]; ok {
		return score
	}
	// A single piece spans at most 4 rows, so this fallback is
	// unreachable under normal play.
	return cleared * 200
}

// Session orchestrates a single game: it advances time-based gravity,
// consumes intents, owns the score/level/lines counters and sequences piece
// spawning. It assumes a single caller and a single goroutine; all timing is
// advanced explicitly through Tick's dt argument, so a session is fully
// deterministic given a seeded source.
type Session struct {
	board   *Board
	current *Piece
	next    *Piece
	rng     *rand.Rand

	score       int
	level       int
	linesTotal  int
	fallElapsed float64
	paused      bool
	gameOver    bool
}

// NewSession creates a session with a randomly seeded piece sequence.
func NewSession() *Session {
	return NewSessionFrom(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewSessionFrom creates a session drawing its piece sequence from the given
// source. Two sessions with equal sources and equal Tick/Apply call sequences
// evolve identically.
func NewSessionFrom(src rand.Source) *Session {
	s := &Session{
		board: NewBoard(),
		rng:   rand.New(src),
		level: 1,
	}
	s.current = s.spawnPiece()
	s.next = s.spawnPiece()
	return s
}

func (s *Session) spawnPiece() *Piece {
	kind := ShapeKind(s.rng.IntN(ShapeKindCount))
	return NewPiece(kind, spawnX, spawnY)
}

func (s *Session) fallInterval() float64 {
	return max(minFallInterval, baseFallInterval-float64(s.level-1)*fallIntervalStep)
}

// Tick advances the session by dt seconds of real time. When the fall
// accumulator reaches the level's fall interval the current piece descends
// one row; a blocked descent triggers the lock sequence. Paused and
// game-over sessions ignore time entirely. Negative dt is clamped to zero.
func (s *Session) Tick(dt float64) {
	if s.paused || s.gameOver {
		return
	}
	if dt < 0 {
		dt = 0
	}

	s.fallElapsed += dt
	if s.fallElapsed < s.fallInterval() {
		return
	}
	s.fallElapsed = 0

	s.current.Translate(0, 1)
	if !s.board.IsValidPlacement(s.current) {
		s.current.Translate(0, -1)
		s.lockCurrent()
	}
}

// Apply processes a single intent. Movement and rotation are validated
// against the board and reverted when invalid. While paused only TogglePause
// is honored; after game over every intent is a no-op.
func (s *Session) Apply(intent Intent) {
	if s.gameOver {
		return
	}
	if intent == TogglePause {
		s.paused = !s.paused
		return
	}
	if s.paused {
		return
	}

	switch intent {
	case MoveLeft:
		s.tryTranslate(-1, 0)
	case MoveRight:
		s.tryTranslate(1, 0)
	case SoftDrop:
		// A blocked soft drop just bumps against the stack; only the
		// gravity-driven descent in Tick commits a lock.
		s.tryTranslate(0, 1)
	case RotateCW:
		s.tryRotate(1)
	case HardDrop:
		for s.tryTranslate(0, 1) {
		}
		s.lockCurrent()
	}
}

func (s *Session) tryTranslate(dx, dy int) bool {
	s.current.Translate(dx, dy)
	if s.board.IsValidPlacement(s.current) {
		return true
	}
	s.current.Translate(-dx, -dy)
	return false
}

// tryRotate rotates the current piece, walking the wall-kick offsets when
// the rotated orientation is blocked in place. The first offset that yields
// a valid placement wins; if none does the rotation is reverted entirely.
func (s *Session) tryRotate(dir int) {
	s.current.Rotate(dir)
	if s.board.IsValidPlacement(s.current) {
		return
	}

	for _, dx := range kickOffsets {
		s.current.Translate(dx, 0)
		if s.board.IsValidPlacement(s.current) {
			return
		}
		s.current.Translate(-dx, 0)
	}

	s.current.Rotate(-dir)
}

// lockCurrent runs the lock sequence: commit the current piece, clear rows,
// update score and level, promote the next piece and check that it can
// spawn. A piece with any cell still above the visible board ends the game
// immediately and its cells are discarded.
func (s *Session) lockCurrent() {
	for _, cell := range s.current.Cells() {
		if cell.Row < 0 {
			s.gameOver = true
			return
		}
	}

	s.board.Lock(s.current)

	cleared := s.board.ClearFullRows()
	if cleared > 0 {
		s.linesTotal += cleared
		s.score += lineScore(cleared)
	}
	s.level = s.linesTotal/linesPerLevel + 1

	if s.board.IsLost() {
		s.gameOver = true
		return
	}

	s.current = s.next
	s.next = s.spawnPiece()
	if !s.board.IsValidPlacement(s.current) {
		s.gameOver = true
	}
}

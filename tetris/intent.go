package tetris

// Intent is a discrete player input, dispatched by an external input
// collaborator. Intents are pre-validated by construction; the session
// decides whether each one takes effect.
type Intent int

const (
	MoveLeft Intent = iota
	MoveRight
	RotateCW
	SoftDrop
	HardDrop
	TogglePause
)

func (i Intent) String() string {
	switch i {
	case MoveLeft:
		return "move-left"
	case MoveRight:
		return "move-right"
	case RotateCW:
		return "rotate-cw"
	case SoftDrop:
		return "soft-drop"
	case HardDrop:
		return "hard-drop"
	case TogglePause:
		return "toggle-pause"
	}
	return "unknown"
}

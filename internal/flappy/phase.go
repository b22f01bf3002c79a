package flappy

// Phase is the coarse state of a game session.
type Phase int

const (
	// PhaseAwaitingStart is the state after construction. Nothing moves.
	PhaseAwaitingStart Phase = iota
	// PhaseActive runs physics and collision every tick.
	PhaseActive
	// PhaseEnded is frozen after a loss until the next trigger.
	PhaseEnded
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingStart:
		return "awaiting-start"
	case PhaseActive:
		return "active"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// EndCause tells why an active session ended.
type EndCause int

const (
	CauseNone EndCause = iota
	CauseGround
	CauseCollision
)

// String returns a human-readable name for the cause.
func (c EndCause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseGround:
		return "ground"
	case CauseCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// event is an input to the phase state machine.
type event int

const (
	eventTrigger event = iota // The main action fired
	eventLoss                 // A terminal condition was detected during a tick
)

// effect is the side effect the game applies alongside a transition.
type effect int

const (
	effectNone  effect = iota
	effectReset        // Re-initialize body and obstacles
	effectJump         // Overwrite vertical velocity with the jump push
)

// transition is the whole phase table. Every phase change goes through here.
//
//	awaiting-start --trigger--> active (reset)
//	active         --trigger--> active (jump)
//	ended          --trigger--> active (reset)
//	active         --loss-----> ended
func transition(from Phase, ev event) (Phase, effect) {
	switch ev {
	case eventTrigger:
		if from == PhaseActive {
			return PhaseActive, effectJump
		}
		return PhaseActive, effectReset
	case eventLoss:
		if from == PhaseActive {
			return PhaseEnded, effectNone
		}
	}
	return from, effectNone
}

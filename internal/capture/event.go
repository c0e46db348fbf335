package capture

import (
	"errors"
	"image"
)

// SessionID identifies one capture session. Ids increase monotonically; zero
// means "no session".
type SessionID uint64

// State is the capture surface state.
type State int32

const (
	StateIdle State = iota
	StateCapturing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCapturing:
		return "capturing"
	default:
		return "unknown"
	}
}

// EventKind distinguishes the notifications a surface emits.
type EventKind int

const (
	// EventStarted announces a new session. It precedes every other event of
	// that session on the channel.
	EventStarted EventKind = iota + 1
	// EventHover reports the color under the cursor. Non-terminal.
	EventHover
	// EventCommit reports the picked color. Terminal.
	EventCommit
	// EventCancelled reports that the session ended without a pick. Terminal.
	EventCancelled
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventHover:
		return "hover"
	case EventCommit:
		return "commit"
	case EventCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// CancelReason explains why a session was cancelled.
type CancelReason string

const (
	ReasonStop   CancelReason = "stop"   // explicit Stop request
	ReasonEscape CancelReason = "escape" // cancel key on the overlay
	ReasonAbort  CancelReason = "abort"  // emergency stop
)

// Event is a notification from the capture surface to the control surface.
type Event struct {
	Kind    EventKind       `json:"kind"`
	Session SessionID       `json:"session"`
	Hex     string          `json:"hex,omitempty"`    // hover and commit
	Point   image.Point     `json:"point"`            // hover, commit, last cursor on cancel
	Bounds  image.Rectangle `json:"bounds"`           // started
	Reason  CancelReason    `json:"reason,omitempty"` // cancelled
}

// Terminal reports whether the event ends its session.
func (e Event) Terminal() bool {
	return e.Kind == EventCommit || e.Kind == EventCancelled
}

// Button is a pointer button, numbered like DOM MouseEvent.button.
type Button int

const (
	ButtonPrimary   Button = 0
	ButtonMiddle    Button = 1
	ButtonSecondary Button = 2
)

// Key is a key name as reported by the overlay.
type Key string

// KeyEscape cancels the session.
const KeyEscape Key = "Escape"

var (
	// ErrNotCapturing is returned by requests that need an active session.
	ErrNotCapturing = errors.New("capture surface is idle")

	// ErrStaleSession is returned when a request names a session that has ended.
	ErrStaleSession = errors.New("stale capture session")

	// ErrClosed is returned once the surface's Run loop has exited.
	ErrClosed = errors.New("capture surface closed")
)

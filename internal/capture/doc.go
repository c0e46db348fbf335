// Package capture implements the screen-color capture surface.
//
// A capture session freezes one screenshot (a Frame) and lets a pointer
// roam over it. Every pointer move samples the pixel under the cursor and
// emits a hover event; a primary click commits that pixel and ends the
// session; Escape, Stop or Abort cancel it.
//
// # State Machine
//
//	Idle --Start--> Capturing --Click--> (Committed) --> Idle
//	                Capturing --Stop/Escape/Abort--> (Cancelled) --> Idle
//	                Capturing --Start--> Capturing (fresh frame, new session)
//
// Stop while Idle is a no-op. Sampling always reads the frame captured when
// the session started, so hover and commit agree even if the screen changes.
//
// # Message Passing
//
// A Surface is driven by its own goroutine (Run). Every input is a typed
// command on one FIFO channel, and every output is an Event on one FIFO
// channel (Events). Start, Stop and Magnify are request/response; pointer
// and key input is fire-and-forget. Abort is the emergency stop: it can be
// called from any goroutine at any time and is handled before queued
// commands.
//
// Each session has a SessionID drawn from a generation counter. Inputs that
// carry a stale id are dropped, and consumers use the id on events to ignore
// anything that belongs to a session they no longer track. At most one
// terminal event (commit or cancelled) is emitted per session.
//
// # Frame Sources
//
// A Grabber supplies the frame: ScreenGrabber captures a display,
// FileGrabber decodes a screenshot file written by another tool (optionally
// through an ImageCache), and GrabberFunc adapts anything else.
//
// # Coordinate System
//
// Pointer coordinates are frame pixels: (0,0) is the top-left corner, X
// increases rightward, Y increases downward. Out-of-bounds pointer input is
// ignored rather than reported.
package capture

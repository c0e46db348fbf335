package capture

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"sync/atomic"
)

// Overlay is the on-screen layer that shows the frozen frame while a session
// is active. Implementations must not call back into the Surface.
type Overlay interface {
	// Show displays frame for session. An error aborts the session start.
	Show(session SessionID, frame *Frame) error

	// Hide removes the overlay for session.
	Hide(session SessionID)
}

type noopOverlay struct{}

func (noopOverlay) Show(SessionID, *Frame) error { return nil }
func (noopOverlay) Hide(SessionID)               {}

// DefaultEventBuffer is the event and command channel capacity used when
// Options.EventBuffer is zero.
const DefaultEventBuffer = 64

// Options configures a Surface.
type Options struct {
	// Grabber acquires frames. Required.
	Grabber Grabber

	// Overlay shows and hides the frozen frame. Optional.
	Overlay Overlay

	// Magnifier configures Magnify. Zero value means DefaultMagnifier.
	Magnifier MagnifierOptions

	// EventBuffer is the capacity of the event and command channels.
	EventBuffer int

	// Logger receives debug output about dropped input. Optional.
	Logger *slog.Logger
}

// Surface is the capture surface controller.
//
// All session state is owned by the Run goroutine. The exported methods only
// post commands to it, so they are safe to call from any goroutine.
type Surface struct {
	grabber   Grabber
	overlay   Overlay
	magnifier MagnifierOptions
	log       *slog.Logger

	cmds   chan command
	abort  chan struct{}
	events chan Event
	done   chan struct{}
	state  atomic.Int32

	// Owned by Run.
	frame       *Frame
	session     SessionID
	lastSession SessionID
	cursor      image.Point
}

// New creates a Surface. Call Run to start processing.
func New(opts Options) *Surface {
	if opts.Overlay == nil {
		opts.Overlay = noopOverlay{}
	}
	if opts.Magnifier == (MagnifierOptions{}) {
		opts.Magnifier = DefaultMagnifier
	}
	if opts.EventBuffer <= 0 {
		opts.EventBuffer = DefaultEventBuffer
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Surface{
		grabber:   opts.Grabber,
		overlay:   opts.Overlay,
		magnifier: opts.Magnifier,
		log:       opts.Logger.With("component", "capture"),
		cmds:      make(chan command, opts.EventBuffer),
		abort:     make(chan struct{}, 1),
		events:    make(chan Event, opts.EventBuffer),
		done:      make(chan struct{}),
	}
}

// Events returns the event channel. It is closed when Run returns.
func (s *Surface) Events() <-chan Event {
	return s.events
}

// State returns the current state. It may lag the Run loop by one command.
func (s *Surface) State() State {
	return State(s.state.Load())
}

type command interface{}

type startCmd struct {
	ctx   context.Context
	reply chan startResult
}

type startResult struct {
	session SessionID
	err     error
}

type stopCmd struct {
	reply chan struct{}
}

type moveCmd struct {
	session SessionID
	pt      image.Point
}

type clickCmd struct {
	session SessionID
	pt      image.Point
	button  Button
}

type keyCmd struct {
	session SessionID
	key     Key
}

type magnifyCmd struct {
	session SessionID
	pt      image.Point
	reply   chan magnifyResult
}

type magnifyResult struct {
	m   *Magnification
	err error
}

// Run processes commands until ctx is done. An active session is ended
// (overlay hidden) on the way out, and the event channel is closed.
func (s *Surface) Run(ctx context.Context) {
	defer close(s.events)
	defer close(s.done)

	for {
		// Abort takes priority over anything already queued.
		select {
		case <-s.abort:
			s.cancel(ctx, ReasonAbort)
			continue
		default:
		}

		select {
		case <-ctx.Done():
			if s.frame != nil {
				s.end()
			}
			return
		case <-s.abort:
			s.cancel(ctx, ReasonAbort)
		case cmd := <-s.cmds:
			// An abort that raced with this command still goes first.
			select {
			case <-s.abort:
				s.cancel(ctx, ReasonAbort)
			default:
			}
			s.handle(ctx, cmd)
		}
	}
}

// Start begins a session, or restarts the current one with a fresh frame.
//
// A restart retires the previous session without a cancelled event. If the
// frame cannot be acquired the error is returned, the overlay is not shown
// again, and a running session carries on. If the overlay cannot be shown
// the surface is left Idle; a session retired by that restart is reported
// cancelled with ReasonStop.
func (s *Surface) Start(ctx context.Context) (SessionID, error) {
	reply := make(chan startResult, 1)
	if err := s.post(ctx, startCmd{ctx: ctx, reply: reply}); err != nil {
		return 0, err
	}
	select {
	case r := <-reply:
		return r.session, r.err
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// Stop cancels the active session. It is a no-op while Idle.
func (s *Surface) Stop(ctx context.Context) error {
	reply := make(chan struct{})
	if err := s.post(ctx, stopCmd{reply: reply}); err != nil {
		return err
	}
	select {
	case <-reply:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// PointerMove reports the cursor position for session.
func (s *Surface) PointerMove(session SessionID, x, y int) {
	s.send(moveCmd{session: session, pt: image.Pt(x, y)})
}

// Click reports a pointer button press for session.
func (s *Surface) Click(session SessionID, x, y int, button Button) {
	s.send(clickCmd{session: session, pt: image.Pt(x, y), button: button})
}

// Key reports a key press on the overlay for session.
func (s *Surface) Key(session SessionID, key Key) {
	s.send(keyCmd{session: session, key: key})
}

// Magnify renders the loupe for a cursor at (x, y) in session.
func (s *Surface) Magnify(ctx context.Context, session SessionID, x, y int) (*Magnification, error) {
	reply := make(chan magnifyResult, 1)
	if err := s.post(ctx, magnifyCmd{session: session, pt: image.Pt(x, y), reply: reply}); err != nil {
		return nil, err
	}
	select {
	case r := <-reply:
		return r.m, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Abort is the emergency stop. It never blocks and may be called from any
// goroutine, including signal handlers. The active session, if any, is
// cancelled before any queued command is processed.
func (s *Surface) Abort() {
	select {
	case s.abort <- struct{}{}:
	default:
	}
}

func (s *Surface) post(ctx context.Context, cmd command) error {
	select {
	case <-s.done:
		return ErrClosed
	default:
	}
	select {
	case s.cmds <- cmd:
		return nil
	case <-s.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Surface) send(cmd command) {
	if err := s.post(context.Background(), cmd); err != nil {
		s.log.Debug("input dropped", "error", err)
	}
}

func (s *Surface) handle(ctx context.Context, cmd command) {
	switch c := cmd.(type) {
	case startCmd:
		id, err := s.start(ctx, c.ctx)
		c.reply <- startResult{session: id, err: err}
	case stopCmd:
		s.cancel(ctx, ReasonStop)
		close(c.reply)
	case moveCmd:
		s.move(c)
	case clickCmd:
		s.click(ctx, c)
	case keyCmd:
		if !s.current(c.session, "key") {
			return
		}
		if c.key == KeyEscape {
			s.cancel(ctx, ReasonEscape)
		}
	case magnifyCmd:
		c.reply <- s.magnify(c)
	default:
		s.log.Warn("unknown command", "type", fmt.Sprintf("%T", cmd))
	}
}

// start grabs with the caller's context; events go out under the Run context.
func (s *Surface) start(ctx, reqCtx context.Context) (SessionID, error) {
	// A failed grab leaves a running session untouched.
	img, err := s.grabber.Grab(reqCtx)
	if err != nil {
		return 0, fmt.Errorf("capture start failed: %w", err)
	}
	frame := NewFrame(img)

	prev, last := s.session, s.cursor
	if s.frame != nil {
		s.log.Debug("restarting session", "session", prev)
		s.end()
	}

	id := s.lastSession + 1
	if err := s.overlay.Show(id, frame); err != nil {
		if prev != 0 {
			s.emit(ctx, Event{Kind: EventCancelled, Session: prev, Point: last, Reason: ReasonStop})
		}
		return 0, fmt.Errorf("capture start failed: overlay: %w", err)
	}

	s.lastSession = id
	s.frame = frame
	s.session = id
	s.cursor = image.Pt(-1, -1)
	s.state.Store(int32(StateCapturing))

	s.emit(ctx, Event{Kind: EventStarted, Session: id, Bounds: frame.Bounds()})
	return id, nil
}

func (s *Surface) move(c moveCmd) {
	if !s.current(c.session, "move") {
		return
	}
	hex, err := s.frame.SampleHex(c.pt.X, c.pt.Y)
	if err != nil {
		s.log.Debug("move outside frame", "x", c.pt.X, "y", c.pt.Y)
		return
	}
	s.cursor = c.pt

	// Each hover supersedes the last; drop rather than block.
	select {
	case s.events <- Event{Kind: EventHover, Session: s.session, Hex: hex, Point: c.pt}:
	default:
		s.log.Debug("hover dropped", "session", s.session)
	}
}

func (s *Surface) click(ctx context.Context, c clickCmd) {
	if !s.current(c.session, "click") {
		return
	}
	if c.button != ButtonPrimary {
		return
	}
	hex, err := s.frame.SampleHex(c.pt.X, c.pt.Y)
	if err != nil {
		s.log.Debug("click outside frame", "x", c.pt.X, "y", c.pt.Y)
		return
	}

	id := s.session
	s.end()
	s.emit(ctx, Event{Kind: EventCommit, Session: id, Hex: hex, Point: c.pt})
}

func (s *Surface) magnify(c magnifyCmd) magnifyResult {
	if s.frame == nil {
		return magnifyResult{err: ErrNotCapturing}
	}
	if c.session != s.session {
		return magnifyResult{err: ErrStaleSession}
	}
	m, err := s.frame.MagnifyEncoded(c.pt, s.magnifier)
	return magnifyResult{m: m, err: err}
}

// current reports whether input for session should be acted on.
func (s *Surface) current(session SessionID, input string) bool {
	if s.frame == nil {
		s.log.Debug("input while idle", "input", input, "session", session)
		return false
	}
	if session != s.session {
		s.log.Debug("stale input", "input", input, "session", session, "current", s.session)
		return false
	}
	return true
}

func (s *Surface) cancel(ctx context.Context, reason CancelReason) {
	if s.frame == nil {
		return
	}
	id, last := s.session, s.cursor
	s.end()
	s.emit(ctx, Event{Kind: EventCancelled, Session: id, Point: last, Reason: reason})
}

// end discards the frame and hides the overlay.
func (s *Surface) end() {
	s.overlay.Hide(s.session)
	s.frame = nil
	s.session = 0
	s.cursor = image.Pt(-1, -1)
	s.state.Store(int32(StateIdle))
}

// emit delivers a non-droppable event.
func (s *Surface) emit(ctx context.Context, ev Event) {
	select {
	case s.events <- ev:
	case <-ctx.Done():
		s.log.Debug("event not delivered", "kind", ev.Kind, "session", ev.Session)
	}
}

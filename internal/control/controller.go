package control

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/ironsheep/colorpick/internal/capture"
	"github.com/ironsheep/colorpick/internal/colormodel"
	"github.com/ironsheep/colorpick/internal/export"
	"github.com/ironsheep/colorpick/internal/history"
	"github.com/ironsheep/colorpick/internal/naming"
	"github.com/ironsheep/colorpick/internal/storage"
)

// DefaultColor is the current color before anything is picked.
const DefaultColor = colormodel.White

// ErrNoSurface is returned by picking requests when the controller has no
// capture surface.
var ErrNoSurface = errors.New("no capture surface configured")

// Surface is the capture surface as seen by the controller.
type Surface interface {
	Start(ctx context.Context) (capture.SessionID, error)
	Stop(ctx context.Context) error
	Abort()
	Events() <-chan capture.Event
}

// Notifier receives capture events after the controller has applied them.
// Stale events are not forwarded.
type Notifier interface {
	Notify(ev capture.Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(capture.Event)

func (f NotifierFunc) Notify(ev capture.Event) { f(ev) }

// Options configures a Controller.
type Options struct {
	// Surface runs capture sessions. Optional; without it picking requests
	// fail with ErrNoSurface.
	Surface Surface

	// Repository persists history and palettes. Optional.
	Repository *storage.Repository

	// Names labels colors. Defaults to the French table.
	Names *naming.Table

	// Notifier observes applied capture events. Optional.
	Notifier Notifier

	// Logger defaults to a discarding logger.
	Logger *slog.Logger

	// StoreOptions are passed to the history store.
	StoreOptions []history.Option
}

// Controller is the control-surface core.
type Controller struct {
	surface  Surface
	repo     *storage.Repository
	names    *naming.Table
	notifier Notifier
	log      *slog.Logger

	mu      sync.Mutex
	picking bool
	session capture.SessionID
	ended   capture.SessionID // highest session that reached a terminal event
	color   string
	store   *history.Store
}

// New creates a Controller and loads history and palettes from the
// repository.
func New(ctx context.Context, opts Options) *Controller {
	if opts.Names == nil {
		opts.Names = naming.French()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c := &Controller{
		surface:  opts.Surface,
		repo:     opts.Repository,
		names:    opts.Names,
		notifier: opts.Notifier,
		log:      opts.Logger.With("component", "control"),
		color:    DefaultColor,
	}

	var (
		entries  []history.Entry
		palettes []history.Palette
	)
	if c.repo != nil {
		entries = c.repo.LoadHistory(ctx)
		palettes = c.repo.LoadPalettes(ctx)
	}
	c.store = history.NewStore(entries, palettes, opts.StoreOptions...)
	c.log.Debug("controller ready", "history", c.store.Len(), "palettes", len(palettes))
	return c
}

// Names returns the naming table in use.
func (c *Controller) Names() *naming.Table {
	return c.names
}

// StartPicking starts a capture session, or restarts the active one.
func (c *Controller) StartPicking(ctx context.Context) (capture.SessionID, error) {
	if c.surface == nil {
		return 0, ErrNoSurface
	}
	id, err := c.surface.Start(ctx)
	if err != nil {
		c.log.Warn("capture start failed", "error", err)
		return 0, err
	}

	c.mu.Lock()
	c.adopt(id)
	c.mu.Unlock()
	return id, nil
}

// StopPicking cancels the active session. It is a no-op when not picking.
func (c *Controller) StopPicking(ctx context.Context) error {
	if c.surface == nil {
		return ErrNoSurface
	}
	c.mu.Lock()
	session := c.session
	c.mu.Unlock()

	if err := c.surface.Stop(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	if c.session == session {
		c.picking = false
	}
	c.mu.Unlock()
	return nil
}

// TogglePicking starts picking when idle and stops it otherwise. It returns
// whether picking is active afterwards.
func (c *Controller) TogglePicking(ctx context.Context) (bool, error) {
	if c.Picking() {
		return false, c.StopPicking(ctx)
	}
	if _, err := c.StartPicking(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Abort is the emergency stop for an active session.
func (c *Controller) Abort() {
	if c.surface != nil {
		c.surface.Abort()
	}
}

// Picking reports whether a session is active.
func (c *Controller) Picking() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.picking
}

// Pump applies surface events until the event channel closes or ctx is
// done.
func (c *Controller) Pump(ctx context.Context) error {
	if c.surface == nil {
		return ErrNoSurface
	}
	events := c.surface.Events()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			c.HandleEvent(ctx, ev)
		}
	}
}

// HandleEvent applies one capture event. It reports whether the event was
// applied; stale events are dropped.
func (c *Controller) HandleEvent(ctx context.Context, ev capture.Event) bool {
	c.mu.Lock()
	applied := c.apply(ctx, ev)
	c.mu.Unlock()

	if !applied {
		c.log.Debug("dropping stale event", "kind", ev.Kind, "session", ev.Session)
		return false
	}
	if c.notifier != nil {
		c.notifier.Notify(ev)
	}
	return true
}

// apply must be called with c.mu held.
func (c *Controller) apply(ctx context.Context, ev capture.Event) bool {
	switch ev.Kind {
	case capture.EventStarted:
		return c.adopt(ev.Session)

	case capture.EventHover:
		if !c.picking || ev.Session != c.session {
			return false
		}
		c.color = colormodel.NormalizeOr(ev.Hex, c.color)
		return true

	case capture.EventCommit:
		if ev.Session != c.session || ev.Session <= c.ended {
			return false
		}
		c.finish(ev.Session)
		hex, ok := colormodel.Normalize(ev.Hex)
		if !ok {
			c.log.Warn("commit with malformed color", "hex", ev.Hex)
			return true
		}
		c.color = hex
		if c.store.RecordPick(hex) {
			c.persistHistory(ctx)
		}
		c.log.Info("color picked", "hex", hex, "name", c.names.Name(hex))
		return true

	case capture.EventCancelled:
		if ev.Session != c.session || ev.Session <= c.ended {
			return false
		}
		c.finish(ev.Session)
		c.log.Debug("picking cancelled", "session", ev.Session, "reason", ev.Reason)
		return true
	}
	return false
}

// adopt makes id the current session unless it is older than what is
// already known. Must be called with c.mu held.
func (c *Controller) adopt(id capture.SessionID) bool {
	if id <= c.ended || id < c.session {
		return false
	}
	if id == c.session {
		return c.picking
	}
	c.session = id
	c.picking = true
	return true
}

func (c *Controller) finish(id capture.SessionID) {
	c.picking = false
	c.ended = max(c.ended, id)
}

// Color returns the current color.
func (c *Controller) Color() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.color
}

// SelectColor makes hex the current color without recording it.
func (c *Controller) SelectColor(hex string) (string, bool) {
	hex, ok := colormodel.Normalize(hex)
	if !ok {
		return "", false
	}
	c.mu.Lock()
	c.color = hex
	c.mu.Unlock()
	return hex, true
}

// Details is a color with all its encodings and its name.
type Details struct {
	colormodel.Description
	Name string `json:"name"`
}

// Describe returns the details of hex, falling back to black for malformed
// input.
func (c *Controller) Describe(hex string) Details {
	d := colormodel.Describe(hex)
	return Details{Description: d, Name: c.names.Name(d.Hex)}
}

// View is the control surface state.
type View struct {
	Picking bool              `json:"picking"`
	Session capture.SessionID `json:"session,omitempty"`
	Color   Details           `json:"color"`
}

// View returns the current state.
func (c *Controller) View() View {
	c.mu.Lock()
	picking, session, color := c.picking, c.session, c.color
	c.mu.Unlock()

	v := View{Picking: picking, Color: c.Describe(color)}
	if picking {
		v.Session = session
	}
	return v
}

// Record adds hex to history as a pick made outside a capture session.
func (c *Controller) Record(ctx context.Context, hex string) (string, bool) {
	hex, ok := colormodel.Normalize(hex)
	if !ok {
		return "", false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.color = hex
	if c.store.RecordPick(hex) {
		c.persistHistory(ctx)
	}
	return hex, true
}

// History returns the history entries, pinned first.
func (c *Controller) History() []history.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Entries()
}

// TogglePin flips the pin of hex. It reports whether hex was found.
func (c *Controller) TogglePin(ctx context.Context, hex string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.store.TogglePin(hex) {
		return false
	}
	c.persistHistory(ctx)
	return true
}

// DeleteEntry removes hex from history, pinned or not.
func (c *Controller) DeleteEntry(ctx context.Context, hex string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.store.Delete(hex) {
		return false
	}
	c.persistHistory(ctx)
	return true
}

// ClearUnpinned removes all unpinned entries and returns how many went.
func (c *Controller) ClearUnpinned(ctx context.Context) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := c.store.ClearUnpinned()
	if n > 0 {
		c.persistHistory(ctx)
	}
	return n
}

// SavePalette saves the current history under name.
func (c *Controller) SavePalette(ctx context.Context, name string) (history.Palette, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, err := c.store.SavePalette(name, c.store.Entries())
	if err != nil {
		return history.Palette{}, err
	}
	c.persistPalettes(ctx)
	c.log.Info("palette saved", "id", p.ID, "name", p.Name, "colors", len(p.Colors))
	return p, nil
}

// Palettes returns all saved palettes.
func (c *Controller) Palettes() []history.Palette {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Palettes()
}

// LoadPalette replaces history with the palette's colors.
func (c *Controller) LoadPalette(ctx context.Context, id string) (history.Palette, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, err := c.store.Palette(id)
	if err != nil {
		return history.Palette{}, err
	}
	c.store.LoadPalette(p)
	c.persistHistory(ctx)
	return p, nil
}

// DeletePalette removes a palette. History is untouched.
func (c *Controller) DeletePalette(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.DeletePalette(id); err != nil {
		return err
	}
	c.persistPalettes(ctx)
	return nil
}

// Export renders the current history.
func (c *Controller) Export(format export.Format, now time.Time) (export.Result, error) {
	items := export.Items(c.History(), c.names)
	return export.Render(items, format, now)
}

func (c *Controller) persistHistory(ctx context.Context) {
	if c.repo == nil {
		return
	}
	if err := c.repo.PersistHistory(ctx, c.store.Entries()); err != nil {
		c.log.Warn("failed to persist history", "error", err)
	}
}

func (c *Controller) persistPalettes(ctx context.Context) {
	if c.repo == nil {
		return
	}
	if err := c.repo.PersistPalettes(ctx, c.store.Palettes()); err != nil {
		c.log.Warn("failed to persist palettes", "error", err)
	}
}

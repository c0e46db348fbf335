// Package control is the control-surface core of the picker.
//
// A Controller tracks whether picking is active, the current color and the
// active capture session. It requests sessions from a capture surface and
// consumes the surface's events in Pump: hover events update the current
// color, a commit records the color in history and persists it, and a
// cancellation clears the picking flag. Events that name a session other
// than the current one are stale and are dropped.
//
// Every history or palette mutation is persisted through the storage
// repository once applied. Persistence failures are logged and never
// interrupt picking.
//
// A Controller is safe for concurrent use. It never holds its lock while
// calling into the capture surface.
package control

package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/ironsheep/colorpick/internal/capture"
)

// Notification methods sent to the client.
const (
	MethodOverlayShow   = "notifications/overlay/show"
	MethodOverlayHide   = "notifications/overlay/hide"
	MethodCaptureHover  = "notifications/capture/hover"
	MethodCaptureCommit = "notifications/capture/commit"
	MethodCaptureCancel = "notifications/capture/cancelled"
)

// Emitter serializes every outgoing message (responses and notifications)
// onto one writer, one JSON document per line.
//
// It is the overlay of the capture surface, showing frames by notifying the
// client, and the notifier of the control core.
type Emitter struct {
	mu  sync.Mutex
	enc *json.Encoder
	log *slog.Logger
}

// NewEmitter creates an Emitter writing to w.
func NewEmitter(w io.Writer, logger *slog.Logger) *Emitter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &Emitter{enc: enc, log: logger.With("component", "emitter")}
}

func (e *Emitter) send(v interface{}) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enc.Encode(v)
}

func (e *Emitter) notify(method string, params interface{}) error {
	err := e.send(&MCPNotification{JSONRPC: "2.0", Method: method, Params: params})
	if err != nil {
		e.log.Warn("failed to send notification", "method", method, "error", err)
	}
	return err
}

// OverlayShowParams carries the frozen frame to the overlay window.
type OverlayShowParams struct {
	Session     capture.SessionID `json:"session"`
	Width       int               `json:"width"`
	Height      int               `json:"height"`
	MimeType    string            `json:"mimeType"`
	ImageBase64 string            `json:"imageBase64"`
}

// SessionParams names a session.
type SessionParams struct {
	Session capture.SessionID `json:"session"`
}

// ColorEventParams reports a hover or a commit.
type ColorEventParams struct {
	Session capture.SessionID `json:"session"`
	Hex     string            `json:"hex"`
	X       int               `json:"x"`
	Y       int               `json:"y"`
}

// CancelledParams reports a cancelled session.
type CancelledParams struct {
	Session capture.SessionID    `json:"session"`
	Reason  capture.CancelReason `json:"reason"`
}

// Show sends the frame to the client. A failed write fails the session
// start.
func (e *Emitter) Show(session capture.SessionID, frame *capture.Frame) error {
	data, err := capture.EncodePNG(frame.Image())
	if err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}
	b := frame.Bounds()
	return e.notify(MethodOverlayShow, OverlayShowParams{
		Session:     session,
		Width:       b.Dx(),
		Height:      b.Dy(),
		MimeType:    "image/png",
		ImageBase64: data,
	})
}

// Hide tells the client to close the overlay.
func (e *Emitter) Hide(session capture.SessionID) {
	_ = e.notify(MethodOverlayHide, SessionParams{Session: session})
}

// Notify forwards an applied capture event to the client.
func (e *Emitter) Notify(ev capture.Event) {
	switch ev.Kind {
	case capture.EventHover:
		_ = e.notify(MethodCaptureHover, ColorEventParams{Session: ev.Session, Hex: ev.Hex, X: ev.Point.X, Y: ev.Point.Y})
	case capture.EventCommit:
		_ = e.notify(MethodCaptureCommit, ColorEventParams{Session: ev.Session, Hex: ev.Hex, X: ev.Point.X, Y: ev.Point.Y})
	case capture.EventCancelled:
		_ = e.notify(MethodCaptureCancel, CancelledParams{Session: ev.Session, Reason: ev.Reason})
	}
}

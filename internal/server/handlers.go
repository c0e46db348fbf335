package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ironsheep/colorpick/internal/capture"
	"github.com/ironsheep/colorpick/internal/colormodel"
	"github.com/ironsheep/colorpick/internal/export"
	"github.com/ironsheep/colorpick/internal/history"
	"github.com/ironsheep/colorpick/internal/naming"
)

// ToolCallParams represents the parameters for a tools/call request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_describe", "capture_start").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// errNoCapture is returned by capture input tools when no surface is wired.
var errNoCapture = errors.New("capture surface not available")

// now is the export clock.
var now = time.Now

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
// Arguments that do not decode return -32602.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		var argErr *argumentError
		if errors.As(err, &argErr) {
			return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
		}
		s.log.Debug("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Color Operations
	case "color_describe":
		return s.handleColorDescribe(args)
	case "color_name":
		return s.handleColorName(args)
	case "color_harmonies":
		return s.handleColorHarmonies(args)

	// Picker State
	case "picker_state":
		return s.ctrl.View(), nil
	case "picker_select":
		return s.handlePickerSelect(args)

	// Capture Session
	case "capture_start":
		return s.handleCaptureStart(ctx)
	case "capture_stop":
		return s.handleCaptureStop(ctx)
	case "capture_toggle":
		return s.handleCaptureToggle(ctx)
	case "capture_pointer_move":
		return s.handleCapturePointerMove(args)
	case "capture_click":
		return s.handleCaptureClick(args)
	case "capture_key":
		return s.handleCaptureKey(args)
	case "capture_magnify":
		return s.handleCaptureMagnify(ctx, args)
	case "capture_abort":
		return s.handleCaptureAbort()

	// History
	case "history_list":
		return historyResult{Entries: s.ctrl.History()}, nil
	case "history_toggle_pin":
		return s.handleHistoryTogglePin(ctx, args)
	case "history_delete":
		return s.handleHistoryDelete(ctx, args)
	case "history_clear_unpinned":
		return s.handleHistoryClearUnpinned(ctx)

	// Palettes
	case "palette_save":
		return s.handlePaletteSave(ctx, args)
	case "palette_list":
		return paletteListResult{Palettes: s.ctrl.Palettes()}, nil
	case "palette_load":
		return s.handlePaletteLoad(ctx, args)
	case "palette_delete":
		return s.handlePaletteDelete(ctx, args)

	// Export
	case "export":
		return s.handleExport(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

type argumentError struct {
	err error
}

func (e *argumentError) Error() string { return "invalid arguments: " + e.err.Error() }
func (e *argumentError) Unwrap() error { return e.err }

// decodeArgs unmarshals tool arguments. Missing arguments decode as an
// empty object.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return &argumentError{err: err}
	}
	return nil
}

// === Color Handlers ===

type hexArgs struct {
	Hex string `json:"hex"`
}

func (s *Server) handleColorDescribe(args json.RawMessage) (interface{}, error) {
	var a hexArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.ctrl.Describe(a.Hex), nil
}

type colorNameResult struct {
	Hex   string       `json:"hex"`
	Name  string       `json:"name"`
	Match naming.Entry `json:"match"`
	Dist  float64      `json:"distance"`
	Exact bool         `json:"exact"`
	Valid bool         `json:"valid"`
}

func (s *Server) handleColorName(args json.RawMessage) (interface{}, error) {
	var a hexArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	hex, ok := colormodel.Normalize(a.Hex)
	m := s.ctrl.Names().Lookup(a.Hex)
	return colorNameResult{
		Hex:   hex,
		Name:  m.Entry.Name,
		Match: m.Entry,
		Dist:  m.Distance,
		Exact: m.Exact,
		Valid: ok,
	}, nil
}

type namedColor struct {
	Hex  string `json:"hex"`
	Name string `json:"name"`
}

type harmoniesResult struct {
	Base      namedColor   `json:"base"`
	Harmonies []namedColor `json:"harmonies"`
}

func (s *Server) handleColorHarmonies(args json.RawMessage) (interface{}, error) {
	var a hexArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	names := s.ctrl.Names()
	base := colormodel.NormalizeOr(a.Hex, colormodel.Black)

	result := harmoniesResult{Base: namedColor{Hex: base, Name: names.Name(base)}}
	for _, h := range colormodel.Harmonies(base) {
		result.Harmonies = append(result.Harmonies, namedColor{Hex: h, Name: names.Name(h)})
	}
	return result, nil
}

func (s *Server) handlePickerSelect(args json.RawMessage) (interface{}, error) {
	var a hexArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if _, ok := s.ctrl.SelectColor(a.Hex); !ok {
		return nil, fmt.Errorf("invalid color %q", a.Hex)
	}
	return s.ctrl.View(), nil
}

// === Capture Handlers ===

type sessionResult struct {
	Session capture.SessionID `json:"session"`
}

type pickingResult struct {
	Picking bool `json:"picking"`
}

type ackResult struct {
	OK bool `json:"ok"`
}

func (s *Server) handleCaptureStart(ctx context.Context) (interface{}, error) {
	id, err := s.ctrl.StartPicking(ctx)
	if err != nil {
		return nil, err
	}
	return sessionResult{Session: id}, nil
}

func (s *Server) handleCaptureStop(ctx context.Context) (interface{}, error) {
	if err := s.ctrl.StopPicking(ctx); err != nil {
		return nil, err
	}
	return pickingResult{Picking: false}, nil
}

func (s *Server) handleCaptureToggle(ctx context.Context) (interface{}, error) {
	picking, err := s.ctrl.TogglePicking(ctx)
	if err != nil {
		return nil, err
	}
	return pickingResult{Picking: picking}, nil
}

type pointerArgs struct {
	Session capture.SessionID `json:"session"`
	X       int               `json:"x"`
	Y       int               `json:"y"`
	Button  capture.Button    `json:"button"`
}

func (s *Server) handleCapturePointerMove(args json.RawMessage) (interface{}, error) {
	var a pointerArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if s.capture == nil {
		return nil, errNoCapture
	}
	s.capture.PointerMove(a.Session, a.X, a.Y)
	return ackResult{OK: true}, nil
}

func (s *Server) handleCaptureClick(args json.RawMessage) (interface{}, error) {
	var a pointerArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if s.capture == nil {
		return nil, errNoCapture
	}
	s.capture.Click(a.Session, a.X, a.Y, a.Button)
	return ackResult{OK: true}, nil
}

type keyArgs struct {
	Session capture.SessionID `json:"session"`
	Key     capture.Key       `json:"key"`
}

func (s *Server) handleCaptureKey(args json.RawMessage) (interface{}, error) {
	var a keyArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if s.capture == nil {
		return nil, errNoCapture
	}
	s.capture.Key(a.Session, a.Key)
	return ackResult{OK: true}, nil
}

func (s *Server) handleCaptureMagnify(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a pointerArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if s.capture == nil {
		return nil, errNoCapture
	}
	return s.capture.Magnify(ctx, a.Session, a.X, a.Y)
}

func (s *Server) handleCaptureAbort() (interface{}, error) {
	if s.capture == nil {
		return nil, errNoCapture
	}
	s.capture.Abort()
	return ackResult{OK: true}, nil
}

// === History Handlers ===

type historyResult struct {
	Entries []history.Entry `json:"entries"`
}

func (s *Server) handleHistoryTogglePin(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a hexArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if !s.ctrl.TogglePin(ctx, a.Hex) {
		return nil, fmt.Errorf("color %q is not in history", a.Hex)
	}
	return historyResult{Entries: s.ctrl.History()}, nil
}

func (s *Server) handleHistoryDelete(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a hexArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if !s.ctrl.DeleteEntry(ctx, a.Hex) {
		return nil, fmt.Errorf("color %q is not in history", a.Hex)
	}
	return historyResult{Entries: s.ctrl.History()}, nil
}

type clearResult struct {
	Removed int             `json:"removed"`
	Entries []history.Entry `json:"entries"`
}

func (s *Server) handleHistoryClearUnpinned(ctx context.Context) (interface{}, error) {
	n := s.ctrl.ClearUnpinned(ctx)
	return clearResult{Removed: n, Entries: s.ctrl.History()}, nil
}

// === Palette Handlers ===

type paletteNameArgs struct {
	Name string `json:"name"`
}

type paletteIDArgs struct {
	ID string `json:"id"`
}

type paletteListResult struct {
	Palettes []history.Palette `json:"palettes"`
}

type paletteLoadResult struct {
	Palette history.Palette `json:"palette"`
	Entries []history.Entry `json:"entries"`
}

func (s *Server) handlePaletteSave(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a paletteNameArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.ctrl.SavePalette(ctx, a.Name)
}

func (s *Server) handlePaletteLoad(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a paletteIDArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	p, err := s.ctrl.LoadPalette(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	return paletteLoadResult{Palette: p, Entries: s.ctrl.History()}, nil
}

func (s *Server) handlePaletteDelete(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a paletteIDArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := s.ctrl.DeletePalette(ctx, a.ID); err != nil {
		return nil, err
	}
	return paletteListResult{Palettes: s.ctrl.Palettes()}, nil
}

// === Export Handler ===

type exportArgs struct {
	Format string `json:"format"`
}

func (s *Server) handleExport(args json.RawMessage) (interface{}, error) {
	var a exportArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	format, err := export.ParseFormat(a.Format)
	if err != nil {
		return nil, err
	}
	return s.ctrl.Export(format, now())
}

// Package server implements the JSON-RPC bridge between colorpick and its
// picker UI.
//
// The UI is an external process (a control window plus a full-screen capture
// overlay) that drives the picker through tools and renders what the picker
// reports through notifications.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0 with MCP-style
// framing:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses and notifications on stdout (one per line)
//
// Supported methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Color Operations:
//   - color_describe: All encodings, harmonies, contrast and name
//   - color_name: Exact or nearest name
//   - color_harmonies: Complement and split complements, named
//
// Picker State:
//   - picker_state: Picking flag, session and current color
//   - picker_select: Make a color current
//
// Capture Session:
//   - capture_start, capture_stop, capture_toggle: Session control
//   - capture_pointer_move, capture_click, capture_key: Overlay input
//   - capture_magnify: Loupe around the cursor
//   - capture_abort: Emergency stop
//
// History and Palettes:
//   - history_list, history_toggle_pin, history_delete, history_clear_unpinned
//   - palette_save, palette_list, palette_load, palette_delete
//
// Export:
//   - export: css, json, tailwind or txt rendering of the history
//
// # Notifications
//
// The server pushes these without an id:
//   - notifications/overlay/show: session, frame size and base64 PNG frame
//   - notifications/overlay/hide: session
//   - notifications/capture/hover: session, hex and cursor position
//   - notifications/capture/commit: session, hex and cursor position
//   - notifications/capture/cancelled: session and reason (stop, escape, abort)
//
// Events for a session that is no longer current are never forwarded.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure), -32602 (invalid arguments),
//     -32601 (unknown method) or -32700 (unparsable request)
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	out := server.NewEmitter(os.Stdout, logger)
//	surface := capture.New(capture.Options{Grabber: grabber, Overlay: out})
//	ctrl := control.New(ctx, control.Options{Surface: surface, Notifier: out})
//	srv := server.New(server.Options{Controller: ctrl, Capture: surface, Emitter: out})
//	if err := srv.Run(ctx, os.Stdin); err != nil {
//	    log.Fatal(err)
//	}
package server

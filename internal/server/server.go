package server

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/ironsheep/colorpick/internal/capture"
	"github.com/ironsheep/colorpick/internal/control"
)

// Capture is the part of the capture surface driven directly by the overlay
// client: pointer, click and key input, the loupe and the emergency stop.
type Capture interface {
	PointerMove(session capture.SessionID, x, y int)
	Click(session capture.SessionID, x, y int, button capture.Button)
	Key(session capture.SessionID, key capture.Key)
	Magnify(ctx context.Context, session capture.SessionID, x, y int) (*capture.Magnification, error)
	Abort()
}

// Options configures a Server.
type Options struct {
	Controller *control.Controller
	Capture    Capture
	Emitter    *Emitter
	Logger     *slog.Logger
	Version    string
}

// Server handles JSON-RPC communication with the picker UI
type Server struct {
	ctrl    *control.Controller
	capture Capture
	out     *Emitter
	log     *slog.Logger
	version string
}

// MCPRequest represents an incoming JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing JSON-RPC response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// MCPNotification represents an outgoing notification (no ID)
type MCPNotification struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

// New creates a new server instance
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Emitter == nil {
		opts.Emitter = NewEmitter(io.Discard, opts.Logger)
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	return &Server{
		ctrl:    opts.Controller,
		capture: opts.Capture,
		out:     opts.Emitter,
		log:     opts.Logger.With("component", "server"),
		version: opts.Version,
	}
}

// Run reads requests from r, one per line, until r is exhausted or ctx is
// done. Responses and notifications go to the Emitter.
func (s *Server) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	// Increase buffer size for large requests
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			s.log.Warn("failed to parse request", "error", err)
			if err := s.out.send(s.errorResponse(nil, -32700, "Parse error", err.Error())); err != nil {
				return err
			}
			continue
		}

		resp := s.handleRequest(ctx, &req)
		if resp != nil {
			if err := s.out.send(resp); err != nil {
				return fmt.Errorf("failed to write response: %w", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

// handleRequest routes requests to appropriate handlers
func (s *Server) handleRequest(ctx context.Context, req *MCPRequest) *MCPResponse {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		// Client acknowledgment, no response needed
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(ctx, req)
	case "ping":
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{},
		}
	default:
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &MCPError{
				Code:    -32601,
				Message: fmt.Sprintf("Method not found: %s", req.Method),
			},
		}
	}
}

// handleInitialize responds to the initialize request
func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    "colorpick",
				"version": s.version,
			},
		},
	}
}

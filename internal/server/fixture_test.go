package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ironsheep/colorpick/internal/capture"
	"github.com/ironsheep/colorpick/internal/control"
	"github.com/ironsheep/colorpick/internal/history"
	"github.com/ironsheep/colorpick/internal/storage"
)

// lockedBuffer is a bytes.Buffer safe for the emitter's concurrent writers.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

type testServer struct {
	*Server
	out *lockedBuffer
}

// newTestServer wires a server to a live capture surface over a 100x100
// pattern frame and an in-memory store.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	out := &lockedBuffer{}
	emitter := NewEmitter(out, nil)

	frame := createPatternImage(100, 100)
	surface := capture.New(capture.Options{
		Grabber: capture.GrabberFunc(func(context.Context) (image.Image, error) { return frame, nil }),
		Overlay: emitter,
	})
	go surface.Run(ctx)

	ctrl := control.New(ctx, control.Options{
		Surface:      surface,
		Repository:   storage.NewRepository(storage.NewMemoryKV(), nil),
		Notifier:     emitter,
		StoreOptions: []history.Option{history.WithIDGenerator(sequentialIDs())},
	})
	go ctrl.Pump(ctx)

	s := New(Options{Controller: ctrl, Capture: surface, Emitter: emitter, Version: "test"})
	return &testServer{Server: s, out: out}
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("palette-%d", n)
	}
}

// callTool invokes a tool and returns the raw response.
func (s *testServer) callTool(t *testing.T, name string, args interface{}) *MCPResponse {
	t.Helper()
	params := map[string]interface{}{"name": name, "arguments": args}
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("failed to marshal params: %v", err)
	}
	req := &MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/call", Params: paramsJSON}
	resp := s.handleRequest(context.Background(), req)
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	return resp
}

// mustCall invokes a tool, fails on error and decodes the text content into v.
func (s *testServer) mustCall(t *testing.T, name string, args interface{}, v interface{}) {
	t.Helper()
	resp := s.callTool(t, name, args)
	if resp.Error != nil {
		t.Fatalf("%s failed: %s (%v)", name, resp.Error.Message, resp.Error.Data)
	}
	decodeContent(t, resp, v)
}

func decodeContent(t *testing.T, resp *MCPResponse, v interface{}) {
	t.Helper()
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) != 1 {
		t.Fatalf("content: got %#v", result["content"])
	}
	if content[0]["type"] != "text" {
		t.Errorf("content type: got %v, want text", content[0]["type"])
	}
	if v == nil {
		return
	}
	if err := json.Unmarshal([]byte(content[0]["text"].(string)), v); err != nil {
		t.Fatalf("failed to decode content: %v", err)
	}
}

type notification struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
}

func (s *testServer) notifications() []notification {
	var out []notification
	scanner := bufio.NewScanner(strings.NewReader(s.out.String()))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		var n notification
		if json.Unmarshal(scanner.Bytes(), &n) == nil && n.Method != "" {
			out = append(out, n)
		}
	}
	return out
}

// awaitNotification waits for the count-th notification with method and
// decodes its params into v.
func (s *testServer) awaitNotification(t *testing.T, method string, count int, v interface{}) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		seen := 0
		for _, n := range s.notifications() {
			if n.Method != method {
				continue
			}
			seen++
			if seen == count {
				if v != nil {
					if err := json.Unmarshal(n.Params, v); err != nil {
						t.Fatalf("failed to decode %s params: %v", method, err)
					}
				}
				return
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s #%d", method, count)
}

func (s *testServer) countNotifications(method string) int {
	n := 0
	for _, note := range s.notifications() {
		if note.Method == method {
			n++
		}
	}
	return n
}

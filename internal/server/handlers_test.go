package server

import (
	"strings"
	"testing"

	"github.com/ironsheep/colorpick/internal/capture"
	"github.com/ironsheep/colorpick/internal/control"
	"github.com/ironsheep/colorpick/internal/history"
	"github.com/ironsheep/colorpick/internal/naming"
)

func TestHandleToolsCall_ColorDescribe(t *testing.T) {
	ts := newTestServer(t)

	var got control.Details
	ts.mustCall(t, "color_describe", map[string]interface{}{"hex": "3498db"}, &got)

	if got.Hex != "#3498DB" {
		t.Errorf("Hex: got %s, want #3498DB", got.Hex)
	}
	if got.HSL.H != 204 || got.HSL.S != 70 || got.HSL.L != 53 {
		t.Errorf("HSL: got %+v, want {204 70 53}", got.HSL)
	}
	if got.CMYK.C != 76 || got.CMYK.M != 31 || got.CMYK.Y != 0 || got.CMYK.K != 14 {
		t.Errorf("CMYK: got %+v", got.CMYK)
	}
	if got.Harmonies != [3]string{"#DB7633", "#DB3344", "#DBCA33"} {
		t.Errorf("Harmonies: got %v", got.Harmonies)
	}
	if got.Name != "Bleu Dodger" {
		t.Errorf("Name: got %s, want Bleu Dodger", got.Name)
	}
}

func TestHandleToolsCall_ColorDescribeMalformed(t *testing.T) {
	ts := newTestServer(t)

	var got control.Details
	ts.mustCall(t, "color_describe", map[string]interface{}{"hex": "#12"}, &got)

	if got.Hex != "#000000" || got.Contrast != "white" {
		t.Errorf("malformed input should describe black: got %s / %s", got.Hex, got.Contrast)
	}
}

func TestHandleToolsCall_ColorName(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		hex       string
		wantName  string
		wantExact bool
		wantValid bool
	}{
		{"#FF0000", "Rouge", true, true},
		{"fe0000", "Rouge", false, true},
		{"nope", "Noir", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			var got struct {
				Name     string       `json:"name"`
				Match    naming.Entry `json:"match"`
				Distance float64      `json:"distance"`
				Exact    bool         `json:"exact"`
				Valid    bool         `json:"valid"`
			}
			ts.mustCall(t, "color_name", map[string]interface{}{"hex": tt.hex}, &got)

			if got.Name != tt.wantName || got.Exact != tt.wantExact || got.Valid != tt.wantValid {
				t.Errorf("got %+v", got)
			}
		})
	}
}

func TestHandleToolsCall_ColorHarmonies(t *testing.T) {
	ts := newTestServer(t)

	var got harmoniesResult
	ts.mustCall(t, "color_harmonies", map[string]interface{}{"hex": "#FF0000"}, &got)

	want := []string{"#00FFFF", "#00FF80", "#0080FF"}
	if len(got.Harmonies) != 3 {
		t.Fatalf("harmonies: got %+v", got.Harmonies)
	}
	for i, h := range got.Harmonies {
		if h.Hex != want[i] {
			t.Errorf("harmony %d: got %s, want %s", i, h.Hex, want[i])
		}
		if h.Name == "" {
			t.Errorf("harmony %d has no name", i)
		}
	}
	if got.Base.Name != "Rouge" {
		t.Errorf("base name: got %s", got.Base.Name)
	}
}

func TestHandleToolsCall_PickerSelect(t *testing.T) {
	ts := newTestServer(t)

	var view control.View
	ts.mustCall(t, "picker_select", map[string]interface{}{"hex": "#ff0000"}, &view)
	if view.Color.Hex != "#FF0000" || view.Picking {
		t.Errorf("view: got %+v", view)
	}

	resp := ts.callTool(t, "picker_select", map[string]interface{}{"hex": "red"})
	if resp.Error == nil || resp.Error.Code != -32000 {
		t.Errorf("invalid color should fail with -32000: %+v", resp.Error)
	}
}

func TestHandleToolsCall_PickFlow(t *testing.T) {
	ts := newTestServer(t)

	var started sessionResult
	ts.mustCall(t, "capture_start", nil, &started)
	if started.Session == 0 {
		t.Fatal("capture_start returned no session")
	}

	var show OverlayShowParams
	ts.awaitNotification(t, MethodOverlayShow, 1, &show)
	if show.Session != started.Session || show.Width != 100 || show.Height != 100 {
		t.Errorf("overlay/show: got session=%d %dx%d", show.Session, show.Width, show.Height)
	}
	if show.MimeType != "image/png" || show.ImageBase64 == "" {
		t.Error("overlay/show should carry a PNG frame")
	}

	var view control.View
	ts.mustCall(t, "picker_state", nil, &view)
	if !view.Picking || view.Session != started.Session {
		t.Errorf("picker_state while capturing: got %+v", view)
	}

	ts.mustCall(t, "capture_pointer_move", map[string]interface{}{"session": started.Session, "x": 10, "y": 10}, nil)
	var hover ColorEventParams
	ts.awaitNotification(t, MethodCaptureHover, 1, &hover)
	if hover.Hex != "#FF0000" || hover.X != 10 || hover.Y != 10 {
		t.Errorf("hover: got %+v", hover)
	}

	var loupe capture.Magnification
	ts.mustCall(t, "capture_magnify", map[string]interface{}{"session": started.Session, "x": 90, "y": 90}, &loupe)
	if loupe.Hex != "#FFFFFF" || loupe.Width != 129 || loupe.ImageBase64 == "" {
		t.Errorf("magnify: got hex=%s width=%d", loupe.Hex, loupe.Width)
	}

	ts.mustCall(t, "capture_click", map[string]interface{}{"session": started.Session, "x": 90, "y": 10}, nil)
	var commit ColorEventParams
	ts.awaitNotification(t, MethodCaptureCommit, 1, &commit)
	if commit.Hex != "#00FF00" {
		t.Errorf("commit: got %+v", commit)
	}
	ts.awaitNotification(t, MethodOverlayHide, 1, nil)

	var hist historyResult
	ts.mustCall(t, "history_list", nil, &hist)
	if len(hist.Entries) != 1 || hist.Entries[0].Hex != "#00FF00" {
		t.Errorf("history: got %+v", hist.Entries)
	}

	ts.mustCall(t, "picker_state", nil, &view)
	if view.Picking || view.Color.Hex != "#00FF00" {
		t.Errorf("picker_state after commit: got %+v", view)
	}
	if n := ts.countNotifications(MethodCaptureCancel); n != 0 {
		t.Errorf("cancelled notifications: got %d, want 0", n)
	}
}

func TestHandleToolsCall_CancelPaths(t *testing.T) {
	tests := []struct {
		name   string
		cancel func(t *testing.T, ts *testServer, session capture.SessionID)
		reason capture.CancelReason
	}{
		{"stop", func(t *testing.T, ts *testServer, _ capture.SessionID) {
			ts.mustCall(t, "capture_stop", nil, nil)
		}, capture.ReasonStop},
		{"escape", func(t *testing.T, ts *testServer, s capture.SessionID) {
			ts.mustCall(t, "capture_key", map[string]interface{}{"session": s, "key": "Escape"}, nil)
		}, capture.ReasonEscape},
		{"abort", func(t *testing.T, ts *testServer, _ capture.SessionID) {
			ts.mustCall(t, "capture_abort", nil, nil)
		}, capture.ReasonAbort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)

			var started sessionResult
			ts.mustCall(t, "capture_start", nil, &started)
			tt.cancel(t, ts, started.Session)

			var cancelled CancelledParams
			ts.awaitNotification(t, MethodCaptureCancel, 1, &cancelled)
			if cancelled.Session != started.Session || cancelled.Reason != tt.reason {
				t.Errorf("cancelled: got %+v", cancelled)
			}
			if n := ts.countNotifications(MethodCaptureCommit); n != 0 {
				t.Errorf("commit notifications: got %d, want 0", n)
			}

			var hist historyResult
			ts.mustCall(t, "history_list", nil, &hist)
			if len(hist.Entries) != 0 {
				t.Errorf("history should be empty: %+v", hist.Entries)
			}
		})
	}
}

func TestHandleToolsCall_StopWhileIdle(t *testing.T) {
	ts := newTestServer(t)

	var res pickingResult
	ts.mustCall(t, "capture_stop", nil, &res)
	if res.Picking {
		t.Error("picking should be false")
	}

	// capture_magnify is processed after the stop; use it as a barrier.
	if resp := ts.callTool(t, "capture_magnify", map[string]interface{}{"session": 1, "x": 0, "y": 0}); resp.Error == nil {
		t.Error("magnify while idle should fail")
	}
	if n := ts.countNotifications(MethodCaptureCancel); n != 0 {
		t.Errorf("cancelled notifications: got %d, want 0", n)
	}
}

func TestHandleToolsCall_Toggle(t *testing.T) {
	ts := newTestServer(t)

	var res pickingResult
	ts.mustCall(t, "capture_toggle", nil, &res)
	if !res.Picking {
		t.Fatal("first toggle should start picking")
	}
	ts.mustCall(t, "capture_toggle", nil, &res)
	if res.Picking {
		t.Fatal("second toggle should stop picking")
	}
	ts.awaitNotification(t, MethodCaptureCancel, 1, nil)
}

func TestHandleToolsCall_StaleSessionInputIgnored(t *testing.T) {
	ts := newTestServer(t)

	var first, second sessionResult
	ts.mustCall(t, "capture_start", nil, &first)
	ts.mustCall(t, "capture_start", nil, &second)
	if second.Session == first.Session {
		t.Fatal("restart should issue a new session")
	}

	ts.mustCall(t, "capture_click", map[string]interface{}{"session": first.Session, "x": 10, "y": 10}, nil)

	resp := ts.callTool(t, "capture_magnify", map[string]interface{}{"session": first.Session, "x": 10, "y": 10})
	if resp.Error == nil || !strings.Contains(resp.Error.Data.(string), "stale") {
		t.Errorf("magnify with stale session: got %+v", resp.Error)
	}
	if n := ts.countNotifications(MethodCaptureCommit); n != 0 {
		t.Errorf("stale click committed %d times", n)
	}
	if n := ts.countNotifications(MethodCaptureCancel); n != 0 {
		t.Errorf("restart emitted %d cancellations", n)
	}
}

func TestHandleToolsCall_HistoryAndPalettes(t *testing.T) {
	ts := newTestServer(t)

	// Pick two colors through the overlay.
	for i, pt := range [][2]int{{10, 10}, {10, 90}} {
		var started sessionResult
		ts.mustCall(t, "capture_start", nil, &started)
		ts.mustCall(t, "capture_click", map[string]interface{}{"session": started.Session, "x": pt[0], "y": pt[1]}, nil)
		ts.awaitNotification(t, MethodCaptureCommit, i+1, nil)
	}

	var hist historyResult
	ts.mustCall(t, "history_toggle_pin", map[string]interface{}{"hex": "#ff0000"}, &hist)
	if len(hist.Entries) != 2 || hist.Entries[0] != (history.Entry{Hex: "#FF0000", Pinned: true}) {
		t.Fatalf("after pin: got %+v", hist.Entries)
	}

	resp := ts.callTool(t, "history_toggle_pin", map[string]interface{}{"hex": "#123456"})
	if resp.Error == nil {
		t.Error("pinning a color not in history should fail")
	}

	resp = ts.callTool(t, "palette_save", map[string]interface{}{"name": "  "})
	if resp.Error == nil || resp.Error.Code != -32000 || !strings.Contains(resp.Error.Data.(string), "name") {
		t.Errorf("blank palette name: got %+v", resp.Error)
	}

	var saved history.Palette
	ts.mustCall(t, "palette_save", map[string]interface{}{"name": "Primaries"}, &saved)
	if saved.ID != "palette-1" || len(saved.Colors) != 2 {
		t.Errorf("saved palette: got %+v", saved)
	}

	var cleared clearResult
	ts.mustCall(t, "history_clear_unpinned", nil, &cleared)
	if cleared.Removed != 1 || len(cleared.Entries) != 1 {
		t.Errorf("clear: got %+v", cleared)
	}

	ts.mustCall(t, "history_delete", map[string]interface{}{"hex": "#FF0000"}, &hist)
	if len(hist.Entries) != 0 {
		t.Errorf("delete should remove pinned entry: %+v", hist.Entries)
	}

	var list paletteListResult
	ts.mustCall(t, "palette_list", nil, &list)
	if len(list.Palettes) != 1 || list.Palettes[0].Name != "Primaries" {
		t.Errorf("palette_list: got %+v", list.Palettes)
	}

	var loaded paletteLoadResult
	ts.mustCall(t, "palette_load", map[string]interface{}{"id": "palette-1"}, &loaded)
	if len(loaded.Entries) != 2 || loaded.Entries[1].Hex != "#0000FF" {
		t.Errorf("palette_load: got %+v", loaded.Entries)
	}

	ts.mustCall(t, "palette_delete", map[string]interface{}{"id": "palette-1"}, &list)
	if len(list.Palettes) != 0 {
		t.Errorf("palette_delete: got %+v", list.Palettes)
	}
	if resp := ts.callTool(t, "palette_load", map[string]interface{}{"id": "palette-1"}); resp.Error == nil {
		t.Error("loading a deleted palette should fail")
	}
}

func TestHandleToolsCall_Export(t *testing.T) {
	ts := newTestServer(t)

	var started sessionResult
	ts.mustCall(t, "capture_start", nil, &started)
	ts.mustCall(t, "capture_click", map[string]interface{}{"session": started.Session, "x": 10, "y": 10}, nil)
	ts.awaitNotification(t, MethodCaptureCommit, 1, nil)

	var res struct {
		Content  string `json:"content"`
		Filename string `json:"filename"`
		MimeType string `json:"mimeType"`
	}
	ts.mustCall(t, "export", map[string]interface{}{"format": "css"}, &res)

	if res.Content != ":root {\n  --color-rouge-1: #FF0000; /* Rouge */\n}" {
		t.Errorf("content: got %q", res.Content)
	}
	if !strings.HasPrefix(res.Filename, "palette-") || !strings.HasSuffix(res.Filename, ".css") {
		t.Errorf("filename: got %s", res.Filename)
	}

	if resp := ts.callTool(t, "export", map[string]interface{}{"format": "xml"}); resp.Error == nil {
		t.Error("unknown format should fail")
	}
}

func TestHandleToolsCall_Errors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name     string
		tool     string
		args     interface{}
		wantCode int
	}{
		{"unknown tool", "nonexistent_tool", map[string]interface{}{}, -32000},
		{"arguments not an object", "color_describe", "oops", -32602},
		{"wrong argument type", "capture_pointer_move", map[string]interface{}{"session": "one"}, -32602},
		{"missing history entry", "history_delete", map[string]interface{}{}, -32000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.callTool(t, tt.tool, tt.args)
			if resp.Error == nil {
				t.Fatal("expected error")
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("code: got %d, want %d", resp.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New(Options{})
	req := &MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/call", Params: []byte(`[1,2]`)}

	resp := s.handleToolsCall(t.Context(), req)
	if resp.Error == nil || resp.Error.Code != -32602 {
		t.Errorf("got %+v, want -32602", resp.Error)
	}
}

func TestHandleToolsCall_CaptureWithoutSurface(t *testing.T) {
	s := New(Options{Controller: control.New(t.Context(), control.Options{})})

	for _, tool := range []string{"capture_start", "capture_pointer_move", "capture_abort"} {
		t.Run(tool, func(t *testing.T) {
			params := []byte(`{"name":"` + tool + `","arguments":{"session":1,"x":1,"y":1}}`)
			resp := s.handleToolsCall(t.Context(), &MCPRequest{JSONRPC: "2.0", ID: 1, Params: params})
			if resp.Error == nil || resp.Error.Code != -32000 {
				t.Errorf("got %+v, want tool failure", resp.Error)
			}
		})
	}
}

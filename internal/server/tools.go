package server

// Tool represents a tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func objectSchema(properties map[string]interface{}, required ...string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

var (
	hexProperty = map[string]interface{}{
		"type":        "string",
		"description": "Color as #RRGGBB (case-insensitive, '#' optional)",
	}
	sessionProperty = map[string]interface{}{
		"type":        "integer",
		"description": "Capture session id from capture_start",
	}
	xProperty = map[string]interface{}{
		"type":        "integer",
		"description": "X coordinate in the frame (0-based, from left)",
	}
	yProperty = map[string]interface{}{
		"type":        "integer",
		"description": "Y coordinate in the frame (0-based, from top)",
	}
	paletteIDProperty = map[string]interface{}{
		"type":        "string",
		"description": "Palette id",
	}
)

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Color Operations
		{
			Name:        "color_describe",
			Description: "Describe a color in every encoding (hex, RGB, HSL, CMYK, HSV, Lab) with its harmonies, readable text contrast and name. Malformed input is described as black.",
			InputSchema: objectSchema(map[string]interface{}{"hex": hexProperty}, "hex"),
		},
		{
			Name:        "color_name",
			Description: "Name a color using the configured color-name table: exact match or nearest by RGB distance.",
			InputSchema: objectSchema(map[string]interface{}{"hex": hexProperty}, "hex"),
		},
		{
			Name:        "color_harmonies",
			Description: "Complementary and split-complementary colors (+180°, +150°, +210°) with names.",
			InputSchema: objectSchema(map[string]interface{}{"hex": hexProperty}, "hex"),
		},

		// Picker State
		{
			Name:        "picker_state",
			Description: "Current picker state: whether picking is active, the session id and the current color.",
			InputSchema: objectSchema(map[string]interface{}{}),
		},
		{
			Name:        "picker_select",
			Description: "Make a color current without recording it in history (for example a history swatch).",
			InputSchema: objectSchema(map[string]interface{}{"hex": hexProperty}, "hex"),
		},

		// Capture Session
		{
			Name:        "capture_start",
			Description: "Freeze the screen and start a picking session. Restarts the session if one is active. Sends notifications/overlay/show with the frozen frame.",
			InputSchema: objectSchema(map[string]interface{}{}),
		},
		{
			Name:        "capture_stop",
			Description: "Cancel the active picking session. No-op when idle.",
			InputSchema: objectSchema(map[string]interface{}{}),
		},
		{
			Name:        "capture_toggle",
			Description: "Start picking when idle, stop it otherwise.",
			InputSchema: objectSchema(map[string]interface{}{}),
		},
		{
			Name:        "capture_pointer_move",
			Description: "Report the cursor position on the overlay. The hovered color arrives as notifications/capture/hover.",
			InputSchema: objectSchema(map[string]interface{}{
				"session": sessionProperty,
				"x":       xProperty,
				"y":       yProperty,
			}, "session", "x", "y"),
		},
		{
			Name:        "capture_click",
			Description: "Report a click on the overlay. A primary click commits the color under the cursor (notifications/capture/commit).",
			InputSchema: objectSchema(map[string]interface{}{
				"session": sessionProperty,
				"x":       xProperty,
				"y":       yProperty,
				"button": map[string]interface{}{
					"type":        "integer",
					"description": "Pointer button: 0 primary, 1 middle, 2 secondary. Default 0",
					"default":     0,
				},
			}, "session", "x", "y"),
		},
		{
			Name:        "capture_key",
			Description: "Report a key press on the overlay. Escape cancels the session.",
			InputSchema: objectSchema(map[string]interface{}{
				"session": sessionProperty,
				"key": map[string]interface{}{
					"type":        "string",
					"description": "Key name, e.g. \"Escape\"",
				},
			}, "session", "key"),
		},
		{
			Name:        "capture_magnify",
			Description: "Render the magnifier loupe centered on the cursor as a base64-encoded PNG.",
			InputSchema: objectSchema(map[string]interface{}{
				"session": sessionProperty,
				"x":       xProperty,
				"y":       yProperty,
			}, "session", "x", "y"),
		},
		{
			Name:        "capture_abort",
			Description: "Emergency stop: cancel the active session ahead of any queued input.",
			InputSchema: objectSchema(map[string]interface{}{}),
		},

		// History
		{
			Name:        "history_list",
			Description: "List picked colors, pinned first, most recent first.",
			InputSchema: objectSchema(map[string]interface{}{}),
		},
		{
			Name:        "history_toggle_pin",
			Description: "Pin or unpin a history color. Pinned colors survive clearing and eviction.",
			InputSchema: objectSchema(map[string]interface{}{"hex": hexProperty}, "hex"),
		},
		{
			Name:        "history_delete",
			Description: "Remove a color from history, even if pinned.",
			InputSchema: objectSchema(map[string]interface{}{"hex": hexProperty}, "hex"),
		},
		{
			Name:        "history_clear_unpinned",
			Description: "Remove every unpinned color from history.",
			InputSchema: objectSchema(map[string]interface{}{}),
		},

		// Palettes
		{
			Name:        "palette_save",
			Description: "Save the current history as a named palette.",
			InputSchema: objectSchema(map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Palette name (must not be blank)",
				},
			}, "name"),
		},
		{
			Name:        "palette_list",
			Description: "List saved palettes.",
			InputSchema: objectSchema(map[string]interface{}{}),
		},
		{
			Name:        "palette_load",
			Description: "Replace the history with a saved palette's colors.",
			InputSchema: objectSchema(map[string]interface{}{"id": paletteIDProperty}, "id"),
		},
		{
			Name:        "palette_delete",
			Description: "Delete a saved palette. History is not affected.",
			InputSchema: objectSchema(map[string]interface{}{"id": paletteIDProperty}, "id"),
		},

		// Export
		{
			Name:        "export",
			Description: "Render the history as a CSS, JSON, Tailwind config or plain text file, with a suggested filename.",
			InputSchema: objectSchema(map[string]interface{}{
				"format": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"css", "json", "tailwind", "txt"},
					"description": "Output format",
				},
			}, "format"),
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}

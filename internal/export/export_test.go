package export

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/colorpick/internal/history"
	"github.com/ironsheep/colorpick/internal/naming"
)

var exportDate = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

func sampleItems() []Item {
	return []Item{
		{Hex: "#FF0000", Name: "Rouge"},
		{Hex: "#228B22", Name: "Vert Forêt"},
	}
}

func TestItems_UsesNamerAndKeepsOrder(t *testing.T) {
	entries := []history.Entry{{Hex: "#1E90FF", Pinned: true}, {Hex: "#FE0000"}}

	items := Items(entries, naming.French())

	assert.Equal(t, []Item{
		{Hex: "#1E90FF", Name: "Bleu Dodger"},
		{Hex: "#FE0000", Name: "Rouge"},
	}, items)
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Rouge":        "rouge",
		"Bleu Dodger":  "bleu-dodger",
		"Vert Forêt":   "vert-for-t",
		"Dodger Blue!": "dodger-blue-",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slug(in), in)
	}
}

func TestRender_CSS(t *testing.T) {
	res, err := Render(sampleItems(), FormatCSS, exportDate)
	require.NoError(t, err)

	assert.Equal(t, ":root {\n"+
		"  --color-rouge-1: #FF0000; /* Rouge */\n"+
		"  --color-vert-for-t-2: #228B22; /* Vert Forêt */\n"+
		"}", res.Content)
	assert.Equal(t, "palette-2026-10-17.css", res.Filename)
	assert.Equal(t, "text/css", res.MimeType)
}

func TestRender_JSON(t *testing.T) {
	res, err := Render(sampleItems(), FormatJSON, exportDate)
	require.NoError(t, err)

	assert.Equal(t, "[\n"+
		"  {\n    \"hex\": \"#FF0000\",\n    \"name\": \"Rouge\"\n  },\n"+
		"  {\n    \"hex\": \"#228B22\",\n    \"name\": \"Vert Forêt\"\n  }\n"+
		"]", res.Content)
	assert.Equal(t, "palette-2026-10-17.json", res.Filename)
	assert.Equal(t, "application/json", res.MimeType)

	var decoded []Item
	require.NoError(t, json.Unmarshal([]byte(res.Content), &decoded))
	assert.Equal(t, sampleItems(), decoded)
}

func TestRender_JSONEmpty(t *testing.T) {
	res, err := Render(nil, FormatJSON, exportDate)
	require.NoError(t, err)
	assert.Equal(t, "[]", res.Content)
}

func TestRender_Tailwind(t *testing.T) {
	res, err := Render(sampleItems(), FormatTailwind, exportDate)
	require.NoError(t, err)

	assert.Equal(t, "module.exports = {\n"+
		"  theme: {\n"+
		"    extend: {\n"+
		"      colors: {\n"+
		"        'rouge': '#FF0000',\n"+
		"        'vert-for-t': '#228B22',\n"+
		"      }\n"+
		"    }\n"+
		"  }\n"+
		"}", res.Content)
	assert.Equal(t, "palette-2026-10-17.js", res.Filename)
	assert.Equal(t, "text/javascript", res.MimeType)
}

func TestRender_Text(t *testing.T) {
	res, err := Render(sampleItems(), FormatText, exportDate)
	require.NoError(t, err)

	assert.Equal(t, "Rouge: #FF0000\nVert Forêt: #228B22", res.Content)
	assert.Equal(t, "palette-2026-10-17.txt", res.Filename)
	assert.Equal(t, "text/plain", res.MimeType)
}

func TestRender_FilenameUsesUTCDate(t *testing.T) {
	late := time.Date(2026, 10, 17, 23, 30, 0, 0, time.FixedZone("UTC-2", -2*3600))
	res, err := Render(nil, FormatText, late)
	require.NoError(t, err)
	assert.Equal(t, "palette-2026-10-18.txt", res.Filename)
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := Render(sampleItems(), Format("scss"), exportDate)
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

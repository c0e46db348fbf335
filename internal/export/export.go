// Package export renders an ordered list of colors as a file in one of the
// supported formats: a CSS custom-property block, a JSON array, a Tailwind
// config fragment or plain text.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ironsheep/colorpick/internal/history"
)

// Format is an export format.
type Format string

const (
	FormatCSS      Format = "css"
	FormatJSON     Format = "json"
	FormatTailwind Format = "tailwind"
	FormatText     Format = "txt"
)

// Formats lists the supported formats.
var Formats = []Format{FormatCSS, FormatJSON, FormatTailwind, FormatText}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q (want css, json, tailwind or txt)", name)
}

// Item is one exported color.
type Item struct {
	Hex  string `json:"hex"`
	Name string `json:"name"`
}

// Namer names a color.
type Namer interface {
	Name(hex string) string
}

// Items pairs history entries with their names, preserving order.
func Items(entries []history.Entry, namer Namer) []Item {
	items := make([]Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Hex: e.Hex, Name: namer.Name(e.Hex)}
	}
	return items
}

// Result is a rendered export.
type Result struct {
	Content  string `json:"content"`
	Filename string `json:"filename"`
	MimeType string `json:"mimeType"`
}

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Slug turns a color name into an identifier: every character outside
// [a-zA-Z0-9] becomes '-' and the result is lowercased.
func Slug(name string) string {
	return strings.ToLower(nonAlnum.ReplaceAllString(name, "-"))
}

// Render formats items. now dates the suggested filename.
func Render(items []Item, format Format, now time.Time) (Result, error) {
	var (
		content, mime, ext string
		err                error
	)

	switch format {
	case FormatCSS:
		content, mime, ext = renderCSS(items), "text/css", "css"
	case FormatJSON:
		content, err = renderJSON(items)
		mime, ext = "application/json", "json"
	case FormatTailwind:
		content, mime, ext = renderTailwind(items), "text/javascript", "js"
	case FormatText:
		content, mime, ext = renderText(items), "text/plain", "txt"
	default:
		return Result{}, fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return Result{}, err
	}

	return Result{
		Content:  content,
		Filename: fmt.Sprintf("palette-%s.%s", now.UTC().Format(time.DateOnly), ext),
		MimeType: mime,
	}, nil
}

func renderCSS(items []Item) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for i, it := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "  --color-%s-%d: %s; /* %s */", Slug(it.Name), i+1, it.Hex, it.Name)
	}
	b.WriteString("\n}")
	return b.String()
}

func renderJSON(items []Item) (string, error) {
	if items == nil {
		items = []Item{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return "", fmt.Errorf("failed to encode export: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func renderTailwind(items []Item) string {
	var b strings.Builder
	b.WriteString("module.exports = {\n  theme: {\n    extend: {\n      colors: {\n")
	for i, it := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "        '%s': '%s',", Slug(it.Name), it.Hex)
	}
	b.WriteString("\n      }\n    }\n  }\n}")
	return b.String()
}

func renderText(items []Item) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = fmt.Sprintf("%s: %s", it.Name, it.Hex)
	}
	return strings.Join(lines, "\n")
}

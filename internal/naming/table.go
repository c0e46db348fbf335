package naming

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/language"
	"gonum.org/v1/gonum/floats"

	"github.com/ironsheep/colorpick/internal/colormodel"
)

// Entry is one canonical color and its display name.
type Entry struct {
	Hex  string `json:"hex"`
	Name string `json:"name"`
}

// Match is the result of a table lookup.
type Match struct {
	Entry    Entry   `json:"entry"`
	Distance float64 `json:"distance"` // Euclidean RGB distance, 0 for exact matches
	Exact    bool    `json:"exact"`
}

// Table maps colors to names for one language.
type Table struct {
	tag     language.Tag
	entries []Entry
	points  [][]float64
	exact   map[string]int
}

// NewTable builds a Table from entries, preserving their order.
//
// Hex values are canonicalized. A hex that appears more than once keeps its
// first position and name. Returns an error for an empty list or a
// malformed hex.
func NewTable(tag language.Tag, entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, errors.New("naming table has no entries")
	}

	t := &Table{
		tag:     tag,
		entries: make([]Entry, 0, len(entries)),
		points:  make([][]float64, 0, len(entries)),
		exact:   make(map[string]int, len(entries)),
	}

	for _, e := range entries {
		rgb, ok := colormodel.HexToRGB(e.Hex)
		if !ok {
			return nil, fmt.Errorf("invalid hex %q for %q", e.Hex, e.Name)
		}
		hex := colormodel.RGBToHex(rgb)
		if _, dup := t.exact[hex]; dup {
			continue
		}
		t.exact[hex] = len(t.entries)
		t.entries = append(t.entries, Entry{Hex: hex, Name: e.Name})
		t.points = append(t.points, []float64{float64(rgb.R), float64(rgb.G), float64(rgb.B)})
	}

	return t, nil
}

// Language returns the language the names are written in.
func (t *Table) Language() language.Tag {
	return t.tag
}

// Len returns the number of distinct colors in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the table in lookup order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Name returns the display name closest to hex.
//
// Malformed input gets the name of the first table entry.
func (t *Table) Name(hex string) string {
	return t.Lookup(hex).Entry.Name
}

// Lookup returns the table entry for hex along with its distance.
//
// An exact match short-circuits the scan. Otherwise every entry is visited
// in order and only a strictly smaller distance replaces the current best,
// so the earliest entry wins a tie.
func (t *Table) Lookup(hex string) Match {
	rgb, ok := colormodel.HexToRGB(hex)
	if !ok {
		return Match{Entry: t.entries[0], Distance: -1}
	}

	if i, ok := t.exact[colormodel.RGBToHex(rgb)]; ok {
		return Match{Entry: t.entries[i], Exact: true}
	}

	q := []float64{float64(rgb.R), float64(rgb.G), float64(rgb.B)}
	best, bestDist := 0, floats.Distance(q, t.points[0], 2)
	for i := 1; i < len(t.points); i++ {
		if d := floats.Distance(q, t.points[i], 2); d < bestDist {
			best, bestDist = i, d
		}
	}

	return Match{Entry: t.entries[best], Distance: bestDist}
}

var (
	// French returns the built-in French table.
	French = sync.OnceValue(func() *Table {
		return mustBuiltin(language.French, func(c builtinColor) string { return c.fr })
	})

	// English returns the built-in English table (CSS color names).
	English = sync.OnceValue(func() *Table {
		return mustBuiltin(language.English, func(c builtinColor) string { return c.en })
	})

	supported = []language.Tag{language.French, language.English}
	matcher   = language.NewMatcher(supported)
)

// ForLanguage returns the built-in table that best matches a BCP 47 tag such
// as "fr", "en-GB" or "fr-CA". Unknown or unparsable tags get French.
func ForLanguage(lang string) *Table {
	tag, err := language.Parse(lang)
	if err != nil {
		return French()
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return French()
	}
	if supported[idx] == language.English {
		return English()
	}
	return French()
}

func mustBuiltin(tag language.Tag, name func(builtinColor) string) *Table {
	entries := make([]Entry, len(builtinColors))
	for i, c := range builtinColors {
		entries[i] = Entry{Hex: c.hex, Name: name(c)}
	}
	t, err := NewTable(tag, entries)
	if err != nil {
		panic(fmt.Sprintf("naming: built-in %s table: %v", tag, err))
	}
	return t
}

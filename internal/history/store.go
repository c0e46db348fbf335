package history

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ironsheep/colorpick/internal/colormodel"
)

// Capacity is the maximum number of unpinned entries kept once pinned
// entries are accounted for.
const Capacity = 50

// Entry is one picked color.
type Entry struct {
	Hex    string `json:"hex"`
	Pinned bool   `json:"pinned"`
}

// Palette is a named snapshot of history entries.
type Palette struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Colors    []Entry   `json:"colors"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// Store holds the history list and the saved palettes.
type Store struct {
	entries  []Entry
	palettes []Palette

	newID func() string
	now   func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides the palette id source.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithClock overrides the palette timestamp source.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) { s.now = fn }
}

// NewStore creates a Store seeded with entries and palettes. Both are
// copied; entries are normalized.
func NewStore(entries []Entry, palettes []Palette, opts ...Option) *Store {
	s := &Store{
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.entries = normalize(slices.Clone(entries))
	for _, p := range palettes {
		p.Colors = slices.Clone(p.Colors)
		s.palettes = append(s.palettes, p)
	}
	return s
}

// Entries returns a copy of the history, pinned entries first.
func (s *Store) Entries() []Entry {
	return slices.Clone(s.entries)
}

// Len returns the number of history entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Head returns the most recent entry.
func (s *Store) Head() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	return s.entries[0], true
}

// RecordPick adds a picked color. It reports whether the history changed.
//
// Picking the color that is already at the head is a no-op. A color already
// present moves to the front of its partition and keeps its pin.
func (s *Store) RecordPick(hex string) bool {
	hex, ok := colormodel.Normalize(hex)
	if !ok {
		return false
	}
	if len(s.entries) > 0 && s.entries[0].Hex == hex {
		return false
	}

	before := s.entries
	rest := slices.Clone(s.entries)
	entry := Entry{Hex: hex}
	if i := s.index(hex); i >= 0 {
		entry = rest[i]
		rest = slices.Delete(rest, i, i+1)
	}
	s.apply(append([]Entry{entry}, rest...))
	return !slices.Equal(before, s.entries)
}

// TogglePin flips the pin of hex. It reports whether hex was found.
func (s *Store) TogglePin(hex string) bool {
	i := s.find(hex)
	if i < 0 {
		return false
	}
	next := slices.Clone(s.entries)
	next[i].Pinned = !next[i].Pinned
	s.apply(next)
	return true
}

// Delete removes hex whether or not it is pinned. It reports whether hex was
// found.
func (s *Store) Delete(hex string) bool {
	i := s.find(hex)
	if i < 0 {
		return false
	}
	s.apply(slices.Delete(slices.Clone(s.entries), i, i+1))
	return true
}

// ClearUnpinned removes every unpinned entry and returns how many were
// removed.
func (s *Store) ClearUnpinned() int {
	before := len(s.entries)
	s.apply(slices.DeleteFunc(slices.Clone(s.entries), func(e Entry) bool { return !e.Pinned }))
	return before - len(s.entries)
}

// Replace swaps the whole history for entries.
func (s *Store) Replace(entries []Entry) {
	s.apply(slices.Clone(entries))
}

// SavePalette stores a snapshot of entries under name.
func (s *Store) SavePalette(name string, entries []Entry) (Palette, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Palette{}, &ValidationError{Field: "name", Message: "palette name must not be blank"}
	}

	p := Palette{
		ID:        s.newID(),
		Name:      name,
		Colors:    slices.Clone(entries),
		CreatedAt: s.now().UTC(),
	}
	s.palettes = append(s.palettes, p)
	return clonePalette(p), nil
}

// LoadPalette replaces the history with the palette's colors.
func (s *Store) LoadPalette(p Palette) {
	s.Replace(p.Colors)
}

// Palette returns the palette with the given id.
func (s *Store) Palette(id string) (Palette, error) {
	for _, p := range s.palettes {
		if p.ID == id {
			return clonePalette(p), nil
		}
	}
	return Palette{}, ErrPaletteNotFound
}

// Palettes returns copies of all palettes in creation order.
func (s *Store) Palettes() []Palette {
	out := make([]Palette, len(s.palettes))
	for i, p := range s.palettes {
		out[i] = clonePalette(p)
	}
	return out
}

// DeletePalette removes the palette with the given id. History is
// untouched.
func (s *Store) DeletePalette(id string) error {
	i := slices.IndexFunc(s.palettes, func(p Palette) bool { return p.ID == id })
	if i < 0 {
		return ErrPaletteNotFound
	}
	s.palettes = slices.Delete(s.palettes, i, i+1)
	return nil
}

func (s *Store) apply(next []Entry) {
	s.entries = normalize(next)
}

func (s *Store) find(hex string) int {
	hex, ok := colormodel.Normalize(hex)
	if !ok {
		return -1
	}
	return s.index(hex)
}

func (s *Store) index(hex string) int {
	return slices.IndexFunc(s.entries, func(e Entry) bool { return e.Hex == hex })
}

func clonePalette(p Palette) Palette {
	p.Colors = slices.Clone(p.Colors)
	return p
}

// normalize canonicalizes entries and restores the ordering invariants.
func normalize(entries []Entry) []Entry {
	seen := make(map[string]bool, len(entries))
	var pinned, unpinned []Entry
	for _, e := range entries {
		hex, ok := colormodel.Normalize(e.Hex)
		if !ok || seen[hex] {
			continue
		}
		seen[hex] = true
		e.Hex = hex
		if e.Pinned {
			pinned = append(pinned, e)
		} else {
			unpinned = append(unpinned, e)
		}
	}

	if keep := Capacity - len(pinned); len(unpinned) > keep {
		unpinned = unpinned[:max(keep, 0)]
	}

	out := make([]Entry, 0, len(pinned)+len(unpinned))
	out = append(out, pinned...)
	return append(out, unpinned...)
}

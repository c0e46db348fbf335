package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/ironsheep/colorpick/internal/history"
)

// Storage keys.
const (
	HistoryKey  = "color-picker-history"
	PalettesKey = "color-picker-palettes"
)

// Repository loads and persists the history and palette collections.
type Repository struct {
	kv  KV
	log *slog.Logger
}

// NewRepository creates a Repository over kv. A nil logger discards output.
func NewRepository(kv KV, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Repository{kv: kv, log: logger.With("component", "storage")}
}

// LoadHistory returns the stored history, or nil when nothing usable is
// stored.
func (r *Repository) LoadHistory(ctx context.Context) []history.Entry {
	raw, ok := r.read(ctx, HistoryKey)
	if !ok {
		return nil
	}
	entries, err := decodeEntries(raw)
	if err != nil {
		r.log.Warn("discarding unreadable history", "error", err)
		return nil
	}
	return entries
}

// PersistHistory stores entries.
func (r *Repository) PersistHistory(ctx context.Context, entries []history.Entry) error {
	if entries == nil {
		entries = []history.Entry{}
	}
	return r.write(ctx, HistoryKey, entries)
}

// LoadPalettes returns the stored palettes, or nil when nothing usable is
// stored. Individual palettes that cannot be read are skipped.
func (r *Repository) LoadPalettes(ctx context.Context) []history.Palette {
	raw, ok := r.read(ctx, PalettesKey)
	if !ok {
		return nil
	}

	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		r.log.Warn("discarding unreadable palettes", "error", err)
		return nil
	}

	var out []history.Palette
	for i, rec := range records {
		p, err := decodePalette(rec)
		if err != nil {
			r.log.Warn("skipping unreadable palette", "index", i, "error", err)
			continue
		}
		out = append(out, p)
	}
	return out
}

// PersistPalettes stores palettes.
func (r *Repository) PersistPalettes(ctx context.Context, palettes []history.Palette) error {
	if palettes == nil {
		palettes = []history.Palette{}
	}
	return r.write(ctx, PalettesKey, palettes)
}

func (r *Repository) read(ctx context.Context, key string) ([]byte, bool) {
	raw, err := r.kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return nil, false
	}
	if err != nil {
		r.log.Warn("storage read failed", "key", key, "error", err)
		return nil, false
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, false
	}
	return raw, true
}

func (r *Repository) write(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return r.kv.Put(ctx, key, raw)
}

// decodeEntries accepts a list whose items are either {hex, pinned} objects
// or bare hex strings.
func decodeEntries(raw []byte) ([]history.Entry, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}

	entries := make([]history.Entry, 0, len(items))
	for _, item := range items {
		var hex string
		if err := json.Unmarshal(item, &hex); err == nil {
			entries = append(entries, history.Entry{Hex: hex})
			continue
		}
		var e history.Entry
		if err := json.Unmarshal(item, &e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

type paletteRecord struct {
	ID        json.RawMessage `json:"id"`
	Name      string          `json:"name"`
	Colors    json.RawMessage `json:"colors"`
	CreatedAt time.Time       `json:"createdAt"`
}

func decodePalette(raw []byte) (history.Palette, error) {
	var rec paletteRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return history.Palette{}, err
	}

	id, err := decodeID(rec.ID)
	if err != nil {
		return history.Palette{}, err
	}

	var colors []history.Entry
	if len(rec.Colors) > 0 && string(rec.Colors) != "null" {
		if colors, err = decodeEntries(rec.Colors); err != nil {
			return history.Palette{}, fmt.Errorf("palette %s colors: %w", id, err)
		}
	}

	return history.Palette{ID: id, Name: rec.Name, Colors: colors, CreatedAt: rec.CreatedAt}, nil
}

// decodeID accepts string ids and the numeric (millisecond timestamp) ids of
// older data.
func decodeID(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s = strings.TrimSpace(s); s == "" {
			return "", errors.New("empty palette id")
		}
		return s, nil
	}
	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return "", fmt.Errorf("palette id: %w", err)
	}
	return n.String(), nil
}

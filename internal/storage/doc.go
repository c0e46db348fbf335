// Package storage persists the picker's history and palettes.
//
// A KV is a small durable key-value store. SQLiteKV keeps values in a single
// table of a SQLite database (pure Go driver, no cgo); MemoryKV keeps them in
// process for ephemeral sessions and tests.
//
// Repository maps the history and palette collections onto two keys and is
// deliberately forgiving on reads: missing, unreadable or corrupt data loads
// as an empty collection and is logged, never returned as an error. Older
// value layouts (history stored as a plain list of hex strings, numeric
// palette ids) are migrated on load.
package storage

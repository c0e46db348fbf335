// Package naming labels colors with a human-readable name.
//
// A Table is an ordered list of canonical colors and their display names in
// one language. Lookups try an exact, case-insensitive hex match first and
// otherwise return the entry at the smallest Euclidean distance in RGB
// space. Ties go to the entry that comes first in table order.
//
// The built-in French and English tables are constructed once, on first use,
// and are read-only afterwards; callers receive them as *Table and pass them
// to whatever needs names. A Table is safe for concurrent use.
package naming

// Package history keeps the ordered list of picked colors and the saved
// palettes built from it.
//
// # Ordering
//
// Pinned entries always form a prefix of the list. Within each partition the
// most recent entry comes first. Every mutation is applied and then the list
// is normalized in one step: hex values are canonicalized, invalid and
// duplicate entries are dropped (the first occurrence wins), pinned entries
// are moved to the front without otherwise reordering, and unpinned entries
// are evicted from the tail down to Capacity. Pinned entries are never
// evicted.
//
// # Thread Safety
//
// A Store is not safe for concurrent use. It is owned by a single caller
// (the control core) which serializes access.
package history

// Package tabs contains the gallery pages: one tab per widget family,
// each pane a live demo wired to the core selection models.
//
// Allowed here:
// - demo pane state, tab-specific layout trees, tab-specific focus/jump policy
//
// Not allowed here:
// - shared app routing logic (core) or low-level drawing primitives (widgets)
package tabs

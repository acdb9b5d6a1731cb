// Package core contains the selection state machines and app-wide
// contracts.
//
// Allowed here:
// - option/selection models (single, multi, combobox, calendar) and the
//   roving-focus keyboard contract shared by every list-shaped widget
// - model routing, message contracts, command and key registries
// - tab and pane policy for the gallery shell
//
// Not allowed here:
// - concrete screen/modal rendering implementations
// - low-level widget rendering primitives
package core

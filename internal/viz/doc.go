// Package viz renders a running world in the terminal.
//
// The package implements a full-screen TUI using the Bubble Tea framework:
//
//   - [Model]: feeds keys, mouse presses and resizes to the world and ticks it
//   - [Canvas]: Braille-based pixel canvas for the background decoration
//   - Theme selection with 5 built-in color schemes
//
// Every printable key spawns a glyph, so the controls are chords.
//
// # Key Bindings
//
//	Esc    - Clear the scene
//	Ctrl+P - Pause/Resume simulation
//	Ctrl+T - Cycle color themes
//	Ctrl+G - Toggle the stats panel
//	Tab    - Select a physics parameter
//	Up/Dn  - Tune the selected parameter
//	Ctrl+C - Quit
//
// Terminals cannot scale text, so glyph size only decides draw order: large
// glyphs are drawn first and small ones stay visible on top.
package viz

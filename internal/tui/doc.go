// Package tui renders the tesseract in the terminal with Bubble Tea.
//
// Bubble Tea owns the event loop here, so frames are driven by tick
// messages at the configured rate and the animation loop is stepped
// directly rather than run.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q/Esc - Quit
package tui

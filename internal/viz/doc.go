// Package viz renders the tesseract into terminal cells.
//
//   - [Canvas]: Braille-based pixel canvas, 2x4 sub-pixels per cell
//   - [CanvasSurface]: adapts a Canvas to the animation loop's surface
//   - [Theme] and [Styles]: lipgloss colour schemes for the terminal views
//
// The logical window is square, so a CanvasSurface letterboxes it into the
// largest centred square of sub-pixels; Braille sub-pixels are close to
// square in most terminal fonts.
package viz

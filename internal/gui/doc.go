// Package gui shows the tesseract in a native raylib window.
//
// The window is the animation loop's surface and quit source: closing it or
// pressing Escape stops the loop after the current tick. Lines are drawn
// with raylib's DrawLineEx at the configured width.
package gui

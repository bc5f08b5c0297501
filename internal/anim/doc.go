// Package anim drives the tesseract animation.
//
// A [Loop] owns the rotation angle state and, once per tick, composes the
// plane rotations, rotates the static hypercube, projects it and draws it
// through three collaborators supplied by the host:
//
//   - [Surface]: clear, draw line, present
//   - [Input]: non-blocking quit polling
//   - [Pacer]: caps the tick rate
//
// # Thread Safety
//
// A Loop is driven from a single goroutine. It holds no locks.
package anim

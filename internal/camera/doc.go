// Package camera holds the pipeline's external collaborators: frame sources
// that deliver fixed-size color frames on demand and display sinks that
// accept annotated frames and carry the quit signal.
//
// These are thin I/O wrappers with no algorithmic content. The loop in
// cmd/banana-vision owns timing, back-pressure, and quit polling; the
// detection core in internal/pipeline knows nothing about any of it.
package camera

// Package pipeline wires the detection stages into a per-frame synchronous
// call: one frame in, one annotated frame plus detections out.
//
// The pipeline is purely a function of the current frame and a fixed
// Config. Nothing is carried between frames: no tracking, no smoothing, no
// caches. Throughput-minded callers can run one shared Detector from a
// worker pool, since the only shared state is the read-only configuration.
//
// There is no cancellation inside the pipeline; a caller cancels by not
// submitting the next frame. Error surface is deliberately small: only
// malformed frames (ErrInvalidFrame) and out-of-range thresholds
// (ErrInvalidConfig) fail, and both are detected eagerly. Empty masks and
// zero detections are ordinary results.
package pipeline

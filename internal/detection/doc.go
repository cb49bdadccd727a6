// Package detection measures connected components of a binary mask and
// classifies them as banana-like or not.
//
// # Measurement
//
// FindComponents labels maximal 8-connected regions of true pixels and
// computes per-component descriptors: pixel area, axis-aligned bounding box,
// convex-hull pixel area, eccentricity of the best-fit ellipse, and solidity.
// Component order is deterministic (row-major scan order of each component's
// first pixel), so repeated runs over the same mask produce identical output.
//
// # Classification
//
// Classify is a conjunctive threshold filter over the descriptors: every
// criterion must hold for a component to be flagged. The thresholds are the
// system's only tunable surface; see Thresholds for what each one means
// physically.
//
// Descriptors are fully determined by the mask. There is no randomness and
// no memory between calls.
package detection

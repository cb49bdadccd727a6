// Package imaging provides the pixel-level primitives of the detection
// pipeline: HSV color segmentation, binary morphology, and mask boundary
// extraction.
//
// All operations work on the Mask type, a dense [y][x] boolean grid, and on
// standard Go image.Image values. The coordinate system is 0-based with the
// origin at the top-left corner, X increasing rightward and Y increasing
// downward.
//
// # Purity
//
// Every function in this package is a pure function of its inputs: masks and
// frames are never mutated in place, never retained between calls, and a
// fresh Mask is allocated for each result. This is what makes the pipeline
// safe to run concurrently on a worker pool with a shared configuration.
//
// # Morphology Conventions
//
// Structuring elements are disks: the set of integer offsets within a
// Euclidean radius of the center. Padding follows the standard morphological
// convention (out-of-bounds pixels read as false for dilation and true for
// erosion), so an all-true mask is a fixed point of both closing and opening.
//
// # Empty Masks
//
// An empty mask (no true pixels, or zero dimensions) is a normal value, not
// an error. Every operation maps an empty input to an empty output.
package imaging

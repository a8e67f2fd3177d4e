// Package v2edges owns Layer 2 (Edges) of the vector pipeline.
//
// Responsibilities: combining directional derivatives into gradient
// magnitude and direction grids, non-maximum suppression along the
// gradient direction, binarization, and the optional Otsu
// auto-threshold.
//
// Dependency rule: v2edges may depend on vision and v1raster, never on
// v3+ layers.
package v2edges

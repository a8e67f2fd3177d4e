// Package v1raster owns Layer 1 (Raster) of the vector pipeline.
//
// Responsibilities: the dense scalar Grid, bilinear fractional
// sampling, K×K convolution, and the fixed blur/derivative kernels.
// Key types: Grid.
//
// Dependency rule: v1raster may depend on internal/vision only.
// Out-of-bounds access is never an error anywhere in this package:
// integer and fractional reads outside the grid resolve to 0.0.
package v1raster

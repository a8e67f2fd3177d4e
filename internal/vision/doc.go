// Package vision owns the shared types of the image-to-stroke pipeline.
//
// The pipeline is layered: v1raster (grids and convolution), v2edges
// (gradients and thinning), v3borders (border tracing), v4curves
// (simplification and ordering). Each layer may depend on this package
// and on layers below it, never above. Package pipeline is the
// composition root.
//
// No pointer automation or terminal code is allowed in vision packages;
// those live in internal/drawer and internal/inputwatch.
package vision

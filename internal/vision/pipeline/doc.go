// Package pipeline orchestrates the vector pipeline from decoded
// raster through ordered curves.
//
// This package is the composition root: it imports the layer packages
// (v1raster, v2edges, v3borders, v4curves), but none of those import
// pipeline. It owns no domain logic beyond sequencing and parameter
// resolution.
package pipeline

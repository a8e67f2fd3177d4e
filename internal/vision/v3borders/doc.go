// Package v3borders owns Layer 3 (Borders) of the vector pipeline.
//
// Responsibilities: the mutable label grid, the Suzuki–Abe style
// border-following scan, and extraction of discrete curves from the
// ordered border table.
//
// The tracer relabels the grid in place during a single row-major
// pass. Scan order is a correctness requirement, not a performance
// choice: the last-nonzero-border bookkeeping (lnbd) assumes cells
// above and to the left have already been finalized. The label grid is
// owned exclusively by the tracer for the duration of the pass and is
// not safe for concurrent use.
//
// Dependency rule: v3borders may depend on vision, v1raster, and
// v2edges, never on v4curves or pipeline.
package v3borders

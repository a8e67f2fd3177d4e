// Package v4curves owns Layer 4 (Curves) of the vector pipeline.
//
// Responsibilities: Ramer–Douglas–Peucker simplification and the
// combined sort-and-prune ordering of the final curve list.
//
// Dependency rule: v4curves may depend on vision and lower layers,
// never on pipeline.
package v4curves

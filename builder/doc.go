// SPDX-License-Identifier: MIT

// Package builder assembles preset topologies on a core.Graph.
//
// Every constructor goes through the public store operations only
// (Graph.AddNode and Graph.AddEdge), so presets obey the same invariants as
// interactive edits: IDs are allocated by the store, and every edge joins two
// existing nodes. Presets can be applied to an empty graph (BuildGraph) or
// appended to one that already holds nodes (Apply); new node IDs simply
// continue the store's sequence.
//
// Constructors:
//
//   - Path(n), Cycle(n), Star(n), Wheel(n), Complete(n)
//   - Grid(rows, cols) with 4-neighborhood
//   - RandomSparse(n, p) Erdős–Rényi sampling, deterministic under WithSeed
//
// Parse turns a textual preset such as "cycle:5" or "grid:3x4" into a
// Constructor, which is what the CLI accepts.
//
// Edge weights are strings in the store. WeightFn values are rendered with
// strconv.FormatFloat(w, 'f', -1, 64), so the default weight is "1".
package builder

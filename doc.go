// Package walkview builds small undirected graphs and replays their DFS or
// BFS visitation order one node at a time on a rendering surface.
//
// Layout of the module:
//
//	core/      graph store (nodes, edges, "e"+N edge IDs) and adjacency builder
//	dfs/, bfs/ traversal engines over a core.Adjacency snapshot
//	traverse/  kind parsing, start coercion and the "DFS: 0 -> 1" log line
//	playback/  frontier/visited state machine and the ticking animator
//	layout/    grid and force-directed node placement
//	render/    Surface contract plus in-memory, line-writer and websocket surfaces
//	builder/   preset topologies (path, cycle, star, wheel, complete, grid, random)
//	session/   owns one graph, one surface and one animator; metrics and tracing
//	server/    gin HTTP API, /ws feed and /metrics
//	config/    YAML and environment configuration, slog setup
//	cmd/walkview  "serve" and "run" commands
//
// Quick example, a square:
//
//	0───1
//	│   │
//	3───2
//
//	walkview run --preset cycle:4 --kind bfs --start 0
//	BFS: 0 -> 1 -> 3 -> 2
package walkview

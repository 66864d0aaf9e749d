package graph

import "errors"

var (
	// ErrVertexNotFound is returned when an operation references a vertex
	// that is not in the graph.
	ErrVertexNotFound = errors.New("vertex not found")

	// ErrEdgeNotFound is returned when removing an edge that is not present.
	ErrEdgeNotFound = errors.New("edge not found")

	// ErrSelfLoop is returned when adding an edge from a vertex to itself.
	ErrSelfLoop = errors.New("self-loops are not allowed")

	// ErrCycle is returned when a topological sort finds a cycle.
	ErrCycle = errors.New("graph contains a cycle")

	// ErrUndirected is returned when a directed-only operation is called on
	// an undirected graph.
	ErrUndirected = errors.New("operation requires a directed graph")

	// ErrNoPath is returned when no path exists between two vertices.
	ErrNoPath = errors.New("no path between vertices")

	// ErrNegativeWeight is returned when a shortest-path query encounters a
	// negative edge weight.
	ErrNegativeWeight = errors.New("negative edge weights are not supported")
)

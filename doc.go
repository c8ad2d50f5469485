// Package astar provides a generic A* best-first search over graphs the caller
// never has to build.
//
// The caller describes the graph with four functions: the nodes reachable from
// a node, a goal test, a heuristic estimate of the remaining cost, and the cost
// of an edge. Node identifiers can be any comparable type.
//
// It exposes two main entry points:
//
//   - Search: run the algorithm to completion and get a Path.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// A few behaviors differ from textbook A* and are kept on purpose:
//
//   - A start node that already satisfies the goal test yields no path.
//   - The goal test runs when a node is generated, not when it is expanded, so
//     the first goal seen ends the search. Routes are shortest for uniform edge
//     costs and an admissible heuristic, not for arbitrary edge weights.
//   - A node is closed the first time it is popped, even if the popped entry is
//     stale.
//   - By default a stored route is replaced when the new f-score is lower (see
//     RelaxByF and RelaxByG).
//   - Entries with equal f-score leave the frontier in insertion order. Other
//     implementations may order ties differently.
package astar

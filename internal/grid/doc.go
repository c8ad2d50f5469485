// Package grid is a four-connected grid world for the astar package: the grid
// model, clustered random walls, YAML problem files and a terminal renderer.
package grid

// Package diskspace builds and renders per-directory disk usage reports.
//
// Measurements (block count and absolute path) are obtained from a Source,
// either the system du utility or a parallel fastwalk traversal, folded into
// a path-keyed tree, sorted by size and rendered as a flat or indented
// listing with percentages relative to the root.
package diskspace

// Package xcover implements Knuth's Algorithm X, a recursive backtracking
// search for the exact cover problem, using the minimum-remaining-values
// (MRV) heuristic to choose which item to cover next.
//
// An instance is a universe of items, some mandatory and some optional, and a
// collection of options, each of which covers a fixed subset of items. A
// solution is a set of options such that every mandatory item is covered by
// exactly one chosen option and every optional item by at most one.
//
// Construct builds an Instance from a reducer's problem description;
// SolveOne and CountAll (and AllSolutions) then drive the search. Instance is
// immutable once built: every call to SolveOne/CountAll/AllSolutions starts
// from the same initial state and runs independently, so results are
// deterministic and repeatable.
package xcover

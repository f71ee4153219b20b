// Package ai (Artificial Intelligence) defines standard types and interfaces that AIs for the game
// have to implement.
package ai

import (
	. "github.com/janpfeifer/draughtsGo/internal/state"
)

// Score of a position: positive values favour the first player (White), negative values favour
// the second player (Black).
type Score int

// Infinity is the sentinel for unbounded alpha-beta windows. It is well short of the integer range,
// so -Infinity and comparisons against it never overflow, and it's larger than any evaluation.
const Infinity Score = 1 << 30

// Evaluator statically scores a board, without searching.
//
// Evaluate must be deterministic and must not modify the board.
type Evaluator interface {
	Evaluate(board *Board) Score
	String() string
}

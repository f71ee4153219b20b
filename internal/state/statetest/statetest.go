// Package statetest provides helper functions to create tests using draughts state.
package statetest

import (
	"math/rand/v2"

	. "github.com/janpfeifer/draughtsGo/internal/state"
)

// PieceOnBoard represents a square and its contents.
type PieceOnBoard struct {
	Square Square
	Piece  Piece
}

// BuildBoard from a collection of pieces, with nextPlayer to move.
func BuildBoard(layout []PieceOnBoard, nextPlayer PlayerNum) (b *Board) {
	b = NewEmptyBoard()
	for _, p := range layout {
		b.SetPiece(p.Square, p.Piece)
	}
	b.NextPlayer = nextPlayer
	return
}

// RandomWalk plays up to numPlies uniformly random legal moves from the starting position.
// It stops earlier if the match ends.
func RandomWalk(rng *rand.Rand, numPlies int) *Board {
	b := NewBoard()
	for range numPlies {
		moves := b.LegalMoves()
		if len(moves) == 0 {
			break
		}
		b.Act(moves[rng.IntN(len(moves))])
	}
	return b
}

// NewRand returns a deterministic random number generator for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

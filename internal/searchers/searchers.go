// Package searchers defines the Searcher interface implemented by the search algorithms, and
// the uniformly random move selection they fall back to.
package searchers

import (
	"math/rand/v2"

	"github.com/janpfeifer/draughtsGo/internal/ai"
	. "github.com/janpfeifer/draughtsGo/internal/state"
)

// Searcher is the interface that any of the search algorithms must adhere to be valid.
type Searcher interface {
	// Search returns the move to play on the given board, along with its expected score.
	// If there are no legal moves, found is false.
	//
	// The board may be used as scratch space during the search, but it is restored before returning.
	Search(board *Board) (move Move, score ai.Score, found bool)

	// Stop requests the search in progress to abort as soon as possible. It can be called from any
	// goroutine.
	Stop()

	// String returns a description of the searcher, for logging.
	String() string
}

// RandomMove returns a uniformly random legal move, or found=false if there are no legal moves.
// If rng is nil, the global random source is used.
func RandomMove(board *Board, rng *rand.Rand) (move Move, found bool) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return
	}
	var idx int
	if rng == nil {
		idx = rand.IntN(len(moves))
	} else {
		idx = rng.IntN(len(moves))
	}
	return moves[idx], true
}

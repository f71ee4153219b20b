// Package alphabeta implements a fixed depth alpha-beta pruning searchers.Searcher.
//
// White (the first player) maximizes and Black (the second player) minimizes the score returned by
// the evaluator. The search can be interrupted from another goroutine with Searcher.Stop, in
// which case a random legal move is played.
package alphabeta

import (
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/draughtsGo/internal/ai"
	"github.com/janpfeifer/draughtsGo/internal/searchers"
	. "github.com/janpfeifer/draughtsGo/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// ErrStopped is returned by the recursion when the search was interrupted with Searcher.Stop.
var ErrStopped = errors.New("alpha-beta search stopped")

// Searcher implements the searchers.Searcher interface.
// It is used by players.SearcherScorer, along with the evaluator, to implement an AI player.
type Searcher struct {
	maxDepth  int
	evaluator ai.Evaluator

	// rng used for the random fallback move. If nil the global source is used.
	rng *rand.Rand

	// stopped is set by Stop, and consumed by the first recursion step that observes it.
	stopped atomic.Bool

	lastScore atomic.Int64
	stats     Stats
}

// Assert that Searcher implements searchers.Searcher.
var _ searchers.Searcher = (*Searcher)(nil)

// Stats stores running stats collected during the search: for benchmarking, monitoring and debugging purposes.
type Stats struct {
	// Nodes visited, including leaves.
	Nodes int

	// LeafEvals is the number of calls to the evaluator.
	LeafEvals int

	// Prunes counts the cut-offs, each skipping the remaining moves of a node.
	Prunes int
}

// New returns an Alpha-Beta Pruning based searchers.Searcher implementation.
// There are other optional configurations, see methods Searcher.With...
//
// The one obligatory parameter is the evaluator used on the leaves of the search.
//
// See: wikipedia.org/wiki/Alpha-beta_pruning
func New(evaluator ai.Evaluator) *Searcher {
	return &Searcher{
		evaluator: evaluator,
		maxDepth:  DefaultMaxDepth,
	}
}

// DefaultMaxDepth for search.
const DefaultMaxDepth = 4

// WithMaxDepth sets the depth of the search: the unit here are plies. Each player playing
// counts as one ply. See https://en.wikipedia.org/wiki/Ply_(game_theory).
//
// With depth 0 the board is only evaluated, no move is selected and a random move is played.
//
// The default is 4 (DefaultMaxDepth).
func (ab *Searcher) WithMaxDepth(maxDepth int) *Searcher {
	if maxDepth < 0 {
		exceptions.Panicf("alphabeta.WithMaxDepth(%d): depth must be >= 0", maxDepth)
	}
	ab.maxDepth = maxDepth
	return ab
}

// WithRand sets the source of randomness used to pick a move when the search doesn't select one.
// The default (nil) uses the global source.
func (ab *Searcher) WithRand(rng *rand.Rand) *Searcher {
	ab.rng = rng
	return ab
}

// MaxDepth of the search, in plies.
func (ab *Searcher) MaxDepth() int { return ab.maxDepth }

// String implements searchers.Searcher.
func (ab *Searcher) String() string {
	return fmt.Sprintf("alpha-beta(max_depth=%d, %s)", ab.maxDepth, ab.evaluator)
}

// Stop implements searchers.Searcher. It is safe to call from any goroutine.
//
// The request is consumed by the search in progress, or if there is none, by the next one
// started, which then plays a random move.
func (ab *Searcher) Stop() {
	ab.stopped.Store(true)
}

// LastScore returns the score of the last completed search. It is 0 while a search is in
// progress and after an interrupted search.
func (ab *Searcher) LastScore() ai.Score {
	return ai.Score(ab.lastScore.Load())
}

// Stats of the last search.
func (ab *Searcher) Stats() Stats {
	return ab.stats
}

// Search implements searchers.Searcher.
//
// It searches to the configured depth and returns the best move found for board.NextPlayer. If
// the search is interrupted, or no move is selected, a uniformly random legal move is
// returned instead, and found is false only if there are no legal moves.
//
// The board is used as scratch space, and it is restored before returning.
func (ab *Searcher) Search(board *Board) (move Move, score ai.Score, found bool) {
	start := time.Now()
	ab.lastScore.Store(0)
	ab.stats = Stats{}

	root := newNode(board)
	value, err := ab.alphaBeta(root, -ai.Infinity, ai.Infinity, ab.maxDepth)
	elapsed := time.Since(start)
	if err != nil {
		if !errors.Is(err, ErrStopped) {
			exceptions.Panicf("alpha-beta search failed: %+v", err)
		}
		klog.V(1).Infof("%s stopped after %s, %d nodes visited", ab, elapsed, ab.stats.Nodes)
	} else {
		ab.lastScore.Store(int64(value))
		move, found = root.BestMove()
	}
	if !found {
		move, found = searchers.RandomMove(board, ab.rng)
		if found {
			klog.Warningf("%s: no move selected for %s at move #%d, playing random move %s",
				ab, board.NextPlayer, board.MoveNumber, move)
		}
	}
	score = ab.LastScore()

	if klog.V(3).Enabled() && found {
		klog.Infof("Board:\n%sBest move found: %s - shallow score=%d, αβ-score=%d",
			board, move, ab.evaluator.Evaluate(board), score)
	}
	if klog.V(2).Enabled() {
		seconds := elapsed.Seconds()
		klog.Infof("Counts: %+v", ab.stats)
		if seconds > 0 {
			klog.Infof("  nodes/s=%.1f, evals/s=%.1f", float64(ab.stats.Nodes)/seconds, float64(ab.stats.LeafEvals)/seconds)
		}
	}
	return
}

// alphaBeta scores the node with depth plies to go, within the window [alpha, beta].
//
// The scores are fail-soft: if the value is outside the window, the returned value is a bound
// that can be itself outside the window.
//
// It returns ErrStopped if the search was interrupted, in which case the returned score is
// meaningless. The board is restored in either case.
func (ab *Searcher) alphaBeta(node *Node, alpha, beta ai.Score, depth int) (ai.Score, error) {
	if ab.stopped.CompareAndSwap(true, false) {
		return 0, ErrStopped
	}
	ab.stats.Nodes++
	if depth <= 0 {
		ab.stats.LeafEvals++
		return ab.evaluator.Evaluate(node.board), nil
	}
	if node.board.NextPlayer == PlayerFirst {
		return ab.alphaBetaMax(node, alpha, beta, depth)
	}
	return ab.alphaBetaMin(node, alpha, beta, depth)
}

// alphaBetaMax is the recursion step for White, the maximizing player.
// With no legal moves it returns -ai.Infinity.
func (ab *Searcher) alphaBetaMax(node *Node, alpha, beta ai.Score, depth int) (ai.Score, error) {
	board := node.board
	value := -ai.Infinity
	var bestMove Move
	hasBestMove := false
	for _, move := range board.LegalMoves() {
		board.Act(move)
		childValue, err := ab.alphaBeta(newNode(board), alpha, beta, depth-1)
		board.Undo(move)
		if err != nil {
			return 0, err
		}
		value = max(value, childValue)
		if value > alpha {
			alpha = value
			bestMove, hasBestMove = move, true
		}
		if alpha >= beta {
			ab.stats.Prunes++
			break
		}
	}
	if hasBestMove {
		node.setBestMove(bestMove)
	}
	return value, nil
}

// alphaBetaMin is the recursion step for Black, the minimizing player.
// With no legal moves it returns +ai.Infinity.
func (ab *Searcher) alphaBetaMin(node *Node, alpha, beta ai.Score, depth int) (ai.Score, error) {
	board := node.board
	value := ai.Infinity
	var bestMove Move
	hasBestMove := false
	for _, move := range board.LegalMoves() {
		board.Act(move)
		childValue, err := ab.alphaBeta(newNode(board), alpha, beta, depth-1)
		board.Undo(move)
		if err != nil {
			return 0, err
		}
		value = min(value, childValue)
		if value < beta {
			beta = value
			bestMove, hasBestMove = move, true
		}
		if alpha >= beta {
			ab.stats.Prunes++
			break
		}
	}
	if hasBestMove {
		node.setBestMove(bestMove)
	}
	return value, nil
}

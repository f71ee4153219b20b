// Package match runs draughts matches between two players, enforcing the time limit of each move.
package match

import (
	"context"
	"sync"
	"time"

	"github.com/janpfeifer/draughtsGo/internal/ai"
	"github.com/janpfeifer/draughtsGo/internal/players"
	. "github.com/janpfeifer/draughtsGo/internal/state"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

// Options of a match. The zero value is valid.
type Options struct {
	// Start position, not modified. Defaults to NewBoard().
	Start *Board

	// MaxMoves is the number of plies after which the match is a draw. Defaults to DefaultMaxMoves.
	MaxMoves int

	// MoveTime is the wall-clock limit of each move: once it expires the player is stopped, and
	// it plays whatever it has. 0 means no limit.
	MoveTime time.Duration

	// OnMove, if set, is called after each move is played on board.
	OnMove func(board *Board, move Move, score ai.Score)
}

// Result of a match.
type Result struct {
	// Winner of the match, or PlayerInvalid for a draw.
	Winner PlayerNum

	// Moves played, and the score reported by the player for each of them.
	Moves  []Move
	Scores []ai.Score

	// Board at the end of the match.
	Board *Board
}

// Run plays a match between the given players, indexed by PlayerNum, until the side to move has no
// legal moves (and loses), or opts.MaxMoves plies are played (a draw).
//
// Cancelling ctx stops the player thinking, and Run returns the context error along with the
// partial result. Both players are finalized at the end.
func Run(ctx context.Context, matchPlayers [NumPlayers]players.Player, opts Options) (*Result, error) {
	defer func() {
		for _, player := range matchPlayers {
			player.Finalize()
		}
	}()
	board := NewBoard()
	if opts.Start != nil {
		board = opts.Start.Clone()
	}
	maxMoves := opts.MaxMoves
	if maxMoves <= 0 {
		maxMoves = DefaultMaxMoves
	}

	result := &Result{Winner: PlayerInvalid, Board: board}
	for {
		if err := ctx.Err(); err != nil {
			return result, errors.WithMessagef(err, "match interrupted at move #%d", board.MoveNumber)
		}
		if board.IsFinished() {
			result.Winner = board.Winner()
			break
		}
		if len(result.Moves) >= maxMoves {
			break
		}
		player := matchPlayers[board.NextPlayer]
		move, score, found := playMove(ctx, player, board, opts.MoveTime)
		if !found {
			return result, errors.Errorf("%s player (%s) returned no move at move #%d, with %d legal moves available",
				board.NextPlayer, player, board.MoveNumber, len(board.LegalMoves()))
		}
		board.Act(move)
		result.Moves = append(result.Moves, move)
		result.Scores = append(result.Scores, score)
		if opts.OnMove != nil {
			opts.OnMove(board, move, score)
		}
	}
	klog.V(1).Infof("Match finished after %d moves: winner=%s", len(result.Moves), result.Winner)
	return result, nil
}

// playMove asks the player for a move, stopping it if ctx is done or moveTime expires.
func playMove(ctx context.Context, player players.Player, board *Board, moveTime time.Duration) (Move, ai.Score, bool) {
	stopOnDone := context.AfterFunc(ctx, player.Stop)
	defer stopOnDone()
	if moveTime > 0 {
		timer := time.AfterFunc(moveTime, player.Stop)
		defer timer.Stop()
	}
	return player.Play(board)
}

// Tally of a series of matches between two configurations.
type Tally struct {
	// Wins of each configuration, indexed by configuration (not by color).
	Wins  [NumPlayers]int
	Draws int

	// Plies played in total.
	Plies int
}

// NewPlayersFn creates the players of the matchIdx-th match, indexed by configuration.
type NewPlayersFn func(matchIdx int) ([NumPlayers]players.Player, error)

// RunMany plays numMatches matches, with up to parallelism of them running at the same time.
// Colors alternate: in even matches the first configuration plays White, in odd matches Black.
//
// It returns at the first error, cancelling the matches in progress.
func RunMany(ctx context.Context, numMatches, parallelism int, newPlayers NewPlayersFn, opts Options) (Tally, error) {
	var (
		mu    sync.Mutex
		tally Tally
	)
	g, ctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}
	for matchIdx := range numMatches {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			configPlayers, err := newPlayers(matchIdx)
			if err != nil {
				return errors.WithMessagef(err, "failed to create players for match #%d", matchIdx)
			}
			swapped := matchIdx%2 == 1
			matchPlayers := configPlayers
			if swapped {
				matchPlayers[PlayerFirst], matchPlayers[PlayerSecond] = configPlayers[1], configPlayers[0]
			}
			result, err := Run(ctx, matchPlayers, opts)
			if err != nil {
				return errors.WithMessagef(err, "match #%d", matchIdx)
			}

			mu.Lock()
			defer mu.Unlock()
			tally.Plies += len(result.Moves)
			if result.Winner == PlayerInvalid {
				tally.Draws++
				klog.V(1).Infof("Match #%d: draw after %d moves", matchIdx, len(result.Moves))
				return nil
			}
			configIdx := int(result.Winner)
			if swapped {
				configIdx = 1 - configIdx
			}
			tally.Wins[configIdx]++
			klog.V(1).Infof("Match #%d: %s (%s) wins after %d moves",
				matchIdx, result.Winner, configPlayers[configIdx], len(result.Moves))
			return nil
		})
	}
	err := g.Wait()
	return tally, err
}

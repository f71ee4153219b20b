package match

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/janpfeifer/draughtsGo/internal/ai"
	"github.com/janpfeifer/draughtsGo/internal/players"
	_ "github.com/janpfeifer/draughtsGo/internal/players/default"
	. "github.com/janpfeifer/draughtsGo/internal/state"
	"github.com/janpfeifer/draughtsGo/internal/state/statetest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlayers(t *testing.T, config1, config2 string) [NumPlayers]players.Player {
	var matchPlayers [NumPlayers]players.Player
	for ii, config := range []string{config1, config2} {
		player, err := players.New(t.Name(), PlayerNum(ii), config)
		require.NoError(t, err)
		matchPlayers[ii] = player
	}
	return matchPlayers
}

func TestRunRandom(t *testing.T) {
	for seed := range 5 {
		config := fmt.Sprintf("random:seed=%d", seed)
		var numCallbacks int
		result, err := Run(context.Background(), newPlayers(t, config, config), Options{
			OnMove: func(board *Board, move Move, score ai.Score) { numCallbacks++ },
		})
		require.NoError(t, err)
		assert.Len(t, result.Scores, len(result.Moves))
		assert.Equal(t, len(result.Moves), numCallbacks)
		assert.LessOrEqual(t, len(result.Moves), DefaultMaxMoves)

		// Replaying the moves reaches the final board.
		board := NewBoard()
		for _, move := range result.Moves {
			require.Contains(t, board.LegalMoves(), move)
			board.Act(move)
		}
		assert.True(t, board.Equal(result.Board))
		if result.Winner != PlayerInvalid {
			assert.True(t, board.IsFinished())
			assert.Equal(t, board.OpponentPlayer(), result.Winner)
		} else {
			assert.Equal(t, DefaultMaxMoves, len(result.Moves))
		}
	}
}

func TestRunMaxMoves(t *testing.T) {
	result, err := Run(context.Background(), newPlayers(t, "heuristic:ab,max_depth=1", "random:seed=1"),
		Options{MaxMoves: 4})
	require.NoError(t, err)
	assert.Equal(t, PlayerInvalid, result.Winner)
	assert.Len(t, result.Moves, 4)
	assert.Equal(t, 5, result.Board.MoveNumber)
}

func TestRunFinishedPosition(t *testing.T) {
	// White has no pieces left: Black wins without playing.
	start := statetest.BuildBoard([]statetest.PieceOnBoard{{18, SecondMan}}, PlayerFirst)
	result, err := Run(context.Background(), newPlayers(t, "random", "random"), Options{Start: start})
	require.NoError(t, err)
	assert.Equal(t, PlayerSecond, result.Winner)
	assert.Empty(t, result.Moves)
}

func TestRunCaptureWins(t *testing.T) {
	// White captures the last black man.
	start := statetest.BuildBoard([]statetest.PieceOnBoard{{32, FirstMan}, {27, SecondMan}}, PlayerFirst)
	result, err := Run(context.Background(), newPlayers(t, "heuristic:ab,max_depth=2", "random"), Options{Start: start})
	require.NoError(t, err)
	assert.Equal(t, PlayerFirst, result.Winner)
	require.Len(t, result.Moves, 1)
	assert.Equal(t, "32x21", result.Moves[0].String())
	assert.Equal(t, SecondMan, start.PieceAt(27), "start position must not be modified")
}

// fakePlayer plays the first legal move. If blocking, it waits for Stop before answering.
type fakePlayer struct {
	blocking  bool
	noMove    bool
	stop      chan struct{}
	numStops  atomic.Int32
	finalized bool
}

func newFakePlayer(blocking bool) *fakePlayer {
	return &fakePlayer{blocking: blocking, stop: make(chan struct{}, 1)}
}

func (p *fakePlayer) Play(board *Board) (move Move, score ai.Score, found bool) {
	if p.blocking {
		<-p.stop
	}
	if p.noMove {
		return
	}
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return
	}
	return moves[0], 0, true
}

func (p *fakePlayer) Stop() {
	p.numStops.Add(1)
	select {
	case p.stop <- struct{}{}:
	default:
	}
}

func (p *fakePlayer) Finalize()      { p.finalized = true }
func (p *fakePlayer) String() string { return "fake" }

func TestRunMoveTime(t *testing.T) {
	white, black := newFakePlayer(true), newFakePlayer(true)
	result, err := Run(context.Background(), [NumPlayers]players.Player{white, black},
		Options{MaxMoves: 3, MoveTime: 5 * time.Millisecond})
	require.NoError(t, err)
	assert.Len(t, result.Moves, 3)
	assert.GreaterOrEqual(t, white.numStops.Load(), int32(2))
	assert.GreaterOrEqual(t, black.numStops.Load(), int32(1))
	assert.True(t, white.finalized)
	assert.True(t, black.finalized)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	white, black := newFakePlayer(true), newFakePlayer(true)
	result, err := Run(ctx, [NumPlayers]players.Player{white, black}, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.LessOrEqual(t, len(result.Moves), 1)
	assert.True(t, white.finalized)
}

func TestRunNoMove(t *testing.T) {
	white := newFakePlayer(false)
	white.noMove = true
	_, err := Run(context.Background(), [NumPlayers]players.Player{white, newFakePlayer(false)}, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "returned no move")
}

func TestRunMany(t *testing.T) {
	const numMatches = 6
	var created atomic.Int32
	tally, err := RunMany(context.Background(), numMatches, 3,
		func(matchIdx int) ([NumPlayers]players.Player, error) {
			created.Add(1)
			var matchPlayers [NumPlayers]players.Player
			var err error
			matchPlayers[0], err = players.New(t.Name(), PlayerFirst, fmt.Sprintf("random:seed=%d", matchIdx))
			if err != nil {
				return matchPlayers, err
			}
			matchPlayers[1], err = players.New(t.Name(), PlayerSecond, "random")
			return matchPlayers, err
		}, Options{MaxMoves: 60})
	require.NoError(t, err)
	assert.Equal(t, int32(numMatches), created.Load())
	assert.Equal(t, numMatches, tally.Wins[0]+tally.Wins[1]+tally.Draws)
	assert.Greater(t, tally.Plies, 0)

	_, err = RunMany(context.Background(), numMatches, 2,
		func(matchIdx int) ([NumPlayers]players.Player, error) {
			return [NumPlayers]players.Player{}, errors.New("no players for you")
		}, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no players for you")
}

func TestRunManyAlternatesColors(t *testing.T) {
	// White has no pieces in the start position, so Black always wins: with alternating colors each
	// configuration wins half of the matches.
	start := statetest.BuildBoard([]statetest.PieceOnBoard{{18, SecondMan}}, PlayerFirst)
	tally, err := RunMany(context.Background(), 4, 0,
		func(matchIdx int) ([NumPlayers]players.Player, error) {
			return [NumPlayers]players.Player{newFakePlayer(false), newFakePlayer(false)}, nil
		}, Options{Start: start})
	require.NoError(t, err)
	assert.Equal(t, Tally{Wins: [NumPlayers]int{2, 2}}, tally)
}

package players_test

import (
	"testing"

	"github.com/janpfeifer/draughtsGo/internal/ai"
	"github.com/janpfeifer/draughtsGo/internal/ai/heuristic"
	"github.com/janpfeifer/draughtsGo/internal/features"
	"github.com/janpfeifer/draughtsGo/internal/players"
	_ "github.com/janpfeifer/draughtsGo/internal/players/default"
	"github.com/janpfeifer/draughtsGo/internal/searchers/alphabeta"
	. "github.com/janpfeifer/draughtsGo/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModuleNames(t *testing.T) {
	assert.Equal(t, []string{"heuristic", "random"}, players.ModuleNames())
}

func TestNew(t *testing.T) {
	board := NewBoard()
	for _, config := range []string{
		"",
		"heuristic:ab,max_depth=1",
		"heuristic:ab,max_depth=2,heuristic=material,seed=5",
		"heuristic:ab,max_depth=1,w_tempi=2,king=4",
		"random",
		"random:seed=3",
	} {
		player, err := players.New("test", PlayerFirst, config)
		require.NoErrorf(t, err, "config %q", config)
		move, _, found := player.Play(board)
		require.Truef(t, found, "config %q", config)
		assert.Containsf(t, board.LegalMoves(), move, "config %q", config)
		assert.True(t, NewBoard().Equal(board))
		player.Finalize()
	}
}

func TestNewErrors(t *testing.T) {
	for _, config := range []string{
		"unknown",
		"heuristic",
		"heuristic:ab,max_depth=-2",
		"heuristic:ab,max_depth=2,bogus=1",
		"heuristic:ab,w_count=many",
		"random:seed=abc",
		"random:max_depth=3",
	} {
		_, err := players.New("test", PlayerSecond, config)
		assert.Errorf(t, err, "config %q", config)
	}
}

func TestSearcherScorer(t *testing.T) {
	player, err := players.New("test", PlayerFirst, "heuristic:ab,max_depth=3,w_center=7")
	require.NoError(t, err)
	ss, ok := player.(*players.SearcherScorer)
	require.True(t, ok)
	scorer, ok := ss.Evaluator.(*heuristic.Scorer)
	require.True(t, ok)
	assert.Equal(t, heuristic.Default.Weights()[features.IdMaterial], scorer.Weights()[features.IdMaterial])
	assert.Equal(t, ai.Score(7), scorer.Weights()[features.IdCenter])
	ab, ok := ss.Searcher.(*alphabeta.Searcher)
	require.True(t, ok)
	assert.Equal(t, 3, ab.MaxDepth())

	// A stop request before playing still returns a legal move.
	board := NewBoard()
	player.Stop()
	move, score, found := player.Play(board)
	require.True(t, found)
	assert.Contains(t, board.LegalMoves(), move)
	assert.Zero(t, score)
}

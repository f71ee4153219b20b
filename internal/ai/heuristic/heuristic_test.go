package heuristic

import (
	"testing"

	"github.com/janpfeifer/draughtsGo/internal/ai"
	"github.com/janpfeifer/draughtsGo/internal/features"
	"github.com/janpfeifer/draughtsGo/internal/parameters"
	. "github.com/janpfeifer/draughtsGo/internal/state"
	. "github.com/janpfeifer/draughtsGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	assert.Equal(t, ai.Score(0), Default.Evaluate(NewBoard()))

	b := BuildBoard([]PieceOnBoard{{28, FirstMan}}, PlayerFirst)
	assert.Equal(t, ai.Score(100+5), Default.Evaluate(b))
	assert.Equal(t, ai.Score(1), MaterialOnly.Evaluate(b))

	b = BuildBoard([]PieceOnBoard{{28, FirstKing}, {19, SecondMan}, {23, SecondMan}}, PlayerFirst)
	// Material: 3-2, Formation: -2, Tempo: -9.
	assert.Equal(t, ai.Score(100-3*2-9), Default.Evaluate(b))
	assert.Equal(t, ai.Score(1), MaterialOnly.Evaluate(b))
	assert.Equal(t, features.Vector{1, 0, -2, -9}, Default.Breakdown(b))
}

func TestExtraMan(t *testing.T) {
	b := NewBoard()
	b.SetPiece(18, Empty)
	assert.Positive(t, Default.Evaluate(b))
	assert.Positive(t, MaterialOnly.Evaluate(b))
}

func TestEvaluateIsPure(t *testing.T) {
	rng := NewRand(7)
	for walk := range 50 {
		b := RandomWalk(rng, walk)
		before := b.Clone()
		score := Default.Evaluate(b)
		require.True(t, before.Equal(b), "Evaluate modified the board")
		require.Equal(t, score, Default.Evaluate(b), "Evaluate is not deterministic")
	}
}

func TestNewFromParams(t *testing.T) {
	params := parameters.NewFromConfigString("ab,max_depth=3")
	scorer, err := NewFromParams(params)
	require.NoError(t, err)
	assert.Same(t, Default, scorer)
	assert.Equal(t, parameters.Params{"ab": "", "max_depth": "3"}, params, "unrelated parameters must be left")

	params = parameters.NewFromConfigString("heuristic=material")
	scorer, err = NewFromParams(params)
	require.NoError(t, err)
	assert.Same(t, MaterialOnly, scorer)
	assert.Empty(t, params)

	params = parameters.NewFromConfigString("w_tempi=2,king=5")
	scorer, err = NewFromParams(params)
	require.NoError(t, err)
	assert.Equal(t, features.Vector{100, 5, 3, 2}, scorer.Weights())
	assert.Equal(t, features.PieceValues{Man: 1, King: 5}, scorer.PieceValues())
	assert.Equal(t, features.Vector{100, 5, 3, 1}, Default.Weights(), "presets must not be modified")
	assert.Empty(t, params)

	_, err = NewFromParams(parameters.NewFromConfigString("heuristic=best"))
	assert.Error(t, err)
	_, err = NewFromParams(parameters.NewFromConfigString("w_count=lots"))
	assert.Error(t, err)
}

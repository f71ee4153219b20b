// Package _default registers the default players that can be included in any
// front-end for draughtsGo.
//
// Currently, it includes the heuristic evaluator + alpha-beta pruning ("heuristic"), and a
// uniformly random player ("random").
package _default

import (
	"math/rand/v2"

	"github.com/janpfeifer/draughtsGo/internal/ai/heuristic"
	"github.com/janpfeifer/draughtsGo/internal/parameters"
	"github.com/janpfeifer/draughtsGo/internal/players"
	"github.com/janpfeifer/draughtsGo/internal/searchers"
	"github.com/janpfeifer/draughtsGo/internal/state"
)

func init() {
	players.RegisterModule("heuristic", &Heuristic{})
	players.RegisterModule("random", &Random{})
}

// Heuristic creates players searching with the heuristic evaluator. See heuristic.NewFromParams
// and players.NewSearcherScorer for the parameters.
type Heuristic struct{}

// Assert Heuristic implements Module.
var _ players.Module = (*Heuristic)(nil)

// NewPlayer implements players.Module.
func (h *Heuristic) NewPlayer(matchName string, playerNum state.PlayerNum, params parameters.Params) (players.Player, error) {
	evaluator, err := heuristic.NewFromParams(params)
	if err != nil {
		return nil, err
	}
	return players.NewSearcherScorer(evaluator, params)
}

// Random creates players that play uniformly random moves. It accepts the parameter "seed".
type Random struct{}

// Assert Random implements Module.
var _ players.Module = (*Random)(nil)

// NewPlayer implements players.Module.
func (r *Random) NewPlayer(matchName string, playerNum state.PlayerNum, params parameters.Params) (players.Player, error) {
	var rng *rand.Rand
	if _, hasSeed := params["seed"]; hasSeed {
		seed, err := parameters.PopParamOr(params, "seed", 0)
		if err != nil {
			return nil, err
		}
		rng = rand.New(rand.NewPCG(uint64(seed), uint64(playerNum)))
	}
	return &players.SearcherScorer{Searcher: searchers.NewRandom(rng)}, nil
}

package alphabeta

import (
	"math/rand/v2"

	"github.com/janpfeifer/draughtsGo/internal/ai"
	"github.com/janpfeifer/draughtsGo/internal/parameters"
	"github.com/janpfeifer/draughtsGo/internal/searchers"
	"github.com/pkg/errors"
)

// NewFromParams creates an alpha-beta searcher if the parameter "ab" is set, otherwise it
// returns nil. The parameters it uses are popped from params:
//
//   - "max_depth": search depth in plies, defaults to DefaultMaxDepth.
//   - "seed": seeds the random fallback move. If not set, the global random source is used.
func NewFromParams(evaluator ai.Evaluator, params parameters.Params) (searchers.Searcher, error) {
	isAB, err := parameters.PopParamOr(params, "ab", false)
	if err != nil {
		return nil, err
	}
	if !isAB {
		return nil, nil
	}
	maxDepth, err := parameters.PopParamOr(params, "max_depth", DefaultMaxDepth)
	if err != nil {
		return nil, err
	}
	if maxDepth < 0 {
		return nil, errors.Errorf("negative max_depth (%d given) not possible", maxDepth)
	}
	ab := New(evaluator).WithMaxDepth(maxDepth)
	if _, hasSeed := params["seed"]; hasSeed {
		seed, err := parameters.PopParamOr(params, "seed", 0)
		if err != nil {
			return nil, err
		}
		ab.WithRand(rand.New(rand.NewPCG(uint64(seed), 0)))
	}
	return ab, nil
}

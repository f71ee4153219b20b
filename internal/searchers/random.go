package searchers

import (
	"math/rand/v2"

	"github.com/janpfeifer/draughtsGo/internal/ai"
	. "github.com/janpfeifer/draughtsGo/internal/state"
	"k8s.io/klog/v2"
)

// randomSearcher plays uniformly random legal moves. It's a baseline to compare other
// searchers against.
type randomSearcher struct {
	rng *rand.Rand
}

// Assert randomSearcher is a Searcher.
var _ Searcher = &randomSearcher{}

// NewRandom returns a Searcher that plays uniformly random legal moves, using rng as the source
// of randomness, or the global source if rng is nil.
func NewRandom(rng *rand.Rand) Searcher {
	return &randomSearcher{rng: rng}
}

// Search implements the Searcher interface. The score is always 0.
func (rs *randomSearcher) Search(board *Board) (move Move, score ai.Score, found bool) {
	move, found = RandomMove(board, rs.rng)
	if found && klog.V(2).Enabled() {
		klog.Infof("randomSearcher selection: move=%s", move)
	}
	return
}

// Stop implements the Searcher interface. Random searches are instantaneous, so there is nothing to stop.
func (rs *randomSearcher) Stop() {}

// String implements the Searcher interface.
func (rs *randomSearcher) String() string {
	return "random"
}

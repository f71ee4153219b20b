package players

import (
	"github.com/janpfeifer/draughtsGo/internal/ai"
	"github.com/janpfeifer/draughtsGo/internal/parameters"
	"github.com/janpfeifer/draughtsGo/internal/searchers"
	"github.com/janpfeifer/draughtsGo/internal/searchers/alphabeta"
	. "github.com/janpfeifer/draughtsGo/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// SearcherBuilder creates a searcher from the parameters, if they select it. Otherwise, it
// returns nil.
type SearcherBuilder func(evaluator ai.Evaluator, params parameters.Params) (searchers.Searcher, error)

// RegisteredSearchers is the list of searchers NewSearcherScorer can select with the parameters.
var RegisteredSearchers = []SearcherBuilder{alphabeta.NewFromParams}

// SearcherScorer is a standard set up for an AI: a searcher and the evaluator it uses.
// It implements the Player interface.
type SearcherScorer struct {
	Searcher  searchers.Searcher
	Evaluator ai.Evaluator
}

// Assert that SearcherScorer is a Player.
var _ Player = &SearcherScorer{}

// NewSearcherScorer creates the searcher selected in params (e.g. "ab" for alpha-beta), using
// the given evaluator.
//
// Typical parameters:
//
//   - ab (bool): If to use Alpha-Beta pruning search algorithm.
//   - max_depth (int): Max depth of search, default is 4.
//   - seed (int): Seed for the random moves played when a search is interrupted.
func NewSearcherScorer(evaluator ai.Evaluator, params parameters.Params) (*SearcherScorer, error) {
	player := &SearcherScorer{Evaluator: evaluator}
	for _, builder := range RegisteredSearchers {
		s, err := builder(evaluator, params)
		if err != nil {
			return nil, err
		}
		if s == nil {
			// Not this type of searcher.
			continue
		}
		if player.Searcher != nil {
			return nil, errors.Errorf("multiple searchers defined in parameters %v", params)
		}
		player.Searcher = s
	}
	if player.Searcher == nil {
		return nil, errors.New("no searchers defined in parameters, e.g. \"ab\" for alpha-beta")
	}
	return player, nil
}

// String implements Player.
func (s *SearcherScorer) String() string {
	return s.Searcher.String()
}

// Play implements the Player interface: it chooses a move given a Board.
func (s *SearcherScorer) Play(b *Board) (move Move, score ai.Score, found bool) {
	move, score, found = s.Searcher.Search(b)
	if klog.V(2).Enabled() {
		klog.Infof("Move #%d: AI (%s) playing %s, score=%d", b.MoveNumber, s, move, score)
	}
	return
}

// Stop implements Player, it interrupts the searcher.
func (s *SearcherScorer) Stop() {
	s.Searcher.Stop()
}

// Finalize is called at the end of a match.
func (s *SearcherScorer) Finalize() {
	if klog.V(1).Enabled() {
		klog.Infof("Player (%s) finalized", s)
	}
}

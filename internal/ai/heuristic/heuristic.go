// Package heuristic implements a pure Go hand-tuned evaluator: a weighted sum of the board
// features defined in package features.
package heuristic

import (
	"fmt"

	"github.com/janpfeifer/draughtsGo/internal/ai"
	"github.com/janpfeifer/draughtsGo/internal/features"
	. "github.com/janpfeifer/draughtsGo/internal/state"
)

// Scorer is a linear model (one integer weight per feature) on the feature set.
// It implements ai.Evaluator.
type Scorer struct {
	name        string
	weights     features.Vector
	pieceValues features.PieceValues
}

// Assert Scorer is an ai.Evaluator.
var _ ai.Evaluator = (*Scorer)(nil)

// NewWithWeights creates a new Scorer with the given weights for the material, center,
// formation and tempo features, and features.DefaultPieceValues.
func NewWithWeights(count, center, formation, tempi ai.Score) *Scorer {
	s := &Scorer{pieceValues: features.DefaultPieceValues}
	s.weights[features.IdMaterial] = count
	s.weights[features.IdCenter] = center
	s.weights[features.IdFormation] = formation
	s.weights[features.IdTempo] = tempi
	return s
}

// WithName sets the name of the scorer, and returns itself.
func (s *Scorer) WithName(name string) *Scorer {
	s.name = name
	return s
}

// WithPieceValues sets the value of men and kings used by the material feature.
func (s *Scorer) WithPieceValues(man, king ai.Score) *Scorer {
	s.pieceValues = features.PieceValues{Man: man, King: king}
	return s
}

// Clone returns a copy of the scorer, that can be modified independently.
func (s *Scorer) Clone() *Scorer {
	newS := &Scorer{}
	*newS = *s
	return newS
}

// Weights returns the weight of each feature.
func (s *Scorer) Weights() features.Vector {
	return s.weights
}

// PieceValues returns the values used for the material feature.
func (s *Scorer) PieceValues() features.PieceValues {
	return s.pieceValues
}

// String implements ai.Evaluator.
func (s *Scorer) String() string {
	if s.name != "" {
		return s.name
	}
	return fmt.Sprintf("heuristic(%s, man=%d, king=%d)", s.weights, s.pieceValues.Man, s.pieceValues.King)
}

// Evaluate implements ai.Evaluator.
func (s *Scorer) Evaluate(board *Board) ai.Score {
	return s.ScoreFeatures(s.Breakdown(board))
}

// Breakdown returns the features of the board, before weighting.
func (s *Scorer) Breakdown(board *Board) features.Vector {
	return features.ForBoard(board, s.pieceValues)
}

// ScoreFeatures is like Evaluate, but it takes the features as input.
func (s *Scorer) ScoreFeatures(v features.Vector) (score ai.Score) {
	for ii, value := range v {
		score += s.weights[ii] * value
	}
	return
}

// Package features implements the board features used by the draughts evaluators.
//
// Each feature is a signed sub-score of the board: contributions of the first player (White)
// are positive and contributions of the second player (Black) are negative, so a symmetric
// position scores 0 in every feature.
package features

import (
	"fmt"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/draughtsGo/internal/ai"
	. "github.com/janpfeifer/draughtsGo/internal/state"
)

// Id represent an enum of board features.
type Id uint8

const (
	// IdMaterial counts the pieces, each valued according to PieceValues.
	IdMaterial Id = iota

	// IdCenter penalizes men on the edge columns, since they control fewer diagonals.
	IdCenter

	// IdFormation counts, for each man not on the edge, its diagonal neighbours of the same color.
	IdFormation

	// IdTempo rewards how far men have advanced towards their promotion row.
	IdTempo

	// IdNumFeatures defined -- this must always be the last enum.
	IdNumFeatures
)

// Squares is the contents of the board indexed by Square, as returned by Board.Pieces.
type Squares = [NumSquares + 1]Piece

// FeatureSetter computes one feature from the board contents.
type FeatureSetter func(squares *Squares, values PieceValues) ai.Score

// Spec includes the board feature name and its setter.
type Spec struct {
	Id     Id
	Name   string
	Setter FeatureSetter
}

// Specs enumerates in order the features extracted by ForBoard.
var Specs = [IdNumFeatures]Spec{
	{IdMaterial, "Material", fMaterial},
	{IdCenter, "Center", fCenter},
	{IdFormation, "Formation", fFormation},
	{IdTempo, "Tempo", fTempo},
}

func init() {
	for ii, spec := range Specs {
		if spec.Id != Id(ii) {
			exceptions.Panicf("features.Specs index %d for %s doesn't match constant", ii, spec.Name)
		}
	}
}

// PieceValues used by the material feature.
type PieceValues struct {
	Man, King ai.Score
}

// DefaultPieceValues values a king as three men.
var DefaultPieceValues = PieceValues{Man: 1, King: 3}

// Vector holds the value of every feature, indexed by Id.
type Vector [IdNumFeatures]ai.Score

// ForBoard calculates all the features of the board. The board is not modified.
func ForBoard(b *Board, values PieceValues) (v Vector) {
	squares := b.Pieces()
	for ii, spec := range Specs {
		v[ii] = spec.Setter(&squares, values)
	}
	return
}

// String pretty-prints the features, e.g. "Material=1, Center=0, Formation=-2, Tempo=3".
func (v Vector) String() string {
	parts := make([]string, 0, len(v))
	for ii, value := range v {
		parts = append(parts, fmt.Sprintf("%s=%d", Specs[ii].Name, value))
	}
	return strings.Join(parts, ", ")
}

// sign returns +1 for pieces of the first player, -1 for the second player and 0 for Empty.
func sign(piece Piece) ai.Score {
	switch piece.Player() {
	case PlayerFirst:
		return 1
	case PlayerSecond:
		return -1
	}
	return 0
}

func fMaterial(squares *Squares, values PieceValues) (score ai.Score) {
	for _, piece := range squares[1:] {
		switch {
		case piece.IsMan():
			score += sign(piece) * values.Man
		case piece.IsKing():
			score += sign(piece) * values.King
		}
	}
	return
}

func fCenter(squares *Squares, _ PieceValues) (score ai.Score) {
	for sq := Square(1); sq <= NumSquares; sq++ {
		if piece := squares[sq]; piece.IsMan() && sq.IsEdge() {
			score -= sign(piece)
		}
	}
	return
}

func fFormation(squares *Squares, _ PieceValues) (score ai.Score) {
	for sq := Square(1); sq <= NumSquares; sq++ {
		piece := squares[sq]
		if !piece.IsMan() || sq.IsEdge() {
			continue
		}
		player := piece.Player()
		for _, neighbour := range sq.Neighbours() {
			if squares[neighbour].Player() == player {
				score += sign(piece)
			}
		}
	}
	return
}

func fTempo(squares *Squares, _ PieceValues) (score ai.Score) {
	for sq := Square(1); sq <= NumSquares; sq++ {
		piece := squares[sq]
		if !piece.IsMan() {
			continue
		}
		row := ai.Score(sq.Row() + 1)
		if piece.Player() == PlayerFirst {
			score += 11 - row
		} else {
			score -= row
		}
	}
	return
}

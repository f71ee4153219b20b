package state_test

import (
	"testing"

	"github.com/janpfeifer/draughtsGo/internal/generics"
	. "github.com/janpfeifer/draughtsGo/internal/state"
	. "github.com/janpfeifer/draughtsGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moveStrings(moves []Move) []string {
	return generics.SliceMap(moves, Move.String)
}

func TestSquareGeometry(t *testing.T) {
	for _, test := range []struct {
		sq       Square
		row, col int
	}{
		{1, 0, 1}, {5, 0, 9}, {6, 1, 0}, {12, 2, 3}, {28, 5, 4}, {46, 9, 0}, {50, 9, 8},
	} {
		assert.Equalf(t, test.row, test.sq.Row(), "Row() of square %d", test.sq)
		assert.Equalf(t, test.col, test.sq.Col(), "Col() of square %d", test.sq)
		assert.Equal(t, test.sq, SquareAt(test.row, test.col))
	}
	assert.Equal(t, NoSquare, SquareAt(0, 0), "light square")
	assert.Equal(t, NoSquare, SquareAt(10, 1), "outside the board")

	edges := generics.MakeSet[Square]()
	for sq := Square(1); sq <= NumSquares; sq++ {
		if sq.IsEdge() {
			edges.Insert(sq)
		}
	}
	assert.True(t, generics.SetWith[Square](5, 6, 15, 16, 25, 26, 35, 36, 45, 46).Equal(edges))
}

func TestNeighbours(t *testing.T) {
	assert.Equal(t, []Square{7, 8, 17, 18}, Square(12).Neighbours())
	assert.Equal(t, []Square{1, 2, 11, 12}, Square(7).Neighbours())
	assert.Equal(t, []Square{6, 7}, Square(1).Neighbours())
	assert.Equal(t, []Square{10}, Square(5).Neighbours())
	assert.Equal(t, []Square{41}, Square(46).Neighbours())

	// Offsets depend only on the row parity for squares not on the edge.
	for sq := Square(1); sq <= NumSquares; sq++ {
		if sq.IsEdge() {
			continue
		}
		offsets := []int{-5, -4, 5, 6}
		if sq.Row()%2 == 1 {
			offsets = []int{-6, -5, 4, 5}
		}
		for _, neighbour := range sq.Neighbours() {
			assert.Containsf(t, offsets, int(neighbour)-int(sq), "square %d, neighbour %d", sq, neighbour)
		}
	}
}

func TestStartPosition(t *testing.T) {
	b := NewBoard()
	men, kings := b.Count(PlayerFirst)
	assert.Equal(t, 20, men)
	assert.Equal(t, 0, kings)
	men, kings = b.Count(PlayerSecond)
	assert.Equal(t, 20, men)
	assert.Equal(t, 0, kings)
	assert.Equal(t, PlayerFirst, b.NextPlayer)
	assert.Equal(t,
		[]string{"31-26", "31-27", "32-27", "32-28", "33-28", "33-29", "34-29", "34-30", "35-30"},
		moveStrings(b.LegalMoves()))
	assert.False(t, b.IsFinished())
	assert.Equal(t, PlayerInvalid, b.Winner())

	b.Act(b.LegalMoves()[0])
	assert.Equal(t, PlayerSecond, b.NextPlayer)
	assert.Equal(t,
		[]string{"16-21", "17-21", "17-22", "18-22", "18-23", "19-23", "19-24", "20-24", "20-25"},
		moveStrings(b.LegalMoves()))
}

func TestCompulsoryCapture(t *testing.T) {
	b := BuildBoard([]PieceOnBoard{
		{32, FirstMan},
		{45, FirstMan},
		{27, SecondKing},
		{3, SecondMan},
	}, PlayerFirst)
	moves := b.LegalMoves()
	require.Len(t, moves, 1)
	m := moves[0]
	assert.Equal(t, "32x21", m.String())
	assert.Equal(t, []Square{27}, m.Captured())

	before := b.Clone()
	b.Act(m)
	assert.Equal(t, Empty, b.PieceAt(27))
	assert.Equal(t, Empty, b.PieceAt(32))
	assert.Equal(t, FirstMan, b.PieceAt(21))
	b.Undo(m)
	assert.Equal(t, SecondKing, b.PieceAt(27), "captured king must be restored as a king")
	assert.True(t, before.Equal(b))
}

func TestBackwardCapture(t *testing.T) {
	b := BuildBoard([]PieceOnBoard{
		{28, FirstMan},
		{33, SecondMan},
	}, PlayerFirst)
	assert.Equal(t, []string{"28x39"}, moveStrings(b.LegalMoves()))
}

func TestMaximumCapture(t *testing.T) {
	b := BuildBoard([]PieceOnBoard{
		{32, FirstMan},
		{38, FirstMan},
		{27, SecondMan},
		{33, SecondMan},
		{23, SecondMan},
	}, PlayerFirst)
	moves := b.LegalMoves()
	require.Len(t, moves, 1)
	assert.Equal(t, "38x18", moves[0].String())
	assert.Equal(t, []Square{23, 33}, moves[0].Captured())
	assert.Equal(t, "38x18 (23,33)", moves[0].LongString())
}

func TestFlyingKing(t *testing.T) {
	b := BuildBoard([]PieceOnBoard{
		{28, FirstKing},
		{1, SecondMan},
	}, PlayerFirst)
	assert.Len(t, b.LegalMoves(), 17)

	b = BuildBoard([]PieceOnBoard{
		{46, FirstKing},
		{37, SecondMan},
	}, PlayerFirst)
	assert.Equal(t,
		[]string{"46x32", "46x28", "46x23", "46x19", "46x14", "46x10", "46x5"},
		moveStrings(b.LegalMoves()))
}

func TestPromotion(t *testing.T) {
	b := BuildBoard([]PieceOnBoard{
		{7, FirstMan},
		{50, SecondMan},
	}, PlayerFirst)
	moves := b.LegalMoves()
	require.Equal(t, []string{"7-1", "7-2"}, moveStrings(moves))
	for _, m := range moves {
		assert.True(t, m.Promotes())
		before := b.Clone()
		b.Act(m)
		assert.Equal(t, FirstKing, b.PieceAt(m.To()))
		b.Undo(m)
		assert.Equal(t, FirstMan, b.PieceAt(7))
		assert.True(t, before.Equal(b))
	}
}

func TestActUndoSymmetry(t *testing.T) {
	rng := NewRand(42)
	for walk := range 30 {
		b := RandomWalk(rng, walk*3)
		for _, m := range b.LegalMoves() {
			before := b.Clone()
			b.Act(m)
			require.NotEqual(t, before.NextPlayer, b.NextPlayer)
			b.Undo(m)
			require.Truef(t, before.Equal(b), "Act/Undo of %s changed the board:\n%s\nwas:\n%s", m.LongString(), b, before)
		}
	}
}

func TestUndoPanicsOnWrongMove(t *testing.T) {
	b := NewBoard()
	m := b.LegalMoves()[0]
	assert.Panics(t, func() { b.Undo(m) })
}

func TestWinner(t *testing.T) {
	b := BuildBoard([]PieceOnBoard{{28, FirstMan}}, PlayerSecond)
	assert.True(t, b.IsFinished())
	assert.Equal(t, PlayerFirst, b.Winner())

	// Blocked pieces also lose.
	b = BuildBoard([]PieceOnBoard{
		{46, SecondMan}, // Can't move: it's at the last row.
		{28, FirstMan},
	}, PlayerSecond)
	assert.True(t, b.IsFinished())
}

func TestParseMove(t *testing.T) {
	b := NewBoard()
	m, err := ParseMove(b, " 32-28 ")
	require.NoError(t, err)
	assert.Equal(t, "32-28", m.String())

	m, err = ParseMove(b, "#1")
	require.NoError(t, err)
	assert.Equal(t, "31-26", m.String())

	for _, text := range []string{"32-29", "#10", "#0", "x", "51-46", "foo"} {
		_, err = ParseMove(b, text)
		assert.Errorf(t, err, "ParseMove(%q) should have failed", text)
	}

	b = BuildBoard([]PieceOnBoard{
		{46, FirstKing},
		{37, SecondMan},
	}, PlayerFirst)
	m, err = ParseMove(b, "46x10 (37)")
	require.NoError(t, err)
	assert.Equal(t, Square(10), m.To())
}

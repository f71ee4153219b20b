package state

import (
	"fmt"

	"github.com/gomlx/exceptions"
)

// Square is the index of one of the 50 playable (dark) squares of the 10x10 board, using the
// international draughts numbering: 1 is the top-left dark square (on the second player's side),
// numbering runs left to right, row by row, down to 50.
//
// Square 0 is not a valid square and is used as "no square".
type Square uint8

const (
	// NumSquares is the number of playable squares.
	NumSquares = 50

	// NumRows of the board, each with SquaresPerRow playable squares.
	NumRows = 10

	// SquaresPerRow is the number of dark squares in each row.
	SquaresPerRow = NumSquares / NumRows

	// NumColumns of the board, counting the light squares.
	NumColumns = 2 * SquaresPerRow

	// NoSquare is the zero value of Square.
	NoSquare Square = 0
)

// Direction is one of the four diagonal directions.
type Direction uint8

const (
	UpLeft Direction = iota
	UpRight
	DownLeft
	DownRight
	NumDirections
)

var directionDeltas = [NumDirections][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

var (
	// rays[sq][dir] lists the squares from sq (excluding) until the edge of the board.
	rays [NumSquares + 1][NumDirections][]Square

	// neighbours[sq] lists the diagonally adjacent squares of sq.
	neighbours [NumSquares + 1][]Square
)

func init() {
	for sq := Square(1); sq <= NumSquares; sq++ {
		row, col := sq.Row(), sq.Col()
		for dir, delta := range directionDeltas {
			var ray []Square
			for r, c := row+delta[0], col+delta[1]; ; r, c = r+delta[0], c+delta[1] {
				next := SquareAt(r, c)
				if next == NoSquare {
					break
				}
				ray = append(ray, next)
			}
			rays[sq][dir] = ray
			if len(ray) > 0 {
				neighbours[sq] = append(neighbours[sq], ray[0])
			}
		}
		if back := SquareAt(row, col); back != sq {
			exceptions.Panicf("square numbering broken: %d maps to (%d, %d) which maps back to %d", sq, row, col, back)
		}
	}
}

// Valid returns whether the square is one of the 50 playable squares.
func (sq Square) Valid() bool {
	return sq >= 1 && sq <= NumSquares
}

// Row returns the 0-based row of the square, 0 being the top row (squares 1 to 5).
func (sq Square) Row() int {
	return (int(sq) - 1) / SquaresPerRow
}

// Col returns the 0-based column of the square, counting light squares as well.
func (sq Square) Col() int {
	pos := (int(sq) - 1) % SquaresPerRow
	if sq.Row()%2 == 0 {
		return 2*pos + 1
	}
	return 2 * pos
}

// SquareAt returns the square at the given 0-based row and column, or NoSquare if it is
// outside the board or a light (unplayable) square.
func SquareAt(row, col int) Square {
	if row < 0 || row >= NumRows || col < 0 || col >= NumColumns {
		return NoSquare
	}
	if (row+col)%2 == 0 {
		return NoSquare
	}
	return Square(row*SquaresPerRow + col/2 + 1)
}

// Ray returns the squares from sq, exclusive, following dir until the edge of the board.
// The returned slice is shared and must not be modified.
func (sq Square) Ray(dir Direction) []Square {
	return rays[sq][dir]
}

// Neighbours returns the up to four diagonally adjacent squares.
// The returned slice is shared and must not be modified.
func (sq Square) Neighbours() []Square {
	return neighbours[sq]
}

// IsEdge returns whether the square is on the leftmost or rightmost column of the board.
func (sq Square) IsEdge() bool {
	col := sq.Col()
	return col == 0 || col == NumColumns-1
}

// IsPromotionFor returns whether a man of the given player reaching sq becomes a king.
func (sq Square) IsPromotionFor(player PlayerNum) bool {
	if player == PlayerFirst {
		return sq.Row() == 0
	}
	return sq.Row() == NumRows-1
}

// String returns the square number.
func (sq Square) String() string {
	return fmt.Sprintf("%d", uint8(sq))
}

// forwardDirections a man of each player can step to.
var forwardDirections = [NumPlayers][2]Direction{
	PlayerFirst:  {UpLeft, UpRight},
	PlayerSecond: {DownLeft, DownRight},
}

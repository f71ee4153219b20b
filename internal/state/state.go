// Package state holds the international draughts game state: the board, the pieces, the moves
// and the rules to generate, apply and revert them.
package state

import (
	"strings"

	"github.com/gomlx/exceptions"
)

// Piece is the content of a square: empty, or a man or king of one of the players.
type Piece uint8

const (
	Empty Piece = iota
	FirstMan
	FirstKing
	SecondMan
	SecondKing
	LastPiece
)

var (
	PieceLetters = [LastPiece]string{".", "w", "W", "b", "B"}
	PieceNames   = [LastPiece]string{"Empty", "White man", "White king", "Black man", "Black king"}
)

// String returns the long piece name.
func (p Piece) String() string {
	if p >= LastPiece {
		return "Invalid"
	}
	return PieceNames[p]
}

// Player owning the piece, or PlayerInvalid if it is Empty.
func (p Piece) Player() PlayerNum {
	switch p {
	case FirstMan, FirstKing:
		return PlayerFirst
	case SecondMan, SecondKing:
		return PlayerSecond
	}
	return PlayerInvalid
}

// IsMan returns whether the piece is a man (not promoted) of either player.
func (p Piece) IsMan() bool {
	return p == FirstMan || p == SecondMan
}

// IsKing returns whether the piece is a king of either player.
func (p Piece) IsKing() bool {
	return p == FirstKing || p == SecondKing
}

// Promoted returns the king corresponding to a man. Kings and Empty are returned unchanged.
func (p Piece) Promoted() Piece {
	if p.IsMan() {
		return p + 1
	}
	return p
}

// Demoted returns the man corresponding to a king. Men and Empty are returned unchanged.
func (p Piece) Demoted() Piece {
	if p.IsKing() {
		return p - 1
	}
	return p
}

// ManOf returns the man piece of the player.
func ManOf(player PlayerNum) Piece {
	if player == PlayerFirst {
		return FirstMan
	}
	return SecondMan
}

// KingOf returns the king piece of the player.
func KingOf(player PlayerNum) Piece {
	return ManOf(player).Promoted()
}

// NumPlayers is always 2.
const NumPlayers = 2

// PlayerNum is the either 0 or 1 corresponding to the first player to move (White) or the
// second player to move (Black).
type PlayerNum uint8

const (
	PlayerFirst PlayerNum = iota
	PlayerSecond

	// PlayerInvalid represents an invalid PlayerNum, also used for "no winner".
	PlayerInvalid
)

// String returns the color of the player.
func (p PlayerNum) String() string {
	switch p {
	case PlayerFirst:
		return "White"
	case PlayerSecond:
		return "Black"
	}
	return "Invalid"
}

// Opponent returns the other player.
func (p PlayerNum) Opponent() PlayerNum {
	return 1 - p
}

// DefaultMaxMoves (plies) after which a match is considered a draw.
const DefaultMaxMoves = 200

// Board is a mutable draughts position: the contents of the 50 squares plus the side to move.
//
// Searches explore the game tree by applying (Board.Act) and reverting (Board.Undo) moves in place,
// so the same Board must not be shared across goroutines while in use.
type Board struct {
	// squares is indexed by Square, index 0 is unused.
	squares [NumSquares + 1]Piece

	NextPlayer PlayerNum

	// MoveNumber starts at 1 and is incremented by each ply.
	MoveNumber int
}

// NewBoard creates the starting position: Black men on 1 to 20, White men on 31 to 50,
// White to move.
func NewBoard() *Board {
	b := NewEmptyBoard()
	for sq := Square(1); sq <= 20; sq++ {
		b.squares[sq] = SecondMan
	}
	for sq := Square(31); sq <= NumSquares; sq++ {
		b.squares[sq] = FirstMan
	}
	return b
}

// NewEmptyBoard creates a board without pieces, White to move.
func NewEmptyBoard() *Board {
	return &Board{NextPlayer: PlayerFirst, MoveNumber: 1}
}

// Clone returns a copy of the board.
func (b *Board) Clone() *Board {
	newB := &Board{}
	*newB = *b
	return newB
}

// Equal returns whether both boards have the same pieces, side to move and move number.
func (b *Board) Equal(b2 *Board) bool {
	return *b == *b2
}

// PieceAt returns the contents of the square.
func (b *Board) PieceAt(sq Square) Piece {
	return b.squares[sq]
}

// SetPiece sets the contents of the square. It's meant to set up positions, not to play moves.
func (b *Board) SetPiece(sq Square, piece Piece) {
	if !sq.Valid() {
		exceptions.Panicf("SetPiece(%d, %s): invalid square", sq, piece)
	}
	b.squares[sq] = piece
}

// Pieces returns a copy of the contents of the board, indexed by Square (index 0 is unused and
// always Empty).
func (b *Board) Pieces() [NumSquares + 1]Piece {
	return b.squares
}

// Count returns the number of men and kings of the player.
func (b *Board) Count(player PlayerNum) (men, kings int) {
	for _, piece := range b.squares[1:] {
		if piece.Player() != player {
			continue
		}
		if piece.IsKing() {
			kings++
		} else {
			men++
		}
	}
	return
}

// OpponentPlayer returns the player that is not the next one to play.
func (b *Board) OpponentPlayer() PlayerNum {
	return b.NextPlayer.Opponent()
}

// Act plays the move in place. The move must be one of the b.LegalMoves().
func (b *Board) Act(m Move) {
	piece := b.squares[m.from]
	if piece.Player() != b.NextPlayer {
		exceptions.Panicf("Act(%s): square %d holds %s, but %s is to move", m, m.from, piece, b.NextPlayer)
	}
	b.squares[m.from] = Empty
	for _, sq := range m.captured[:m.numCaptured] {
		b.squares[sq] = Empty
	}
	if m.promotes {
		piece = piece.Promoted()
	}
	b.squares[m.to] = piece
	b.NextPlayer = b.NextPlayer.Opponent()
	b.MoveNumber++
}

// Undo reverts the move m, which must be the last one played with Act.
//
// It panics if the board is not consistent with m having been just played.
func (b *Board) Undo(m Move) {
	mover := b.NextPlayer.Opponent()
	piece := b.squares[m.to]
	if piece.Player() != mover {
		exceptions.Panicf("Undo(%s): square %d holds %s, expected a piece of %s", m, m.to, piece, mover)
	}
	b.squares[m.to] = Empty
	if m.promotes {
		piece = piece.Demoted()
	}
	b.squares[m.from] = piece
	for ii, sq := range m.captured[:m.numCaptured] {
		if b.squares[sq] != Empty {
			exceptions.Panicf("Undo(%s): captured square %d is not empty, it holds %s", m, sq, b.squares[sq])
		}
		if m.capturedKings&(1<<ii) != 0 {
			b.squares[sq] = KingOf(b.NextPlayer)
		} else {
			b.squares[sq] = ManOf(b.NextPlayer)
		}
	}
	b.NextPlayer = mover
	b.MoveNumber--
}

// IsFinished returns whether the player to move has no legal moves, in which case it has lost.
func (b *Board) IsFinished() bool {
	return len(b.LegalMoves()) == 0
}

// Winner returns the winner if the match is finished, or PlayerInvalid otherwise.
func (b *Board) Winner() PlayerNum {
	if b.IsFinished() {
		return b.OpponentPlayer()
	}
	return PlayerInvalid
}

// String returns a compact text rendering of the board, one row per line, for debugging.
func (b *Board) String() string {
	var sb strings.Builder
	for row := range NumRows {
		for col := range NumColumns {
			sq := SquareAt(row, col)
			if sq == NoSquare {
				sb.WriteString(" ")
			} else {
				sb.WriteString(PieceLetters[b.squares[sq]])
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString(b.NextPlayer.String())
	sb.WriteString(" to move\n")
	return sb.String()
}

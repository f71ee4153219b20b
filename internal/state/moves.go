package state

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/janpfeifer/draughtsGo/internal/generics"
	"github.com/pkg/errors"
)

// MaxCaptures is the maximum number of pieces a single move can capture: all the opponent's pieces.
const MaxCaptures = 20

// Move is a complete draughts move: a step, or a (possibly multiple) capture.
//
// It is a comparable value, and holds all the information needed to revert it with Board.Undo.
// Moves should be obtained from Board.LegalMoves and treated as opaque tokens.
type Move struct {
	from, to Square

	// captured squares, sorted, in the first numCaptured entries.
	captured    [MaxCaptures]Square
	numCaptured uint8

	// capturedKings has bit ii set if captured[ii] held a king.
	capturedKings uint32

	// promotes is set if a man ends the move on its promotion row.
	promotes bool
}

// From returns the square where the moving piece starts.
func (m Move) From() Square { return m.from }

// To returns the square where the moving piece ends.
func (m Move) To() Square { return m.to }

// IsCapture returns whether the move captures pieces.
func (m Move) IsCapture() bool { return m.numCaptured > 0 }

// Captured returns the squares of the captured pieces, in ascending order.
func (m Move) Captured() []Square {
	return slices.Clone(m.captured[:m.numCaptured])
}

// Promotes returns whether the moving man is promoted to king.
func (m Move) Promotes() bool { return m.promotes }

// String returns the move in PDN notation: "32-28" for a step and "28x10" for a capture.
func (m Move) String() string {
	if m.IsCapture() {
		return fmt.Sprintf("%dx%d", m.from, m.to)
	}
	return fmt.Sprintf("%d-%d", m.from, m.to)
}

// LongString includes the captured squares, which disambiguates captures with the same
// start and end squares.
func (m Move) LongString() string {
	if !m.IsCapture() {
		return m.String()
	}
	return fmt.Sprintf("%s (%s)", m, strings.Join(generics.SliceMap(m.Captured(), Square.String), ","))
}

// LegalMoves returns the moves available to b.NextPlayer, following the international rules:
// captures are compulsory, and only the ones capturing the most pieces are allowed.
//
// The order is deterministic: by starting square, then by direction and distance.
func (b *Board) LegalMoves() []Move {
	cs := &captureSearch{board: b, opponent: b.OpponentPlayer(), seen: generics.MakeSet[Move]()}
	for sq := Square(1); sq <= NumSquares; sq++ {
		piece := b.squares[sq]
		if piece.Player() != b.NextPlayer {
			continue
		}
		cs.from, cs.piece = sq, piece
		cs.search(sq)
	}
	if len(cs.moves) > 0 {
		return cs.moves
	}

	var moves []Move
	for sq := Square(1); sq <= NumSquares; sq++ {
		piece := b.squares[sq]
		if piece.Player() != b.NextPlayer {
			continue
		}
		if piece.IsMan() {
			for _, dir := range forwardDirections[b.NextPlayer] {
				ray := sq.Ray(dir)
				if len(ray) > 0 && b.squares[ray[0]] == Empty {
					moves = append(moves, Move{
						from: sq, to: ray[0],
						promotes: ray[0].IsPromotionFor(b.NextPlayer),
					})
				}
			}
			continue
		}
		for dir := range NumDirections {
			for _, to := range sq.Ray(dir) {
				if b.squares[to] != Empty {
					break
				}
				moves = append(moves, Move{from: sq, to: to})
			}
		}
	}
	return moves
}

// captureSearch holds the state of the depth-first search for capture sequences.
type captureSearch struct {
	board    *Board
	opponent PlayerNum

	// Piece being moved, lifted from square from.
	from  Square
	piece Piece

	// Captured pieces so far, in order. They remain on the board (and block) until the move ends,
	// but can't be jumped twice.
	taken  [NumSquares + 1]bool
	path   [MaxCaptures]Square
	length int

	// Best moves found so far, all with maxLength captures.
	moves     []Move
	maxLength int
	seen      generics.Set[Move]
}

func (cs *captureSearch) isEmpty(sq Square) bool {
	return sq == cs.from || cs.board.squares[sq] == Empty
}

func (cs *captureSearch) isCapturable(sq Square) bool {
	return !cs.taken[sq] && cs.board.squares[sq].Player() == cs.opponent
}

func (cs *captureSearch) push(sq Square) {
	cs.taken[sq] = true
	cs.path[cs.length] = sq
	cs.length++
}

func (cs *captureSearch) pop() {
	cs.length--
	cs.taken[cs.path[cs.length]] = false
}

// search extends the capture sequence from the square at.
func (cs *captureSearch) search(at Square) {
	extended := false
	for dir := range NumDirections {
		ray := at.Ray(dir)
		if cs.piece.IsMan() {
			if len(ray) < 2 || !cs.isCapturable(ray[0]) || !cs.isEmpty(ray[1]) {
				continue
			}
			cs.push(ray[0])
			cs.search(ray[1])
			cs.pop()
			extended = true
			continue
		}

		// Flying king: skip empty squares, jump exactly one opponent piece and land on any
		// empty square after it.
		idx := 0
		for idx < len(ray) && cs.isEmpty(ray[idx]) {
			idx++
		}
		if idx >= len(ray) || !cs.isCapturable(ray[idx]) {
			continue
		}
		victim := ray[idx]
		for _, landing := range ray[idx+1:] {
			if !cs.isEmpty(landing) {
				break
			}
			cs.push(victim)
			cs.search(landing)
			cs.pop()
			extended = true
		}
	}
	if !extended && cs.length > 0 {
		cs.record(at)
	}
}

// record the current capture sequence ending at square to, if it captures at least as many pieces
// as the best ones found so far.
func (cs *captureSearch) record(to Square) {
	if cs.length < cs.maxLength {
		return
	}
	if cs.length > cs.maxLength {
		cs.maxLength = cs.length
		cs.moves = cs.moves[:0]
		cs.seen = generics.MakeSet[Move]()
	}
	m := Move{from: cs.from, to: to, numCaptured: uint8(cs.length)}
	copy(m.captured[:], cs.path[:cs.length])
	slices.Sort(m.captured[:cs.length])
	for ii, sq := range m.captured[:cs.length] {
		if cs.board.squares[sq].IsKing() {
			m.capturedKings |= 1 << ii
		}
	}
	m.promotes = cs.piece.IsMan() && to.IsPromotionFor(cs.piece.Player())
	if cs.seen.Has(m) {
		return
	}
	cs.seen.Insert(m)
	cs.moves = append(cs.moves, m)
}

// ParseMove finds the legal move described by text, in PDN notation ("32-28", "28x10"), optionally
// listing the captured squares to disambiguate ("28x10 (19,24)"). Alternatively "#n" selects the
// n-th (1-based) legal move.
func ParseMove(b *Board, text string) (Move, error) {
	text = strings.TrimSpace(text)
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return Move{}, errors.Errorf("%s has no legal moves", b.NextPlayer)
	}
	if idxText, found := strings.CutPrefix(text, "#"); found {
		idx, err := strconv.Atoi(idxText)
		if err != nil {
			return Move{}, errors.Wrapf(err, "invalid move index %q", text)
		}
		if idx < 1 || idx > len(moves) {
			return Move{}, errors.Errorf("move index %d out of range, there are %d legal moves", idx, len(moves))
		}
		return moves[idx-1], nil
	}

	stepsText, capturedText, hasCaptured := strings.Cut(text, "(")
	squares, err := parseSquareList(stepsText, "-x")
	if err != nil {
		return Move{}, errors.WithMessagef(err, "invalid move %q", text)
	}
	if len(squares) < 2 {
		return Move{}, errors.Errorf("invalid move %q: it needs at least the start and end squares", text)
	}
	var captured []Square
	if hasCaptured {
		captured, err = parseSquareList(strings.TrimSuffix(strings.TrimSpace(capturedText), ")"), ",")
		if err != nil {
			return Move{}, errors.WithMessagef(err, "invalid captured squares in move %q", text)
		}
		slices.Sort(captured)
	}

	from, to := squares[0], squares[len(squares)-1]
	var candidates []Move
	for _, m := range moves {
		if m.from != from || m.to != to {
			continue
		}
		if captured != nil && !slices.Equal(captured, m.captured[:m.numCaptured]) {
			continue
		}
		candidates = append(candidates, m)
	}
	switch len(candidates) {
	case 0:
		return Move{}, errors.Errorf("move %q is not legal", text)
	case 1:
		return candidates[0], nil
	}
	return Move{}, errors.Errorf("move %q is ambiguous, it could be any of: %s", text,
		strings.Join(generics.SliceMap(candidates, Move.LongString), ", "))
}

// parseSquareList parses square numbers separated by any of the characters in separators.
func parseSquareList(text, separators string) ([]Square, error) {
	parts := strings.FieldsFunc(text, func(r rune) bool { return strings.ContainsRune(separators, r) })
	squares := make([]Square, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid square %q", part)
		}
		if value < 1 || value > NumSquares {
			return nil, errors.Errorf("square %d out of range [1, %d]", value, NumSquares)
		}
		squares = append(squares, Square(value))
	}
	return squares, nil
}

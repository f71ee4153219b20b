package state

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// StartFEN is the FEN of the starting position.
const StartFEN = "W:W31-50:B1-20"

// ParseFEN creates a board from a position in PDN FEN notation, e.g.: "W:W31-50:B1-20" or
// "B:W18,24,27,K10:BK1,12". The first field is the side to move, and the following ones list the
// squares of each color, a "K" prefix marking kings, and "a-b" ranges of men.
func ParseFEN(fen string) (*Board, error) {
	fen = strings.TrimSuffix(strings.TrimSpace(fen), ".")
	fields := strings.Split(fen, ":")
	if len(fields) < 1 || len(fields) > 3 {
		return nil, errors.Errorf("invalid FEN %q: expected 1 to 3 fields separated by \":\"", fen)
	}
	b := NewEmptyBoard()
	switch strings.TrimSpace(fields[0]) {
	case "W":
		b.NextPlayer = PlayerFirst
	case "B":
		b.NextPlayer = PlayerSecond
	default:
		return nil, errors.Errorf("invalid FEN %q: side to move must be \"W\" or \"B\", got %q", fen, fields[0])
	}

	for _, field := range fields[1:] {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		var player PlayerNum
		switch field[0] {
		case 'W':
			player = PlayerFirst
		case 'B':
			player = PlayerSecond
		default:
			return nil, errors.Errorf("invalid FEN %q: field %q must start with \"W\" or \"B\"", fen, field)
		}
		if err := b.parseFENPieces(player, field[1:]); err != nil {
			return nil, errors.WithMessagef(err, "invalid FEN %q", fen)
		}
	}
	return b, nil
}

func (b *Board) parseFENPieces(player PlayerNum, list string) error {
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		piece := ManOf(player)
		if rest, isKing := strings.CutPrefix(item, "K"); isKing {
			piece, item = KingOf(player), rest
		}
		first, last, isRange := strings.Cut(item, "-")
		if !isRange {
			last = first
		}
		from, err := parseFENSquare(first)
		if err != nil {
			return err
		}
		to, err := parseFENSquare(last)
		if err != nil {
			return err
		}
		if to < from {
			return errors.Errorf("invalid range %q", item)
		}
		for sq := from; sq <= to; sq++ {
			if b.squares[sq] != Empty {
				return errors.Errorf("square %d given twice", sq)
			}
			b.squares[sq] = piece
		}
	}
	return nil
}

func parseFENSquare(text string) (Square, error) {
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return NoSquare, errors.Wrapf(err, "invalid square %q", text)
	}
	if value < 1 || value > NumSquares {
		return NoSquare, errors.Errorf("square %d out of range [1, %d]", value, NumSquares)
	}
	return Square(value), nil
}

// FEN returns the position in PDN FEN notation. Consecutive men are written as ranges.
// The move number is not part of it.
func (b *Board) FEN() string {
	var sb strings.Builder
	if b.NextPlayer == PlayerFirst {
		sb.WriteString("W")
	} else {
		sb.WriteString("B")
	}
	for _, player := range []PlayerNum{PlayerFirst, PlayerSecond} {
		sb.WriteString(":")
		sb.WriteString(strings.ToUpper(PieceLetters[ManOf(player)]))
		var items []string
		man, king := ManOf(player), KingOf(player)
		for sq := Square(1); sq <= NumSquares; sq++ {
			switch b.squares[sq] {
			case king:
				items = append(items, fmt.Sprintf("K%d", sq))
			case man:
				last := sq
				for last < NumSquares && b.squares[last+1] == man {
					last++
				}
				if last > sq {
					items = append(items, fmt.Sprintf("%d-%d", sq, last))
				} else {
					items = append(items, sq.String())
				}
				sq = last
			}
		}
		sb.WriteString(strings.Join(items, ","))
	}
	return sb.String()
}

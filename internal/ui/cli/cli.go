// Package cli implements a command-line UI for the game.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/draughtsGo/internal/ai"
	"github.com/janpfeifer/draughtsGo/internal/generics"
	. "github.com/janpfeifer/draughtsGo/internal/state"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// CharsPerColumn is the display width of each square.
const CharsPerColumn = 4

// MaxInputErrors is the number of invalid moves a human can type in a row before ReadMove gives up.
const MaxInputErrors = 3

// ErrTooManyInputErrors is returned by ReadMove after MaxInputErrors invalid moves.
var ErrTooManyInputErrors = errors.Errorf("failed to read a valid move %d times", MaxInputErrors)

// UI prints boards and reads moves from a terminal (or any reader/writer).
type UI struct {
	color, clearScreen bool
	reader             *bufio.Reader
	out                io.Writer
}

// New creates a UI on the standard input and output.
func New(color bool, clearScreen bool) *UI {
	return NewWithIO(os.Stdin, os.Stdout, color, clearScreen)
}

// NewWithIO creates a UI that reads moves from in and prints to out.
func NewWithIO(in io.Reader, out io.Writer, color bool, clearScreen bool) *UI {
	return &UI{
		color:       color,
		clearScreen: clearScreen,
		reader:      bufio.NewReader(in),
		out:         out,
	}
}

// IsTerminal returns whether the standard output is a terminal, in which case colors are welcome.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var (
	lightSquareStyle = lipgloss.NewStyle().Width(CharsPerColumn).Background(lipgloss.Color("223"))
	darkSquareStyle  = lipgloss.NewStyle().Width(CharsPerColumn).Align(lipgloss.Center).
				Background(lipgloss.Color("94")).Foreground(lipgloss.Color("180"))
	playerStyles = [NumPlayers]lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Bold(true),
	}
	plainSquareStyle = lipgloss.NewStyle().Width(CharsPerColumn).Align(lipgloss.Center)
)

// RenderBoard returns the board drawn with one line per row. Empty playable squares show their
// number, which is how moves are typed.
func (ui *UI) RenderBoard(board *Board) string {
	var sb strings.Builder
	for row := range NumRows {
		for col := range NumColumns {
			sq := SquareAt(row, col)
			if sq == NoSquare {
				if ui.color {
					sb.WriteString(lightSquareStyle.Render(""))
				} else {
					sb.WriteString(strings.Repeat(" ", CharsPerColumn))
				}
				continue
			}
			sb.WriteString(ui.renderSquare(board, sq))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (ui *UI) renderSquare(board *Board, sq Square) string {
	piece := board.PieceAt(sq)
	if !ui.color {
		if piece == Empty {
			return plainSquareStyle.Render(sq.String())
		}
		return plainSquareStyle.Render(PieceLetters[piece])
	}
	if piece == Empty {
		return darkSquareStyle.Render(sq.String())
	}
	style := playerStyles[piece.Player()].Inherit(darkSquareStyle)
	return style.Render(PieceLetters[piece])
}

// PrintBoard prints the board centered in the terminal.
func (ui *UI) PrintBoard(board *Board) {
	ui.printCentered(ui.RenderBoard(board))
}

// printCentered prints the block centered in the terminal, if the output is the terminal.
func (ui *UI) printCentered(block string) {
	terminalWidth := 0
	if ui.out == os.Stdout {
		terminalWidth, _, _ = term.GetSize(int(os.Stdout.Fd()))
	}
	lines := strings.Split(strings.TrimSuffix(block, "\n"), "\n")
	indent := max((terminalWidth-lipgloss.Width(block))/2, 0)
	for _, line := range lines {
		if len(line) == 0 {
			_, _ = fmt.Fprintln(ui.out)
			continue
		}
		_, _ = fmt.Fprintf(ui.out, "%s%s\n", strings.Repeat(" ", indent), line)
	}
}

// Print the move number, the board and, if the match is not finished, the legal moves.
func (ui *UI) Print(board *Board, includeLegalMoves bool) {
	if ui.clearScreen {
		_, _ = fmt.Fprint(ui.out, "\033c")
	}
	_, _ = fmt.Fprintf(ui.out, "\nMove #%d\n\n", board.MoveNumber)
	ui.PrintBoard(board)
	_, _ = fmt.Fprintln(ui.out)
	white, whiteKings := board.Count(PlayerFirst)
	black, blackKings := board.Count(PlayerSecond)
	_, _ = fmt.Fprintf(ui.out, "%s: %d men, %d kings - %s: %d men, %d kings\n",
		ui.playerName(PlayerFirst), white, whiteKings, ui.playerName(PlayerSecond), black, blackKings)
	if includeLegalMoves {
		ui.printLegalMoves(board)
	}
}

func (ui *UI) printLegalMoves(board *Board) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return
	}
	_, _ = fmt.Fprintf(ui.out, "\n%s turn to play, legal moves: %s\n", ui.playerName(board.NextPlayer),
		strings.Join(generics.SliceMap(moves, Move.LongString), ", "))
}

func (ui *UI) playerName(player PlayerNum) string {
	if !ui.color || player >= NumPlayers {
		return player.String()
	}
	return playerStyles[player].Reverse(player == PlayerSecond).Render(player.String())
}

// PrintPlayer prints the player to move.
func (ui *UI) PrintPlayer(board *Board) {
	_, _ = fmt.Fprint(ui.out, ui.playerName(board.NextPlayer))
}

// PrintMove prints the move just played and its score, as "White: 32-28 (score=105)".
func (ui *UI) PrintMove(player PlayerNum, move Move, score ai.Score) {
	_, _ = fmt.Fprintf(ui.out, "%s: %s (score=%d)\n", ui.playerName(player), move.LongString(), score)
}

// PrintWinner prints a banner with the winner, or a draw if winner is PlayerInvalid.
func (ui *UI) PrintWinner(winner PlayerNum) {
	style := lipgloss.NewStyle().Padding(1, 2)
	if ui.color {
		style = style.Background(lipgloss.Color("13")).Foreground(lipgloss.Color("0"))
	}
	var msg string
	if winner == PlayerInvalid {
		msg = "*** DRAW! ***"
	} else {
		msg = fmt.Sprintf("*** %s PLAYER WINS!! Congratulations! ***", strings.ToUpper(winner.String()))
	}
	_, _ = fmt.Fprintln(ui.out)
	ui.printCentered(style.Render(msg))
	_, _ = fmt.Fprintln(ui.out)
}

// ReadMove prompts the player to move for a move until a legal one is typed, see state.ParseMove
// for the accepted formats. It gives up after MaxInputErrors attempts, or if the input fails.
func (ui *UI) ReadMove(board *Board) (Move, error) {
	for range MaxInputErrors {
		_, _ = fmt.Fprint(ui.out, "    ")
		ui.PrintPlayer(board)
		_, _ = fmt.Fprint(ui.out, " move > ")
		text, err := ui.reader.ReadString('\n')
		if err != nil && (err != io.EOF || strings.TrimSpace(text) == "") {
			_, _ = fmt.Fprintln(ui.out)
			return Move{}, errors.Wrap(err, "failed to read move")
		}
		move, err := ParseMove(board, text)
		if err != nil {
			_, _ = fmt.Fprintf(ui.out, "    * %v, please try again.\n", err)
			continue
		}
		return move, nil
	}
	return Move{}, ErrTooManyInputErrors
}

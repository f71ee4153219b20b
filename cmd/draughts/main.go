// draughts plays international draughts on the terminal: human vs AI, human vs human (-hotseat)
// or AI vs AI (-watch).
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/draughtsGo/internal/ai"
	"github.com/janpfeifer/draughtsGo/internal/match"
	"github.com/janpfeifer/draughtsGo/internal/players"
	_ "github.com/janpfeifer/draughtsGo/internal/players/default"
	. "github.com/janpfeifer/draughtsGo/internal/state"
	"github.com/janpfeifer/draughtsGo/internal/ui/cli"
	"github.com/janpfeifer/draughtsGo/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

var (
	flagHotseat   = flag.Bool("hotseat", false, "Hotseat match: human vs human")
	flagWatch     = flag.Bool("watch", false, "Watch mode: AI vs AI playing")
	flagFirst     = flag.String("first", "", "Who plays first (White): human or ai. Default is random.")
	flagAIConfig  = flag.String("config", players.DefaultPlayerConfig, "AI configuration against which to play")
	flagAIConfig2 = flag.String("config2", players.DefaultPlayerConfig, "Second AI configuration, if playing AI vs AI with --watch")
	flagMaxMoves  = flag.Int("max_moves", DefaultMaxMoves, "Max moves (plies) before game is considered a draw.")
	flagMoveTime  = flag.Duration("move_time", 0, "If > 0, the AI is interrupted after this time and plays whatever it has.")
	flagFEN       = flag.String("fen", "", "Start position in FEN notation, e.g. \""+StartFEN+"\". Default is the standard start.")
	flagColor     = flag.Bool("color", cli.IsTerminal(), "Use colors in the output.")
	flagQuiet     = flag.Bool("quiet", false, "Quiet mode for when watching AI play, only the moves and the last board position is printed.")

	matchName = "The Match"
	globalCtx = context.Background()
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagMaxMoves <= 0 {
		klog.Fatalf("Invalid --max_moves=%d", *flagMaxMoves)
	}

	// Capture Control+C
	var cancel func()
	globalCtx, cancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()

	start := NewBoard()
	if *flagFEN != "" {
		start = must.M1(ParseFEN(*flagFEN))
	}
	ui := cli.New(*flagColor, false)
	matchPlayers := createPlayers(ui)

	for playerNum, player := range matchPlayers {
		if _, isHuman := player.(*cli.Human); !isHuman {
			matchPlayers[playerNum] = &spinningPlayer{Player: player}
		}
	}

	result, err := match.Run(globalCtx, matchPlayers, match.Options{
		Start:    start,
		MaxMoves: *flagMaxMoves,
		MoveTime: *flagMoveTime,
		OnMove: func(board *Board, move Move, score ai.Score) {
			mover := board.OpponentPlayer()
			if _, isHuman := matchPlayers[mover].(*cli.Human); isHuman {
				return
			}
			fmt.Println()
			ui.PrintMove(mover, move, score)
			if *flagWatch && !*flagQuiet {
				ui.Print(board, false)
			}
		},
	})
	if err != nil {
		klog.Exitf("Failed to run match: %+v", err)
	}
	ui.Print(result.Board, false)
	ui.PrintWinner(result.Winner)
}

// spinningPlayer shows a spinner while the AI player thinks.
type spinningPlayer struct {
	players.Player
}

func (p *spinningPlayer) Play(board *Board) (move Move, score ai.Score, found bool) {
	fmt.Printf("\n%s (%s) thinking ", board.NextPlayer, p.Player)
	s := spinning.New(globalCtx)
	defer s.Done()
	return p.Player.Play(board)
}

// createPlayers for the match: humans are read from the terminal.
func createPlayers(ui *cli.UI) (matchPlayers [NumPlayers]players.Player) {
	if *flagHotseat && *flagWatch {
		klog.Fatalf("--hotseat and --watch cannot be used together")
	}
	human := ui.NewHuman()
	matchPlayers[PlayerFirst], matchPlayers[PlayerSecond] = human, human
	if *flagHotseat {
		// Both players are human, nothing to do.
		return
	}

	// Create AI player:
	var aiPlayerNum PlayerNum
	if *flagWatch {
		aiPlayerNum = PlayerFirst
	} else {
		switch strings.ToLower(*flagFirst) {
		case "human":
			aiPlayerNum = PlayerSecond
		case "ai":
			aiPlayerNum = PlayerFirst
		case "":
			aiPlayerNum = PlayerNum(rand.IntN(NumPlayers))
		default:
			exceptions.Panicf("invalid --first=%q, only valid values are \"human\" or \"ai\"", *flagFirst)
		}
	}
	matchPlayers[aiPlayerNum] = must.M1(players.New(matchName, aiPlayerNum, *flagAIConfig))
	if !*flagWatch {
		return
	}

	// Create second AI
	otherPlayerNum := aiPlayerNum.Opponent()
	matchPlayers[otherPlayerNum] = must.M1(players.New(matchName, otherPlayerNum, *flagAIConfig2))
	return
}

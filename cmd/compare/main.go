// compare plays a series of matches between two AI configurations, alternating colors, and
// reports the tally.
package main

import (
	"context"
	"flag"
	"fmt"
	"runtime"
	"time"

	"github.com/janpfeifer/draughtsGo/internal/match"
	"github.com/janpfeifer/draughtsGo/internal/players"
	_ "github.com/janpfeifer/draughtsGo/internal/players/default"
	"github.com/janpfeifer/draughtsGo/internal/profilers"
	"github.com/janpfeifer/draughtsGo/internal/state"
	"github.com/janpfeifer/draughtsGo/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagPlayer1Config = flag.String("ai1", "", "1st player configuration.")
	flagPlayer2Config = flag.String("ai2", "", "2nd player configuration.")
	flagNumMatches    = flag.Int("num_matches", 100, "Number of matches to play.")
	flagParallelism   = flag.Int("parallelism", 0, "If > 0 ignore GOMAXPROCS and play "+
		"these many matches simultaneously.")
	flagMaxMoves = flag.Int(
		"max_moves", state.DefaultMaxMoves, "Max moves (plies) before game is assumed to be a draw.")
	flagMoveTime = flag.Duration("move_time", 0, "If > 0, each AI move is interrupted after this time.")
)

// Globals
var (
	// globalCtx used everywhere. It is cancelled when the program is about to exit either by
	// an interrupt (ctrl+C) or by reaching the end.
	globalCtx = context.Background()
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	if *flagPlayer1Config == "" || *flagPlayer2Config == "" {
		klog.Fatal("You must configure both players to compare with flags -ai1 and -ai2")
	}

	// Capture Control+C
	var globalCancel func()
	globalCtx, globalCancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(globalCancel, 5*time.Second)
	defer globalCancel()

	// Profilers: HTTP profiler server and CPU profile.
	stopProfilers := must.M1(profilers.Setup(globalCtx))
	defer stopProfilers()

	// Fail early on invalid configurations.
	for playerIdx, config := range []string{*flagPlayer1Config, *flagPlayer2Config} {
		player := must.M1(players.New("check", state.PlayerNum(playerIdx), config))
		fmt.Printf("AI-%d: %s\n", playerIdx+1, player)
		player.Finalize()
	}

	start := time.Now()
	tally, err := match.RunMany(globalCtx, *flagNumMatches, getParallelism(), newPlayers, match.Options{
		MaxMoves: *flagMaxMoves,
		MoveTime: *flagMoveTime,
	})
	if errors.Is(err, context.Canceled) {
		fmt.Printf("Interrupted: %s\n", globalCtx.Err())
		return
	}
	must.M(err)
	fmt.Printf("%d matches in %s: AI-1 %d wins / AI-2 %d wins / %d draws (%.1f plies per match)\n",
		*flagNumMatches, time.Since(start).Round(time.Millisecond),
		tally.Wins[0], tally.Wins[1], tally.Draws, float64(tally.Plies)/float64(max(*flagNumMatches, 1)))
}

// newPlayers creates the players of one match: searchers keep state, so they can't be shared
// among concurrent matches.
func newPlayers(matchIdx int) (matchPlayers [state.NumPlayers]players.Player, err error) {
	matchName := fmt.Sprintf("Match-%05d", matchIdx)
	for playerIdx, config := range [state.NumPlayers]string{*flagPlayer1Config, *flagPlayer2Config} {
		matchPlayers[playerIdx], err = players.New(matchName, state.PlayerNum(playerIdx), config)
		if err != nil {
			return
		}
	}
	return
}

// getParallelism returns the parallelism.
func getParallelism() (parallelism int) {
	parallelism = runtime.GOMAXPROCS(0)
	if *flagParallelism > 0 {
		parallelism = *flagParallelism
	}
	return
}

package cli

import (
	"github.com/janpfeifer/draughtsGo/internal/ai"
	"github.com/janpfeifer/draughtsGo/internal/players"
	. "github.com/janpfeifer/draughtsGo/internal/state"
	"k8s.io/klog/v2"
)

// Human is a players.Player that reads its moves from the UI.
type Human struct {
	ui *UI
}

// Assert Human is a Player.
var _ players.Player = (*Human)(nil)

// NewHuman returns a player that shows the board and asks for moves using ui.
func (ui *UI) NewHuman() *Human {
	return &Human{ui: ui}
}

// Play implements players.Player. It returns found=false if no legal move could be read, which
// ends the match.
func (h *Human) Play(board *Board) (move Move, score ai.Score, found bool) {
	h.ui.Print(board, true)
	_, _ = h.ui.out.Write([]byte("\n"))
	move, err := h.ui.ReadMove(board)
	if err != nil {
		klog.Errorf("%s player: %v", board.NextPlayer, err)
		return
	}
	return move, 0, true
}

// Stop implements players.Player. Humans take their time.
func (h *Human) Stop() {}

// Finalize implements players.Player.
func (h *Human) Finalize() {}

// String implements players.Player.
func (h *Human) String() string { return "human" }

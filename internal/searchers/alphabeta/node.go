package alphabeta

import (
	. "github.com/janpfeifer/draughtsGo/internal/state"
)

// Node is a position visited by the search. The board is shared by every node of a search and
// mutated in place (Board.Act / Board.Undo), so a Node is only meaningful while the search is at it.
type Node struct {
	board *Board

	bestMove    Move
	hasBestMove bool
}

func newNode(board *Board) *Node {
	return &Node{board: board}
}

// Board at the node.
func (n *Node) Board() *Board { return n.board }

// BestMove found for the node, if any. It stays empty if the node had no legal moves, or if its
// search was interrupted.
func (n *Node) BestMove() (move Move, found bool) {
	return n.bestMove, n.hasBestMove
}

func (n *Node) setBestMove(move Move) {
	n.bestMove, n.hasBestMove = move, true
}

package main

// MoveHistory records placed coordinates in play order.
type MoveHistory struct {
	moves []Move
}

func (h *MoveHistory) Push(move Move) {
	h.moves = append(h.moves, move)
}

// Pop removes and returns the most recent move.
func (h *MoveHistory) Pop() (Move, bool) {
	if len(h.moves) == 0 {
		return Move{}, false
	}
	last := h.moves[len(h.moves)-1]
	h.moves = h.moves[:len(h.moves)-1]
	return last, true
}

func (h MoveHistory) Top() (Move, bool) {
	if len(h.moves) == 0 {
		return Move{}, false
	}
	return h.moves[len(h.moves)-1], true
}

func (h MoveHistory) Size() int {
	return len(h.moves)
}

func (h MoveHistory) All() []Move {
	return append([]Move(nil), h.moves...)
}

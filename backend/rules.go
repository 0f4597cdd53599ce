package main

const winLength = 5

type step struct {
	dx, dy int
}

// axis is a line direction through a cell, walked once each way.
type axis struct {
	forward  step
	backward step
}

var axes = [4]axis{
	{forward: step{dx: 1, dy: 0}, backward: step{dx: -1, dy: 0}},
	{forward: step{dx: 0, dy: 1}, backward: step{dx: 0, dy: -1}},
	{forward: step{dx: 1, dy: 1}, backward: step{dx: -1, dy: -1}},
	{forward: step{dx: 1, dy: -1}, backward: step{dx: -1, dy: 1}},
}

// IsWin reports whether the stone at move sits on a run of at least
// winLength same-colored stones along any axis. Overlines count.
func IsWin(board Board, move Move) bool {
	if !board.InBounds(move.X, move.Y) {
		return false
	}
	cell := board.At(move.X, move.Y)
	if cell == CellEmpty {
		return false
	}
	for _, a := range axes {
		far := scanBoundary(board, move, cell, a.forward)
		near := scanBoundary(board, move, cell, a.backward)
		// both ends are exclusive, so a run of n stones spans n+1 steps
		if stepsBetween(near, far, a.forward) > winLength {
			return true
		}
	}
	return false
}

// scanBoundary walks from start until it leaves the board or meets a cell
// that is not cell, and returns that first non-matching coordinate.
func scanBoundary(board Board, start Move, cell Cell, s step) Move {
	x, y := start.X, start.Y
	for board.InBounds(x, y) && board.At(x, y) == cell {
		x += s.dx
		y += s.dy
	}
	return Move{X: x, Y: y}
}

func stepsBetween(from, to Move, s step) int {
	if s.dx != 0 {
		return (to.X - from.X) / s.dx
	}
	return (to.Y - from.Y) / s.dy
}

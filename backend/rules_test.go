package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardWith(size int, cell Cell, moves ...Move) Board {
	board := NewBoard(size)
	for _, m := range moves {
		board.Set(m.X, m.Y, cell)
	}
	return board
}

func line(x, y, dx, dy, n int) []Move {
	moves := make([]Move, 0, n)
	for i := 0; i < n; i++ {
		moves = append(moves, Move{X: x + i*dx, Y: y + i*dy})
	}
	return moves
}

func TestIsWinAxes(t *testing.T) {
	tests := []struct {
		name  string
		moves []Move
		at    Move
		want  bool
	}{
		{name: "horizontal five", moves: line(3, 7, 1, 0, 5), at: Move{X: 7, Y: 7}, want: true},
		{name: "horizontal checked from middle", moves: line(3, 7, 1, 0, 5), at: Move{X: 5, Y: 7}, want: true},
		{name: "vertical five", moves: line(2, 0, 0, 1, 5), at: Move{X: 2, Y: 2}, want: true},
		{name: "main diagonal five", moves: line(0, 0, 1, 1, 5), at: Move{X: 4, Y: 4}, want: true},
		{name: "main diagonal four", moves: line(0, 0, 1, 1, 4), at: Move{X: 3, Y: 3}, want: false},
		{name: "anti diagonal five", moves: line(10, 4, -1, 1, 5), at: Move{X: 8, Y: 6}, want: true},
		{name: "anti diagonal to corner", moves: line(14, 10, -1, 1, 5), at: Move{X: 14, Y: 10}, want: true},
		{name: "overline six", moves: line(0, 3, 1, 0, 6), at: Move{X: 2, Y: 3}, want: true},
		{name: "five along right edge", moves: line(10, 14, 1, 0, 5), at: Move{X: 14, Y: 14}, want: true},
		{name: "four along edge", moves: line(11, 0, 1, 0, 4), at: Move{X: 11, Y: 0}, want: false},
		{name: "single stone", moves: []Move{{X: 7, Y: 7}}, at: Move{X: 7, Y: 7}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := boardWith(15, CellBlack, tt.moves...)
			assert.Equal(t, tt.want, IsWin(board, tt.at))
		})
	}
}

func TestIsWinStopsAtOpponentStone(t *testing.T) {
	board := boardWith(15, CellBlack, line(0, 0, 1, 0, 4)...)
	board.Set(4, 0, CellWhite)
	board.Set(5, 0, CellBlack)
	assert.False(t, IsWin(board, Move{X: 3, Y: 0}))
	assert.False(t, IsWin(board, Move{X: 5, Y: 0}))
}

func TestIsWinEmptyOrOutside(t *testing.T) {
	board := boardWith(15, CellWhite, line(0, 0, 1, 0, 5)...)
	assert.False(t, IsWin(board, Move{X: 5, Y: 0}))
	assert.False(t, IsWin(board, Move{X: -1, Y: 0}))
	assert.False(t, IsWin(board, Move{X: 15, Y: 0}))
}

func TestIsWinUsesColorAtProbe(t *testing.T) {
	board := boardWith(15, CellWhite, line(4, 4, 0, 1, 5)...)
	assert.True(t, IsWin(board, Move{X: 4, Y: 8}))
	board.Set(4, 9, CellBlack)
	assert.False(t, IsWin(board, Move{X: 4, Y: 9}))
}

// longestRunThrough counts the longest same-colored line through m by
// walking each of the eight neighbours directly.
func longestRunThrough(board Board, m Move) int {
	cell := board.At(m.X, m.Y)
	if cell == CellEmpty {
		return 0
	}
	best := 0
	for _, d := range [][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}} {
		count := 1
		for _, sign := range []int{1, -1} {
			x, y := m.X+sign*d[0], m.Y+sign*d[1]
			for board.InBounds(x, y) && board.At(x, y) == cell {
				count++
				x += sign * d[0]
				y += sign * d[1]
			}
		}
		if count > best {
			best = count
		}
	}
	return best
}

func TestIsWinMatchesRunLengthOnRandomBoards(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	cells := []Cell{CellEmpty, CellBlack, CellWhite}
	for round := 0; round < 300; round++ {
		size := 5 + rng.Intn(11)
		board := NewBoard(size)
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				// bias towards black so long runs actually show up
				board.Set(x, y, cells[rng.Intn(3)])
				if rng.Intn(3) == 0 {
					board.Set(x, y, CellBlack)
				}
			}
		}
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				m := Move{X: x, Y: y}
				want := longestRunThrough(board, m) >= winLength
				require.Equalf(t, want, IsWin(board, m), "round %d size %d at %s", round, size, m)
			}
		}
	}
}

func TestStepsBetween(t *testing.T) {
	assert.Equal(t, 6, stepsBetween(Move{X: 2, Y: 7}, Move{X: 8, Y: 7}, step{dx: 1}))
	assert.Equal(t, 3, stepsBetween(Move{X: 1, Y: 1}, Move{X: 1, Y: 4}, step{dy: 1}))
	assert.Equal(t, 4, stepsBetween(Move{X: 5, Y: 0}, Move{X: 1, Y: 4}, step{dx: -1, dy: 1}))
}

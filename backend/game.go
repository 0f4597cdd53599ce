package main

import (
	"errors"
	"fmt"
)

const minBoardSize = winLength

var (
	ErrOutOfBounds      = errors.New("coordinate out of bounds")
	ErrInvalidBoardSize = errors.New("invalid board size")
)

// PlaceResult reports the outcome of Game.Place. Occupied is false when the
// target cell already held a stone and nothing changed.
type PlaceResult struct {
	Occupied bool
	Winning  bool
}

// Game owns one board, its move history and the turn indicator. It is not
// safe for concurrent use.
type Game struct {
	board   Board
	history MoveHistory
	toMove  PlayerColor
}

// NewGame returns an empty game on a boardSize x boardSize grid. Boards too
// small to hold a line of winLength stones are rejected.
func NewGame(boardSize int) (Game, error) {
	if boardSize < minBoardSize {
		return Game{}, fmt.Errorf("%w: %d is below %d", ErrInvalidBoardSize, boardSize, minBoardSize)
	}
	return Game{
		board:  NewBoard(boardSize),
		toMove: PlayerBlack,
	}, nil
}

// Place puts a stone of the current turn's color at (x, y). The win check
// looks at the stone just placed, not at the player now to move.
func (g *Game) Place(x, y int) (PlaceResult, error) {
	if err := g.checkBounds(x, y); err != nil {
		return PlaceResult{}, err
	}
	if !g.board.IsEmpty(x, y) {
		return PlaceResult{}, nil
	}
	move := NewMove(x, y)
	g.board.Set(x, y, CellFromPlayer(g.toMove))
	g.history.Push(move)
	g.toMove = otherPlayer(g.toMove)
	return PlaceResult{Occupied: true, Winning: IsWin(g.board, move)}, nil
}

// Undo takes back the most recent stone. It returns false when no move has
// been played.
func (g *Game) Undo() bool {
	last, ok := g.history.Pop()
	if !ok {
		return false
	}
	g.board.Remove(last.X, last.Y)
	g.toMove = otherPlayer(g.toMove)
	return true
}

// CheckWin reports whether the stone at (x, y) completes five or more in a
// row. An empty cell never wins.
func (g *Game) CheckWin(x, y int) (bool, error) {
	if err := g.checkBounds(x, y); err != nil {
		return false, err
	}
	return IsWin(g.board, NewMove(x, y)), nil
}

func (g *Game) Size() int {
	return g.board.Size()
}

func (g *Game) At(x, y int) (Cell, error) {
	if err := g.checkBounds(x, y); err != nil {
		return CellEmpty, err
	}
	return g.board.At(x, y), nil
}

func (g *Game) Turn() PlayerColor {
	return g.toMove
}

func (g *Game) Board() Board {
	return g.board.Clone()
}

func (g *Game) History() []Move {
	return g.history.All()
}

func (g *Game) MoveCount() int {
	return g.history.Size()
}

func (g *Game) LastMove() (Move, bool) {
	return g.history.Top()
}

func (g *Game) checkBounds(x, y int) error {
	if !NewMove(x, y).IsValid(g.board.Size()) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfBounds, x, y, g.board.Size(), g.board.Size())
	}
	return nil
}

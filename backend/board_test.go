package main

import "testing"

func TestBoardRowsAreIndexedByY(t *testing.T) {
	board := NewBoard(4)
	board.Set(3, 1, CellWhite)
	rows := board.Rows()
	if len(rows) != 4 || len(rows[0]) != 4 {
		t.Fatalf("expected 4x4 rows, got %dx%d", len(rows), len(rows[0]))
	}
	if rows[1][3] != CellWhite {
		t.Fatalf("expected white at rows[1][3], got %s", rows[1][3])
	}
	rows[1][3] = CellBlack
	if board.At(3, 1) != CellWhite {
		t.Fatalf("rows must not alias board storage")
	}
}

func TestBoardBoundsAndRemove(t *testing.T) {
	board := NewBoard(3)
	if board.InBounds(3, 0) || board.InBounds(0, -1) || !board.InBounds(2, 2) {
		t.Fatalf("unexpected bounds result")
	}
	if board.IsEmpty(5, 5) {
		t.Fatalf("out of bounds cell must not report empty")
	}
	board.Set(1, 1, CellBlack)
	if board.CountOccupied() != 1 {
		t.Fatalf("expected one occupied cell, got %d", board.CountOccupied())
	}
	board.Remove(1, 1)
	if !board.IsEmpty(1, 1) || board.CountOccupied() != 0 {
		t.Fatalf("expected cell to be cleared")
	}
}

func TestCellPlayerConversion(t *testing.T) {
	if CellFromPlayer(PlayerBlack) != CellBlack || CellFromPlayer(PlayerWhite) != CellWhite {
		t.Fatalf("unexpected cell for player")
	}
	if p, err := PlayerFromCell(CellWhite); err != nil || p != PlayerWhite {
		t.Fatalf("expected white player, got %v %v", p, err)
	}
	if _, err := PlayerFromCell(CellEmpty); err == nil {
		t.Fatalf("expected error for empty cell")
	}
	if otherPlayer(PlayerBlack) != PlayerWhite || otherPlayer(PlayerWhite) != PlayerBlack {
		t.Fatalf("toggle must switch between black and white")
	}
}

func TestMoveHistoryLIFO(t *testing.T) {
	var h MoveHistory
	if _, ok := h.Pop(); ok {
		t.Fatalf("pop on empty history must fail")
	}
	h.Push(NewMove(1, 2))
	h.Push(NewMove(3, 4))
	if top, ok := h.Top(); !ok || !top.Equals(NewMove(3, 4)) {
		t.Fatalf("unexpected top %v", top)
	}
	if last, _ := h.Pop(); !last.Equals(NewMove(3, 4)) {
		t.Fatalf("expected (3,4), got %v", last)
	}
	if h.Size() != 1 {
		t.Fatalf("expected one entry left, got %d", h.Size())
	}
}

func TestNewBoardClampsNegativeSize(t *testing.T) {
	board := NewBoard(-2)
	if board.Size() != 0 || len(board.Rows()) != 0 {
		t.Fatalf("expected empty board, got size %d", board.Size())
	}
	if board.InBounds(0, 0) {
		t.Fatalf("empty board has no cells")
	}
}

func TestMoveIsValid(t *testing.T) {
	if !NewMove(0, 0).IsValid(5) || !NewMove(4, 4).IsValid(5) {
		t.Fatalf("corner moves must be valid")
	}
	for _, m := range []Move{{X: 5, Y: 0}, {X: 0, Y: 5}, {X: -1, Y: 2}} {
		if m.IsValid(5) {
			t.Fatalf("expected %s to be invalid on 5x5", m)
		}
	}
}

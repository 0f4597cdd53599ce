package main

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GameController holds one game session for the HTTP and websocket layers.
// It keeps the win status the engine does not store, and serialises access
// to the engine.
type GameController struct {
	mu       sync.Mutex
	log      *zap.SugaredLogger
	settings GameSettings
	id       uuid.UUID
	game     Game
	winning  bool
	winner   PlayerColor
	publish  func(Snapshot)
}

// Snapshot is a copy of session state for rendering.
type Snapshot struct {
	ID       string
	Settings GameSettings
	Board    Board
	ToMove   PlayerColor
	Winning  bool
	Winner   PlayerColor
	History  []Move
}

func NewGameController(settings GameSettings, log *zap.SugaredLogger) (*GameController, error) {
	game, err := NewGame(settings.BoardSize)
	if err != nil {
		return nil, err
	}
	gc := &GameController{log: log, settings: settings}
	gc.start(game)
	return gc, nil
}

// SetPublisher registers a callback that receives a snapshot after every
// state change. It runs while the controller lock is held, so snapshots
// arrive in mutation order and publisher must not call back into gc.
func (gc *GameController) SetPublisher(publisher func(Snapshot)) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.publish = publisher
}

// Place forwards a placement to the engine. It returns false when the input
// was ignored: the cell was taken, or the game is won and StopOnWin is set.
func (gc *GameController) Place(x, y int) (bool, error) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	if gc.winning && gc.settings.StopOnWin {
		gc.log.Debugw("placement ignored, game already won", "session", gc.id, "x", x, "y", y)
		return false, nil
	}
	mover := gc.game.Turn()
	result, err := gc.game.Place(x, y)
	if err != nil {
		gc.log.Warnw("placement rejected", "session", gc.id, "x", x, "y", y, "error", err)
		return false, err
	}
	if !result.Occupied {
		gc.log.Debugw("placement on occupied cell ignored", "session", gc.id, "x", x, "y", y)
		return false, nil
	}
	gc.winning = result.Winning
	gc.winner = mover
	gc.log.Infow("stone placed",
		"session", gc.id,
		"player", mover.String(),
		"x", x,
		"y", y,
		"move", gc.game.MoveCount(),
	)
	if result.Winning {
		gc.log.Infow("five in a row", "session", gc.id, "winner", mover.String(), "x", x, "y", y)
	}
	gc.notify()
	return true, nil
}

// Undo takes back the last stone and recomputes the win status from the
// move that is now on top of the history.
func (gc *GameController) Undo() bool {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	last, ok := gc.game.LastMove()
	if !ok || !gc.game.Undo() {
		gc.log.Debugw("undo ignored, no moves", "session", gc.id)
		return false
	}
	gc.refreshWinStatus()
	gc.log.Infow("move undone", "session", gc.id, "x", last.X, "y", last.Y, "to_move", gc.game.Turn().String())
	gc.notify()
	return true
}

func (gc *GameController) Reset() {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	previous := gc.id
	// same size the constructor already accepted
	game, _ := NewGame(gc.settings.BoardSize)
	gc.start(game)
	gc.log.Infow("game reset", "session", gc.id, "previous", previous, "board_size", gc.settings.BoardSize)
	gc.notify()
}

func (gc *GameController) Settings() GameSettings {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.settings
}

func (gc *GameController) Snapshot() Snapshot {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.snapshot()
}

func (gc *GameController) snapshot() Snapshot {
	return Snapshot{
		ID:       gc.id.String(),
		Settings: gc.settings,
		Board:    gc.game.Board(),
		ToMove:   gc.game.Turn(),
		Winning:  gc.winning,
		Winner:   gc.winner,
		History:  gc.game.History(),
	}
}

func (gc *GameController) start(game Game) {
	gc.id = uuid.New()
	gc.game = game
	gc.winning = false
	gc.winner = PlayerBlack
}

func (gc *GameController) notify() {
	if gc.publish != nil {
		gc.publish(gc.snapshot())
	}
}

func (gc *GameController) refreshWinStatus() {
	gc.winning = false
	last, ok := gc.game.LastMove()
	if !ok {
		return
	}
	winning, err := gc.game.CheckWin(last.X, last.Y)
	if err != nil || !winning {
		return
	}
	cell, _ := gc.game.At(last.X, last.Y)
	if player, err := PlayerFromCell(cell); err == nil {
		gc.winning = true
		gc.winner = player
	}
}

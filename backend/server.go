package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type statusResponse struct {
	SessionID  string  `json:"session_id"`
	BoardSize  int     `json:"board_size"`
	Board      [][]int `json:"board"`
	NextPlayer int     `json:"next_player"`
	Winning    bool    `json:"winning"`
	Winner     int     `json:"winner"`
	MoveCount  int     `json:"move_count"`
	History    []Move  `json:"history"`
	LastMove   *Move   `json:"last_move"`
	StopOnWin  bool    `json:"stop_on_win"`
}

type actionResponse struct {
	Applied bool           `json:"applied"`
	Status  statusResponse `json:"status"`
}

type apiMove struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

type errorResponse struct {
	Error string `json:"error"`
}

var errInvalidPayload = errors.New("invalid payload")

// Server exposes one GameController to a local renderer.
type Server struct {
	controller *GameController
	hub        *Hub
	log        *zap.SugaredLogger
}

// NewServer wires controller state changes into hub broadcasts.
func NewServer(controller *GameController, hub *Hub, log *zap.SugaredLogger) *Server {
	s := &Server{controller: controller, hub: hub, log: log}
	controller.SetPublisher(s.publishStatus)
	return s
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.status())
	})

	r.Post("/api/move", func(w http.ResponseWriter, r *http.Request) {
		move, err := decodeMove(json.NewDecoder(r.Body))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		applied, err := s.place(move)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, actionResponse{Applied: applied, Status: s.status()})
	})

	r.Post("/api/undo", func(w http.ResponseWriter, r *http.Request) {
		applied := s.undo()
		writeJSON(w, http.StatusOK, actionResponse{Applied: applied, Status: s.status()})
	})

	r.Post("/api/reset", func(w http.ResponseWriter, r *http.Request) {
		s.reset()
		writeJSON(w, http.StatusOK, actionResponse{Applied: true, Status: s.status()})
	})

	r.Get("/ws/", s.serveWS)

	return r
}

func (s *Server) place(move Move) (bool, error) {
	return s.controller.Place(move.X, move.Y)
}

func (s *Server) undo() bool {
	return s.controller.Undo()
}

func (s *Server) reset() {
	s.controller.Reset()
}

// publishStatus runs under the controller lock; Hub.Publish never blocks.
func (s *Server) publishStatus(snap Snapshot) {
	msg, err := newWSMessage("status", statusFromSnapshot(snap))
	if err != nil {
		s.log.Errorw("status broadcast skipped", "session", snap.ID, "error", err)
		return
	}
	if !s.hub.Publish(msg) {
		s.log.Warnw("status broadcast dropped, hub buffer full", "session", snap.ID)
	}
}

func (s *Server) status() statusResponse {
	return statusFromSnapshot(s.controller.Snapshot())
}

func statusFromSnapshot(snap Snapshot) statusResponse {
	resp := statusResponse{
		SessionID:  snap.ID,
		BoardSize:  snap.Board.Size(),
		Board:      boardToSlice(snap.Board),
		NextPlayer: playerToInt(snap.ToMove),
		Winning:    snap.Winning,
		MoveCount:  len(snap.History),
		History:    append([]Move{}, snap.History...),
		StopOnWin:  snap.Settings.StopOnWin,
	}
	if snap.Winning {
		resp.Winner = playerToInt(snap.Winner)
	}
	if n := len(snap.History); n > 0 {
		last := snap.History[n-1]
		resp.LastMove = &last
	}
	return resp
}

func decodeMove(dec *json.Decoder) (Move, error) {
	var payload apiMove
	if err := dec.Decode(&payload); err != nil {
		return Move{}, errInvalidPayload
	}
	if payload.X == nil || payload.Y == nil {
		return Move{}, errInvalidPayload
	}
	return NewMove(*payload.X, *payload.Y), nil
}

func boardToSlice(board Board) [][]int {
	rows := board.Rows()
	out := make([][]int, len(rows))
	for y, row := range rows {
		out[y] = make([]int, len(row))
		for x, cell := range row {
			out[y][x] = cellToInt(cell)
		}
	}
	return out
}

func cellToInt(cell Cell) int {
	switch cell {
	case CellBlack:
		return 1
	case CellWhite:
		return 2
	default:
		return 0
	}
}

func playerToInt(player PlayerColor) int {
	if player == PlayerBlack {
		return 1
	}
	return 2
}

func requestLogger(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Debugw("http request",
				"request_id", middleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"elapsed", time.Since(start),
			)
		})
	}
}

func newWSMessage(kind string, v any) (wsMessage, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return wsMessage{}, fmt.Errorf("encode %s message: %w", kind, err)
	}
	return wsMessage{Type: kind, Payload: payload}, nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

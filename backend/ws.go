package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	wsIdlePingInterval = 30 * time.Second
	wsWriteTimeout     = 5 * time.Second
)

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warnw("websocket upgrade failed", "error", err)
		return
	}
	client := NewClient()
	s.hub.Register(client)
	defer s.hub.Unregister(client)
	s.sendWS(client, "status", s.status())

	go func() {
		defer conn.Close()
		if err := writeWS(conn, client.send); err != nil {
			s.log.Debugw("websocket writer stopped", "error", err)
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError(client, errInvalidPayload)
			continue
		}
		s.handleWSMessage(client, msg)
	}
}

func (s *Server) handleWSMessage(client *Client, msg wsMessage) {
	switch msg.Type {
	case "request_status":
		s.sendWS(client, "status", s.status())
	case "move":
		move, err := decodeMove(json.NewDecoder(bytes.NewReader(msg.Payload)))
		if err != nil {
			s.sendError(client, err)
			return
		}
		if _, err := s.place(move); err != nil {
			s.sendError(client, err)
		}
	case "undo":
		s.undo()
	case "reset":
		s.reset()
	default:
		s.sendError(client, errors.New("unknown message type: "+msg.Type))
	}
}

// writeWS drains send onto conn and pings when the socket has been idle for
// wsIdlePingInterval. It returns nil once send is closed.
func writeWS(conn *websocket.Conn, send <-chan []byte) error {
	ticker := time.NewTicker(wsIdlePingInterval)
	defer ticker.Stop()
	lastWrite := time.Now()

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
					time.Now().Add(wsWriteTimeout))
				return nil
			}
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
			lastWrite = time.Now()
		case <-ticker.C:
			if time.Since(lastWrite) < wsIdlePingInterval {
				continue
			}
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteTimeout)); err != nil {
				return err
			}
			lastWrite = time.Now()
		}
	}
}

func (s *Server) sendWS(client *Client, kind string, v any) {
	msg, err := newWSMessage(kind, v)
	if err != nil {
		s.log.Errorw("websocket reply skipped", "type", kind, "error", err)
		return
	}
	client.sendJSON(msg)
}

func (s *Server) sendError(client *Client, err error) {
	s.sendWS(client, "error", errorResponse{Error: err.Error()})
}

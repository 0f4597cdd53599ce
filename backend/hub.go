package main

import (
	"encoding/json"
	"sync"
)

const (
	hubBroadcastBuffer = 32
	clientSendBuffer   = 16
)

// Hub fans status messages out to every connected renderer.
type Hub struct {
	mu        sync.Mutex
	clients   map[*Client]struct{}
	broadcast chan wsMessage
}

type Client struct {
	mu     sync.Mutex
	closed bool
	send   chan []byte
}

type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*Client]struct{}),
		broadcast: make(chan wsMessage, hubBroadcastBuffer),
	}
}

func NewClient() *Client {
	return &Client{send: make(chan []byte, clientSendBuffer)}
}

func (h *Hub) Run(done <-chan struct{}) {
	for {
		select {
		case <-done:
			h.closeAll()
			return
		case msg := <-h.broadcast:
			data, err := json.Marshal(msg)
			if err != nil {
				continue
			}
			h.mu.Lock()
			for client := range h.clients {
				client.enqueue(data)
			}
			h.mu.Unlock()
		}
	}
}

// Publish queues msg for every client. It drops the message when the
// broadcast buffer is full and reports whether it was queued.
func (h *Hub) Publish(msg wsMessage) bool {
	select {
	case h.broadcast <- msg:
		return true
	default:
		return false
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		c.close()
	}
	h.mu.Unlock()
}

func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	for client := range h.clients {
		delete(h.clients, client)
		client.close()
	}
	h.mu.Unlock()
}

func (c *Client) sendJSON(msg wsMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	c.enqueue(data)
}

// enqueue never blocks; a slow client misses frames instead of stalling the hub.
func (c *Client) enqueue(data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

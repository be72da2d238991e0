package ws

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 256
)

// Event kinds pushed to admin dashboards.
const (
	EventRoomReserved = "room_reserved"
	EventRoomReturned = "room_returned"
	EventItemReserved = "item_reserved"
	EventItemReturned = "item_returned"
)

// ReservationEvent is pushed to admin dashboards whenever a reservation is
// opened or closed.
type ReservationEvent struct {
	Type       string    `json:"type"`
	Student    string    `json:"student"`
	RoomNumber int       `json:"room_number,omitempty"`
	Building   string    `json:"building,omitempty"`
	ItemID     uint      `json:"item_id,omitempty"`
	Item       string    `json:"item,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ReservationHub fans reservation events out to connected dashboard clients.
type ReservationHub struct {
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	clients    map[*client]struct{}
}

func NewReservationHub() *ReservationHub {
	return &ReservationHub{
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 256),
		clients:    make(map[*client]struct{}),
	}
}

func (h *ReservationHub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = struct{}{}
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				c.conn.Close()
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					delete(h.clients, c)
					close(c.send)
					c.conn.Close()
				}
			}
		}
	}
}

// Broadcast pushes the event to every connected client. Safe on a nil hub so
// callers don't have to care whether the feed is wired up.
func (h *ReservationHub) Broadcast(evt ReservationEvent) {
	if h == nil {
		return
	}
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = time.Now().UTC()
	}
	data, err := json.Marshal(evt)
	if err != nil {
		log.Error().Err(err).Msg("ws: failed to marshal reservation event")
		return
	}
	h.broadcast <- data
}

type client struct {
	hub  *ReservationHub
	conn *websocket.Conn
	send chan []byte
}

func newClient(hub *ReservationHub, conn *websocket.Conn) *client {
	return &client{hub: hub, conn: conn, send: make(chan []byte, sendBufferSize)}
}

func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			if _, err := w.Write(msg); err != nil {
				return
			}
			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

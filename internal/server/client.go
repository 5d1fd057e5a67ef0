package server

import (
	"log"
	"time"

	"github.com/gorilla/websocket"

	"railhand/internal/engine"
	"railhand/internal/protocol"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// ClientType distinguishes the shared host screen from player phones.
// The host screen only ever sees the public board; phones see their
// own seat's view.
type ClientType int

const (
	ClientHostScreen ClientType = iota
	ClientPlayer
)

// Client is one WebSocket connection. The send channel carries typed
// envelopes; marshaling happens on the write pump so the hub goroutine
// never blocks on serialization.
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan protocol.Envelope
	PlayerID string
	Type     ClientType
}

func NewClient(hub *Hub, conn *websocket.Conn, playerID string, clientType ClientType) *Client {
	return &Client{
		hub:      hub,
		conn:     conn,
		send:     make(chan protocol.Envelope, 64),
		PlayerID: playerID,
		Type:     clientType,
	}
}

// Send queues an envelope, dropping it if the client cannot keep up.
// The next state broadcast makes a lagging client whole again.
func (c *Client) Send(env protocol.Envelope) {
	select {
	case c.send <- env:
	default:
		log.Printf("client %s lagging, dropped %s", c.PlayerID, env.Type)
	}
}

// SendState pushes the view appropriate to this client: the public
// board for the host screen, the per-seat view for a player phone.
func (c *Client) SendState(g *engine.Game, seat string) {
	if c.Type == ClientHostScreen {
		c.Send(protocol.Encode(protocol.MsgGameState, g.PublicView()))
		return
	}
	c.Send(protocol.Encode(protocol.MsgPlayerState, g.ViewFor(seat)))
}

// ReadPump decodes envelopes off the socket and forwards them to the
// hub until the connection drops.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var env protocol.Envelope
		if err := c.conn.ReadJSON(&env); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("client %s read error: %v", c.PlayerID, err)
			}
			return
		}
		if env.Type == "" {
			continue
		}
		c.hub.incoming <- IncomingMessage{Client: c, Envelope: env}
	}
}

// WritePump drains the send channel onto the socket and keeps the
// connection alive with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case env, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(env); err != nil {
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

// IncomingMessage pairs a decoded envelope with its source client.
type IncomingMessage struct {
	Client   *Client
	Envelope protocol.Envelope
}

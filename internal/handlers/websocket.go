package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/mdjobayerdream-BD/JioFFtopup/internal/metrics"
	"github.com/mdjobayerdream-BD/JioFFtopup/internal/models"
	"github.com/mdjobayerdream-BD/JioFFtopup/internal/services"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketHandler pushes update signals to connected clients. It subscribes
// to the UpdateBus: whenever a workflow changes balance-visible state, every
// connection belonging to that uid receives USER_DATA_UPDATE and re-reads
// its profile.
type WebSocketHandler struct {
	ledger *services.Ledger
	hub    *WebSocketHub
}

type WebSocketHub struct {
	clients    map[string]map[*websocket.Conn]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Message
}

type Client struct {
	UID       string
	SessionID string
	Conn      *websocket.Conn
}

type Message struct {
	Type string `json:"type"`
	UID  string `json:"uid,omitempty"`
	Data any    `json:"data,omitempty"`
}

func NewWebSocketHandler(ledger *services.Ledger, bus *services.UpdateBus) *WebSocketHandler {
	hub := &WebSocketHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 100),
	}

	go hub.run()

	updates := bus.Subscribe()
	go func() {
		for uid := range updates {
			hub.broadcast <- &Message{Type: "USER_DATA_UPDATE", UID: uid}
		}
	}()

	return &WebSocketHandler{
		ledger: ledger,
		hub:    hub,
	}
}

func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	uid := c.GetString("uid")
	sessionID := c.GetString("session_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.Warnf("ws: failed to upgrade connection: %v", err)
		return
	}

	client := &Client{
		UID:       uid,
		SessionID: sessionID,
		Conn:      conn,
	}

	h.hub.register <- client

	defer func() {
		h.hub.unregister <- client
		conn.Close()
	}()

	h.sendSnapshot(client)

	for {
		var msg Message
		err := conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logrus.Warnf("ws: read error: %v", err)
			}
			break
		}

		if msg.Type == "PING" {
			client.Conn.WriteJSON(Message{Type: "PONG", Data: gin.H{"timestamp": time.Now().Unix()}})
		}
	}
}

// sendSnapshot pushes the current wallet state on connect so a freshly
// attached client does not wait for the next update signal.
func (h *WebSocketHandler) sendSnapshot(client *Client) {
	user := h.ledger.CurrentUser(client.UID, client.SessionID)
	if user == nil {
		return
	}

	client.Conn.WriteJSON(Message{
		Type: "USER_DATA_UPDATE",
		UID:  user.UID,
		Data: gin.H{
			"balance": user.Balance,
			"tokens":  user.Tokens,
		},
	})
}

// BroadcastOrdersFeed pushes the live-orders ticker to every connection.
func (h *WebSocketHandler) BroadcastOrdersFeed(orders []models.Order) {
	h.hub.broadcast <- &Message{Type: "ORDERS_FEED", Data: orders}
}

func (hub *WebSocketHub) run() {
	for {
		select {
		case client := <-hub.register:
			if hub.clients[client.UID] == nil {
				hub.clients[client.UID] = make(map[*websocket.Conn]bool)
			}
			hub.clients[client.UID][client.Conn] = true
			metrics.WebsocketClients.Inc()

		case client := <-hub.unregister:
			if conns, ok := hub.clients[client.UID]; ok {
				if conns[client.Conn] {
					delete(conns, client.Conn)
					metrics.WebsocketClients.Dec()
				}
				if len(conns) == 0 {
					delete(hub.clients, client.UID)
				}
			}

		case message := <-hub.broadcast:
			hub.broadcastMessage(message)
		}
	}
}

func (hub *WebSocketHub) broadcastMessage(message *Message) {
	if message.UID != "" {
		for conn := range hub.clients[message.UID] {
			conn.WriteJSON(message)
		}
		return
	}
	for _, conns := range hub.clients {
		for conn := range conns {
			conn.WriteJSON(message)
		}
	}
}

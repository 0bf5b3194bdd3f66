package websocket

import (
	"crypto/rand"
	"encoding/base64"

	"forum/internal/utils"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type Client struct {
	hub  *Hub
	conn *websocket.Conn
	ID   string
}

func generateClientID() string {
	bytes := make([]byte, 6)
	if _, err := rand.Read(bytes); err != nil {
		return "xxxxx"
	}
	return base64.URLEncoding.EncodeToString(bytes)
}

// Hub fans event-bus events out to every connected websocket client.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	eventBus   *utils.EventBus
	logger     *zap.SugaredLogger
}

func NewHub(logger *zap.Logger, eventBus *utils.EventBus) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		eventBus:   eventBus,
		logger:     logger.Sugar(),
	}
}

func (h *Hub) Run() {
	h.logger.Info("WebSocket Hub started")

	events := h.eventBus.SubscribeCh()

	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.logger.Infow("Client connected",
				"client_id", client.ID,
				"clients_count", len(h.clients),
			)

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				h.logger.Infow("Client disconnected",
					"client_id", client.ID,
					"clients_count", len(h.clients),
				)
			}

		case event := <-events:
			for client := range h.clients {
				if err := client.conn.WriteJSON(event); err != nil {
					h.logger.Warnw("Failed to send event to client",
						"client_id", client.ID,
						"event", event.Event,
						"error", err,
					)
				}
			}
		}
	}
}

package handlers

import (
	"net/http"

	"github.com/JinJinHistory/climb-hub/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketHandler upgrades clients onto the route-update event feed.
type WebSocketHandler struct {
	wsManager *utils.WebSocketManager
	log       *zap.Logger
}

// NewWebSocketHandler creates a new WebSocket handler.
func NewWebSocketHandler(wsManager *utils.WebSocketManager, log *zap.Logger) *WebSocketHandler {
	return &WebSocketHandler{wsManager: wsManager, log: log}
}

// HandleWebSocket upgrades the connection and keeps it registered until
// the client goes away. Incoming frames are drained and discarded; the
// feed is one-way.
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	clientID := uuid.NewString()
	h.wsManager.AddConnection(clientID, conn)

	go func() {
		defer h.wsManager.RemoveConnection(clientID)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

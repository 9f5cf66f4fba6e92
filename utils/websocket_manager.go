package utils

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WebSocketManager tracks connected realtime clients and broadcasts
// route-update events to all of them. Each connection gets its own write
// lock so concurrent broadcasts never interleave frames on one socket.
type WebSocketManager struct {
	connections map[string]*websocket.Conn
	writeMutex  map[string]*sync.Mutex
	mutex       sync.RWMutex
	log         *zap.Logger
}

// NewWebSocketManager creates an empty manager.
func NewWebSocketManager(log *zap.Logger) *WebSocketManager {
	return &WebSocketManager{
		connections: make(map[string]*websocket.Conn),
		writeMutex:  make(map[string]*sync.Mutex),
		log:         log,
	}
}

// AddConnection registers a client connection under the given id.
func (wm *WebSocketManager) AddConnection(clientID string, conn *websocket.Conn) {
	wm.mutex.Lock()
	defer wm.mutex.Unlock()

	wm.connections[clientID] = conn
	wm.writeMutex[clientID] = &sync.Mutex{}
	wm.log.Info("websocket client connected",
		zap.String("client_id", clientID),
		zap.Int("clients", len(wm.connections)),
	)
}

// RemoveConnection closes and forgets a client connection.
func (wm *WebSocketManager) RemoveConnection(clientID string) {
	wm.mutex.Lock()
	defer wm.mutex.Unlock()

	if conn, exists := wm.connections[clientID]; exists {
		conn.Close()
		delete(wm.connections, clientID)
		delete(wm.writeMutex, clientID)
		wm.log.Info("websocket client disconnected", zap.String("client_id", clientID))
	}
}

// ClientCount returns the number of connected clients.
func (wm *WebSocketManager) ClientCount() int {
	wm.mutex.RLock()
	defer wm.mutex.RUnlock()
	return len(wm.connections)
}

// Publish broadcasts an event envelope to every connected client.
// Broadcast failures only drop the affected connection; they never
// propagate back to the mutation that triggered the event.
func (wm *WebSocketManager) Publish(event string, data interface{}) {
	message := map[string]interface{}{
		"type":      event,
		"data":      data,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	wm.mutex.RLock()
	ids := make([]string, 0, len(wm.connections))
	for id := range wm.connections {
		ids = append(ids, id)
	}
	wm.mutex.RUnlock()

	for _, id := range ids {
		go wm.send(id, message)
	}
}

func (wm *WebSocketManager) send(clientID string, message interface{}) {
	wm.mutex.RLock()
	conn, connected := wm.connections[clientID]
	writeMu, hasMu := wm.writeMutex[clientID]
	wm.mutex.RUnlock()

	if !connected || !hasMu {
		return
	}

	writeMu.Lock()
	defer writeMu.Unlock()

	if err := conn.WriteJSON(message); err != nil {
		wm.log.Warn("websocket write failed, dropping client",
			zap.String("client_id", clientID),
			zap.Error(err),
		)
		wm.RemoveConnection(clientID)
	}
}

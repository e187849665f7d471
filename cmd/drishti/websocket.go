// cmd/drishti/websocket.go
package main

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var (
	wsUpgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true // dashboard is same-origin; no auth surface here
		},
	}
	wsClients = make(map[*websocket.Conn]bool)
	wsMutex   sync.Mutex
)

// handleWebsocket registers a dashboard client for refresh events
func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		Logger().Error("Error upgrading to websocket: %v", err)
		return
	}
	defer conn.Close()

	wsMutex.Lock()
	wsClients[conn] = true
	wsMutex.Unlock()
	defer func() {
		wsMutex.Lock()
		delete(wsClients, conn)
		wsMutex.Unlock()
	}()

	for {
		messageType, _, err := conn.ReadMessage()
		if err != nil {
			break // client disconnected
		}
		if messageType == websocket.PingMessage {
			conn.WriteMessage(websocket.PongMessage, nil)
		}
	}
}

// notifyWebSocketClients sends an event to all connected dashboard
// clients, dropping clients whose connection has gone away
func notifyWebSocketClients(eventType string, data interface{}) {
	message, err := json.Marshal(map[string]interface{}{
		"type": eventType,
		"data": data,
		"time": time.Now().Format(time.RFC3339),
	})
	if err != nil {
		Logger().Error("Error marshaling websocket message: %v", err)
		return
	}

	wsMutex.Lock()
	defer wsMutex.Unlock()
	for client := range wsClients {
		client.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
			client.Close()
			delete(wsClients, client)
		}
	}
}

package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// ConnectionManager handles active WebSocket connections thread-safely
type ConnectionManager struct {
	connections map[string]*websocket.Conn

	// writeMu serializes writes per socket; conn.WriteJSON is not thread-safe.
	writeMu map[string]*sync.Mutex

	mu sync.RWMutex // Protects the maps themselves
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		connections: make(map[string]*websocket.Conn),
		writeMu:     make(map[string]*sync.Mutex),
	}
}

// AddConnection registers a connection and its write lock under id.
func (cm *ConnectionManager) AddConnection(id string, conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if oldConn, exists := cm.connections[id]; exists && oldConn != conn {
		oldConn.Close()
	}

	cm.connections[id] = conn
	cm.writeMu[id] = &sync.Mutex{}
}

// RemoveConnection closes and forgets the connection registered under id.
func (cm *ConnectionManager) RemoveConnection(id string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if conn, exists := cm.connections[id]; exists {
		conn.Close()
		delete(cm.connections, id)
		delete(cm.writeMu, id)
	}
}

// SendMessage writes a JSON message to one connection. Unknown ids are ignored.
func (cm *ConnectionManager) SendMessage(id string, message ServerMessage) error {
	cm.mu.RLock()
	conn, exists := cm.connections[id]
	mu, muExists := cm.writeMu[id]
	cm.mu.RUnlock()

	if !exists || !muExists {
		return nil // disconnected, ignore
	}

	mu.Lock()
	defer mu.Unlock()

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(message)
}

// Ping sends a control ping under the connection's write lock.
func (cm *ConnectionManager) Ping(id string) error {
	cm.mu.RLock()
	conn, exists := cm.connections[id]
	mu, muExists := cm.writeMu[id]
	cm.mu.RUnlock()

	if !exists || !muExists {
		return websocket.ErrCloseSent
	}

	mu.Lock()
	defer mu.Unlock()
	return conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

func (cm *ConnectionManager) Count() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.connections)
}

// CloseAll sends a going-away close frame to every client and drops them.
func (cm *ConnectionManager) CloseAll(reason string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	frame := websocket.FormatCloseMessage(websocket.CloseGoingAway, reason)
	for id, conn := range cm.connections {
		mu := cm.writeMu[id]
		mu.Lock()
		_ = conn.WriteControl(websocket.CloseMessage, frame, time.Now().Add(time.Second))
		mu.Unlock()
		conn.Close()
		delete(cm.connections, id)
		delete(cm.writeMu, id)
	}
}

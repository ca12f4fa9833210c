package server

import (
	"net/http"

	"market-watch/src/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// -----------------------------------------------------------------------------
// Hub Pattern Implementation
// -----------------------------------------------------------------------------

// runHub is the main hub loop: one goroutine owns the client set.
func (s *DashboardServer) runHub() {
	for {
		select {
		case client := <-s.register:
			s.clients[client] = struct{}{}
			// Late joiners get the current summary right away
			s.stateMutex.RLock()
			if s.latestSummary != nil {
				client.send <- s.latestSummary
			}
			s.stateMutex.RUnlock()

		case client := <-s.unregister:
			if _, ok := s.clients[client]; ok {
				delete(s.clients, client)
				close(client.send)
			}

		case summary := <-s.broadcast:
			s.stateMutex.Lock()
			s.latestSummary = summary
			s.stateMutex.Unlock()

			for client := range s.clients {
				select {
				case client.send <- summary:
				default:
					// Client too slow, disconnect to keep the hub moving
					delete(s.clients, client)
					close(client.send)
				}
			}
		}
	}
}

// -----------------------------------------------------------------------------
// Data Exchange Interface Implementation
// -----------------------------------------------------------------------------

// Broadcast queues a new summary for all connected clients. Non-blocking for
// the caller as long as the buffer has room.
func (s *DashboardServer) Broadcast(summary *models.MMarketSummary) {
	if summary == nil {
		return
	}
	s.broadcast <- summary
}

// -----------------------------------------------------------------------------
// WebSocket Handlers
// -----------------------------------------------------------------------------

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// -----------------------------------------------------------------------------

func (s *DashboardServer) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.Logger.Info("Failed to upgrade websocket: %v", err)
		return
	}

	client := &Client{
		hub:  s,
		conn: conn,
		// Buffered so the hub loop never blocks on one client
		send: make(chan *models.MMarketSummary, 16),
	}

	s.register <- client

	go client.writePump()
	go client.readPump()
}

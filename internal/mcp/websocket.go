package mcp

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// WebSocketHandler upgrades each request and serves JSON-RPC over the
// connection until the peer disconnects or the request context ends.
func (s *Server) WebSocketHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			s.logger.Warn("WebSocket upgrade failed", "remote", r.RemoteAddr, "err", err)
			return
		}
		s.logger.Debug("WebSocket client connected", "remote", r.RemoteAddr)
		s.serveConn(r.Context(), conn)
		s.logger.Debug("WebSocket client disconnected", "remote", r.RemoteAddr)
	})
}

// serveConn handles messages concurrently; writes are serialized because a
// websocket.Conn supports only one writer at a time.
func (s *Server) serveConn(ctx context.Context, conn *websocket.Conn) {
	defer conn.Close()

	var (
		wg  sync.WaitGroup
		wmu sync.Mutex
	)
	defer wg.Wait()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil && websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("WebSocket read failed", "err", err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		wg.Add(1)
		go func(msg []byte) {
			defer wg.Done()
			reply := s.HandleMessage(ctx, msg)
			if reply == nil {
				return
			}
			wmu.Lock()
			defer wmu.Unlock()
			if err := conn.WriteJSON(reply); err != nil {
				s.logger.Debug("WebSocket write failed", "err", err)
			}
		}(data)
	}
}

package monitor

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeTimeout = 5 * time.Second

// Server streams run events to WebSocket clients. Clients
// connect to /ws and receive one JSON-encoded RunEvent per
// message, in emission order, starting from the moment they
// connect.
type Server struct {
	mu       sync.Mutex
	upgrader websocket.Upgrader
	conns    map[*websocket.Conn]struct{}
	server   *http.Server
	addr     string
}

// NewServer creates a Server broadcasting events from the
// given collector.
func NewServer(addr string, collector *Collector) *Server {
	s := &Server{
		upgrader: websocket.Upgrader{
			// The monitor is a local development aid; any
			// origin may connect.
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
		conns: make(map[*websocket.Conn]struct{}),
		addr:  addr,
	}
	collector.OnEvent(s.broadcast)
	return s
}

// Handler returns the HTTP handler serving the /ws and
// /health endpoints. Exposed so hosts can mount the monitor
// on an existing server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc(
		"/health",
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		},
	)
	return mux
}

// Start serves the monitor endpoints until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	s.server = &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}
	srv := s.server
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("monitor server: %w", err)
	}
	return nil
}

// Stop shuts the server down and closes all client
// connections.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	srv := s.server
	for conn := range s.conns {
		_ = conn.Close()
	}
	s.conns = make(map[*websocket.Conn]struct{})
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// ClientCount returns the number of connected clients.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

// handleWS upgrades the connection and keeps it registered
// until the client disconnects.
func (s *Server) handleWS(
	w http.ResponseWriter, r *http.Request,
) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()

	// Drain client frames so close messages are processed;
	// the monitor itself never reads client data.
	go func() {
		defer s.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// broadcast sends an event to every connected client,
// dropping clients whose writes fail.
func (s *Server) broadcast(e RunEvent) {
	s.mu.Lock()
	conns := make(
		[]*websocket.Conn, 0, len(s.conns),
	)
	for conn := range s.conns {
		conns = append(conns, conn)
	}
	s.mu.Unlock()

	for _, conn := range conns {
		_ = conn.SetWriteDeadline(
			time.Now().Add(writeTimeout),
		)
		if err := conn.WriteJSON(e); err != nil {
			s.drop(conn)
		}
	}
}

// drop closes and unregisters a client connection.
func (s *Server) drop(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
	_ = conn.Close()
}

package server

import (
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tomz197/bossrush/internal/loop/config"
)

// GameServer is the interface clients use to communicate with the server.
// Each client runs its own simulation; the server only tracks who is
// connected and keeps the shared leaderboard.
type GameServer interface {
	RegisterClient(username string) *ClientHandle
	UnregisterClient(clientID uuid.UUID)
	SubmitScore(clientID uuid.UUID, score int)
	TopScores() []TopScoreEntry
	Players() int
}

// Server tracks connected sessions and their final scores.
type Server struct {
	mu          sync.RWMutex
	clients     map[uuid.UUID]*ClientHandle
	leaderboard leaderboard
	logger      *log.Logger
}

// Compile-time check that Server implements GameServer.
var _ GameServer = (*Server)(nil)

// ClientHandle represents a client's connection to the server.
type ClientHandle struct {
	ID       uuid.UUID
	Username string           // Display name for this client
	EventsCh chan ClientEvent // Events sent to client (shutdown, leaderboard)
}

// ClientEvent represents an event sent from server to client.
type ClientEvent struct {
	Type ClientEventType
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventServerShutdown ClientEventType = iota
	EventLeaderboardChanged
)

// NewServer creates a new server. A nil logger uses the default logger.
func NewServer(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		clients:     make(map[uuid.UUID]*ClientHandle),
		leaderboard: leaderboard{size: config.TopScoresCount},
		logger:      logger,
	}
}

// Shutdown gracefully shuts down the server by notifying all connected clients
// and waiting for them to disconnect (up to the given timeout).
func (s *Server) Shutdown(timeout time.Duration) {
	s.broadcast(ClientEvent{Type: EventServerShutdown})

	// Wait for all clients to disconnect, or timeout
	deadline := time.After(timeout)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		if s.Players() == 0 {
			return
		}
		select {
		case <-deadline:
			s.logger.Warn("shutdown timed out", "remaining", s.Players())
			return
		case <-ticker.C:
		}
	}
}

// RegisterClient registers a new client with the given username and returns its handle.
func (s *Server) RegisterClient(username string) *ClientHandle {
	handle := &ClientHandle{
		ID:       uuid.New(),
		Username: displayName(username),
		EventsCh: make(chan ClientEvent, 16),
	}

	s.mu.Lock()
	s.clients[handle.ID] = handle
	players := len(s.clients)
	s.mu.Unlock()

	s.logger.Info("client registered", "id", handle.ID, "user", handle.Username, "players", players)
	return handle
}

// UnregisterClient removes a client from the server and closes its event channel.
func (s *Server) UnregisterClient(clientID uuid.UUID) {
	s.mu.Lock()
	handle, ok := s.clients[clientID]
	if ok {
		close(handle.EventsCh)
		delete(s.clients, clientID)
	}
	players := len(s.clients)
	s.mu.Unlock()

	if ok {
		s.logger.Info("client unregistered", "id", clientID, "user", handle.Username, "players", players)
	}
}

// SubmitScore records the final score of a finished run.
func (s *Server) SubmitScore(clientID uuid.UUID, score int) {
	s.mu.Lock()
	handle, ok := s.clients[clientID]
	if !ok {
		s.mu.Unlock()
		return
	}
	changed := s.leaderboard.add(handle.Username, score)
	s.mu.Unlock()

	s.logger.Info("game over", "user", handle.Username, "score", score, "leaderboard", changed)
	if changed {
		s.broadcast(ClientEvent{Type: EventLeaderboardChanged})
	}
}

// TopScores returns a copy of the leaderboard, best first.
func (s *Server) TopScores() []TopScoreEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.leaderboard.entries()
}

// Players returns the number of connected clients.
func (s *Server) Players() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *Server) broadcast(ev ClientEvent) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, handle := range s.clients {
		select {
		case handle.EventsCh <- ev:
		default:
		}
	}
}

// displayName trims the username to the display limit.
func displayName(username string) string {
	name := strings.TrimSpace(username)
	if name == "" {
		return "anonymous"
	}
	if r := []rune(name); len(r) > config.MaxUsernameLength {
		name = string(r[:config.MaxUsernameLength])
	}
	return name
}

package socketio_types

import (
	"sync"

	"github.com/zishang520/socket.io/v2/socket"
)

// Events pushed to connected players
const (
	EventTradeReceived   = "trade_received"
	EventTradeUpdated    = "trade_updated"
	EventFriendRequest   = "friend_request"
	EventFriendAccepted  = "friend_accepted"
	EventFriendRemoved   = "friend_removed"
	EventMissionComplete = "friendship_mission_completed"
)

// Notifier pushes an event to a player if they are connected.
type Notifier interface {
	Notify(subject, event string, payload interface{})
}

// NopNotifier drops every event.
type NopNotifier struct{}

func (NopNotifier) Notify(string, string, interface{}) {}

// OrNop returns n, or a NopNotifier when n is nil.
func OrNop(n Notifier) Notifier {
	if n == nil {
		return NopNotifier{}
	}
	return n
}

// SocketServer is a struct that contains the socket.io server and a map of socket connections,
// keyed by identity subject. Every socket of a player also joins the player's room.
type SocketServer struct {
	Sio_server *socket.Server
	// Map to track subject -> latest socket connection
	UserConnections map[string]*socket.Socket
	mutex           sync.RWMutex
}

func NewSocketServer() *SocketServer {
	return &SocketServer{
		UserConnections: make(map[string]*socket.Socket),
	}
}

// PlayerRoom is the room every socket of subject joins.
func PlayerRoom(subject string) socket.Room {
	return socket.Room("player:" + subject)
}

// Add methods to manage connections
func (s *SocketServer) AddConnection(subject string, client *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.UserConnections[subject] = client
}

// RemoveConnection forgets client, unless a newer socket already replaced it.
func (s *SocketServer) RemoveConnection(subject string, client *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if current, ok := s.UserConnections[subject]; ok && current == client {
		delete(s.UserConnections, subject)
	}
}

func (s *SocketServer) GetConnection(subject string) (*socket.Socket, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	c, exists := s.UserConnections[subject]
	return c, exists
}

// Notify emits event to every socket of subject. Offline players are skipped.
func (s *SocketServer) Notify(subject, event string, payload interface{}) {
	if _, online := s.GetConnection(subject); !online || s.Sio_server == nil {
		return
	}
	s.Sio_server.To(PlayerRoom(subject)).Emit(event, payload)
}

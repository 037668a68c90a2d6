package chat

import "sync"

// Connection is the registry's view of one live client: the client
// handle plus the room and username set by its last successful join.
// Room and Username are empty until the first join succeeds.
type Connection struct {
	Client   *Client
	Room     string
	Username string
}

// Registry is the authoritative store of live connections. It is shared
// by every session and safe for concurrent use; rooms are not stored as
// objects, membership is derived from the connection→room mapping.
type Registry struct {
	mu    sync.RWMutex
	conns map[string]*Connection
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		conns: make(map[string]*Connection),
	}
}

// Register inserts a new unjoined connection keyed by the client's id.
// Returns ErrDuplicateID if the id is still live.
func (r *Registry) Register(c *Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.conns[c.ID]; exists {
		return ErrDuplicateID
	}
	r.conns[c.ID] = &Connection{Client: c}
	return nil
}

// SetRoomAndName records the room and username for a connection.
// A prior room/username is overwritten: a second join switches rooms
// without leaving the previous one. Returns ErrInvalidJoin if room or
// username is empty, ErrUnknownConnection if the id is not registered.
func (r *Registry) SetRoomAndName(id, room, username string) error {
	if room == "" || username == "" {
		return ErrInvalidJoin
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	conn, ok := r.conns[id]
	if !ok {
		return ErrUnknownConnection
	}
	conn.Room = room
	conn.Username = username
	return nil
}

// Get returns a copy of the connection's current state.
func (r *Registry) Get(id string) (Connection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conn, ok := r.conns[id]
	if !ok {
		return Connection{}, false
	}
	return *conn, true
}

// MembersOf returns a snapshot of every client whose room equals the
// given value. The snapshot is consistent: a concurrent join or remove
// is either fully visible or not visible at all.
func (r *Registry) MembersOf(room string) []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var members []*Client
	for _, conn := range r.conns {
		if conn.Room == room {
			members = append(members, conn.Client)
		}
	}
	return members
}

// Remove deletes the connection and returns its prior state.
// Removing an unknown id is a no-op, not an error.
func (r *Registry) Remove(id string) (Connection, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conn, ok := r.conns[id]
	if !ok {
		return Connection{}, false
	}
	delete(r.conns, id)
	return *conn, true
}

// Len reports the number of live connections.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}

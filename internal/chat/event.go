package chat

import "time"

// EventKind is a notification the relay emits to clients.
type EventKind int

const (
	// EventSystemMessage is a relay-authored notice (join/leave announcements).
	EventSystemMessage EventKind = iota
	// EventChatMessage is a user-authored message relayed to a room.
	EventChatMessage
)

// Event is sent to clients to describe what happened in a room.
type Event struct {
	Kind EventKind
	Room string
	// From is the sender's username; empty for system messages.
	From string
	Text string
	// At is the relay-side wall-clock time of the broadcast; zero for
	// system messages.
	At time.Time
}

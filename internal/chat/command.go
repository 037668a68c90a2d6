package chat

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandJoinRoom enters a room under a display name.
	CommandJoinRoom CommandKind = iota
	// CommandSendMessage delivers a chat message to the current room.
	CommandSendMessage
)

// Command represents an action requested by a client. Disconnect is not
// a command: closing the client's command channel is the disconnect
// signal, so queued commands are always handled before cleanup.
type Command struct {
	Kind     CommandKind
	Room     string
	Username string
	Text     string
}

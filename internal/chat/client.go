package chat

// Client is one live transport connection as seen by the relay.
// The transport layer feeds inbound commands into Commands and drains
// outbound events from Events; the hub owns everything in between.
type Client struct {
	ID       string
	Commands chan Command
	Events   chan Event
}

// NewClient constructs a client with initialized channels.
func NewClient(id string) *Client {
	return &Client{
		ID:       id,
		Commands: make(chan Command, 8),
		Events:   make(chan Event, 8),
	}
}

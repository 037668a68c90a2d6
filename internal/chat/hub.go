package chat

import "github.com/rs/zerolog"

// Hub is the single ingress point for chat sessions. It registers
// clients on transport connect and runs one session loop per client,
// draining that client's command channel strictly in arrival order.
// Sessions run concurrently with respect to each other; events from a
// single connection are never handled concurrently, which preserves
// per-sender FIFO delivery.
type Hub struct {
	reg *Registry
	bc  *Broadcaster
	log *zerolog.Logger
}

// NewHub builds a hub over the given registry.
func NewHub(reg *Registry, logger *zerolog.Logger) *Hub {
	return &Hub{
		reg: reg,
		bc:  NewBroadcaster(reg, logger),
		log: logger,
	}
}

// RegisterClient adds the client to the registry as unjoined and starts
// its session loop. Returns ErrDuplicateID without starting anything if
// the id is already live; other sessions are unaffected.
func (h *Hub) RegisterClient(c *Client) error {
	if err := h.reg.Register(c); err != nil {
		return err
	}
	go h.runSession(c)
	return nil
}

// UnregisterClient signals the end of the client's session by closing
// its command channel. Commands already queued are still processed
// before the departure broadcast fires. Must be called exactly once per
// successfully registered client.
func (h *Hub) UnregisterClient(c *Client) {
	close(c.Commands)
}

func (h *Hub) runSession(c *Client) {
	s := &session{
		client: c,
		reg:    h.reg,
		bc:     h.bc,
		log:    h.log,
	}

	for cmd := range c.Commands {
		switch cmd.Kind {
		case CommandJoinRoom:
			s.handleJoin(cmd.Room, cmd.Username)
		case CommandSendMessage:
			s.handleSend(cmd.Text)
		}
	}
	s.terminate()
}

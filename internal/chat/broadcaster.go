package chat

import (
	"time"

	"github.com/rs/zerolog"
)

// Broadcaster fans a payload out to the members of a room. Delivery is
// best-effort: the membership set is snapshotted once per broadcast and
// a recipient whose event buffer is full is skipped, so a slow or dead
// recipient never stalls the sender.
type Broadcaster struct {
	reg *Registry
	log *zerolog.Logger
}

// NewBroadcaster builds a broadcaster over the given registry.
func NewBroadcaster(reg *Registry, logger *zerolog.Logger) *Broadcaster {
	return &Broadcaster{reg: reg, log: logger}
}

// System sends a relay-authored notice to every member of the room.
func (b *Broadcaster) System(room, text string) {
	b.deliver(room, Event{
		Kind: EventSystemMessage,
		Room: room,
		Text: text,
	})
}

// Message sends a user-authored chat message, tagged with the sender
// and the broadcast wall-clock time, to every member of the room.
func (b *Broadcaster) Message(room, from, text string, at time.Time) {
	b.deliver(room, Event{
		Kind: EventChatMessage,
		Room: room,
		From: from,
		Text: text,
		At:   at,
	})
}

func (b *Broadcaster) deliver(room string, event Event) {
	for _, client := range b.reg.MembersOf(room) {
		select {
		case client.Events <- event:
		default:
			// Drop if slow consumer.
			b.log.Warn().Str("client_id", client.ID).Str("room", room).Msg("event buffer full, dropping")
		}
	}
}

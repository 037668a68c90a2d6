package chat

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type sessionState int

const (
	stateUnjoined sessionState = iota
	stateJoined
	stateTerminated
)

// session drives the lifecycle of a single connection:
// unjoined → joined(room, username) → terminated. Each session is
// evaluated by exactly one goroutine, so its state needs no locking;
// the shared registry does its own.
type session struct {
	client *Client
	reg    *Registry
	bc     *Broadcaster
	log    *zerolog.Logger
	state  sessionState
}

// handleJoin transitions to joined and announces the entry to the room.
// Joins are re-entrant: a second join overwrites room and username with
// no departure notice to the old room. Invalid joins are dropped.
func (s *session) handleJoin(room, username string) {
	if s.state == stateTerminated {
		return
	}

	if err := s.reg.SetRoomAndName(s.client.ID, room, username); err != nil {
		s.log.Debug().Err(err).Str("client_id", s.client.ID).Msg("join dropped")
		return
	}
	s.state = stateJoined

	s.bc.System(room, fmt.Sprintf("%s entrou na sala %s", username, room))
	s.log.Info().Str("client_id", s.client.ID).Str("room", room).Str("username", username).Msg("client joined room")
}

// handleSend relays a chat message to the session's current room.
// Ignored while unjoined: no error, no broadcast.
func (s *session) handleSend(text string) {
	if s.state != stateJoined {
		return
	}

	conn, ok := s.reg.Get(s.client.ID)
	if !ok {
		s.log.Warn().Str("client_id", s.client.ID).Msg("send from unregistered connection dropped")
		return
	}
	s.bc.Message(conn.Room, conn.Username, text, time.Now())
}

// terminate removes the connection from the registry and, if it had
// joined a room, announces the departure to the remaining members.
// Removal happens first so the leaver is excluded from the fan-out.
func (s *session) terminate() {
	if s.state == stateTerminated {
		return
	}

	conn, ok := s.reg.Remove(s.client.ID)
	s.state = stateTerminated
	if !ok {
		return
	}

	if conn.Room != "" {
		s.bc.System(conn.Room, fmt.Sprintf("%s saiu da sala", conn.Username))
	}
	s.log.Info().Str("client_id", s.client.ID).Str("room", conn.Room).Msg("client disconnected")
}

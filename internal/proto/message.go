package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeJoinRoom    = "join_room"
	InboundTypeSendMessage = "send_message"

	OutboundTypeSystemMessage  = "system_message"
	OutboundTypeReceiveMessage = "receive_message"
)

// TimeLayout is the wall-clock format used for receive_message times.
const TimeLayout = "15:04:05"

// JoinRoomData requests to enter a room under a display name.
type JoinRoomData struct {
	Username string `json:"username"`
	Room     string `json:"room"`
}

// SendMessageData is a chat message for the sender's current room.
type SendMessageData struct {
	Message string `json:"message"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// SystemMessageData is a relay-authored notice, sent on join and departure.
type SystemMessageData struct {
	Message string `json:"message"`
}

// ReceiveMessageData is a user-authored chat message fanned out to a room.
type ReceiveMessageData struct {
	Username string `json:"username"`
	Message  string `json:"message"`
	Time     string `json:"time"`
}

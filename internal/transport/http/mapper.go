package http

import (
	"encoding/json"
	"fmt"

	"github.com/brasilutil/infohub-server/internal/chat"
	"github.com/brasilutil/infohub-server/internal/proto"
)

func inboundToCommand(inbound proto.Inbound) (*chat.Command, error) {
	switch inbound.Type {
	case proto.InboundTypeJoinRoom:
		var join proto.JoinRoomData
		if err := json.Unmarshal(inbound.Data, &join); err != nil {
			return nil, err
		}
		return &chat.Command{
			Kind:     chat.CommandJoinRoom,
			Room:     join.Room,
			Username: join.Username,
		}, nil
	case proto.InboundTypeSendMessage:
		var msg proto.SendMessageData
		if err := json.Unmarshal(inbound.Data, &msg); err != nil {
			return nil, err
		}
		return &chat.Command{
			Kind: chat.CommandSendMessage,
			Text: msg.Message,
		}, nil
	default:
		return nil, fmt.Errorf("unknown message type %q", inbound.Type)
	}
}

func outboundFromEvent(event chat.Event) proto.Outbound {
	switch event.Kind {
	case chat.EventChatMessage:
		return proto.Outbound{
			Type: proto.OutboundTypeReceiveMessage,
			Data: proto.ReceiveMessageData{
				Username: event.From,
				Message:  event.Text,
				Time:     event.At.Format(proto.TimeLayout),
			},
		}
	default:
		return proto.Outbound{
			Type: proto.OutboundTypeSystemMessage,
			Data: proto.SystemMessageData{
				Message: event.Text,
			},
		}
	}
}

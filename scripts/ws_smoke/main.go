// Command ws_smoke joins a room, sends one message and waits for the
// fan-out to come back. Exits non-zero if the relay misbehaves.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/brasilutil/infohub-server/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_smoke: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:8080/ws", "WebSocket address")
	user := flag.String("user", "tester", "username to join with")
	room := flag.String("room", "geral", "room name")
	text := flag.String("text", "mensagem de teste", "message text to send")
	timeout := flag.Duration("timeout", 5*time.Second, "total timeout for the run")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	joinPayload, err := json.Marshal(proto.JoinRoomData{Username: *user, Room: *room})
	if err != nil {
		return fmt.Errorf("marshal join: %w", err)
	}
	if err := wsjson.Write(ctx, conn, proto.Inbound{Type: proto.InboundTypeJoinRoom, Data: joinPayload}); err != nil {
		return fmt.Errorf("send join: %w", err)
	}

	// The joiner hears its own entry announcement.
	var outbound struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	if err := wsjson.Read(ctx, conn, &outbound); err != nil {
		return fmt.Errorf("read join announcement: %w", err)
	}
	if outbound.Type != proto.OutboundTypeSystemMessage {
		return fmt.Errorf("expected system_message, got %q", outbound.Type)
	}

	msgPayload, err := json.Marshal(proto.SendMessageData{Message: *text})
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	if err := wsjson.Write(ctx, conn, proto.Inbound{Type: proto.InboundTypeSendMessage, Data: msgPayload}); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	if err := wsjson.Read(ctx, conn, &outbound); err != nil {
		return fmt.Errorf("read fan-out: %w", err)
	}
	if outbound.Type != proto.OutboundTypeReceiveMessage {
		return fmt.Errorf("expected receive_message, got %q", outbound.Type)
	}
	var recv proto.ReceiveMessageData
	if err := json.Unmarshal(outbound.Data, &recv); err != nil {
		return fmt.Errorf("unmarshal receive_message: %w", err)
	}
	if recv.Username != *user || recv.Message != *text {
		return fmt.Errorf("unexpected fan-out payload: %+v", recv)
	}

	fmt.Printf("ok: %s@%s received %q at %s\n", recv.Username, *room, recv.Message, recv.Time)
	return nil
}

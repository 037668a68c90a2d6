// Command ws_chat is an interactive terminal client for the chat relay.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/brasilutil/infohub-server/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_chat: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:8080/ws", "WebSocket address")
	user := flag.String("user", "cli-user", "username")
	room := flag.String("room", "geral", "room to join")
	flag.Parse()

	baseCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(baseCtx)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	send := func(v interface{}) {
		if writeErr := wsjson.Write(ctx, conn, v); writeErr != nil {
			cancel()
			log.Printf("send: %v", writeErr)
		}
	}

	joinPayload, err := json.Marshal(proto.JoinRoomData{Username: *user, Room: *room})
	if err != nil {
		return fmt.Errorf("marshal join: %w", err)
	}
	send(proto.Inbound{Type: proto.InboundTypeJoinRoom, Data: joinPayload})

	fmt.Printf("Connected to %s as %s in room %s\n", *addr, *user, *room)
	fmt.Println("Type messages and press Enter to send. Ctrl+C to exit.")

	go func() {
		defer cancel()
		readLoop(ctx, conn)
	}()

	writeLoop(ctx, conn, send)

	stop()
	cancel()
	_ = conn.Close(websocket.StatusNormalClosure, "bye")
	return nil
}

func readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		var outbound struct {
			Type string          `json:"type"`
			Data json.RawMessage `json:"data"`
		}
		if err := wsjson.Read(ctx, conn, &outbound); err != nil {
			// Treat expected shutdowns quietly.
			if errors.Is(err, context.Canceled) {
				return
			}
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return
			}
			log.Printf("read error: %v", err)
			return
		}

		switch outbound.Type {
		case proto.OutboundTypeReceiveMessage:
			var msg proto.ReceiveMessageData
			if err := json.Unmarshal(outbound.Data, &msg); err != nil {
				log.Printf("unmarshal receive_message: %v", err)
				continue
			}
			fmt.Printf("[%s] %s: %s\n", msg.Time, msg.Username, msg.Message)
		case proto.OutboundTypeSystemMessage:
			var sys proto.SystemMessageData
			if err := json.Unmarshal(outbound.Data, &sys); err != nil {
				log.Printf("unmarshal system_message: %v", err)
				continue
			}
			fmt.Printf("* %s\n", sys.Message)
		default:
			log.Printf("unknown outbound type %q", outbound.Type)
		}
	}
}

func writeLoop(ctx context.Context, _ *websocket.Conn, send func(interface{})) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if !scanner.Scan() {
			return
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		payload, err := json.Marshal(proto.SendMessageData{Message: text})
		if err != nil {
			log.Printf("marshal message: %v", err)
			continue
		}
		send(proto.Inbound{Type: proto.InboundTypeSendMessage, Data: payload})
	}
}

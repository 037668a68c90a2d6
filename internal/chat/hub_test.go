package chat

import (
	"fmt"
	"testing"
)

func TestHubJoinAnnouncesToRoom(t *testing.T) {
	hub := newTestHub()

	ana := NewClient("a")
	if err := hub.RegisterClient(ana); err != nil {
		t.Fatalf("register: %v", err)
	}

	ana.Commands <- Command{Kind: CommandJoinRoom, Room: "sp", Username: "Ana"}

	// The joiner is a member at broadcast time and hears its own entry.
	ev := mustEvent(t, ana.Events, EventSystemMessage)
	if ev.Text != "Ana entrou na sala sp" || ev.Room != "sp" {
		t.Fatalf("unexpected join announcement: %+v", ev)
	}

	bruno := NewClient("b")
	if err := hub.RegisterClient(bruno); err != nil {
		t.Fatalf("register: %v", err)
	}
	bruno.Commands <- Command{Kind: CommandJoinRoom, Room: "sp", Username: "Bruno"}

	ev = mustEvent(t, ana.Events, EventSystemMessage)
	if ev.Text != "Bruno entrou na sala sp" {
		t.Fatalf("unexpected announcement to ana: %+v", ev)
	}
	ev = mustEvent(t, bruno.Events, EventSystemMessage)
	if ev.Text != "Bruno entrou na sala sp" {
		t.Fatalf("unexpected announcement to bruno: %+v", ev)
	}
}

func TestHubMessageReachesOnlyRoomMembers(t *testing.T) {
	hub := newTestHub()

	ana := NewClient("a")
	bruno := NewClient("b")
	carla := NewClient("c")
	for _, c := range []*Client{ana, bruno, carla} {
		if err := hub.RegisterClient(c); err != nil {
			t.Fatalf("register %s: %v", c.ID, err)
		}
	}

	ana.Commands <- Command{Kind: CommandJoinRoom, Room: "sp", Username: "Ana"}
	drainJoin(t, ana.Events)
	bruno.Commands <- Command{Kind: CommandJoinRoom, Room: "sp", Username: "Bruno"}
	drainJoin(t, ana.Events)
	drainJoin(t, bruno.Events)
	carla.Commands <- Command{Kind: CommandJoinRoom, Room: "rio", Username: "Carla"}
	drainJoin(t, carla.Events)

	ana.Commands <- Command{Kind: CommandSendMessage, Text: "oi"}

	ev := mustEvent(t, bruno.Events, EventChatMessage)
	if ev.From != "Ana" || ev.Text != "oi" || ev.Room != "sp" {
		t.Fatalf("unexpected chat event: %+v", ev)
	}
	if ev.At.IsZero() {
		t.Fatal("chat event missing broadcast time")
	}
	mustNoEvent(t, carla.Events)
}

func TestHubSendBeforeJoinIgnored(t *testing.T) {
	hub := newTestHub()

	ana := NewClient("a")
	lurker := NewClient("b")
	if err := hub.RegisterClient(ana); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := hub.RegisterClient(lurker); err != nil {
		t.Fatalf("register: %v", err)
	}
	ana.Commands <- Command{Kind: CommandJoinRoom, Room: "sp", Username: "Ana"}
	drainJoin(t, ana.Events)

	// An unjoined connection can neither trigger nor receive broadcasts.
	lurker.Commands <- Command{Kind: CommandSendMessage, Text: "oi"}
	mustNoEvent(t, ana.Events)
	mustNoEvent(t, lurker.Events)
}

func TestHubInvalidJoinDropped(t *testing.T) {
	hub := newTestHub()

	ana := NewClient("a")
	if err := hub.RegisterClient(ana); err != nil {
		t.Fatalf("register: %v", err)
	}

	ana.Commands <- Command{Kind: CommandJoinRoom, Room: "sp", Username: ""}
	mustNoEvent(t, ana.Events)

	ana.Commands <- Command{Kind: CommandJoinRoom, Room: "", Username: "Ana"}
	mustNoEvent(t, ana.Events)

	// The connection stays usable: a valid join still works.
	ana.Commands <- Command{Kind: CommandJoinRoom, Room: "sp", Username: "Ana"}
	ev := mustEvent(t, ana.Events, EventSystemMessage)
	if ev.Text != "Ana entrou na sala sp" {
		t.Fatalf("unexpected announcement: %+v", ev)
	}
}

func TestHubDuplicateIDRejected(t *testing.T) {
	hub := newTestHub()

	if err := hub.RegisterClient(NewClient("a")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := hub.RegisterClient(NewClient("a")); err == nil {
		t.Fatal("expected duplicate id to be rejected")
	}
}

func TestHubDisconnectAnnouncesDeparture(t *testing.T) {
	hub := newTestHub()

	ana := NewClient("a")
	bruno := NewClient("b")
	if err := hub.RegisterClient(ana); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := hub.RegisterClient(bruno); err != nil {
		t.Fatalf("register: %v", err)
	}

	ana.Commands <- Command{Kind: CommandJoinRoom, Room: "sp", Username: "Ana"}
	drainJoin(t, ana.Events)
	bruno.Commands <- Command{Kind: CommandJoinRoom, Room: "sp", Username: "Bruno"}
	drainJoin(t, ana.Events)
	drainJoin(t, bruno.Events)

	hub.UnregisterClient(bruno)

	ev := mustEvent(t, ana.Events, EventSystemMessage)
	if ev.Text != "Bruno saiu da sala" {
		t.Fatalf("unexpected departure announcement: %+v", ev)
	}
	// The leaver is removed before the fan-out and hears nothing.
	mustNoEvent(t, bruno.Events)
}

func TestHubDisconnectWithoutJoinIsSilent(t *testing.T) {
	hub := newTestHub()

	ana := NewClient("a")
	lurker := NewClient("b")
	if err := hub.RegisterClient(ana); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := hub.RegisterClient(lurker); err != nil {
		t.Fatalf("register: %v", err)
	}
	ana.Commands <- Command{Kind: CommandJoinRoom, Room: "sp", Username: "Ana"}
	drainJoin(t, ana.Events)

	hub.UnregisterClient(lurker)
	mustNoEvent(t, ana.Events)
}

func TestHubRoomSwitchLeavesOldRoomSilently(t *testing.T) {
	hub := newTestHub()

	ana := NewClient("a")
	bruno := NewClient("b")
	if err := hub.RegisterClient(ana); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := hub.RegisterClient(bruno); err != nil {
		t.Fatalf("register: %v", err)
	}

	ana.Commands <- Command{Kind: CommandJoinRoom, Room: "geral", Username: "Ana"}
	drainJoin(t, ana.Events)
	bruno.Commands <- Command{Kind: CommandJoinRoom, Room: "geral", Username: "Bruno"}
	drainJoin(t, ana.Events)
	drainJoin(t, bruno.Events)

	// Ana jumps to mg; geral gets no departure notice.
	ana.Commands <- Command{Kind: CommandJoinRoom, Room: "mg", Username: "Ana"}
	drainJoin(t, ana.Events)
	mustNoEvent(t, bruno.Events)

	// Subsequent messages reach only mg members.
	ana.Commands <- Command{Kind: CommandSendMessage, Text: "mudei de sala"}
	ev := mustEvent(t, ana.Events, EventChatMessage)
	if ev.Room != "mg" {
		t.Fatalf("expected message in mg, got %+v", ev)
	}
	mustNoEvent(t, bruno.Events)
}

func TestHubPerSenderOrdering(t *testing.T) {
	hub := newTestHub()

	ana := NewClient("a")
	bruno := NewClient("b")
	if err := hub.RegisterClient(ana); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := hub.RegisterClient(bruno); err != nil {
		t.Fatalf("register: %v", err)
	}

	ana.Commands <- Command{Kind: CommandJoinRoom, Room: "sp", Username: "Ana"}
	drainJoin(t, ana.Events)
	bruno.Commands <- Command{Kind: CommandJoinRoom, Room: "sp", Username: "Bruno"}
	drainJoin(t, bruno.Events)

	for i := 0; i < 5; i++ {
		ana.Commands <- Command{Kind: CommandSendMessage, Text: fmt.Sprintf("msg-%d", i)}
	}
	// Skip the announcement of bruno's join that ana also received.
	drainJoin(t, ana.Events)

	for i := 0; i < 5; i++ {
		ev := mustEvent(t, bruno.Events, EventChatMessage)
		if want := fmt.Sprintf("msg-%d", i); ev.Text != want {
			t.Fatalf("out of order: got %q, want %q", ev.Text, want)
		}
	}
}

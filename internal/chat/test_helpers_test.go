package chat

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestHub() *Hub {
	logger := zerolog.Nop()
	return NewHub(NewRegistry(), &logger)
}

func mustEvent(t *testing.T, ch <-chan Event, kind EventKind) Event {
	t.Helper()

	for {
		select {
		case ev := <-ch:
			if ev.Kind == kind {
				return ev
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("expected event kind %v not received", kind)
		}
	}
}

func mustNoEvent(t *testing.T, ch <-chan Event) {
	t.Helper()

	select {
	case ev := <-ch:
		t.Fatalf("unexpected event: %+v", ev)
	case <-time.After(100 * time.Millisecond):
	}
}

// drainJoin consumes the next system message, failing if none arrives.
func drainJoin(t *testing.T, ch <-chan Event) {
	t.Helper()
	mustEvent(t, ch, EventSystemMessage)
}

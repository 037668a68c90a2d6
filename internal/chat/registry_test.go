package chat

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestRegistryRegisterDuplicate(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register(NewClient("a")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register(NewClient("a")); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}

func TestRegistrySetRoomAndName(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(NewClient("a")); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := reg.SetRoomAndName("a", "", "ana"); !errors.Is(err, ErrInvalidJoin) {
		t.Fatalf("expected ErrInvalidJoin for empty room, got %v", err)
	}
	if err := reg.SetRoomAndName("a", "sp", ""); !errors.Is(err, ErrInvalidJoin) {
		t.Fatalf("expected ErrInvalidJoin for empty username, got %v", err)
	}
	if err := reg.SetRoomAndName("ghost", "sp", "ana"); !errors.Is(err, ErrUnknownConnection) {
		t.Fatalf("expected ErrUnknownConnection, got %v", err)
	}

	if err := reg.SetRoomAndName("a", "sp", "ana"); err != nil {
		t.Fatalf("join: %v", err)
	}
	conn, ok := reg.Get("a")
	if !ok || conn.Room != "sp" || conn.Username != "ana" {
		t.Fatalf("unexpected state: %+v ok=%v", conn, ok)
	}

	// A second join overwrites both fields.
	if err := reg.SetRoomAndName("a", "mg", "bia"); err != nil {
		t.Fatalf("rejoin: %v", err)
	}
	conn, _ = reg.Get("a")
	if conn.Room != "mg" || conn.Username != "bia" {
		t.Fatalf("expected overwrite, got %+v", conn)
	}
}

func TestRegistryMembersOf(t *testing.T) {
	reg := NewRegistry()
	for i := 0; i < 3; i++ {
		id := fmt.Sprintf("c%d", i)
		if err := reg.Register(NewClient(id)); err != nil {
			t.Fatalf("register %s: %v", id, err)
		}
	}

	_ = reg.SetRoomAndName("c0", "sp", "ana")
	_ = reg.SetRoomAndName("c1", "sp", "bruno")
	_ = reg.SetRoomAndName("c2", "rio", "carla")

	if got := len(reg.MembersOf("sp")); got != 2 {
		t.Fatalf("expected 2 members of sp, got %d", got)
	}
	if got := len(reg.MembersOf("rio")); got != 1 {
		t.Fatalf("expected 1 member of rio, got %d", got)
	}
	if got := len(reg.MembersOf("ghost")); got != 0 {
		t.Fatalf("expected empty set, got %d", got)
	}
	// Unjoined connections belong to no room.
	if got := len(reg.MembersOf("")); got != 0 {
		t.Fatalf("unjoined connections must not form a room, got %d", got)
	}
}

func TestRegistryRemove(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(NewClient("a")); err != nil {
		t.Fatalf("register: %v", err)
	}
	_ = reg.SetRoomAndName("a", "sp", "ana")

	conn, ok := reg.Remove("a")
	if !ok || conn.Room != "sp" || conn.Username != "ana" {
		t.Fatalf("unexpected removed state: %+v ok=%v", conn, ok)
	}
	if _, ok := reg.Get("a"); ok {
		t.Fatal("connection still present after remove")
	}

	// Double-remove is a no-op.
	if _, ok := reg.Remove("a"); ok {
		t.Fatal("second remove reported a connection")
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	reg := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("c%d", n)
			if err := reg.Register(NewClient(id)); err != nil {
				t.Errorf("register %s: %v", id, err)
				return
			}
			_ = reg.SetRoomAndName(id, "geral", "user")
			reg.MembersOf("geral")
			if n%2 == 0 {
				reg.Remove(id)
			}
		}(i)
	}
	wg.Wait()

	if got := len(reg.MembersOf("geral")); got != 25 {
		t.Fatalf("expected 25 remaining members, got %d", got)
	}
}

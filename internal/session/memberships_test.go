package session

import (
	"context"
	"errors"
	"testing"

	"codeword/internal/db"
)

func TestJoinByCode(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	record := createLobby(t, svc, "host-1")

	member, err := svc.JoinByCode(ctx, "player-1", record.Code)
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if member.Role != db.RolePlayer || member.Status != db.MemberActive {
		t.Fatalf("unexpected membership: %+v", member)
	}
	if member.IsReady {
		t.Fatal("new members must not start ready")
	}
}

func TestJoinByCodeDuplicate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	record := createLobby(t, svc, "host-1")

	if _, err := svc.JoinByCode(ctx, "player-1", record.Code); err != nil {
		t.Fatalf("join: %v", err)
	}
	if _, err := svc.JoinByCode(ctx, "player-1", record.Code); !errors.Is(err, ErrDuplicateMembership) {
		t.Fatalf("expected ErrDuplicateMembership, got %v", err)
	}
	// The host is already a member through game creation.
	if _, err := svc.JoinByCode(ctx, "host-1", record.Code); !errors.Is(err, ErrDuplicateMembership) {
		t.Fatalf("expected ErrDuplicateMembership for host, got %v", err)
	}

	members, err := svc.ListMembers(ctx, record.ID)
	if err != nil {
		t.Fatalf("list members: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 membership rows, got %d", len(members))
	}
}

func TestJoinByCodeUnknownCode(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.JoinByCode(context.Background(), "player-1", "XYZ234"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
}

func TestJoinRequiresLobby(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	record := startedGame(t, svc, "ada", "ben")
	if _, err := svc.JoinByCode(ctx, "late", record.Code); !errors.Is(err, ErrGameAlreadyStarted) {
		t.Fatalf("expected ErrGameAlreadyStarted, got %v", err)
	}

	if _, err := svc.EndGame(ctx, "ada", record.ID); err != nil {
		t.Fatalf("end: %v", err)
	}
	if _, err := svc.JoinByCode(ctx, "late", record.Code); !errors.Is(err, ErrGameEnded) {
		t.Fatalf("expected ErrGameEnded, got %v", err)
	}
}

func TestRejoinAfterLeaving(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	record := createLobby(t, svc, "host-1")

	first, err := svc.JoinByCode(ctx, "player-1", record.Code)
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if _, err := svc.JoinByCode(ctx, "player-2", record.Code); err != nil {
		t.Fatalf("join second: %v", err)
	}
	left, err := svc.LeaveGame(ctx, "player-1", record.ID)
	if err != nil {
		t.Fatalf("leave: %v", err)
	}
	if left.Status != db.MemberLeft || left.LeftAt == nil {
		t.Fatalf("expected left membership with left_at, got %+v", left)
	}

	rejoined, err := svc.JoinByCode(ctx, "player-1", record.Code)
	if err != nil {
		t.Fatalf("rejoin: %v", err)
	}
	if rejoined.ID != first.ID {
		t.Fatalf("rejoin must reuse the row: %d != %d", rejoined.ID, first.ID)
	}
	if rejoined.Status != db.MemberActive || rejoined.LeftAt != nil {
		t.Fatalf("expected reactivated membership, got %+v", rejoined)
	}
	if !rejoined.JoinedAt.After(first.JoinedAt) {
		t.Fatal("rejoin must re-stamp joined_at")
	}

	// Re-stamping pushes the rejoining player to the end of the
	// deterministic member order.
	members, err := svc.ListActiveMembers(ctx, record.ID)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if members[len(members)-1].UserID != "player-1" {
		t.Fatalf("expected player-1 last, got order %+v", members)
	}
}

func TestSetReady(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	record := createLobby(t, svc, "host-1")

	member, err := svc.SetReady(ctx, "host-1", record.ID, true)
	if err != nil {
		t.Fatalf("ready: %v", err)
	}
	if !member.IsReady {
		t.Fatal("expected ready membership")
	}
	// Second identical call is a no-op.
	if _, err := svc.SetReady(ctx, "host-1", record.ID, true); err != nil {
		t.Fatalf("repeat ready: %v", err)
	}

	if _, err := svc.SetReady(ctx, "stranger", record.ID, true); !errors.Is(err, ErrMembershipNotFound) {
		t.Fatalf("expected ErrMembershipNotFound, got %v", err)
	}
}

func TestHostCannotLeave(t *testing.T) {
	svc := newTestService(t)
	record := createLobby(t, svc, "host-1")

	if _, err := svc.LeaveGame(context.Background(), "host-1", record.ID); !errors.Is(err, ErrHostCannotLeave) {
		t.Fatalf("expected ErrHostCannotLeave, got %v", err)
	}
}

func TestLeaveTwice(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	record := createLobby(t, svc, "host-1")
	if _, err := svc.JoinByCode(ctx, "player-1", record.Code); err != nil {
		t.Fatalf("join: %v", err)
	}

	if _, err := svc.LeaveGame(ctx, "player-1", record.ID); err != nil {
		t.Fatalf("leave: %v", err)
	}
	if _, err := svc.LeaveGame(ctx, "player-1", record.ID); !errors.Is(err, ErrMembershipNotFound) {
		t.Fatalf("expected ErrMembershipNotFound, got %v", err)
	}
}

func TestListActiveMembersOrder(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	record := createLobby(t, svc, "ada")
	for _, user := range []string{"ben", "cleo", "dia"} {
		if _, err := svc.JoinByCode(ctx, user, record.Code); err != nil {
			t.Fatalf("join %s: %v", user, err)
		}
	}

	members, err := svc.ListActiveMembers(ctx, record.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"ada", "ben", "cleo", "dia"}
	if len(members) != len(want) {
		t.Fatalf("expected %d members, got %d", len(want), len(members))
	}
	for i, user := range want {
		if members[i].UserID != user {
			t.Fatalf("expected %s at position %d, got %s", user, i, members[i].UserID)
		}
	}
}

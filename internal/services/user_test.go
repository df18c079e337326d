package services

import (
	"context"
	"errors"
	"testing"
)

func TestRegisterDuplicateUsername(t *testing.T) {
	users := newMockUserRepo()
	svc := NewUserService(users, nil, testLogger())

	if err := svc.Register(context.Background(), "alice"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Register(context.Background(), "alice"); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAddFriendSelf(t *testing.T) {
	users := newMockUserRepo()
	users.addUser(1, "alice")
	svc := NewUserService(users, nil, testLogger())

	if err := svc.AddFriend(context.Background(), "alice", "alice"); !errors.Is(err, ErrSelfFriend) {
		t.Fatalf("expected ErrSelfFriend, got %v", err)
	}
}

func TestAddFriendUnknownTarget(t *testing.T) {
	users := newMockUserRepo()
	users.addUser(1, "alice")
	svc := NewUserService(users, nil, testLogger())

	if err := svc.AddFriend(context.Background(), "alice", "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAddFriendIsDirected(t *testing.T) {
	users := newMockUserRepo()
	users.addUser(1, "alice")
	users.addUser(2, "bob")
	svc := NewUserService(users, nil, testLogger())

	if err := svc.AddFriend(context.Background(), "alice", "bob"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Only the initiator's edge is written.
	if len(users.addedEdges) != 1 {
		t.Fatalf("expected one edge, got %d", len(users.addedEdges))
	}
	if users.addedEdges[0] != [2]int64{1, 2} {
		t.Fatalf("expected edge 1->2, got %v", users.addedEdges[0])
	}
}

func TestProfileResolvesFriendUsernames(t *testing.T) {
	users := newMockUserRepo()
	users.addUser(1, "alice", 2, 3)
	users.addUser(2, "bob")
	users.addUser(3, "carol")
	svc := NewUserService(users, nil, testLogger())

	profile, err := svc.Profile(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Username != "alice" || len(profile.Friends) != 2 {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if profile.Friends[0] != "bob" || profile.Friends[1] != "carol" {
		t.Fatalf("unexpected friends order: %v", profile.Friends)
	}
}

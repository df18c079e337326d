package services

import (
	"context"
	"errors"
	"testing"

	"nextflix/internal/repository"
)

func TestWatchlistAddDuplicate(t *testing.T) {
	users := newMockUserRepo()
	users.addUser(1, "alice")
	watchlists := newMockWatchlistRepo()
	watchlists.addErr = repository.ErrDuplicateEntry

	svc := NewWatchlistService(users, watchlists, nil, testLogger())

	if err := svc.Add(context.Background(), "alice", 10); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestWatchlistAddUnknownMedia(t *testing.T) {
	users := newMockUserRepo()
	users.addUser(1, "alice")
	watchlists := newMockWatchlistRepo()
	watchlists.addErr = repository.ErrRecordNotFound

	svc := NewWatchlistService(users, watchlists, nil, testLogger())

	if err := svc.Add(context.Background(), "alice", 99); !errors.Is(err, ErrMediaNotFound) {
		t.Fatalf("expected ErrMediaNotFound, got %v", err)
	}
}

func TestMarkWatchedMissingEntry(t *testing.T) {
	users := newMockUserRepo()
	users.addUser(1, "alice")

	svc := NewWatchlistService(users, newMockWatchlistRepo(), nil, testLogger())

	if err := svc.MarkWatched(context.Background(), "alice", 10); !errors.Is(err, ErrNotInWatchlist) {
		t.Fatalf("expected ErrNotInWatchlist, got %v", err)
	}
}

func TestWatchlistListUnknownUser(t *testing.T) {
	svc := NewWatchlistService(newMockUserRepo(), newMockWatchlistRepo(), nil, testLogger())

	if _, err := svc.List(context.Background(), "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func testRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestRecommendationsServedFromCache(t *testing.T) {
	users := newMockUserRepo()
	users.addUser(1, "alice", 2)
	users.addUser(2, "bob")
	watchlists := newMockWatchlistRepo()
	watchlists.addEntry(2, media(11, "m1"))

	svc := NewRecommendationService(users, watchlists, testRedis(t), testLogger())

	if _, err := svc.Recommendations(context.Background(), "alice"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	queries := watchlists.firstEligible

	recs, err := svc.Recommendations(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != 11 {
		t.Fatalf("expected cached [11], got %+v", recs)
	}
	if watchlists.firstEligible != queries {
		t.Fatalf("expected cache hit, got %d extra queries", watchlists.firstEligible-queries)
	}
}

func TestWatchlistAddInvalidatesRecommendations(t *testing.T) {
	users := newMockUserRepo()
	users.addUser(1, "alice", 2)
	users.addUser(2, "bob")
	watchlists := newMockWatchlistRepo()
	watchlists.addEntry(1, media(10, "m1"))
	watchlists.addEntry(2, media(10, "m1"))
	watchlists.addEntry(2, media(11, "m2"))

	client := testRedis(t)
	recSvc := NewRecommendationService(users, watchlists, client, testLogger())
	wlSvc := NewWatchlistService(users, watchlists, client, testLogger())

	recs, err := recSvc.Recommendations(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != 11 {
		t.Fatalf("expected [11] before the add, got %+v", recs)
	}

	// Once alice lists 11 herself it must stop being recommended, even
	// though the earlier result is still inside its TTL.
	if err := wlSvc.Add(context.Background(), "alice", 11); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recs, err = recSvc.Recommendations(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected no recommendations after the add, got %+v", recs)
	}
}

func TestAddFriendInvalidatesSuggestions(t *testing.T) {
	users := newMockUserRepo()
	users.addUser(1, "alice", 2, 3, 4)
	users.addUser(2, "bob", 5)
	users.addUser(3, "carol", 5)
	users.addUser(4, "dave", 5)
	users.addUser(5, "eve")

	client := testRedis(t)
	recSvc := NewRecommendationService(users, newMockWatchlistRepo(), client, testLogger())
	userSvc := NewUserService(users, client, testLogger())

	names, err := recSvc.SuggestedFriends(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 1 || names[0] != "eve" {
		t.Fatalf("expected [eve] before the add, got %v", names)
	}

	// Befriending eve must drop her from the cached suggestion list.
	if err := userSvc.AddFriend(context.Background(), "alice", "eve"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := recSvc.SuggestedFriends(context.Background(), "alice"); !errors.Is(err, ErrNoSuggestions) {
		t.Fatalf("expected ErrNoSuggestions after the add, got %v", err)
	}
}

type mockAdminRepo struct {
	resets int
}

func (m *mockAdminRepo) Reset(ctx context.Context) error {
	m.resets++
	return nil
}

func TestResetFlushesCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	if err := client.Set(context.Background(), recommendationsCachePrefix+"alice", `[]`, 0).Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	admin := &mockAdminRepo{}
	svc := NewAdminService(admin, client, testLogger())

	if err := svc.Reset(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if admin.resets != 1 {
		t.Fatalf("expected one reset, got %d", admin.resets)
	}
	if mr.Exists(recommendationsCachePrefix + "alice") {
		t.Fatal("expected cached recommendations to be flushed")
	}
}

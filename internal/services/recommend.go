package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"nextflix/internal/models"
	"nextflix/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// maxRecommendations caps the direct-recommendation result size.
	maxRecommendations = 10
	// suggestedFriendThreshold is the minimum mutual-friend tally a
	// candidate needs to be suggested.
	suggestedFriendThreshold = 3

	recommendationsCachePrefix = "rec:media:"
	suggestionsCachePrefix     = "rec:friends:"
	recommendationsCacheTTL    = 5 * time.Minute
	suggestionsCacheTTL        = 10 * time.Minute
)

type RecommendationService struct {
	users      repository.UserRepository
	watchlists repository.WatchlistRepository
	redis      *redis.Client
	logger     *logrus.Logger
}

func NewRecommendationService(users repository.UserRepository, watchlists repository.WatchlistRepository, redisClient *redis.Client, logger *logrus.Logger) *RecommendationService {
	return &RecommendationService{
		users:      users,
		watchlists: watchlists,
		redis:      redisClient,
		logger:     logger,
	}
}

// Recommendations returns up to 10 media items drawn from the user's
// friends' watchlists, excluding anything already on the user's own list.
//
// Friends are sampled round-robin: each pass over the friend set takes at
// most one eligible item per friend, so no single friend dominates the
// result. Passes repeat until the cap is hit or a full pass contributes
// nothing.
func (s *RecommendationService) Recommendations(ctx context.Context, username string) ([]models.MediaSummary, error) {
	cacheKey := recommendationsCachePrefix + username
	if cached, ok := s.cacheGet(ctx, cacheKey); ok {
		var recs []models.MediaSummary
		if err := json.Unmarshal(cached, &recs); err == nil {
			return recs, nil
		}
		s.logger.WithField("username", username).Warn("Failed to unmarshal cached recommendations")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	friendIDs, err := s.users.FriendIDs(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get friends: %w", err)
	}

	recs := []models.MediaSummary{}
	if len(friendIDs) == 0 {
		return recs, nil
	}

	ownWatchlist, err := s.watchlists.MediaIDs(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get own watchlist: %w", err)
	}

	// exclude grows as items are collected so later friends never
	// re-contribute an already picked item.
	exclude := append([]int64{}, ownWatchlist...)

	for len(recs) < maxRecommendations {
		progress := false
		for _, friendID := range friendIDs {
			media, err := s.watchlists.FirstEligible(ctx, friendID, exclude)
			if err != nil {
				return nil, fmt.Errorf("failed to sample friend %d: %w", friendID, err)
			}
			if media == nil {
				continue
			}

			recs = append(recs, *media)
			exclude = append(exclude, media.ID)
			progress = true

			if len(recs) == maxRecommendations {
				break
			}
		}
		if !progress {
			break
		}
	}

	s.logger.WithFields(logrus.Fields{
		"username":     username,
		"friend_count": len(friendIDs),
		"result_count": len(recs),
	}).Info("Recommendations computed")

	s.cacheSet(ctx, cacheKey, recs, recommendationsCacheTTL)
	return recs, nil
}

// SuggestedFriends ranks users who are friends of at least 3 of the
// requester's friends, by descending mutual-friend tally. The requester and
// existing friends are never candidates. Returns ErrNoSuggestions when the
// requester has no friends or nobody clears the threshold.
func (s *RecommendationService) SuggestedFriends(ctx context.Context, username string) ([]string, error) {
	cacheKey := suggestionsCachePrefix + username
	if cached, ok := s.cacheGet(ctx, cacheKey); ok {
		var names []string
		if err := json.Unmarshal(cached, &names); err == nil {
			return names, nil
		}
		s.logger.WithField("username", username).Warn("Failed to unmarshal cached suggestions")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	friendIDs, err := s.users.FriendIDs(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get friends: %w", err)
	}
	if len(friendIDs) == 0 {
		return nil, ErrNoSuggestions
	}

	// One batched lookup for all second-degree lists.
	friendLists, err := s.users.FriendIDsOf(ctx, friendIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to expand friend lists: %w", err)
	}

	friendSet := make(map[int64]bool, len(friendIDs))
	for _, id := range friendIDs {
		friendSet[id] = true
	}

	// Each friend holds a candidate at most once (edge uniqueness), so a
	// candidate's tally is exactly its number of mutual friends.
	tallies := make(map[int64]int)
	var order []int64
	for _, friendID := range friendIDs {
		for _, candidate := range friendLists[friendID] {
			if candidate == user.ID || friendSet[candidate] {
				continue
			}
			if _, seen := tallies[candidate]; !seen {
				order = append(order, candidate)
			}
			tallies[candidate]++
		}
	}

	var ranked []int64
	for _, candidate := range order {
		if tallies[candidate] >= suggestedFriendThreshold {
			ranked = append(ranked, candidate)
		}
	}
	if len(ranked) == 0 {
		return nil, ErrNoSuggestions
	}

	// Stable sort keeps first-encountered order among equal tallies.
	sort.SliceStable(ranked, func(i, j int) bool {
		return tallies[ranked[i]] > tallies[ranked[j]]
	})

	usernames, err := s.users.UsernamesByIDs(ctx, ranked)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve candidate usernames: %w", err)
	}

	names := make([]string, 0, len(ranked))
	for _, id := range ranked {
		if name, ok := usernames[id]; ok {
			names = append(names, name)
		}
	}

	s.logger.WithFields(logrus.Fields{
		"username":        username,
		"friend_count":    len(friendIDs),
		"candidate_count": len(tallies),
		"result_count":    len(names),
	}).Info("Suggested friends computed")

	s.cacheSet(ctx, cacheKey, names, suggestionsCacheTTL)
	return names, nil
}

// invalidateUserCache drops a user's cached recommendation results after a
// mutation that can change them. Without this the cache could keep serving
// items the user has since added to their own watchlist, or candidates who
// became friends.
func invalidateUserCache(ctx context.Context, redisClient *redis.Client, log *logrus.Logger, username string) {
	if redisClient == nil {
		return
	}

	err := redisClient.Del(ctx,
		recommendationsCachePrefix+username,
		suggestionsCachePrefix+username,
	).Err()
	if err != nil {
		log.WithError(err).Warn("Failed to invalidate cached recommendations")
	}
}

func (s *RecommendationService) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	if s.redis == nil {
		return nil, false
	}

	cached, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.WithError(err).Warn("Failed to read from Redis")
		}
		return nil, false
	}
	return cached, true
}

func (s *RecommendationService) cacheSet(ctx context.Context, key string, value any, ttl time.Duration) {
	if s.redis == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to marshal result for caching")
		return
	}
	if err := s.redis.Set(ctx, key, payload, ttl).Err(); err != nil {
		s.logger.WithError(err).Warn("Failed to write result to cache")
	}
}

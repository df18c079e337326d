package services

import (
	"context"
	"errors"
	"fmt"

	"nextflix/internal/models"
	"nextflix/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type WatchlistService struct {
	users      repository.UserRepository
	watchlists repository.WatchlistRepository
	redis      *redis.Client
	logger     *logrus.Logger
}

func NewWatchlistService(users repository.UserRepository, watchlists repository.WatchlistRepository, redisClient *redis.Client, logger *logrus.Logger) *WatchlistService {
	return &WatchlistService{users: users, watchlists: watchlists, redis: redisClient, logger: logger}
}

func (s *WatchlistService) resolveUser(ctx context.Context, username string) (int64, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to resolve user: %w", err)
	}
	return user.ID, nil
}

func (s *WatchlistService) List(ctx context.Context, username string) ([]models.WatchlistItem, error) {
	userID, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	items, err := s.watchlists.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get watchlist: %w", err)
	}
	return items, nil
}

func (s *WatchlistService) Add(ctx context.Context, username string, mediaID int64) error {
	userID, err := s.resolveUser(ctx, username)
	if err != nil {
		return err
	}

	if err := s.watchlists.Add(ctx, userID, mediaID); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return ErrAlreadyExists
		}
		if errors.Is(err, repository.ErrRecordNotFound) {
			return ErrMediaNotFound
		}
		return fmt.Errorf("failed to add to watchlist: %w", err)
	}

	// The item may sit in a cached recommendation list for this user.
	// MarkWatched needs no invalidation since it never changes membership.
	invalidateUserCache(ctx, s.redis, s.logger, username)

	s.logger.WithFields(logrus.Fields{
		"user_id":  userID,
		"media_id": mediaID,
	}).Info("Added to watchlist")
	return nil
}

func (s *WatchlistService) MarkWatched(ctx context.Context, username string, mediaID int64) error {
	userID, err := s.resolveUser(ctx, username)
	if err != nil {
		return err
	}

	if err := s.watchlists.MarkWatched(ctx, userID, mediaID); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return ErrNotInWatchlist
		}
		return fmt.Errorf("failed to mark watched: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":  userID,
		"media_id": mediaID,
	}).Info("Marked as watched")
	return nil
}
